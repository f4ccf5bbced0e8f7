package evaluator

import "github.com/cwbudde/go-aksoscript/internal/value"

// Context holds the per-call collaborators threaded through every
// recursive evaluation step: the halt predicate and the form-value
// provider. Both are immutable for the lifetime of one
// top-level Evaluate call, so closures capture this pointer directly
// rather than receiving it dynamically at Apply time.
type Context struct {
	ShouldHalt   func() bool
	GetFormValue func(name string) value.Value
}

func (c *Context) checkHalt() bool {
	return c.ShouldHalt != nil && c.ShouldHalt()
}

func (c *Context) formValue(name string) value.Value {
	if c.GetFormValue == nil {
		return value.NullValue
	}
	v := c.GetFormValue(name)
	if v == nil {
		return value.NullValue
	}
	return v
}
