package typesys

import "fmt"

// Substitute replaces every occurrence of key within t by value. Function
// types block substitution whose key matches one of their own bound
// variables (α-safety for nested functions) — a mapping whose
// Bindings contains key is returned unchanged.
func Substitute(t Type, key *Variable, value Type) Type {
	switch tt := t.(type) {
	case *Variable:
		if tt == key {
			return value
		}
		return tt
	case *Union:
		members := make([]Type, len(tt.members))
		for i, m := range tt.members {
			members[i] = Substitute(m, key, value)
		}
		return NewUnion(members)
	case *Applied:
		args := make([]Type, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = Substitute(a, key, value)
		}
		return &Applied{Receiver: Substitute(tt.Receiver, key, value), Args: args}
	case *Function:
		mappings := make([]Mapping, len(tt.Mappings))
		for i, m := range tt.Mappings {
			if bindsVar(m.Bindings, key) {
				mappings[i] = m
				continue
			}
			patterns := make([]Type, len(m.Patterns))
			for j, p := range m.Patterns {
				patterns[j] = Substitute(p, key, value)
			}
			mappings[i] = Mapping{Bindings: m.Bindings, Patterns: patterns, Result: Substitute(m.Result, key, value)}
		}
		return &Function{Arity: tt.Arity, Mappings: mappings}
	case *Conditional:
		branches := make([]Branch, len(tt.Branches))
		for i, b := range tt.Branches {
			preds := make([]Predicate, len(b.Predicates))
			for j, p := range b.Predicates {
				preds[j] = Predicate{Subject: Substitute(p.Subject, key, value), Pattern: Substitute(p.Pattern, key, value)}
			}
			branches[i] = Branch{Predicates: preds, Result: Substitute(b.Result, key, value)}
		}
		return &Conditional{Branches: branches}
	default:
		// Primitive, FuncPattern, Unresolved, ErrorT carry no substitutable
		// positions.
		return tt
	}
}

func bindsVar(bindings []*Variable, key *Variable) bool {
	for _, b := range bindings {
		if b == key {
			return true
		}
	}
	return false
}

// Reduce performs a single pass of normalization: composite types reduce
// their children, function mappings reduce their results, applied types
// reduce receiver and arguments and then re-apply if the receiver turned
// out to be a function or Never (which poisons the application to Never).
func Reduce(t Type) Type {
	switch tt := t.(type) {
	case *Union:
		members := make([]Type, len(tt.members))
		for i, m := range tt.members {
			members[i] = Reduce(m)
		}
		return NewUnion(members)
	case *Function:
		mappings := make([]Mapping, len(tt.Mappings))
		for i, m := range tt.Mappings {
			mappings[i] = Mapping{Bindings: m.Bindings, Patterns: m.Patterns, Result: Reduce(m.Result)}
		}
		return &Function{Arity: tt.Arity, Mappings: mappings}
	case *Applied:
		recv := Reduce(tt.Receiver)
		args := make([]Type, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = Reduce(a)
		}
		if recv.Kind() == KindFunction || recv == Never {
			return Apply(recv, args)
		}
		return &Applied{Receiver: recv, Args: args}
	case *Conditional:
		return reduceConditional(tt)
	default:
		return t
	}
}

type predStatus int

const (
	predUnknown predStatus = iota
	predTrue
	predFalse
)

func evalPredicates(preds []Predicate) predStatus {
	if len(preds) == 0 {
		return predTrue
	}
	for _, p := range preds {
		if _, stillVar := p.Subject.(*Variable); stillVar {
			return predUnknown
		}
		if _, ok := Match(p.Pattern, p.Subject); !ok {
			return predFalse
		}
	}
	return predTrue
}

// reduceConditional eliminates statically falsifiable branches and
// collapses the first statically tautological branch into the result,
// since later branches are unreachable once an earlier one is guaranteed
// to fire.
func reduceConditional(c *Conditional) Type {
	var kept []Branch
	for _, b := range c.Branches {
		reducedResult := Reduce(b.Result)
		switch evalPredicates(b.Predicates) {
		case predFalse:
			continue
		case predTrue:
			kept = append(kept, Branch{Result: reducedResult})
			return finalizeConditional(kept)
		default:
			kept = append(kept, Branch{Predicates: b.Predicates, Result: reducedResult})
		}
	}
	return finalizeConditional(kept)
}

func finalizeConditional(branches []Branch) Type {
	if len(branches) == 0 {
		return Never
	}
	if len(branches) == 1 && len(branches[0].Predicates) == 0 {
		return branches[0].Result
	}
	return &Conditional{Branches: branches}
}

// Bindings is the substitution produced by a successful Match.
type Bindings map[*Variable]Type

// Match attempts to match pattern against t, returning the variable
// bindings on success. On a union t, each member is matched independently
// and the bindings of every matching member are merged; the match succeeds
// when at least one member matches.
func Match(pattern, t Type) (Bindings, bool) {
	if u, ok := t.(*Union); ok {
		if _, isUnionPattern := pattern.(*Union); !isUnionPattern {
			return matchUnion(pattern, u)
		}
	}
	switch p := pattern.(type) {
	case *Variable:
		return Bindings{p: t}, true
	case *Primitive:
		if t == Type(p) {
			return Bindings{}, true
		}
		return nil, false
	case *Applied:
		at, ok := t.(*Applied)
		if !ok || at.Receiver.Signature() != p.Receiver.Signature() || len(at.Args) != len(p.Args) {
			return nil, false
		}
		result := Bindings{}
		for i := range p.Args {
			sub, ok := Match(p.Args[i], at.Args[i])
			if !ok {
				return nil, false
			}
			for k, v := range sub {
				result[k] = v
			}
		}
		return result, true
	case *FuncPattern:
		ft, ok := t.(*Function)
		if !ok || ft.Arity != p.Arity {
			return nil, false
		}
		result := Bindings{}
		if p.Bind != nil {
			result[p.Bind] = ft
		}
		return result, true
	case *Union:
		for _, m := range p.members {
			if sub, ok := Match(m, t); ok {
				return sub, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

func matchUnion(pattern Type, u *Union) (Bindings, bool) {
	merged := Bindings{}
	any := false
	for _, m := range u.members {
		if sub, ok := Match(pattern, m); ok {
			any = true
			for k, v := range sub {
				merged[k] = v
			}
		}
	}
	if !any {
		return nil, false
	}
	return merged, true
}

// Apply applies recv to args per the receiver's kind: Never
// poisons to Never, a primitive or unresolved receiver wraps into an
// Applied stub awaiting further information, and a Function dispatches
// into the mapping-matching algorithm.
func Apply(recv Type, args []Type) Type {
	if recv == Never {
		return Never
	}
	switch r := recv.(type) {
	case *Primitive, *Unresolved:
		return &Applied{Receiver: r, Args: args}
	case *Function:
		return applyFunction(r, args)
	default:
		return NewError(ErrNotCallable, fmt.Sprintf("cannot apply %s", recv.Signature()))
	}
}

// applyFunction runs the mapping-matching algorithm: each mapping's
// patterns are tried in order against args, the first full match
// substitutes its bindings into the result, and a dangling type variable
// among the arguments defers the whole application rather than erroring.
func applyFunction(f *Function, args []Type) Type {
	if len(args) != f.Arity {
		return NewError(ErrArity, fmt.Sprintf("expected %d argument(s), got %d", f.Arity, len(args)))
	}
	sawTypeVar := false
	for _, m := range f.Mappings {
		bindings := Bindings{}
		matched := true
		for i, pat := range m.Patterns {
			sub, ok := Match(pat, args[i])
			if !ok {
				if _, isVar := args[i].(*Variable); isVar {
					sawTypeVar = true
				}
				matched = false
				break
			}
			for k, v := range sub {
				bindings[k] = v
			}
		}
		if !matched {
			continue
		}
		result := m.Result
		for k, v := range bindings {
			result = Substitute(result, k, v)
		}
		return Reduce(Reduce(result))
	}
	if sawTypeVar {
		return &Applied{Receiver: f, Args: args}
	}
	return NewError(ErrUndefined, "no mapping matches argument types")
}

// IsConcrete reports whether t has no free type variables. The variables a
// function mapping lists in its Bindings count as bound inside that
// mapping's patterns and result.
func IsConcrete(t Type) bool {
	return isConcreteRec(t, map[*Variable]bool{})
}

func isConcreteRec(t Type, bound map[*Variable]bool) bool {
	switch tt := t.(type) {
	case *Variable:
		return bound[tt]
	case *Union:
		for _, m := range tt.members {
			if !isConcreteRec(m, bound) {
				return false
			}
		}
		return true
	case *Applied:
		if !isConcreteRec(tt.Receiver, bound) {
			return false
		}
		for _, a := range tt.Args {
			if !isConcreteRec(a, bound) {
				return false
			}
		}
		return true
	case *Function:
		for _, m := range tt.Mappings {
			nested := make(map[*Variable]bool, len(bound)+len(m.Bindings))
			for k := range bound {
				nested[k] = true
			}
			for _, b := range m.Bindings {
				nested[b] = true
			}
			for _, p := range m.Patterns {
				if !isConcreteRec(p, nested) {
					return false
				}
			}
			if !isConcreteRec(m.Result, nested) {
				return false
			}
		}
		return true
	case *Conditional:
		for _, b := range tt.Branches {
			for _, p := range b.Predicates {
				if !isConcreteRec(p.Subject, bound) || !isConcreteRec(p.Pattern, bound) {
					return false
				}
			}
			if !isConcreteRec(b.Result, bound) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Halt is the tri-valued result of DoesHalt.
type Halt int

const (
	HaltUnknown Halt = iota
	HaltTrue
	HaltFalse
)

// DoesHalt reports whether t provably terminates: Never itself
// never halts, an Unresolved or ErrorT is undecided, a Function halts when
// none of its mapping results is Never, and a Union halts only if every
// member halts (and is undecided if any member is undecided without a
// definite Never). An Applied type halts when its receiver and every
// argument halt, and is undecided otherwise.
func DoesHalt(t Type) Halt {
	switch tt := t.(type) {
	case *Primitive:
		if tt == Never {
			return HaltFalse
		}
		return HaltTrue
	case *Union:
		result := HaltTrue
		for _, m := range tt.members {
			switch DoesHalt(m) {
			case HaltFalse:
				return HaltFalse
			case HaltUnknown:
				result = HaltUnknown
			}
		}
		return result
	case *Function:
		result := HaltTrue
		for _, m := range tt.Mappings {
			if m.Result == Never {
				return HaltFalse
			}
			switch DoesHalt(m.Result) {
			case HaltFalse:
				return HaltFalse
			case HaltUnknown:
				result = HaltUnknown
			}
		}
		return result
	case *Applied:
		if DoesHalt(tt.Receiver) != HaltTrue {
			return HaltUnknown
		}
		for _, a := range tt.Args {
			if DoesHalt(a) != HaltTrue {
				return HaltUnknown
			}
		}
		return HaltTrue
	case *Unresolved, *ErrorT:
		return HaltUnknown
	default:
		return HaltTrue
	}
}

// IsValid reports whether t contains no ErrorT anywhere within it.
func IsValid(t Type) bool {
	return !containsError(t, map[Type]bool{})
}

func containsError(t Type, visited map[Type]bool) bool {
	if visited[t] {
		return false
	}
	visited[t] = true
	switch tt := t.(type) {
	case *ErrorT:
		return true
	case *Union:
		for _, m := range tt.members {
			if containsError(m, visited) {
				return true
			}
		}
	case *Applied:
		if containsError(tt.Receiver, visited) {
			return true
		}
		for _, a := range tt.Args {
			if containsError(a, visited) {
				return true
			}
		}
	case *Function:
		for _, m := range tt.Mappings {
			for _, p := range m.Patterns {
				if containsError(p, visited) {
					return true
				}
			}
			if containsError(m.Result, visited) {
				return true
			}
		}
	case *Conditional:
		for _, b := range tt.Branches {
			for _, p := range b.Predicates {
				if containsError(p.Pattern, visited) {
					return true
				}
			}
			if containsError(b.Result, visited) {
				return true
			}
		}
	}
	return false
}
