package graph

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// DecodeLayer parses a single top-level JSON object, one definition node
// per key, into a Layer. Keys always arrive as strings on the wire;
// symbol-keyed identifiers are a host-internal concept and never appear
// here.
//
// gjson.Parse is used instead of encoding/json so that a malformed node
// (wrong field type, missing field) is reported with its own key in the
// error. ForEach walks the keys in document order and decoding stops at the
// first malformed node, returning no layer; the resulting Layer is a map
// and keeps no key order.
func DecodeLayer(data []byte) (Layer, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("akso-script: definition graph must be a JSON object")
	}
	layer := make(Layer)
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		def, err := decodeDef(value)
		if err != nil {
			decodeErr = fmt.Errorf("akso-script: definition %q: %w", name, err)
			return false
		}
		layer[Name(name)] = def
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return layer, nil
}

func decodeDef(v gjson.Result) (*Def, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("node must be a JSON object")
	}
	tagResult := v.Get("t")
	if tagResult.Type != gjson.String {
		return nil, fmt.Errorf("missing or non-string tag %q", tagResult.Raw)
	}
	tag := Tag(tagResult.String())
	if !tag.Valid() {
		return nil, fmt.Errorf("unknown tag %q", tag)
	}

	d := &Def{Tag: tag}
	switch tag {
	case TagNull:
		// no fields
	case TagBool:
		f := v.Get("v")
		if f.Type != gjson.True && f.Type != gjson.False {
			return nil, fmt.Errorf("%q: v must be a boolean", tag)
		}
		d.Bool = f.Bool()
	case TagNumber:
		f := v.Get("v")
		if f.Type != gjson.Number {
			return nil, fmt.Errorf("%q: v must be a finite number", tag)
		}
		d.Number = f.Float()
	case TagString:
		f := v.Get("v")
		if f.Type != gjson.String {
			return nil, fmt.Errorf("%q: v must be a string", tag)
		}
		d.Str = f.String()
	case TagArray:
		f := v.Get("v")
		if !f.IsArray() {
			return nil, fmt.Errorf("%q: v must be an array", tag)
		}
		lits, err := decodeLiteralArray(f)
		if err != nil {
			return nil, err
		}
		d.Literal = lits
	case TagList:
		f := v.Get("v")
		if !f.IsArray() {
			return nil, fmt.Errorf("%q: v must be an array of identifiers", tag)
		}
		refs, err := decodeIdentArray(f)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", tag, err)
		}
		d.Refs = refs
	case TagCall:
		f := v.Get("f")
		if f.Type != gjson.String {
			return nil, fmt.Errorf("%q: f must be an identifier", tag)
		}
		d.Callee = Name(f.String())
		if a := v.Get("a"); a.Exists() {
			if !a.IsArray() {
				return nil, fmt.Errorf("%q: a must be an array of identifiers", tag)
			}
			args, err := decodeIdentArray(a)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", tag, err)
			}
			d.Args = args
		}
	case TagFunc:
		p := v.Get("p")
		if !p.IsArray() {
			return nil, fmt.Errorf("%q: p must be an array of names", tag)
		}
		for _, pr := range p.Array() {
			d.Params = append(d.Params, pr.String())
		}
		b := v.Get("b")
		if !b.IsObject() {
			return nil, fmt.Errorf("%q: b must be a layer", tag)
		}
		body, err := DecodeLayer([]byte(b.Raw))
		if err != nil {
			return nil, err
		}
		d.Body = body
	case TagSwitch:
		m := v.Get("m")
		if !m.IsArray() {
			return nil, fmt.Errorf("%q: m must be an array of cases", tag)
		}
		for _, cr := range m.Array() {
			var c SwitchCase
			if cond := cr.Get("c"); cond.Exists() {
				if cond.Type != gjson.String {
					return nil, fmt.Errorf("%q: c must be an identifier", tag)
				}
				c.HasCond = true
				c.Cond = Name(cond.String())
			}
			value := cr.Get("v")
			if value.Type != gjson.String {
				return nil, fmt.Errorf("%q: v must be an identifier", tag)
			}
			c.Value = Name(value.String())
			d.Cases = append(d.Cases, c)
		}
	}
	return d, nil
}

// decodeIdentArray decodes a JSON array of identifier references. Each
// element must be a JSON string; symbol-keyed identifiers are a
// host-internal concept that never crosses the wire, so there is nothing
// else a ref element could legitimately be.
func decodeIdentArray(v gjson.Result) ([]Ident, error) {
	arr := v.Array()
	out := make([]Ident, len(arr))
	for i, r := range arr {
		if r.Type != gjson.String {
			return nil, fmt.Errorf("element %d must be an identifier, got %s", i, r.Raw)
		}
		out[i] = Name(r.String())
	}
	return out, nil
}

func decodeLiteralArray(v gjson.Result) ([]Literal, error) {
	arr := v.Array()
	out := make([]Literal, len(arr))
	for i, r := range arr {
		lit, err := decodeLiteral(r)
		if err != nil {
			return nil, err
		}
		out[i] = lit
	}
	return out, nil
}

func decodeLiteral(v gjson.Result) (Literal, error) {
	switch v.Type {
	case gjson.Null:
		return Literal{Kind: LiteralNull}, nil
	case gjson.True, gjson.False:
		return Literal{Kind: LiteralBool, Bool: v.Bool()}, nil
	case gjson.Number:
		return Literal{Kind: LiteralNumber, Number: v.Float()}, nil
	case gjson.String:
		return Literal{Kind: LiteralString, Str: v.String()}, nil
	case gjson.JSON:
		if v.IsArray() {
			elems, err := decodeLiteralArray(v)
			if err != nil {
				return Literal{}, err
			}
			return Literal{Kind: LiteralArray, Array: elems}, nil
		}
		return Literal{}, fmt.Errorf("literal arrays may not contain objects")
	default:
		return Literal{}, fmt.Errorf("unsupported literal value %q", v.Raw)
	}
}
