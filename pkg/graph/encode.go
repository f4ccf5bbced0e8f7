package graph

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/sjson"
)

// EncodeLayer serializes a Layer back to the JSON-object wire format
// DecodeLayer reads, one definition node per key. sjson builds the
// document key-by-key rather than through a struct marshal, which keeps
// the encoder symmetric with the gjson-based decoder and tolerant of the
// same "keys never collide with Go struct tags" property symbol-keyed
// identifiers would otherwise need.
func EncodeLayer(l Layer) ([]byte, error) {
	doc := []byte("{}")
	var err error
	for id, def := range l {
		if id.IsSymbol() {
			return nil, fmt.Errorf("akso-script: cannot encode symbol-keyed identifier %s", id)
		}
		raw, encErr := encodeDef(def)
		if encErr != nil {
			return nil, fmt.Errorf("akso-script: definition %q: %w", id.Text(), encErr)
		}
		doc, err = sjson.SetRawBytes(doc, id.Text(), raw)
		if err != nil {
			return nil, fmt.Errorf("akso-script: definition %q: %w", id.Text(), err)
		}
	}
	return doc, nil
}

func encodeDef(d *Def) ([]byte, error) {
	doc := []byte("{}")
	doc, err := sjson.SetBytes(doc, "t", string(d.Tag))
	if err != nil {
		return nil, err
	}
	switch d.Tag {
	case TagNull:
		// no fields
	case TagBool:
		doc, err = sjson.SetBytes(doc, "v", d.Bool)
	case TagNumber:
		doc, err = sjson.SetBytes(doc, "v", d.Number)
	case TagString:
		doc, err = sjson.SetBytes(doc, "v", d.Str)
	case TagArray:
		var raw []byte
		raw, err = encodeLiteralArray(d.Literal)
		if err == nil {
			doc, err = sjson.SetRawBytes(doc, "v", raw)
		}
	case TagList:
		doc, err = sjson.SetBytes(doc, "v", identStrings(d.Refs))
	case TagCall:
		doc, err = sjson.SetBytes(doc, "f", d.Callee.Text())
		if err == nil && len(d.Args) > 0 {
			doc, err = sjson.SetBytes(doc, "a", identStrings(d.Args))
		}
	case TagFunc:
		doc, err = sjson.SetBytes(doc, "p", d.Params)
		if err == nil {
			var body []byte
			body, err = EncodeLayer(d.Body)
			if err == nil {
				doc, err = sjson.SetRawBytes(doc, "b", body)
			}
		}
	case TagSwitch:
		var raw []byte
		raw, err = encodeCases(d.Cases)
		if err == nil {
			doc, err = sjson.SetRawBytes(doc, "m", raw)
		}
	default:
		return nil, fmt.Errorf("unknown tag %q", d.Tag)
	}
	return doc, err
}

func identStrings(ids []Ident) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Text()
	}
	return out
}

func encodeCases(cases []SwitchCase) ([]byte, error) {
	doc := []byte("[]")
	var err error
	for i, c := range cases {
		entry := []byte("{}")
		if c.HasCond {
			entry, err = sjson.SetBytes(entry, "c", c.Cond.Text())
			if err != nil {
				return nil, err
			}
		}
		entry, err = sjson.SetBytes(entry, "v", c.Value.Text())
		if err != nil {
			return nil, err
		}
		doc, err = sjson.SetRawBytes(doc, fmt.Sprintf("%d", i), entry)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func encodeLiteralArray(lits []Literal) ([]byte, error) {
	doc := []byte("[]")
	var err error
	for i, l := range lits {
		var raw []byte
		raw, err = encodeLiteral(l)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.SetRawBytes(doc, fmt.Sprintf("%d", i), raw)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func encodeLiteral(l Literal) ([]byte, error) {
	switch l.Kind {
	case LiteralNull:
		return []byte("null"), nil
	case LiteralBool:
		return json.Marshal(l.Bool)
	case LiteralNumber:
		return json.Marshal(l.Number)
	case LiteralString:
		return json.Marshal(l.Str)
	case LiteralArray:
		return encodeLiteralArray(l.Array)
	default:
		return nil, fmt.Errorf("unsupported literal kind %d", l.Kind)
	}
}
