package analyzer

import (
	"testing"

	"github.com/cwbudde/go-aksoscript/internal/typesys"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

func TestAnalyzeLiterals(t *testing.T) {
	layer := graph.Layer{
		graph.Name("n"): {Tag: graph.TagNumber, Number: 1},
		graph.Name("s"): {Tag: graph.TagString, Str: "x"},
		graph.Name("b"): {Tag: graph.TagBool, Bool: true},
		graph.Name("u"): {Tag: graph.TagNull},
	}
	tests := []struct {
		id   string
		want typesys.Type
	}{
		{"n", typesys.NumberT},
		{"s", typesys.StringT},
		{"b", typesys.BoolT},
		{"u", typesys.NullT},
	}
	for _, tt := range tests {
		r := Analyze([]graph.Layer{layer}, graph.Name(tt.id), nil)
		if !r.Valid || r.Type != tt.want {
			t.Errorf("Analyze(%s) = valid=%v type=%v, want %v", tt.id, r.Valid, r.Type, tt.want)
		}
	}
}

func TestAnalyzeUndefinedIdentifier(t *testing.T) {
	r := Analyze([]graph.Layer{{}}, graph.Name("missing"), nil)
	if r.Valid {
		t.Fatal("expected invalid report for undefined identifier")
	}
}

func TestAnalyzeFormValueResolved(t *testing.T) {
	formValues := func(name string) (typesys.Type, bool) {
		if name == "age" {
			return typesys.NumberT, true
		}
		return nil, false
	}
	r := Analyze([]graph.Layer{{}}, graph.Name("@age"), formValues)
	if !r.Valid || r.Type != typesys.NumberT {
		t.Errorf("Analyze(@age) = valid=%v type=%v, want number", r.Valid, r.Type)
	}
}

func TestAnalyzeFormValueUnresolved(t *testing.T) {
	r := Analyze([]graph.Layer{{}}, graph.Name("@missing"), nil)
	if r.Valid {
		t.Fatal("expected invalid report for an unresolved form value")
	}
}

func TestAnalyzeList(t *testing.T) {
	layer := graph.Layer{
		graph.Name("a"):    {Tag: graph.TagNumber, Number: 1},
		graph.Name("b"):    {Tag: graph.TagNumber, Number: 2},
		graph.Name("list"): {Tag: graph.TagList, Refs: []graph.Ident{graph.Name("a"), graph.Name("b")}},
	}
	r := Analyze([]graph.Layer{layer}, graph.Name("list"), nil)
	if !r.Valid {
		t.Fatalf("Analyze(list): %v", r.Err)
	}
	elem, ok := typesys.ArrayElem(r.Type)
	if !ok || elem != typesys.NumberT {
		t.Errorf("list element type = %v, want number", r.Type)
	}
}

func TestAnalyzeFunctionType(t *testing.T) {
	layer := graph.Layer{
		graph.Name("id"): {
			Tag:    graph.TagFunc,
			Params: []string{"x"},
			Body: graph.Layer{
				graph.Entry: {Tag: graph.TagList, Refs: []graph.Ident{graph.Name("x")}},
			},
		},
	}
	r := Analyze([]graph.Layer{layer}, graph.Name("id"), nil)
	if !r.Valid {
		t.Fatalf("Analyze(id): %v", r.Err)
	}
	fn, ok := r.Type.(*typesys.Function)
	if !ok || fn.Arity != 1 {
		t.Errorf("id type = %v, want a 1-ary function", r.Type)
	}
}

func TestAnalyzeCallProducesError(t *testing.T) {
	layer := graph.Layer{
		graph.Name("n"):   {Tag: graph.TagNumber, Number: 1},
		graph.Name("bad"): {Tag: graph.TagCall, Callee: graph.Name("n"), Args: []graph.Ident{graph.Name("n")}},
	}
	r := Analyze([]graph.Layer{layer}, graph.Name("bad"), nil)
	if r.Valid {
		t.Fatal("calling a non-function with arguments should produce an invalid report")
	}
}

func TestAnalyzeSwitchUnionsCaseTypes(t *testing.T) {
	layer := graph.Layer{
		graph.Name("cond"): {Tag: graph.TagBool, Bool: true},
		graph.Name("n"):    {Tag: graph.TagNumber, Number: 1},
		graph.Name("s"):    {Tag: graph.TagString, Str: "x"},
		graph.Name("r"): {Tag: graph.TagSwitch, Cases: []graph.SwitchCase{
			{HasCond: true, Cond: graph.Name("cond"), Value: graph.Name("n")},
			{HasCond: false, Value: graph.Name("s")},
		}},
	}
	r := Analyze([]graph.Layer{layer}, graph.Name("r"), nil)
	if !r.Valid {
		t.Fatalf("Analyze(r): %v", r.Err)
	}
	union, ok := r.Type.(*typesys.Union)
	if !ok || len(union.Members()) != 2 {
		t.Errorf("switch result type = %v, want a 2-member union", r.Type)
	}
}

func TestAnalyzeAllCoversEveryTopLevelIdentifier(t *testing.T) {
	layer := graph.Layer{
		graph.Name("a"): {Tag: graph.TagNumber, Number: 1},
		graph.Name("b"): {Tag: graph.TagString, Str: "x"},
	}
	reports := AnalyzeAll([]graph.Layer{layer}, nil)
	if len(reports) != 2 {
		t.Fatalf("len(reports) = %d, want 2", len(reports))
	}
	if r := reports[graph.Name("a")]; !r.Valid || r.Type != typesys.NumberT {
		t.Errorf("a = %v", r.Type)
	}
	if r := reports[graph.Name("b")]; !r.Valid || r.Type != typesys.StringT {
		t.Errorf("b = %v", r.Type)
	}
}

// TestAnalyzeSequenceOpsOverString covers map/filter/++ type-checking a
// string argument the same way they type-check an array, instead of
// rejecting it with TYPE_ERROR.
func TestAnalyzeSequenceOpsOverString(t *testing.T) {
	identity := &graph.Def{
		Tag:    graph.TagFunc,
		Params: []string{"x"},
		Body: graph.Layer{
			graph.Entry: {Tag: graph.TagCall, Callee: graph.Name("id"), Args: []graph.Ident{graph.Name("x")}},
		},
	}
	alwaysTrue := &graph.Def{
		Tag:    graph.TagFunc,
		Params: []string{"x"},
		Body: graph.Layer{
			graph.Entry: {Tag: graph.TagBool, Bool: true},
		},
	}
	layer := graph.Layer{
		graph.Name("s"):      {Tag: graph.TagString, Str: "ab"},
		graph.Name("t"):      {Tag: graph.TagString, Str: "cd"},
		graph.Name("ident"):  identity,
		graph.Name("always"): alwaysTrue,
		graph.Name("mapped"): {Tag: graph.TagCall, Callee: graph.Name("map"), Args: []graph.Ident{graph.Name("s"), graph.Name("ident")}},
		graph.Name("kept"):   {Tag: graph.TagCall, Callee: graph.Name("filter"), Args: []graph.Ident{graph.Name("s"), graph.Name("always")}},
		graph.Name("joined"): {Tag: graph.TagCall, Callee: graph.Name("++"), Args: []graph.Ident{graph.Name("s"), graph.Name("t")}},
	}
	layers := []graph.Layer{layer}

	for _, id := range []string{"mapped", "kept", "joined"} {
		r := Analyze(layers, graph.Name(id), nil)
		if !r.Valid {
			t.Fatalf("Analyze(%s) invalid: %v", id, r.Err)
		}
		if r.Type != typesys.StringT {
			t.Errorf("Analyze(%s) = %v, want string", id, r.Type.Signature())
		}
	}
}

func TestAnalyzeRecursiveDefinitionDoesNotProvablyHalt(t *testing.T) {
	layer := graph.Layer{
		graph.Name("loop"): {Tag: graph.TagList, Refs: []graph.Ident{graph.Name("loop")}},
	}
	r := Analyze([]graph.Layer{layer}, graph.Name("loop"), nil)
	if !r.Valid {
		t.Fatalf("Analyze(loop): %v", r.Err)
	}
	if typesys.DoesHalt(r.Type) == typesys.HaltTrue {
		t.Errorf("a self-referential definition should not provably halt, got %v", r.Type)
	}
}
