package analyzer

import (
	"github.com/cwbudde/go-aksoscript/internal/aerrors"
	"github.com/cwbudde/go-aksoscript/internal/stdlib"
	"github.com/cwbudde/go-aksoscript/internal/typesys"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

// Analyze analyzes one top-level identifier.
func Analyze(layers []graph.Layer, id graph.Ident, formValues FormValueTypes) *Report {
	ctx := NewContext(formValues)
	scope := rootScope(NewStack(layers))
	r := analyzeScoped(scope, ctx, nil, id)
	if r.Valid {
		r = &Report{Valid: true, Type: ctx.resolveType(r.Type), DefTypes: r.DefTypes, StdUsage: r.StdUsage}
	}
	return r
}

// AnalyzeAll analyzes every top-level identifier across layers, keyed by
// identifier.
func AnalyzeAll(layers []graph.Layer, formValues FormValueTypes) map[graph.Ident]*Report {
	ctx := NewContext(formValues)
	stack := NewStack(layers)
	out := make(map[graph.Ident]*Report)
	for _, l := range layers {
		for id := range l {
			scope := rootScope(stack)
			out[id] = analyzeScoped(scope, ctx, nil, id)
		}
	}
	for id, r := range out {
		if r.Valid {
			out[id] = &Report{Valid: true, Type: ctx.resolveType(r.Type), DefTypes: r.DefTypes, StdUsage: r.StdUsage}
		}
	}
	return out
}

// NewStack layers the stdlib type table under the program's own layers,
// the same way the evaluator layers the stdlib under the user
// definitions.
func NewStack(userLayers []graph.Layer) Stack {
	out := make(Stack, 0, 1+len(userLayers))
	out = append(out, stdlibTypeLayer())
	for _, l := range userLayers {
		out = append(out, layerFromDefs(l))
	}
	return out
}

func stdlibTypeLayer() Layer {
	types := stdlib.DefaultRegistry.Types()
	out := make(Layer, len(types))
	for name, fn := range types {
		out[graph.Name(name)] = Binding{Typ: fn}
	}
	return out
}

// analyzeScoped is the analyzer's core recursive step.
func analyzeScoped(scope Scope, ctx *Context, path []graph.Ident, id graph.Ident) *Report {
	if id.IsFormValue() {
		if ctx.FormValues != nil {
			if t, ok := ctx.FormValues(id.FormName()); ok {
				defTypes, stdUsage := newUsage()
				return valid(t, defTypes, stdUsage)
			}
		}
		return invalid(aerrors.New(aerrors.KindLeadingAtIdent, aerrors.WithIdent(path, id), aerrors.MsgLeadingAtIdent, id.String()))
	}

	binding, layerIdx, found := scope.lookup(id)
	if !found {
		return invalid(aerrors.New(aerrors.KindNotInScope, aerrors.WithIdent(path, id), aerrors.MsgNotInScope, id.String()))
	}

	if binding.Typ != nil {
		defTypes, stdUsage := newUsage()
		if layerIdx == 0 && id.Text() != "" {
			stdUsage[id.Text()] = struct{}{}
		}
		return valid(binding.Typ, defTypes, stdUsage)
	}

	def := binding.Def
	if cached, ok := ctx.cached(def); ok {
		return cached
	}
	if u, locked := ctx.lockFor(def); locked {
		defTypes, stdUsage := newUsage()
		return valid(u, defTypes, stdUsage)
	}

	lock := ctx.lock(def, id.String())
	childPath := aerrors.WithIdent(path, id)
	report := analyzeDef(scope, layerIdx, ctx, childPath, def)
	ctx.unlock(def)

	if report.Valid {
		report = &Report{
			Valid:    true,
			Type:     typesys.Reduce(report.Type),
			DefTypes: report.DefTypes,
			StdUsage: report.StdUsage,
		}
		ctx.recordResolution(lock, report.Type)
	}
	ctx.store(def, report)
	return report
}

func analyzeDef(scope Scope, layerIdx int, ctx *Context, path []graph.Ident, def *graph.Def) *Report {
	defTypes, stdUsage := newUsage()
	defTypes[def.Tag] = struct{}{}

	defScope := Scope{Stack: scope.Stack, Ceiling: layerIdx, HideUnderscoreBelow: scope.HideUnderscoreBelow}

	switch def.Tag {
	case graph.TagNull:
		return valid(typesys.NullT, defTypes, stdUsage)
	case graph.TagBool:
		return valid(typesys.BoolT, defTypes, stdUsage)
	case graph.TagNumber:
		return valid(typesys.NumberT, defTypes, stdUsage)
	case graph.TagString:
		return valid(typesys.StringT, defTypes, stdUsage)
	case graph.TagArray:
		elem := literalArrayType(def.Literal)
		return valid(typesys.Array(elem), defTypes, stdUsage)
	case graph.TagList:
		return analyzeList(defScope, ctx, path, def, defTypes, stdUsage)
	case graph.TagCall:
		return analyzeCall(defScope, ctx, path, def, defTypes, stdUsage)
	case graph.TagFunc:
		return analyzeFunc(scope, layerIdx, ctx, path, def, defTypes, stdUsage)
	case graph.TagSwitch:
		return analyzeSwitch(defScope, ctx, path, def, defTypes, stdUsage)
	default:
		return invalid(aerrors.New(aerrors.KindUnknownDefType, path, aerrors.MsgUnknownTag, string(def.Tag)))
	}
}

func literalArrayType(lits []graph.Literal) typesys.Type {
	if len(lits) == 0 {
		return typesys.NewVariable("m")
	}
	members := make([]typesys.Type, len(lits))
	for i, l := range lits {
		members[i] = literalType(l)
	}
	return typesys.NewUnion(members)
}

func literalType(l graph.Literal) typesys.Type {
	switch l.Kind {
	case graph.LiteralBool:
		return typesys.BoolT
	case graph.LiteralNumber:
		return typesys.NumberT
	case graph.LiteralString:
		return typesys.StringT
	case graph.LiteralArray:
		return typesys.Array(literalArrayType(l.Array))
	default:
		return typesys.NullT
	}
}

func analyzeList(scope Scope, ctx *Context, path []graph.Ident, def *graph.Def, defTypes map[graph.Tag]struct{}, stdUsage map[string]struct{}) *Report {
	members := make([]typesys.Type, 0, len(def.Refs))
	for _, ref := range def.Refs {
		r := analyzeScoped(scope, ctx, path, ref)
		if !r.Valid {
			return r
		}
		mergeUsage(defTypes, stdUsage, r)
		members = append(members, r.Type)
	}
	var elem typesys.Type
	if len(members) == 0 {
		elem = typesys.NewVariable("l")
	} else {
		elem = typesys.NewUnion(members)
	}
	return valid(typesys.Array(elem), defTypes, stdUsage)
}

func analyzeCall(scope Scope, ctx *Context, path []graph.Ident, def *graph.Def, defTypes map[graph.Tag]struct{}, stdUsage map[string]struct{}) *Report {
	callee := analyzeScoped(scope, ctx, path, def.Callee)
	if !callee.Valid {
		return callee
	}
	mergeUsage(defTypes, stdUsage, callee)

	argTypes := make([]typesys.Type, len(def.Args))
	for i, a := range def.Args {
		r := analyzeScoped(scope, ctx, path, a)
		if !r.Valid {
			return r
		}
		mergeUsage(defTypes, stdUsage, r)
		argTypes[i] = r.Type
	}

	result := typesys.Apply(callee.Type, argTypes)
	if !typesys.IsValid(result) {
		return invalid(aerrors.New(aerrors.KindTypeError, path, aerrors.MsgTypeError, result.Signature()))
	}
	return valid(result, defTypes, stdUsage)
}

func analyzeFunc(scope Scope, layerIdx int, ctx *Context, path []graph.Ident, def *graph.Def, defTypes map[graph.Tag]struct{}, stdUsage map[string]struct{}) *Report {
	paramVars := make([]*typesys.Variable, len(def.Params))
	params := make(Layer, len(def.Params))
	for i, p := range def.Params {
		v := typesys.NewVariable(p)
		paramVars[i] = v
		params[graph.Name(p)] = Binding{Typ: v}
	}

	childScope := scope.enterFunction(layerIdx, params, def.Body)
	bodyReport := analyzeScoped(childScope, ctx, path, graph.Entry)
	if !bodyReport.Valid {
		return bodyReport
	}
	mergeUsage(defTypes, stdUsage, bodyReport)

	patterns := make([]typesys.Type, len(paramVars))
	for i, v := range paramVars {
		patterns[i] = v
	}
	fn := &typesys.Function{
		Arity: len(paramVars),
		Mappings: []typesys.Mapping{{
			Bindings: paramVars,
			Patterns: patterns,
			Result:   bodyReport.Type,
		}},
	}
	return valid(fn, defTypes, stdUsage)
}

func analyzeSwitch(scope Scope, ctx *Context, path []graph.Ident, def *graph.Def, defTypes map[graph.Tag]struct{}, stdUsage map[string]struct{}) *Report {
	members := make([]typesys.Type, 0, len(def.Cases))
	for _, cs := range def.Cases {
		if cs.HasCond {
			condReport := analyzeScoped(scope, ctx, path, cs.Cond)
			if !condReport.Valid {
				return condReport
			}
			mergeUsage(defTypes, stdUsage, condReport)
		}
		valReport := analyzeScoped(scope, ctx, path, cs.Value)
		if !valReport.Valid {
			return valReport
		}
		mergeUsage(defTypes, stdUsage, valReport)
		members = append(members, valReport.Type)
	}
	var result typesys.Type
	if len(members) == 0 {
		result = typesys.NullT
	} else {
		result = typesys.NewUnion(members)
	}
	return valid(result, defTypes, stdUsage)
}
