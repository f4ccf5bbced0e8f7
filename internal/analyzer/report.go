// Package analyzer implements the polymorphic static type analyzer: a
// definition traverser that produces a Report per top-level identifier,
// using a per-node cache, per-node locks for recursive definitions, and a
// resolve map for the post-pass unification of unresolved types.
package analyzer

import (
	"github.com/cwbudde/go-aksoscript/internal/aerrors"
	"github.com/cwbudde/go-aksoscript/internal/typesys"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

// Report is the outcome of analyzing one identifier: either a valid result
// carrying its type and the node tags / stdlib names it exercised, or an
// invalid result carrying the error that stopped analysis.
type Report struct {
	Valid    bool
	Type     typesys.Type
	DefTypes map[graph.Tag]struct{}
	StdUsage map[string]struct{}
	Err      *aerrors.PathError
}

func invalid(err *aerrors.PathError) *Report {
	return &Report{Valid: false, Err: err}
}

func valid(t typesys.Type, defTypes map[graph.Tag]struct{}, stdUsage map[string]struct{}) *Report {
	return &Report{Valid: true, Type: t, DefTypes: defTypes, StdUsage: stdUsage}
}

func newUsage() (map[graph.Tag]struct{}, map[string]struct{}) {
	return map[graph.Tag]struct{}{}, map[string]struct{}{}
}

func mergeUsage(dstTags map[graph.Tag]struct{}, dstNames map[string]struct{}, src *Report) {
	if src == nil {
		return
	}
	for t := range src.DefTypes {
		dstTags[t] = struct{}{}
	}
	for n := range src.StdUsage {
		dstNames[n] = struct{}{}
	}
}
