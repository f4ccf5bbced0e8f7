package analyzer

import (
	"testing"

	"github.com/cwbudde/go-aksoscript/internal/aerrors"
	"github.com/cwbudde/go-aksoscript/internal/typesys"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

func TestInvalidReport(t *testing.T) {
	err := aerrors.New(aerrors.KindNotInScope, nil, aerrors.MsgNotInScope, "x")
	r := invalid(err)
	if r.Valid {
		t.Error("invalid() should produce a non-valid report")
	}
	if r.Err != err {
		t.Error("invalid() should carry the given error")
	}
}

func TestValidReport(t *testing.T) {
	defTypes, stdUsage := newUsage()
	defTypes[graph.TagNumber] = struct{}{}
	r := valid(typesys.NumberT, defTypes, stdUsage)
	if !r.Valid || r.Type != typesys.NumberT {
		t.Errorf("valid() = %+v", r)
	}
}

func TestMergeUsageCombinesSets(t *testing.T) {
	dstTags, dstNames := newUsage()
	srcTags, srcNames := newUsage()
	srcTags[graph.TagNumber] = struct{}{}
	srcNames["abs"] = struct{}{}
	src := valid(typesys.NumberT, srcTags, srcNames)

	mergeUsage(dstTags, dstNames, src)
	if _, ok := dstTags[graph.TagNumber]; !ok {
		t.Error("mergeUsage should copy tag usage")
	}
	if _, ok := dstNames["abs"]; !ok {
		t.Error("mergeUsage should copy stdlib usage")
	}
}

func TestMergeUsageNilSourceIsNoop(t *testing.T) {
	dstTags, dstNames := newUsage()
	mergeUsage(dstTags, dstNames, nil)
	if len(dstTags) != 0 || len(dstNames) != 0 {
		t.Error("mergeUsage with a nil source should not modify the destination")
	}
}
