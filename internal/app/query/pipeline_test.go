package query

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func stageKey(t *testing.T, stage bson.D) string {
	t.Helper()
	if len(stage) != 1 {
		t.Fatalf("stage must have exactly one operator, got %v", stage)
	}
	return stage[0].Key
}

func TestPipeline_StageOrder(t *testing.T) {
	p := NewPipeline().
		MatchYear(2023).
		LookupSchools().
		Match(bson.M{"school_info.school.state": "TX"}).
		Sort(bson.D{{Key: "year", Value: 1}}).
		Limit(10).
		Build()

	wantOps := []string{"$match", "$lookup", "$unwind", "$match", "$sort", "$limit"}
	if len(p) != len(wantOps) {
		t.Fatalf("want %d stages, got %d", len(wantOps), len(p))
	}
	for i, op := range wantOps {
		if got := stageKey(t, p[i]); got != op {
			t.Fatalf("stage %d: got %s, want %s", i, got, op)
		}
	}
}

func TestPipeline_EmptyMatchSkipped(t *testing.T) {
	p := NewPipeline().Match(bson.M{}).Build()
	if len(p) != 0 {
		t.Fatalf("empty match must add no stage, got %v", p)
	}
}

func TestPipeline_BucketDefault(t *testing.T) {
	p := NewPipeline().
		Bucket("$earnings", EarningsBucketBoundaries, bson.M{"count": bson.M{"$sum": 1}}).
		Build()
	if len(p) != 1 {
		t.Fatalf("want 1 stage, got %d", len(p))
	}
	spec, ok := p[0][0].Value.(bson.M)
	if !ok {
		t.Fatalf("bucket value must be bson.M, got %T", p[0][0].Value)
	}
	if spec["default"] != BucketOverflow {
		t.Fatalf("bucket default must be %q, got %v", BucketOverflow, spec["default"])
	}
	if !reflect.DeepEqual(spec["boundaries"], EarningsBucketBoundaries) {
		t.Fatal("bucket boundaries must pass through unchanged")
	}
}

func TestPipeline_MajorGate(t *testing.T) {
	p := NewPipeline().MajorGate("computer", 0.05, 2023).Build()
	if len(p) != 3 {
		t.Fatalf("major gate is lookup+unwind+match, got %d stages", len(p))
	}
	match, ok := p[2][0].Value.(bson.M)
	if !ok {
		t.Fatalf("match value must be bson.M, got %T", p[2][0].Value)
	}
	cond, ok := match["academics.academics.program_percentage.computer"].(bson.M)
	if !ok {
		t.Fatalf("major gate must constrain the major share, got %v", match)
	}
	if cond["$gte"] != 0.05 {
		t.Fatalf("threshold must be 0.05, got %v", cond["$gte"])
	}
}

func TestPipeline_Facet(t *testing.T) {
	p := NewPipeline().Facet(map[string]*Pipeline{
		"summary": NewPipeline().Group(nil, bson.M{"n": bson.M{"$sum": 1}}),
		"rows":    NewPipeline().Limit(5),
	}).Build()
	if len(p) != 1 || stageKey(t, p[0]) != "$facet" {
		t.Fatalf("want one $facet stage, got %v", p)
	}
	spec := p[0][0].Value.(bson.M)
	if len(spec) != 2 {
		t.Fatalf("want 2 facets, got %d", len(spec))
	}
}

func TestGuardedROI(t *testing.T) {
	expr := GuardedROI("$earnings", "$cost", 10, 4)
	cond, ok := expr["$cond"].(bson.M)
	if !ok {
		t.Fatalf("want a $cond expression, got %v", expr)
	}
	if cond["else"] != nil {
		t.Fatalf("missing inputs must yield null, got %v", cond["else"])
	}
	guards, ok := cond["if"].(bson.M)["$and"].(bson.A)
	if !ok || len(guards) != 2 {
		t.Fatalf("both inputs must be guarded, got %v", cond["if"])
	}
}

func TestApproxMedian(t *testing.T) {
	m := ApproxMedian("$cost")
	spec, ok := m["$percentile"].(bson.M)
	if !ok {
		t.Fatalf("want a $percentile accumulator, got %v", m)
	}
	if spec["method"] != "approximate" {
		t.Fatalf("median must be approximate, got %v", spec["method"])
	}
	if !reflect.DeepEqual(spec["p"], bson.A{0.5}) {
		t.Fatalf("want p50, got %v", spec["p"])
	}
}
