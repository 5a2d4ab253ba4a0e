// Package query builds find predicates and aggregation pipelines from the
// schema field table. Every aggregation endpoint composes the same small
// set of stages instead of assembling raw pipeline documents inline.
package query

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/collegescope/api/internal/db"
)

// Bucket boundaries for the distribution endpoints. Values outside the
// ranges land in the BucketOverflow bucket.
var (
	EarningsBucketBoundaries = []interface{}{0, 30000, 40000, 50000, 60000, 70000, 80000, 100000, 150000, 200000, 500000}
	CostBucketBoundaries     = []interface{}{0, 10000, 20000, 30000, 40000, 50000, 60000, 100000}
)

// BucketOverflow is the bucket id for out-of-range or non-numeric values.
const BucketOverflow = "other"

// Pipeline accumulates aggregation stages in order.
type Pipeline struct {
	stages mongo.Pipeline
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Match appends a $match stage. Nil or empty filters are skipped so
// callers can pass optional criteria unconditionally.
func (p *Pipeline) Match(filter bson.M) *Pipeline {
	if len(filter) == 0 {
		return p
	}
	p.stages = append(p.stages, bson.D{{Key: "$match", Value: filter}})
	return p
}

// MatchYear constrains records to one dataset year.
func (p *Pipeline) MatchYear(year int) *Pipeline {
	return p.Match(bson.M{"year": year})
}

// LookupSchools joins the schools collection on school_id and unwinds the
// result, exposing the institution document as school_info.
func (p *Pipeline) LookupSchools() *Pipeline {
	p.stages = append(p.stages,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         db.CollectionSchools,
			"localField":   "school_id",
			"foreignField": "school_id",
			"as":           "school_info",
		}}},
		bson.D{{Key: "$unwind", Value: "$school_info"}},
	)
	return p
}

// MajorGate joins the academics collection and keeps only records whose
// share of degrees for the given major meets the threshold in that year.
func (p *Pipeline) MajorGate(major string, threshold float64, year int) *Pipeline {
	p.stages = append(p.stages,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         db.CollectionAcademics,
			"localField":   "school_id",
			"foreignField": "school_id",
			"as":           "academics",
		}}},
		bson.D{{Key: "$unwind", Value: "$academics"}},
		bson.D{{Key: "$match", Value: bson.M{
			"academics.year": year,
			"academics.academics.program_percentage." + major: bson.M{"$gte": threshold},
		}}},
	)
	return p
}

// Unwind appends an $unwind stage for the given field path.
func (p *Pipeline) Unwind(path string) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$unwind", Value: "$" + path}})
	return p
}

// Group appends a $group stage with the given partition id expression and
// accumulator fields.
func (p *Pipeline) Group(id interface{}, fields bson.M) *Pipeline {
	group := bson.M{"_id": id}
	for k, v := range fields {
		group[k] = v
	}
	p.stages = append(p.stages, bson.D{{Key: "$group", Value: group}})
	return p
}

// Bucket appends a $bucket stage partitioning groupBy into fixed boundary
// buckets, with BucketOverflow collecting everything out of range.
func (p *Pipeline) Bucket(groupBy interface{}, boundaries []interface{}, output bson.M) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$bucket", Value: bson.M{
		"groupBy":    groupBy,
		"boundaries": boundaries,
		"default":    BucketOverflow,
		"output":     output,
	}}})
	return p
}

// Project appends a $project stage.
func (p *Pipeline) Project(spec bson.M) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$project", Value: spec}})
	return p
}

// Sort appends a $sort stage. bson.D keeps multi-key sorts ordered.
func (p *Pipeline) Sort(spec bson.D) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$sort", Value: spec}})
	return p
}

// Limit appends a $limit stage.
func (p *Pipeline) Limit(n int64) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: "$limit", Value: n}})
	return p
}

// Facet appends a $facet stage running each named sub-pipeline over the
// same input set.
func (p *Pipeline) Facet(facets map[string]*Pipeline) *Pipeline {
	spec := bson.M{}
	for name, sub := range facets {
		spec[name] = sub.Build()
	}
	p.stages = append(p.stages, bson.D{{Key: "$facet", Value: spec}})
	return p
}

// Build returns the assembled stage list.
func (p *Pipeline) Build() mongo.Pipeline {
	return p.stages
}

// ApproxMedian builds a $percentile accumulator computing the approximate
// p50 of the given expression. Exact medians are not needed for analytics
// display.
func ApproxMedian(input interface{}) bson.M {
	return bson.M{"$percentile": bson.M{
		"input":  input,
		"p":      bson.A{0.5},
		"method": "approximate",
	}}
}

// GuardedROI builds a $cond expression computing
// (earnings*horizonYears - cost*programYears) / (cost*programYears),
// yielding null unless both inputs are present and strictly positive.
func GuardedROI(earningsExpr, costExpr interface{}, horizonYears, programYears int) bson.M {
	totalCost := bson.M{"$multiply": bson.A{costExpr, programYears}}
	totalEarnings := bson.M{"$multiply": bson.A{earningsExpr, horizonYears}}
	return bson.M{"$cond": bson.M{
		"if": bson.M{"$and": bson.A{
			bson.M{"$gt": bson.A{earningsExpr, 0}},
			bson.M{"$gt": bson.A{costExpr, 0}},
		}},
		"then": bson.M{"$divide": bson.A{
			bson.M{"$subtract": bson.A{totalEarnings, totalCost}},
			totalCost,
		}},
		"else": nil,
	}}
}

// GuardedPayback builds a $cond expression computing
// cost*programYears / earnings, the years of median earnings needed to
// recover the program cost, with the same null guards as GuardedROI.
func GuardedPayback(earningsExpr, costExpr interface{}, programYears int) bson.M {
	return bson.M{"$cond": bson.M{
		"if": bson.M{"$and": bson.A{
			bson.M{"$gt": bson.A{earningsExpr, 0}},
			bson.M{"$gt": bson.A{costExpr, 0}},
		}},
		"then": bson.M{"$divide": bson.A{
			bson.M{"$multiply": bson.A{costExpr, programYears}},
			earningsExpr,
		}},
		"else": nil,
	}}
}
