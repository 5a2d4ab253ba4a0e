package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegescope/api/internal/app/models"
	"github.com/collegescope/api/internal/app/models/dto"
	"github.com/collegescope/api/internal/app/schema"
)

// schoolSummary normalizes one schools-collection document into the
// stable API row. Every field goes through the path resolver, so the
// output shape survives physical-path drift in the dataset.
func schoolSummary(doc bson.M) *dto.SchoolSummary {
	table := schema.Schools()
	s := &dto.SchoolSummary{
		Name:           table.ResolveString(doc, schema.FieldName),
		City:           table.ResolveString(doc, schema.FieldCity),
		State:          table.ResolveString(doc, schema.FieldState),
		Ownership:      table.ResolveInt(doc, schema.FieldOwnership),
		DegreeLevel:    table.ResolveInt(doc, schema.FieldDegreeLevel),
		Size:           table.ResolveInt(doc, schema.FieldSize),
		Cost:           table.ResolveFloat(doc, schema.FieldCost),
		Earnings10yr:   table.ResolveFloat(doc, schema.FieldEarnings10yr),
		AdmissionRate:  table.ResolveFloat(doc, schema.FieldAdmissionRate),
		CompletionRate: table.ResolveFloat(doc, schema.FieldCompletionRate),
	}
	if id := schema.AsFloat(doc["school_id"]); id != nil {
		s.SchoolID = int(*id)
	}
	if s.Ownership != nil {
		s.OwnershipLabel = models.OwnershipLabel(*s.Ownership)
	}
	return s
}

// schoolSummaries normalizes a document page.
func schoolSummaries(docs []bson.M) []*dto.SchoolSummary {
	out := make([]*dto.SchoolSummary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, schoolSummary(doc))
	}
	return out
}

// yearOutcomes normalizes one outcome record into a history point.
func yearOutcomes(doc bson.M) *dto.YearOutcomes {
	table := schema.Outcomes()
	y := &dto.YearOutcomes{
		Cost:           table.ResolveFloat(doc, schema.FieldCost),
		Earnings10yr:   table.ResolveFloat(doc, schema.FieldEarnings10yr),
		CompletionRate: table.ResolveFloat(doc, schema.FieldCompletionRate),
		MedianDebt:     table.ResolveFloat(doc, schema.FieldMedianDebt),
	}
	if v := schema.AsFloat(doc["year"]); v != nil {
		y.Year = int(*v)
	}
	return y
}

// bucketRow is the raw $bucket output document.
type bucketRow struct {
	ID    interface{} `bson:"_id"`
	Count int64       `bson:"count"`
}

// normalizeBuckets labels raw bucket rows against their boundary list.
// Numeric ids are lower bounds; the overflow id becomes an open-ended
// "other" bucket.
func normalizeBuckets(boundaries []interface{}, rows []bucketRow) []*dto.DistributionBucket {
	lower := make([]float64, 0, len(boundaries))
	for _, b := range boundaries {
		if f := schema.AsFloat(b); f != nil {
			lower = append(lower, *f)
		}
	}

	out := make([]*dto.DistributionBucket, 0, len(rows))
	for _, row := range rows {
		b := &dto.DistributionBucket{Count: row.Count}
		id := schema.AsFloat(row.ID)
		if id == nil {
			b.Label = "other"
			out = append(out, b)
			continue
		}
		lo := *id
		b.Min = &lo
		b.Label = fmt.Sprintf("%.0f+", lo)
		for i := 0; i < len(lower)-1; i++ {
			if lower[i] == lo {
				hi := lower[i+1]
				b.Max = &hi
				b.Label = fmt.Sprintf("%.0f-%.0f", lo, hi)
				break
			}
		}
		out = append(out, b)
	}
	return out
}
