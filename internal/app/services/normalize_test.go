package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegescope/api/internal/app/query"
)

func TestSchoolSummary(t *testing.T) {
	doc := bson.M{
		"school_id": int32(100654),
		"school": bson.M{
			"name":      "Alabama A & M University",
			"city":      "Normal",
			"state":     "AL",
			"ownership": int32(1),
			"degrees_awarded": bson.M{
				"predominant": int32(3),
			},
		},
		"latest": bson.M{
			"student": bson.M{"size": int32(5090)},
			"cost": bson.M{
				// Only the sector-specific net price is present.
				"avg_net_price": bson.M{"public": 14990.0},
			},
			"earnings": bson.M{
				"10_yrs_after_entry": bson.M{"median": 35900.0},
			},
		},
	}

	s := schoolSummary(doc)
	if s.SchoolID != 100654 {
		t.Fatalf("school_id: got %d", s.SchoolID)
	}
	if s.Name != "Alabama A & M University" || s.State != "AL" {
		t.Fatalf("identity fields wrong: %+v", s)
	}
	if s.OwnershipLabel != "Public" {
		t.Fatalf("ownership label: got %q", s.OwnershipLabel)
	}
	if s.Size == nil || *s.Size != 5090 {
		t.Fatalf("size: got %v", s.Size)
	}
	if s.Cost == nil || *s.Cost != 14990.0 {
		t.Fatalf("cost must fall back to the public net price, got %v", s.Cost)
	}
	if s.AdmissionRate != nil {
		t.Fatalf("absent admission rate must stay nil, got %v", *s.AdmissionRate)
	}
}

func TestNormalizeBuckets(t *testing.T) {
	rows := []bucketRow{
		{ID: int32(30000), Count: 12},
		{ID: int32(200000), Count: 1},
		{ID: "other", Count: 7},
	}
	buckets := normalizeBuckets(query.EarningsBucketBoundaries, rows)
	if len(buckets) != 3 {
		t.Fatalf("want 3 buckets, got %d", len(buckets))
	}

	if buckets[0].Label != "30000-40000" {
		t.Fatalf("interior bucket label: got %q", buckets[0].Label)
	}
	if buckets[0].Min == nil || *buckets[0].Min != 30000 || buckets[0].Max == nil || *buckets[0].Max != 40000 {
		t.Fatalf("interior bucket bounds wrong: %+v", buckets[0])
	}

	if buckets[1].Label != "200000-500000" {
		t.Fatalf("last defined bucket label: got %q", buckets[1].Label)
	}

	if buckets[2].Label != "other" || buckets[2].Min != nil || buckets[2].Max != nil {
		t.Fatalf("overflow bucket must be open-ended: %+v", buckets[2])
	}
	if buckets[2].Count != 7 {
		t.Fatalf("overflow count: got %d", buckets[2].Count)
	}
}

func TestYearOutcomes(t *testing.T) {
	doc := bson.M{
		"year": int32(2021),
		"cost": bson.M{"tuition": bson.M{"in_state": 9900.0}},
		"aid": bson.M{"median_debt": bson.M{
			"completers": bson.M{"overall": 25000.0},
		}},
	}
	y := yearOutcomes(doc)
	if y.Year != 2021 {
		t.Fatalf("year: got %d", y.Year)
	}
	if y.Cost == nil || *y.Cost != 9900.0 {
		t.Fatalf("cost must fall back to in-state tuition, got %v", y.Cost)
	}
	if y.MedianDebt == nil || *y.MedianDebt != 25000.0 {
		t.Fatalf("median debt: got %v", y.MedianDebt)
	}
	if y.Earnings10yr != nil {
		t.Fatal("absent earnings must stay nil")
	}
}
