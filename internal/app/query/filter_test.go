package query

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegescope/api/internal/app/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func TestSchoolFilterQuery_EmptyFilter(t *testing.T) {
	q, err := SchoolFilterQuery(models.SchoolFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q) != 0 {
		t.Fatalf("empty criteria must add no predicate, got %v", q)
	}
}

func TestSchoolFilterQuery_SingleCriterion(t *testing.T) {
	q, err := SchoolFilterQuery(models.SchoolFilter{State: sptr("CA")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := bson.M{"school.state": "CA"}
	if !reflect.DeepEqual(q, want) {
		t.Fatalf("got %v, want %v", q, want)
	}
}

func TestSchoolFilterQuery_CombinesWithAnd(t *testing.T) {
	q, err := SchoolFilterQuery(models.SchoolFilter{
		State:     sptr("CA"),
		Ownership: iptr(models.OwnershipPublic),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conds, ok := q["$and"].([]bson.M)
	if !ok {
		t.Fatalf("two criteria must combine under $and, got %v", q)
	}
	if len(conds) != 2 {
		t.Fatalf("want 2 conditions, got %d", len(conds))
	}
}

func TestSchoolFilterQuery_MultiCandidateRange(t *testing.T) {
	q, err := SchoolFilterQuery(models.SchoolFilter{CostMax: fptr(20000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	or, ok := q["$or"].([]bson.M)
	if !ok {
		t.Fatalf("cost criterion must emit an $or of candidate paths, got %v", q)
	}
	if len(or) != 4 {
		t.Fatalf("want 4 candidate conditions, got %d", len(or))
	}
}

func TestSchoolFilterQuery_SchoolIDAllowList(t *testing.T) {
	q, err := SchoolFilterQuery(models.SchoolFilter{SchoolIDs: []int{100654, 100663}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := bson.M{"school_id": bson.M{"$in": []int{100654, 100663}}}
	if !reflect.DeepEqual(q, want) {
		t.Fatalf("got %v, want %v", q, want)
	}
}

func TestSchoolFilterQuery_UnsetCriteriaStayUnconstrained(t *testing.T) {
	base, err := SchoolFilterQuery(models.SchoolFilter{State: sptr("NY")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	widened, err := SchoolFilterQuery(models.SchoolFilter{
		State:   sptr("NY"),
		SizeMin: iptr(0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A zero-valued pointer still constrains; only nil means unset.
	if reflect.DeepEqual(base, widened) {
		t.Fatal("a present size_min must add a predicate")
	}
}

func TestSchoolSortSpec(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantKey   string
		wantOrder int
		wantErr   bool
	}{
		{name: "default is size descending", wantKey: "latest.student.size", wantOrder: -1},
		{name: "explicit ascending", sortBy: "cost", sortOrder: "asc", wantKey: "latest.cost.avg_net_price.overall", wantOrder: 1},
		{name: "earnings alias", sortBy: "earnings", wantKey: "latest.earnings.10_yrs_after_entry.median", wantOrder: -1},
		{name: "name", sortBy: "name", sortOrder: "asc", wantKey: "school.name", wantOrder: 1},
		{name: "unknown field", sortBy: "squirrels", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := SchoolSortSpec(tt.sortBy, tt.sortOrder)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(spec) != 1 || spec[0].Key != tt.wantKey || spec[0].Value != tt.wantOrder {
				t.Fatalf("got %v, want {%s: %d}", spec, tt.wantKey, tt.wantOrder)
			}
		})
	}
}
