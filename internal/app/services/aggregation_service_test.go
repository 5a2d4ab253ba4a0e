package services

import (
	"context"
	"errors"
	"testing"

	"github.com/collegescope/api/internal/pkg/apperrors"
)

func newTestAggregationService() *AggregationService {
	return NewAggregationService(&fakeSchoolStore{}, &fakeOutcomeStore{}, &fakeAcademicsStore{}, testConfig())
}

func TestStateAggregation_ZeroMatchesYieldsZeroRow(t *testing.T) {
	svc := newTestAggregationService()

	resp, err := svc.StateAggregation(context.Background(), "PR", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 || len(resp.Results) != 1 {
		t.Fatalf("a scoped query must answer with one row, got %+v", resp)
	}
	row := resp.Results[0]
	if row.State != "PR" || row.SchoolCount != 0 {
		t.Fatalf("zero row wrong: %+v", row)
	}
	if row.AvgCost != nil || row.AvgEarnings != nil || row.AvgCompletionRate != nil {
		t.Fatalf("averages must stay null on a zero row: %+v", row)
	}
}

func TestStateAggregation_UnscopedZeroMatchesStaysEmpty(t *testing.T) {
	svc := newTestAggregationService()

	resp, err := svc.StateAggregation(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 0 || len(resp.Results) != 0 {
		t.Fatalf("the unscoped query has no row to synthesize, got %+v", resp)
	}
}

func TestROI_Validation(t *testing.T) {
	svc := newTestAggregationService()

	ownership := 9
	if _, err := svc.ROI(context.Background(), "", &ownership, "", nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("invalid ownership must be rejected, got %v", err)
	}
	if _, err := svc.ROI(context.Background(), "", nil, "nope", nil); !errors.Is(err, apperrors.ErrUnknownMajor) {
		t.Fatalf("unknown major must be rejected, got %v", err)
	}
	if _, err := svc.ROI(context.Background(), "CA", nil, "computer", nil); err != nil {
		t.Fatalf("valid filters must pass, got %v", err)
	}
}

func TestCompletionRates_GroupByValidation(t *testing.T) {
	svc := newTestAggregationService()

	if _, err := svc.CompletionRates(context.Background(), "zipcode", nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("unknown group_by must be rejected, got %v", err)
	}

	for _, groupBy := range []string{"", "state", "ownership", "degree_level"} {
		resp, err := svc.CompletionRates(context.Background(), groupBy, nil)
		if err != nil {
			t.Fatalf("group_by %q must be accepted, got %v", groupBy, err)
		}
		want := groupBy
		if want == "" {
			want = "state"
		}
		if resp.GroupBy != want {
			t.Fatalf("group_by %q echoed as %q", groupBy, resp.GroupBy)
		}
	}
}

func TestResolveYear_Override(t *testing.T) {
	svc := newTestAggregationService()

	override := 2019
	resp, err := svc.StateAggregation(context.Background(), "PR", &override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Year != 2019 {
		t.Fatalf("year override ignored, got %d", resp.Year)
	}

	resp, err = svc.StateAggregation(context.Background(), "PR", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Year != 2023 {
		t.Fatalf("default year not applied, got %d", resp.Year)
	}
}

func TestCostVsEarnings_LimitBounds(t *testing.T) {
	svc := newTestAggregationService()

	resp, err := svc.CostVsEarnings(context.Background(), "", nil, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Limit != ScatterDefaultSize {
		t.Fatalf("limit = %d, want default %d", resp.Limit, ScatterDefaultSize)
	}

	resp, err = svc.CostVsEarnings(context.Background(), "", nil, 9000, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Limit != ScatterMaxSize {
		t.Fatalf("limit = %d, want cap %d", resp.Limit, ScatterMaxSize)
	}
}
