package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/collegescope/api/internal/app/models"
	"github.com/collegescope/api/internal/app/models/dto"
	"github.com/collegescope/api/internal/pkg/apperrors"
)

type fakeProgramStore struct {
	record  *models.FieldOfStudyRecord
	records []*models.FieldOfStudyRecord
}

func (f *fakeProgramStore) FindBySchoolYear(ctx context.Context, schoolID, year int) (*models.FieldOfStudyRecord, error) {
	return f.record, nil
}

func (f *fakeProgramStore) FindBySchoolsYear(ctx context.Context, schoolIDs []int, year int) ([]*models.FieldOfStudyRecord, error) {
	return f.records, nil
}

func (f *fakeProgramStore) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	return nil
}

func newTestProgramService(school *fakeSchoolStore, program *fakeProgramStore, academics *fakeAcademicsStore) *ProgramService {
	if school == nil {
		school = &fakeSchoolStore{}
	}
	if program == nil {
		program = &fakeProgramStore{}
	}
	if academics == nil {
		academics = &fakeAcademicsStore{}
	}
	return NewProgramService(school, program, academics, testConfig())
}

func TestProgramCompare_IDLimit(t *testing.T) {
	svc := newTestProgramService(nil, nil, nil)

	ids := make([]int, MaxProgramCompareIDs+1)
	for i := range ids {
		ids[i] = 100000 + i
	}

	_, err := svc.Compare(context.Background(), &dto.ProgramCompareRequest{CipCode: "1107", IDs: ids})
	if !errors.Is(err, apperrors.ErrTooManyIDs) {
		t.Fatalf("21 ids must be rejected, got %v", err)
	}

	if _, err := svc.Compare(context.Background(), &dto.ProgramCompareRequest{CipCode: "1107", IDs: ids[:MaxProgramCompareIDs]}); err != nil {
		t.Fatalf("20 ids must be accepted, got %v", err)
	}
}

func TestProgramCompare_MissingCipCode(t *testing.T) {
	svc := newTestProgramService(nil, nil, nil)

	_, err := svc.Compare(context.Background(), &dto.ProgramCompareRequest{IDs: []int{100654}})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("missing cip_code must be rejected, got %v", err)
	}
}

func TestProgramCompare_DropsNonMatchingPrograms(t *testing.T) {
	title := "Computer Science"
	median := 68000.0
	school := &fakeSchoolStore{byIDs: []bson.M{
		{"school_id": int32(100654), "school": bson.M{"name": "Alabama A&M", "state": "AL"}},
	}}
	program := &fakeProgramStore{records: []*models.FieldOfStudyRecord{
		{
			SchoolID: 100654,
			Year:     2023,
			Programs: []models.ProgramEntry{
				{CipCode: "1107", Title: &title, Earnings: &models.ProgramEarnings{
					OneYearAfter: &models.EarningsPoint{Median: &median},
				}},
				{CipCode: "5201"},
			},
		},
	}}
	svc := newTestProgramService(school, program, nil)

	resp, err := svc.Compare(context.Background(), &dto.ProgramCompareRequest{CipCode: "1107", IDs: []int{100654}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("only the matching program must survive, got %d rows", len(resp.Results))
	}
	row := resp.Results[0]
	if row.SchoolName != "Alabama A&M" || row.Title != "Computer Science" {
		t.Fatalf("row not joined with the school doc: %+v", row)
	}
	if row.Earnings1yr == nil || *row.Earnings1yr != 68000 {
		t.Fatalf("earnings not carried over: %v", row.Earnings1yr)
	}
	if resp.Year != 2023 {
		t.Fatalf("year = %d, want default 2023", resp.Year)
	}
}

func TestTrends_Validation(t *testing.T) {
	svc := newTestProgramService(nil, nil, nil)

	if _, err := svc.Trends(context.Background(), "", 0, 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("missing cip_code must be rejected, got %v", err)
	}
	if _, err := svc.Trends(context.Background(), "1107", 2023, 2015); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("inverted year window must be rejected, got %v", err)
	}

	resp, err := svc.Trends(context.Background(), "1107", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StartYear != 2015 || resp.EndYear != 2023 {
		t.Fatalf("default window wrong: %d-%d", resp.StartYear, resp.EndYear)
	}
}

func TestSchoolPrograms_NoDataIsNotFound(t *testing.T) {
	school := &fakeSchoolStore{byID: bson.M{
		"school_id": int32(100654),
		"school":    bson.M{"name": "Test U", "state": "AL"},
	}}
	svc := newTestProgramService(school, nil, nil)

	_, err := svc.SchoolPrograms(context.Background(), 100654, nil)
	if !errors.Is(err, apperrors.ErrProgramNotFound) {
		t.Fatalf("a school with no program data must 404, got %v", err)
	}
}

func TestMajorsAndCipCodes_Static(t *testing.T) {
	svc := newTestProgramService(nil, nil, nil)

	majors := svc.Majors()
	if majors.Total == 0 || majors.Total != len(majors.Majors) {
		t.Fatalf("majors list inconsistent: %+v", majors)
	}
	codes := svc.CipCodes()
	if codes.Total == 0 || codes.Total != len(codes.CipCodes) {
		t.Fatalf("cip codes list inconsistent: %+v", codes)
	}
}
