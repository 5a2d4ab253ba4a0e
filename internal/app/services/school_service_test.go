package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/collegescope/api/internal/app/models"
	"github.com/collegescope/api/internal/app/models/dto"
	"github.com/collegescope/api/internal/app/repositories"
	"github.com/collegescope/api/internal/config"
	"github.com/collegescope/api/internal/pkg/apperrors"
)

type fakeSchoolStore struct {
	byID        bson.M
	byIDErr     error
	byIDs       []bson.M
	findDocs    []bson.M
	total       int64
	searchDocs  []bson.M
	searchTotal int64

	findCalled  bool
	countCalled bool
	lastFilter  bson.M
	lastSkip    int64
	lastLimit   int64
}

func (f *fakeSchoolStore) FindByID(ctx context.Context, schoolID int) (bson.M, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeSchoolStore) FindByIDs(ctx context.Context, ids []int) ([]bson.M, error) {
	return f.byIDs, nil
}

func (f *fakeSchoolStore) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]bson.M, error) {
	f.findCalled = true
	f.lastFilter = filter
	f.lastSkip = skip
	f.lastLimit = limit
	return f.findDocs, nil
}

func (f *fakeSchoolStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	f.countCalled = true
	return f.total, nil
}

func (f *fakeSchoolStore) Search(ctx context.Context, query string, skip, limit int64) ([]bson.M, int64, error) {
	return f.searchDocs, f.searchTotal, nil
}

func (f *fakeSchoolStore) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	return nil
}

type fakeOutcomeStore struct {
	record  bson.M
	history []bson.M
}

func (f *fakeOutcomeStore) FindBySchoolYear(ctx context.Context, schoolID, year int) (bson.M, error) {
	return f.record, nil
}

func (f *fakeOutcomeStore) History(ctx context.Context, schoolID int) ([]bson.M, error) {
	return f.history, nil
}

func (f *fakeOutcomeStore) Years(ctx context.Context) ([]int, error) {
	return []int{2021, 2022, 2023}, nil
}

func (f *fakeOutcomeStore) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	return nil
}

type fakeAcademicsStore struct {
	ids    []int
	record bson.M
}

func (f *fakeAcademicsStore) SchoolIDsWithMajor(ctx context.Context, major string, threshold float64, year int) ([]int, error) {
	return f.ids, nil
}

func (f *fakeAcademicsStore) FindBySchoolYear(ctx context.Context, schoolID, year int) (bson.M, error) {
	return f.record, nil
}

type fakeAdmissionsStore struct {
	record bson.M
}

func (f *fakeAdmissionsStore) FindBySchoolYear(ctx context.Context, schoolID, year int) (bson.M, error) {
	return f.record, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Dataset.DefaultYear = 2023
	cfg.Dataset.MajorThreshold = 0.05
	cfg.Dataset.TrendStartYear = 2015
	return cfg
}

func newTestSchoolService(school *fakeSchoolStore, academics *fakeAcademicsStore) *SchoolService {
	if academics == nil {
		academics = &fakeAcademicsStore{}
	}
	return NewSchoolService(school, &fakeOutcomeStore{}, academics, &fakeAdmissionsStore{}, testConfig())
}

func TestFilter_EmptyMajorSetShortCircuits(t *testing.T) {
	school := &fakeSchoolStore{}
	svc := newTestSchoolService(school, &fakeAcademicsStore{ids: []int{}})

	resp, err := svc.Filter(context.Background(), &dto.SchoolFilterRequest{Major: "computer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 0 || len(resp.Results) != 0 {
		t.Fatalf("empty major set must yield an empty page with total 0, got %+v", resp)
	}
	if school.findCalled || school.countCalled {
		t.Fatal("the main query must not run when the major set is empty")
	}
}

func TestFilter_MajorSetConstrainsQuery(t *testing.T) {
	school := &fakeSchoolStore{total: 2}
	svc := newTestSchoolService(school, &fakeAcademicsStore{ids: []int{100654, 100663}})

	_, err := svc.Filter(context.Background(), &dto.SchoolFilterRequest{Major: "computer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in, ok := school.lastFilter["school_id"].(bson.M)
	if !ok {
		t.Fatalf("major ids must become a school_id allow-list, got %v", school.lastFilter)
	}
	if ids, ok := in["$in"].([]int); !ok || len(ids) != 2 {
		t.Fatalf("allow-list contents wrong: %v", in)
	}
}

func TestFilter_UnknownMajorRejected(t *testing.T) {
	svc := newTestSchoolService(&fakeSchoolStore{}, nil)

	_, err := svc.Filter(context.Background(), &dto.SchoolFilterRequest{Major: "underwater_basketweaving"})
	if !errors.Is(err, apperrors.ErrUnknownMajor) {
		t.Fatalf("want ErrUnknownMajor, got %v", err)
	}
}

func TestFilter_InvalidOwnershipRejected(t *testing.T) {
	svc := newTestSchoolService(&fakeSchoolStore{}, nil)

	ownership := 7
	_, err := svc.Filter(context.Background(), &dto.SchoolFilterRequest{Ownership: &ownership})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestFilter_PaginationMath(t *testing.T) {
	school := &fakeSchoolStore{total: 45}
	svc := newTestSchoolService(school, nil)

	resp, err := svc.Filter(context.Background(), &dto.SchoolFilterRequest{Page: 3, Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if school.lastSkip != 40 || school.lastLimit != 20 {
		t.Fatalf("page 3/limit 20 must skip 40, got skip=%d limit=%d", school.lastSkip, school.lastLimit)
	}
	if resp.Total != 45 || resp.Page != 3 {
		t.Fatalf("envelope wrong: %+v", resp)
	}
}

func TestFilter_LimitCapped(t *testing.T) {
	school := &fakeSchoolStore{}
	svc := newTestSchoolService(school, nil)

	resp, err := svc.Filter(context.Background(), &dto.SchoolFilterRequest{Limit: 9999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if school.lastLimit != 100 || resp.Limit != 100 {
		t.Fatalf("limit must cap at 100, got %d", school.lastLimit)
	}
}

func TestSearch_EmptyQueryRejected(t *testing.T) {
	svc := newTestSchoolService(&fakeSchoolStore{}, nil)

	_, err := svc.Search(context.Background(), "", 1, 20)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestCompare_IDLimit(t *testing.T) {
	svc := newTestSchoolService(&fakeSchoolStore{}, nil)

	ids := make([]int, MaxCompareIDs+1)
	for i := range ids {
		ids[i] = 100000 + i
	}
	if _, err := svc.Compare(context.Background(), ids, nil); !errors.Is(err, apperrors.ErrTooManyIDs) {
		t.Fatalf("11 ids must be rejected, got %v", err)
	}

	if _, err := svc.Compare(context.Background(), ids[:MaxCompareIDs], nil); err != nil {
		t.Fatalf("10 ids must be accepted, got %v", err)
	}

	if _, err := svc.Compare(context.Background(), nil, nil); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("zero ids must be rejected, got %v", err)
	}
}

func TestDetail_UnknownSchool(t *testing.T) {
	svc := newTestSchoolService(&fakeSchoolStore{byIDErr: repositories.ErrNotFound}, nil)

	_, err := svc.Detail(context.Background(), 999999, nil, false)
	if !errors.Is(err, apperrors.ErrSchoolNotFound) {
		t.Fatalf("want ErrSchoolNotFound, got %v", err)
	}
}

func TestDetail_MissingSatelliteIsNotAnError(t *testing.T) {
	school := &fakeSchoolStore{byID: bson.M{
		"school_id": int32(100654),
		"school":    bson.M{"name": "Test U", "state": "AL"},
	}}
	svc := newTestSchoolService(school, nil)

	detail, err := svc.Detail(context.Background(), 100654, nil, false)
	if err != nil {
		t.Fatalf("missing satellite records must not error: %v", err)
	}
	if detail.Year != 2023 {
		t.Fatalf("default year must apply, got %d", detail.Year)
	}
	if len(detail.Outcomes) != 0 {
		t.Fatalf("outcomes must stay empty without a record, got %v", detail.Outcomes)
	}
}

func TestDetail_OwnershipLabels(t *testing.T) {
	for code, want := range map[int]string{
		models.OwnershipPublic:           "Public",
		models.OwnershipPrivateNonprofit: "Private Nonprofit",
		models.OwnershipPrivateForProfit: "Private For-Profit",
	} {
		if got := models.OwnershipLabel(code); got != want {
			t.Fatalf("ownership %d: got %q, want %q", code, got, want)
		}
	}
}
