package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegescope/api/internal/app/models"
	"github.com/collegescope/api/internal/app/models/dto"
	"github.com/collegescope/api/internal/app/query"
	"github.com/collegescope/api/internal/app/repositories"
	"github.com/collegescope/api/internal/app/schema"
	"github.com/collegescope/api/internal/config"
	"github.com/collegescope/api/internal/pkg/apperrors"
	"github.com/collegescope/api/internal/pkg/helpers"
)

// MaxCompareIDs bounds the school comparison request.
const MaxCompareIDs = 10

// SchoolService handles institution listing, search, comparison, and the
// merged detail view.
type SchoolService struct {
	schoolRepo     repositories.SchoolStore
	outcomeRepo    repositories.OutcomeStore
	academicsRepo  repositories.AcademicsStore
	admissionsRepo repositories.AdmissionsStore
	defaultYear    int
	majorThreshold float64
}

// NewSchoolService creates a new school service instance.
func NewSchoolService(schoolRepo repositories.SchoolStore, outcomeRepo repositories.OutcomeStore, academicsRepo repositories.AcademicsStore, admissionsRepo repositories.AdmissionsStore, cfg *config.Config) *SchoolService {
	return &SchoolService{
		schoolRepo:     schoolRepo,
		outcomeRepo:    outcomeRepo,
		academicsRepo:  academicsRepo,
		admissionsRepo: admissionsRepo,
		defaultYear:    cfg.Dataset.DefaultYear,
		majorThreshold: cfg.Dataset.MajorThreshold,
	}
}

// Filter runs the criteria-based institution list query.
func (s *SchoolService) Filter(ctx context.Context, req *dto.SchoolFilterRequest) (*dto.SchoolListResponse, error) {
	if req.Ownership != nil && !models.ValidOwnership(*req.Ownership) {
		return nil, apperrors.NewValidationError("ownership must be 1 (public), 2 (private nonprofit), or 3 (for-profit)")
	}
	if req.DegreeLevel != nil && !models.ValidDegreeLevel(*req.DegreeLevel) {
		return nil, apperrors.NewValidationError("degree_level must be between 1 and 4")
	}

	page, limit := normalizePage(req.Page, req.Limit)

	filter := models.SchoolFilter{
		CostMin:           req.CostMin,
		CostMax:           req.CostMax,
		EarningsMin:       req.EarningsMin,
		AdmissionRateMax:  req.AdmissionRateMax,
		CompletionRateMin: req.CompletionRateMin,
		Ownership:         req.Ownership,
		DegreeLevel:       req.DegreeLevel,
		SizeMin:           req.SizeMin,
		SizeMax:           req.SizeMax,
		SortBy:            req.SortBy,
		SortOrder:         req.SortOrder,
	}
	if req.State != "" {
		state := req.State
		filter.State = &state
	}

	// Major filtering resolves in two phases: the academics collection
	// yields the qualifying school ids, which then constrain the main
	// query. An empty id set already answers the request.
	if req.Major != "" {
		if !models.ValidMajorField(req.Major) {
			return nil, &apperrors.CustomError{
				Err:     apperrors.ErrUnknownMajor,
				Message: fmt.Sprintf("unknown major field %q", req.Major),
			}
		}
		threshold := s.majorThreshold
		if req.MajorThreshold != nil && *req.MajorThreshold > 0 {
			threshold = *req.MajorThreshold
		}
		ids, err := s.academicsRepo.SchoolIDsWithMajor(ctx, req.Major, threshold, s.defaultYear)
		if err != nil {
			return nil, apperrors.NewQueryError(err)
		}
		if len(ids) == 0 {
			return &dto.SchoolListResponse{
				Results: []*dto.SchoolSummary{},
				Total:   0,
				Page:    page,
				Limit:   limit,
			}, nil
		}
		filter.SchoolIDs = ids
	}

	predicate, err := query.SchoolFilterQuery(filter)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	sortSpec, err := query.SchoolSortSpec(filter.SortBy, filter.SortOrder)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	total, err := s.schoolRepo.Count(ctx, predicate)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	docs, err := s.schoolRepo.Find(ctx, predicate, sortSpec, helpers.Skip(page, limit), int64(limit))
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}

	return &dto.SchoolListResponse{
		Results: schoolSummaries(docs),
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// Search runs a relevance-ranked text search over school names.
func (s *SchoolService) Search(ctx context.Context, q string, page, limit int) (*dto.SearchResponse, error) {
	if q == "" {
		return nil, apperrors.NewValidationError("search query is required")
	}
	page, limit = normalizePage(page, limit)

	docs, total, err := s.schoolRepo.Search(ctx, q, helpers.Skip(page, limit), int64(limit))
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return &dto.SearchResponse{
		Results: schoolSummaries(docs),
		Total:   total,
		Page:    page,
		Limit:   limit,
		Query:   q,
	}, nil
}

// Compare returns merged detail views for a bounded set of schools.
// Unknown ids are silently absent from the result.
func (s *SchoolService) Compare(ctx context.Context, ids []int, year *int) (*dto.CompareResponse, error) {
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("at least one school id is required")
	}
	if len(ids) > MaxCompareIDs {
		return nil, apperrors.NewTooManyIDsError(fmt.Sprintf("at most %d schools can be compared", MaxCompareIDs))
	}
	dataYear := s.resolveYear(year)

	docs, err := s.schoolRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}

	results := make([]*dto.SchoolDetail, 0, len(docs))
	for _, doc := range docs {
		detail, err := s.buildDetail(ctx, doc, dataYear, false)
		if err != nil {
			return nil, err
		}
		results = append(results, detail)
	}
	return &dto.CompareResponse{Results: results, Year: dataYear}, nil
}

// Detail returns the merged single-school view for one data year, with
// the multi-year outcome history when requested.
func (s *SchoolService) Detail(ctx context.Context, schoolID int, year *int, includeHistory bool) (*dto.SchoolDetail, error) {
	doc, err := s.schoolRepo.FindByID(ctx, schoolID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &apperrors.CustomError{
				Err:     apperrors.ErrSchoolNotFound,
				Message: fmt.Sprintf("school %d not found", schoolID),
			}
		}
		return nil, apperrors.NewQueryError(err)
	}
	return s.buildDetail(ctx, doc, s.resolveYear(year), includeHistory)
}

// States lists every state present in the dataset with school counts.
func (s *SchoolService) States(ctx context.Context) (*dto.StatesResponse, error) {
	statePath, err := schema.Schools().Primary(schema.FieldState)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	pipeline := query.NewPipeline().
		Group("$"+statePath, bson.M{"count": bson.M{"$sum": 1}}).
		Sort(bson.D{{Key: "_id", Value: 1}}).
		Build()

	var states []*dto.StateCount
	if err := s.schoolRepo.Aggregate(ctx, pipeline, &states); err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return &dto.StatesResponse{States: states, Total: len(states)}, nil
}

// buildDetail merges the satellite records for one (school, year) under a
// flat namespace. A missing satellite record leaves its fields null; it
// is never an error.
func (s *SchoolService) buildDetail(ctx context.Context, doc bson.M, year int, includeHistory bool) (*dto.SchoolDetail, error) {
	summary := schoolSummary(doc)
	detail := &dto.SchoolDetail{
		SchoolID:    summary.SchoolID,
		Name:        summary.Name,
		City:        summary.City,
		State:       summary.State,
		Ownership:   summary.Ownership,
		DegreeLevel: summary.DegreeLevel,
		Year:        year,
		Outcomes:    map[string]interface{}{},
	}
	if sub, ok := doc["school"].(bson.M); ok {
		if z, ok := sub["zip"].(string); ok {
			detail.Zip = z
		}
		if u, ok := sub["school_url"].(string); ok {
			detail.SchoolURL = u
		}
	}

	outDoc, err := s.outcomeRepo.FindBySchoolYear(ctx, detail.SchoolID, year)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	if outDoc != nil {
		table := schema.Outcomes()
		for _, logical := range table.Logical() {
			detail.Outcomes[logical] = table.Resolve(outDoc, logical)
		}
	}

	admDoc, err := s.admissionsRepo.FindBySchoolYear(ctx, detail.SchoolID, year)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	if admDoc != nil {
		if sub, ok := admDoc["admissions"].(bson.M); ok {
			detail.Admissions = sub
		}
	}

	acaDoc, err := s.academicsRepo.FindBySchoolYear(ctx, detail.SchoolID, year)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	if acaDoc != nil {
		if sub, ok := acaDoc["academics"].(bson.M); ok {
			detail.Academics = sub
		}
	}

	if includeHistory {
		history, err := s.outcomeRepo.History(ctx, detail.SchoolID)
		if err != nil {
			return nil, apperrors.NewQueryError(err)
		}
		detail.History = make([]*dto.YearOutcomes, 0, len(history))
		for _, h := range history {
			detail.History = append(detail.History, yearOutcomes(h))
		}
	}
	return detail, nil
}

func (s *SchoolService) resolveYear(year *int) int {
	if year != nil && *year > 0 {
		return *year
	}
	return s.defaultYear
}

// normalizePage applies the pagination defaults and the hard limit cap.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = helpers.DefaultPage
	}
	if limit <= 0 {
		limit = helpers.DefaultLimit
	}
	if limit > helpers.MaxLimit {
		limit = helpers.MaxLimit
	}
	return page, limit
}
