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
	"github.com/collegescope/api/internal/config"
	"github.com/collegescope/api/internal/pkg/apperrors"
)

// MaxProgramCompareIDs bounds the program comparison request.
const MaxProgramCompareIDs = 20

// ProgramService handles field-of-study trends, comparison, and the
// reference taxonomies.
type ProgramService struct {
	schoolRepo     repositories.SchoolStore
	programRepo    repositories.ProgramStore
	academicsRepo  repositories.AcademicsStore
	defaultYear    int
	trendStartYear int
}

// NewProgramService creates a new program service instance.
func NewProgramService(schoolRepo repositories.SchoolStore, programRepo repositories.ProgramStore, academicsRepo repositories.AcademicsStore, cfg *config.Config) *ProgramService {
	return &ProgramService{
		schoolRepo:     schoolRepo,
		programRepo:    programRepo,
		academicsRepo:  academicsRepo,
		defaultYear:    cfg.Dataset.DefaultYear,
		trendStartYear: cfg.Dataset.TrendStartYear,
	}
}

// Trends returns per-year average earnings and debt for one CIP code
// across every school offering it.
func (s *ProgramService) Trends(ctx context.Context, cipCode string, startYear, endYear int) (*dto.ProgramTrendsResponse, error) {
	if cipCode == "" {
		return nil, apperrors.NewValidationError("cip_code is required")
	}
	if startYear <= 0 {
		startYear = s.trendStartYear
	}
	if endYear <= 0 {
		endYear = s.defaultYear
	}
	if startYear > endYear {
		return nil, apperrors.NewValidationError("start_year must not exceed end_year")
	}

	pipeline := query.NewPipeline().
		Match(bson.M{
			"year":              bson.M{"$gte": startYear, "$lte": endYear},
			"programs.cip_code": cipCode,
		}).
		Unwind("programs").
		Match(bson.M{"programs.cip_code": cipCode}).
		Group("$year", bson.M{
			"school_count":     bson.M{"$sum": 1},
			"avg_earnings_1yr": bson.M{"$avg": "$programs.earnings.1_yr_after.median"},
			"avg_earnings_5yr": bson.M{"$avg": "$programs.earnings.5_yrs_after.median"},
			"avg_debt":         bson.M{"$avg": "$programs.debt.median"},
		}).
		Sort(bson.D{{Key: "_id", Value: 1}}).
		Build()

	var trend []*dto.ProgramTrendPoint
	if err := s.programRepo.Aggregate(ctx, pipeline, &trend); err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return &dto.ProgramTrendsResponse{
		CipCode:   cipCode,
		StartYear: startYear,
		EndYear:   endYear,
		Trend:     trend,
	}, nil
}

// Compare returns one program's outcomes at each of the requested
// schools. Schools that do not offer the program are absent.
func (s *ProgramService) Compare(ctx context.Context, req *dto.ProgramCompareRequest) (*dto.ProgramCompareResponse, error) {
	if req.CipCode == "" {
		return nil, apperrors.NewValidationError("cip_code is required")
	}
	if len(req.IDs) == 0 {
		return nil, apperrors.NewValidationError("at least one school id is required")
	}
	if len(req.IDs) > MaxProgramCompareIDs {
		return nil, apperrors.NewTooManyIDsError(fmt.Sprintf("at most %d schools can be compared", MaxProgramCompareIDs))
	}
	year := s.defaultYear
	if req.Year != nil && *req.Year > 0 {
		year = *req.Year
	}

	records, err := s.programRepo.FindBySchoolsYear(ctx, req.IDs, year)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	schoolDocs, err := s.schoolRepo.FindByIDs(ctx, req.IDs)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	summaries := map[int]*dto.SchoolSummary{}
	for _, doc := range schoolDocs {
		sum := schoolSummary(doc)
		summaries[sum.SchoolID] = sum
	}

	results := make([]*dto.ProgramCompareRow, 0, len(records))
	for _, record := range records {
		for i := range record.Programs {
			entry := &record.Programs[i]
			if entry.CipCode != req.CipCode {
				continue
			}
			row := &dto.ProgramCompareRow{
				SchoolID:        record.SchoolID,
				CredentialLevel: entry.CredentialLevel,
			}
			if entry.Title != nil {
				row.Title = *entry.Title
			}
			if sum, ok := summaries[record.SchoolID]; ok {
				row.SchoolName = sum.Name
				row.State = sum.State
			}
			if e := entry.Earnings; e != nil {
				if e.OneYearAfter != nil {
					row.Earnings1yr = e.OneYearAfter.Median
				}
				if e.FiveYearsAfter != nil {
					row.Earnings5yr = e.FiveYearsAfter.Median
				}
			}
			if entry.Debt != nil {
				row.MedianDebt = entry.Debt.Median
			}
			results = append(results, row)
		}
	}
	return &dto.ProgramCompareResponse{
		CipCode: req.CipCode,
		Year:    year,
		Results: results,
	}, nil
}

// Majors returns the degree-mix taxonomy accepted by the major filter.
func (s *ProgramService) Majors() *dto.MajorsResponse {
	majors := make([]*dto.MajorEntry, 0, len(models.MajorFields))
	for _, m := range models.MajorFields {
		majors = append(majors, &dto.MajorEntry{Code: m.FieldCode, Name: m.FieldName})
	}
	return &dto.MajorsResponse{Majors: majors, Total: len(majors)}
}

// CipCodes returns the static CIP-code reference list.
func (s *ProgramService) CipCodes() *dto.CipCodesResponse {
	codes := make([]*dto.CipCodeEntry, 0, len(models.CommonCipCodes))
	for _, c := range models.CommonCipCodes {
		codes = append(codes, &dto.CipCodeEntry{CipCode: c.Code, Title: c.Title})
	}
	return &dto.CipCodesResponse{CipCodes: codes, Total: len(codes)}
}

// SchoolPrograms returns the degree shares and field-of-study entries for
// one school. A school with neither record has no program data at all,
// which is a not-found condition.
func (s *ProgramService) SchoolPrograms(ctx context.Context, schoolID int, year *int) (*dto.SchoolProgramsResponse, error) {
	schoolDoc, err := s.schoolRepo.FindByID(ctx, schoolID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &apperrors.CustomError{
				Err:     apperrors.ErrSchoolNotFound,
				Message: fmt.Sprintf("school %d not found", schoolID),
			}
		}
		return nil, apperrors.NewQueryError(err)
	}
	dataYear := s.defaultYear
	if year != nil && *year > 0 {
		dataYear = *year
	}

	acaDoc, err := s.academicsRepo.FindBySchoolYear(ctx, schoolID, dataYear)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	record, err := s.programRepo.FindBySchoolYear(ctx, schoolID, dataYear)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	if acaDoc == nil && record == nil {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrProgramNotFound,
			Message: fmt.Sprintf("no program data for school %d in %d", schoolID, dataYear),
		}
	}

	resp := &dto.SchoolProgramsResponse{
		SchoolID:          schoolID,
		SchoolName:        schoolSummary(schoolDoc).Name,
		Year:              dataYear,
		ProgramPercentage: map[string]*float64{},
		Programs:          []*dto.SchoolProgramEntry{},
	}

	if acaDoc != nil {
		var aca models.AcademicsRecord
		if raw, err := bson.Marshal(acaDoc); err == nil {
			_ = bson.Unmarshal(raw, &aca)
		}
		if aca.Academics != nil && aca.Academics.ProgramPercentage != nil {
			resp.ProgramPercentage = aca.Academics.ProgramPercentage
		}
	}

	if record != nil {
		for i := range record.Programs {
			entry := &record.Programs[i]
			out := &dto.SchoolProgramEntry{
				CipCode:         entry.CipCode,
				CredentialLevel: entry.CredentialLevel,
			}
			if entry.Title != nil {
				out.Title = *entry.Title
			}
			if e := entry.Earnings; e != nil {
				if e.OneYearAfter != nil {
					out.Earnings1yr = e.OneYearAfter.Median
				}
				if e.ThreeYearsAfter != nil {
					out.Earnings3yr = e.ThreeYearsAfter.Median
				}
				if e.FiveYearsAfter != nil {
					out.Earnings5yr = e.FiveYearsAfter.Median
				}
			}
			if entry.Debt != nil {
				out.MedianDebt = entry.Debt.Median
			}
			resp.Programs = append(resp.Programs, out)
		}
	}
	return resp, nil
}
