package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegescope/api/internal/app/models"
	"github.com/collegescope/api/internal/app/models/dto"
	"github.com/collegescope/api/internal/app/query"
	"github.com/collegescope/api/internal/app/repositories"
	"github.com/collegescope/api/internal/app/schema"
	"github.com/collegescope/api/internal/config"
	"github.com/collegescope/api/internal/pkg/apperrors"
)

// Limits for the ROI ranking and the scatter payload.
const (
	ROILimit           = 100
	ScatterDefaultSize = 200
	ScatterMaxSize     = 500
)

// AggregationService handles the grouped, bucketed, and ranked analytics
// computed in the store via aggregation pipelines.
type AggregationService struct {
	schoolRepo     repositories.SchoolStore
	outcomeRepo    repositories.OutcomeStore
	academicsRepo  repositories.AcademicsStore
	defaultYear    int
	majorThreshold float64
}

// NewAggregationService creates a new aggregation service instance.
func NewAggregationService(schoolRepo repositories.SchoolStore, outcomeRepo repositories.OutcomeStore, academicsRepo repositories.AcademicsStore, cfg *config.Config) *AggregationService {
	return &AggregationService{
		schoolRepo:     schoolRepo,
		outcomeRepo:    outcomeRepo,
		academicsRepo:  academicsRepo,
		defaultYear:    cfg.Dataset.DefaultYear,
		majorThreshold: cfg.Dataset.MajorThreshold,
	}
}

// joined is the school-field table seen from an outcomes pipeline after
// the schools lookup.
func joined() *schema.Mapping {
	return schema.Schools().WithPrefix("school_info.")
}

// outcomeExprs returns the fallback-chain expressions for the metric
// fields of the outcomes collection.
func outcomeExprs() (cost, earnings, completion interface{}) {
	table := schema.Outcomes()
	cost, _ = table.Expr(schema.FieldCost)
	earnings, _ = table.Expr(schema.FieldEarnings10yr)
	completion, _ = table.Expr(schema.FieldCompletionRate)
	return cost, earnings, completion
}

// StateAggregation returns per-state cost, earnings, and completion
// metrics, optionally restricted to one state. A state with no matching
// records simply has no row.
func (s *AggregationService) StateAggregation(ctx context.Context, state string, year *int) (*dto.StateAggregationResponse, error) {
	costExpr, earningsExpr, completionExpr := outcomeExprs()
	statePath, err := joined().Primary(schema.FieldState)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	dataYear := s.resolveYear(year)

	p := query.NewPipeline().MatchYear(dataYear).LookupSchools()
	if state != "" {
		p.Match(bson.M{statePath: state})
	}
	p.Group("$"+statePath, bson.M{
		"school_count":        bson.M{"$sum": 1},
		"avg_cost":            bson.M{"$avg": costExpr},
		"avg_earnings":        bson.M{"$avg": earningsExpr},
		"avg_completion_rate": bson.M{"$avg": completionExpr},
		"min_cost":            bson.M{"$min": costExpr},
		"max_cost":            bson.M{"$max": costExpr},
		"min_earnings":        bson.M{"$min": earningsExpr},
		"max_earnings":        bson.M{"$max": earningsExpr},
	}).Sort(bson.D{{Key: "_id", Value: 1}})

	var results []*dto.StateAggregate
	if err := s.outcomeRepo.Aggregate(ctx, p.Build(), &results); err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	// A scoped query with no matches still answers with a zero row; the
	// averages stay null.
	if state != "" && len(results) == 0 {
		results = []*dto.StateAggregate{{State: state}}
	}
	return &dto.StateAggregationResponse{Results: results, Total: len(results), Year: dataYear}, nil
}

// ROI ranks schools by return on investment, optionally restricted by
// state, ownership, or major.
func (s *AggregationService) ROI(ctx context.Context, state string, ownership *int, major string, year *int) (*dto.ROIResponse, error) {
	if ownership != nil && !models.ValidOwnership(*ownership) {
		return nil, apperrors.NewValidationError("ownership must be 1, 2, or 3")
	}
	if major != "" && !models.ValidMajorField(major) {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrUnknownMajor,
			Message: fmt.Sprintf("unknown major field %q", major),
		}
	}
	costExpr, earningsExpr, _ := outcomeExprs()
	jt := joined()
	dataYear := s.resolveYear(year)

	p := query.NewPipeline().MatchYear(dataYear)
	if major != "" {
		p.MajorGate(major, s.majorThreshold, dataYear)
	}
	p.LookupSchools()
	if state != "" {
		if c, err := jt.EqFilter(schema.FieldState, state); err == nil {
			p.Match(c)
		}
	}
	if ownership != nil {
		if c, err := jt.EqFilter(schema.FieldOwnership, *ownership); err == nil {
			p.Match(c)
		}
	}
	p.Project(bson.M{
		"school_id":     1,
		"name":          "$school_info.school.name",
		"state":         "$school_info.school.state",
		"ownership":     "$school_info.school.ownership",
		"cost":          costExpr,
		"earnings_10yr": earningsExpr,
		"roi":           query.GuardedROI(earningsExpr, costExpr, earningsHorizonYears, programLengthYears),
		"payback_years": query.GuardedPayback(earningsExpr, costExpr, programLengthYears),
	}).
		Match(bson.M{"roi": bson.M{"$ne": nil}}).
		Sort(bson.D{{Key: "roi", Value: -1}}).
		Limit(ROILimit)

	var results []*dto.ROIEntry
	if err := s.outcomeRepo.Aggregate(ctx, p.Build(), &results); err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return &dto.ROIResponse{Results: results, Total: len(results), Year: dataYear}, nil
}

// EarningsDistribution returns the histogram of ten-year median earnings,
// optionally restricted by state or major.
func (s *AggregationService) EarningsDistribution(ctx context.Context, state, major string, year *int) (*dto.DistributionResponse, error) {
	if major != "" && !models.ValidMajorField(major) {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrUnknownMajor,
			Message: fmt.Sprintf("unknown major field %q", major),
		}
	}
	_, earningsExpr, _ := outcomeExprs()
	dataYear := s.resolveYear(year)

	p := query.NewPipeline().MatchYear(dataYear)
	if major != "" {
		p.MajorGate(major, s.majorThreshold, dataYear)
	}
	if state != "" {
		p.LookupSchools()
		if c, err := joined().EqFilter(schema.FieldState, state); err == nil {
			p.Match(c)
		}
	}
	p.Bucket(earningsExpr, query.EarningsBucketBoundaries, bson.M{"count": bson.M{"$sum": 1}})

	var rows []bucketRow
	if err := s.outcomeRepo.Aggregate(ctx, p.Build(), &rows); err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	buckets := normalizeBuckets(query.EarningsBucketBoundaries, rows)
	var total int64
	for _, b := range buckets {
		total += b.Count
	}
	return &dto.DistributionResponse{
		Metric:  "earnings_10yr",
		Buckets: buckets,
		Total:   total,
		Year:    dataYear,
	}, nil
}

// CostVsEarnings returns the scatter of net price against ten-year median
// earnings. Only schools with both figures present and positive appear.
func (s *AggregationService) CostVsEarnings(ctx context.Context, state string, ownership *int, limit int, year *int) (*dto.ScatterResponse, error) {
	if ownership != nil && !models.ValidOwnership(*ownership) {
		return nil, apperrors.NewValidationError("ownership must be 1, 2, or 3")
	}
	if limit <= 0 {
		limit = ScatterDefaultSize
	}
	if limit > ScatterMaxSize {
		limit = ScatterMaxSize
	}
	costExpr, earningsExpr, _ := outcomeExprs()
	jt := joined()
	dataYear := s.resolveYear(year)

	p := query.NewPipeline().MatchYear(dataYear).LookupSchools()
	if state != "" {
		if c, err := jt.EqFilter(schema.FieldState, state); err == nil {
			p.Match(c)
		}
	}
	if ownership != nil {
		if c, err := jt.EqFilter(schema.FieldOwnership, *ownership); err == nil {
			p.Match(c)
		}
	}
	p.Project(bson.M{
		"school_id":     1,
		"name":          "$school_info.school.name",
		"state":         "$school_info.school.state",
		"ownership":     "$school_info.school.ownership",
		"cost":          costExpr,
		"earnings_10yr": earningsExpr,
	}).
		Match(bson.M{
			"cost":          bson.M{"$gt": 0},
			"earnings_10yr": bson.M{"$gt": 0},
		}).
		Limit(int64(limit))

	var results []*dto.ScatterPoint
	if err := s.outcomeRepo.Aggregate(ctx, p.Build(), &results); err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return &dto.ScatterResponse{Results: results, Total: len(results), Limit: limit, Year: dataYear}, nil
}

// completionGroupPaths maps group_by values to the joined school paths
// partitioning the completion aggregation.
var completionGroupPaths = map[string]string{
	"state":        "school_info.school.state",
	"ownership":    "school_info.school.ownership",
	"degree_level": "school_info.school.degrees_awarded.predominant",
}

// CompletionRates returns completion-rate statistics grouped by state,
// ownership, or predominant degree level.
func (s *AggregationService) CompletionRates(ctx context.Context, groupBy string, year *int) (*dto.CompletionRatesResponse, error) {
	if groupBy == "" {
		groupBy = "state"
	}
	path, ok := completionGroupPaths[groupBy]
	if !ok {
		return nil, apperrors.NewValidationError("group_by must be state, ownership, or degree_level")
	}
	_, _, completionExpr := outcomeExprs()
	dataYear := s.resolveYear(year)

	p := query.NewPipeline().MatchYear(dataYear).LookupSchools().
		Group("$"+path, bson.M{
			"school_count":        bson.M{"$sum": 1},
			"avg_completion_rate": bson.M{"$avg": completionExpr},
			"min_completion_rate": bson.M{"$min": completionExpr},
			"max_completion_rate": bson.M{"$max": completionExpr},
		}).
		Sort(bson.D{{Key: "_id", Value: 1}})

	var results []*dto.CompletionGroup
	if err := s.outcomeRepo.Aggregate(ctx, p.Build(), &results); err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	if groupBy == "ownership" {
		for _, g := range results {
			if v := schema.AsFloat(g.Group); v != nil {
				g.Label = models.OwnershipLabel(int(*v))
			}
		}
	}
	return &dto.CompletionRatesResponse{
		GroupBy: groupBy,
		Results: results,
		Total:   len(results),
		Year:    dataYear,
	}, nil
}

// Summary returns the dataset-wide school count and national averages,
// computed over the denormalized current-year fields of the schools
// collection.
func (s *AggregationService) Summary(ctx context.Context) (*dto.DatasetSummary, error) {
	table := schema.Schools()
	costExpr, _ := table.Expr(schema.FieldCost)
	earningsExpr, _ := table.Expr(schema.FieldEarnings10yr)
	completionExpr, _ := table.Expr(schema.FieldCompletionRate)
	admissionExpr, _ := table.Expr(schema.FieldAdmissionRate)

	p := query.NewPipeline().Group(nil, bson.M{
		"school_count":        bson.M{"$sum": 1},
		"avg_cost":            bson.M{"$avg": costExpr},
		"avg_earnings":        bson.M{"$avg": earningsExpr},
		"avg_completion_rate": bson.M{"$avg": completionExpr},
		"avg_admission_rate":  bson.M{"$avg": admissionExpr},
	})

	var rows []struct {
		SchoolCount       int64    `bson:"school_count"`
		AvgCost           *float64 `bson:"avg_cost"`
		AvgEarnings       *float64 `bson:"avg_earnings"`
		AvgCompletionRate *float64 `bson:"avg_completion_rate"`
		AvgAdmissionRate  *float64 `bson:"avg_admission_rate"`
	}
	if err := s.schoolRepo.Aggregate(ctx, p.Build(), &rows); err != nil {
		return nil, apperrors.NewQueryError(err)
	}

	statePath, err := table.Primary(schema.FieldState)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	statePipeline := query.NewPipeline().
		Group("$"+statePath, bson.M{"count": bson.M{"$sum": 1}}).
		Build()
	var states []bson.M
	if err := s.schoolRepo.Aggregate(ctx, statePipeline, &states); err != nil {
		return nil, apperrors.NewQueryError(err)
	}

	summary := &dto.DatasetSummary{
		Year:       s.defaultYear,
		StateCount: len(states),
	}
	if len(rows) > 0 {
		summary.SchoolCount = rows[0].SchoolCount
		summary.AvgCost = rows[0].AvgCost
		summary.AvgEarnings = rows[0].AvgEarnings
		summary.AvgCompletionRate = rows[0].AvgCompletionRate
		summary.AvgAdmissionRate = rows[0].AvgAdmissionRate
	}
	return summary, nil
}

func (s *AggregationService) resolveYear(year *int) int {
	if year != nil && *year > 0 {
		return *year
	}
	return s.defaultYear
}
