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
)

// topListSize is the length of the ranked lists in the state bundle.
const topListSize = 10

// AnalyticsService handles the composite analytics views: the per-state
// facet bundle, the cross-state comparison, and per-school metrics with
// baselines.
type AnalyticsService struct {
	schoolRepo  repositories.SchoolStore
	outcomeRepo repositories.OutcomeStore
	defaultYear int
}

// NewAnalyticsService creates a new analytics service instance.
func NewAnalyticsService(schoolRepo repositories.SchoolStore, outcomeRepo repositories.OutcomeStore, cfg *config.Config) *AnalyticsService {
	return &AnalyticsService{
		schoolRepo:  schoolRepo,
		outcomeRepo: outcomeRepo,
		defaultYear: cfg.Dataset.DefaultYear,
	}
}

// stateFacetResult is the single document produced by the state bundle
// pipeline; each field is one facet's output.
type stateFacetResult struct {
	Summary              []*dto.StateSummary       `bson:"summary"`
	ByOwnership          []*dto.OwnershipBreakdown `bson:"by_ownership"`
	TopByEarnings        []*dto.RankedSchool       `bson:"top_by_earnings"`
	TopByValue           []*dto.RankedSchool       `bson:"top_by_value"`
	MostAffordable       []*dto.RankedSchool       `bson:"most_affordable"`
	TopByCompletion      []*dto.RankedSchool       `bson:"top_by_completion"`
	CostDistribution     []bucketRow               `bson:"cost_distribution"`
	EarningsDistribution []bucketRow               `bson:"earnings_distribution"`
	AllSchools           []*dto.SchoolSummary      `bson:"all_schools"`
}

// StateAnalytics computes the full analytics bundle for one state in a
// single faceted pipeline round trip.
func (s *AnalyticsService) StateAnalytics(ctx context.Context, state string, year *int) (*dto.StateAnalyticsResponse, error) {
	if state == "" {
		return nil, apperrors.NewValidationError("state code is required")
	}
	dataYear := s.resolveYear(year)
	costExpr, earningsExpr, completionExpr := outcomeExprs()
	jt := joined()
	sizeExpr, err := jt.Expr(schema.FieldSize)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	admissionExpr, err := jt.Expr(schema.FieldAdmissionRate)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	stateCond, err := jt.EqFilter(schema.FieldState, state)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}

	rankedProjection := bson.M{
		"school_id":       1,
		"name":            "$school_info.school.name",
		"city":            "$school_info.school.city",
		"cost":            costExpr,
		"earnings_10yr":   earningsExpr,
		"completion_rate": completionExpr,
	}
	summaryProjection := bson.M{
		"school_id":       1,
		"name":            "$school_info.school.name",
		"city":            "$school_info.school.city",
		"state":           "$school_info.school.state",
		"ownership":       "$school_info.school.ownership",
		"degree_level":    "$school_info.school.degrees_awarded.predominant",
		"size":            sizeExpr,
		"cost":            costExpr,
		"earnings_10yr":   earningsExpr,
		"admission_rate":  admissionExpr,
		"completion_rate": completionExpr,
	}
	valueProjection := bson.M{
		"school_id":     1,
		"name":          "$school_info.school.name",
		"city":          "$school_info.school.city",
		"cost":          costExpr,
		"earnings_10yr": earningsExpr,
		"value":         query.GuardedROI(earningsExpr, costExpr, earningsHorizonYears, programLengthYears),
	}

	p := query.NewPipeline().
		MatchYear(dataYear).
		LookupSchools().
		Match(stateCond).
		Facet(map[string]*query.Pipeline{
			"summary": query.NewPipeline().Group(nil, bson.M{
				"school_count":        bson.M{"$sum": 1},
				"avg_cost":            bson.M{"$avg": costExpr},
				"median_cost":         query.ApproxMedian(costExpr),
				"avg_earnings":        bson.M{"$avg": earningsExpr},
				"median_earnings":     query.ApproxMedian(earningsExpr),
				"avg_completion_rate": bson.M{"$avg": completionExpr},
				"avg_admission_rate":  bson.M{"$avg": admissionExpr},
				"total_enrollment":    bson.M{"$sum": sizeExpr},
			}),
			"by_ownership": query.NewPipeline().
				Group("$school_info.school.ownership", bson.M{
					"school_count": bson.M{"$sum": 1},
					"avg_cost":     bson.M{"$avg": costExpr},
					"avg_earnings": bson.M{"$avg": earningsExpr},
				}).
				Sort(bson.D{{Key: "_id", Value: 1}}),
			"top_by_earnings": query.NewPipeline().
				Project(rankedProjection).
				Match(bson.M{"earnings_10yr": bson.M{"$gt": 0}}).
				Sort(bson.D{{Key: "earnings_10yr", Value: -1}}).
				Limit(topListSize),
			"top_by_value": query.NewPipeline().
				Project(valueProjection).
				Match(bson.M{"value": bson.M{"$ne": nil}}).
				Sort(bson.D{{Key: "value", Value: -1}}).
				Limit(topListSize),
			"most_affordable": query.NewPipeline().
				Project(rankedProjection).
				Match(bson.M{"cost": bson.M{"$gt": 0}}).
				Sort(bson.D{{Key: "cost", Value: 1}}).
				Limit(topListSize),
			"top_by_completion": query.NewPipeline().
				Project(rankedProjection).
				Match(bson.M{"completion_rate": bson.M{"$gt": 0}}).
				Sort(bson.D{{Key: "completion_rate", Value: -1}}).
				Limit(topListSize),
			"cost_distribution": query.NewPipeline().
				Bucket(costExpr, query.CostBucketBoundaries, bson.M{"count": bson.M{"$sum": 1}}),
			"earnings_distribution": query.NewPipeline().
				Bucket(earningsExpr, query.EarningsBucketBoundaries, bson.M{"count": bson.M{"$sum": 1}}),
			"all_schools": query.NewPipeline().
				Project(summaryProjection).
				Sort(bson.D{{Key: "name", Value: 1}}),
		})

	var facets []stateFacetResult
	if err := s.outcomeRepo.Aggregate(ctx, p.Build(), &facets); err != nil {
		return nil, apperrors.NewQueryError(err)
	}

	resp := &dto.StateAnalyticsResponse{
		State:                state,
		Year:                 dataYear,
		ByOwnership:          []*dto.OwnershipBreakdown{},
		TopByEarnings:        []*dto.RankedSchool{},
		TopByValue:           []*dto.RankedSchool{},
		MostAffordable:       []*dto.RankedSchool{},
		TopByCompletion:      []*dto.RankedSchool{},
		CostDistribution:     []*dto.DistributionBucket{},
		EarningsDistribution: []*dto.DistributionBucket{},
		AllSchools:           []*dto.SchoolSummary{},
	}
	if len(facets) == 0 {
		resp.Summary = &dto.StateSummary{}
		return resp, nil
	}
	f := facets[0]

	if len(f.Summary) > 0 {
		resp.Summary = f.Summary[0]
		resp.Summary.MedianCost = firstOf(resp.Summary.MedianCostArr)
		resp.Summary.MedianEarnings = firstOf(resp.Summary.MedianEarningsArr)
	} else {
		resp.Summary = &dto.StateSummary{}
	}
	for _, o := range f.ByOwnership {
		o.Label = models.OwnershipLabel(o.Ownership)
	}
	resp.ByOwnership = f.ByOwnership
	resp.TopByEarnings = f.TopByEarnings
	resp.TopByValue = f.TopByValue
	resp.MostAffordable = f.MostAffordable
	resp.TopByCompletion = f.TopByCompletion
	resp.CostDistribution = normalizeBuckets(query.CostBucketBoundaries, f.CostDistribution)
	resp.EarningsDistribution = normalizeBuckets(query.EarningsBucketBoundaries, f.EarningsDistribution)
	for _, sum := range f.AllSchools {
		if sum.Ownership != nil {
			sum.OwnershipLabel = models.OwnershipLabel(*sum.Ownership)
		}
	}
	resp.AllSchools = f.AllSchools
	return resp, nil
}

// StateComparison returns one rollup row per state, including ownership
// sector counts.
func (s *AnalyticsService) StateComparison(ctx context.Context, year *int) (*dto.StateComparisonResponse, error) {
	dataYear := s.resolveYear(year)
	costExpr, earningsExpr, completionExpr := outcomeExprs()
	jt := joined()
	sizeExpr, err := jt.Expr(schema.FieldSize)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	ownershipRef := "$school_info.school.ownership"

	sectorCount := func(code int) bson.M {
		return bson.M{"$sum": bson.M{"$cond": bson.A{
			bson.M{"$eq": bson.A{ownershipRef, code}}, 1, 0,
		}}}
	}

	p := query.NewPipeline().
		MatchYear(dataYear).
		LookupSchools().
		Group("$school_info.school.state", bson.M{
			"school_count":        bson.M{"$sum": 1},
			"public_count":        sectorCount(models.OwnershipPublic),
			"private_count":       sectorCount(models.OwnershipPrivateNonprofit),
			"for_profit_count":    sectorCount(models.OwnershipPrivateForProfit),
			"avg_cost":            bson.M{"$avg": costExpr},
			"avg_earnings":        bson.M{"$avg": earningsExpr},
			"avg_completion_rate": bson.M{"$avg": completionExpr},
			"total_enrollment":    bson.M{"$sum": sizeExpr},
		}).
		Sort(bson.D{{Key: "_id", Value: 1}})

	var results []*dto.StateComparisonRow
	if err := s.outcomeRepo.Aggregate(ctx, p.Build(), &results); err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return &dto.StateComparisonResponse{
		Year:    dataYear,
		Results: results,
		Total:   len(results),
	}, nil
}

// SchoolAnalytics returns one school's metrics with state and national
// baselines and the historical trend.
func (s *AnalyticsService) SchoolAnalytics(ctx context.Context, schoolID int, year *int) (*dto.SchoolAnalyticsResponse, error) {
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
	summary := schoolSummary(doc)
	dataYear := s.resolveYear(year)

	resp := &dto.SchoolAnalyticsResponse{
		SchoolID:       summary.SchoolID,
		Name:           summary.Name,
		State:          summary.State,
		Year:           dataYear,
		Cost:           summary.Cost,
		Earnings10yr:   summary.Earnings10yr,
		CompletionRate: summary.CompletionRate,
		AdmissionRate:  summary.AdmissionRate,
	}
	resp.ROI, resp.PaybackYears = ComputeROI(resp.Cost, resp.Earnings10yr)

	outDoc, err := s.outcomeRepo.FindBySchoolYear(ctx, schoolID, dataYear)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	if outDoc != nil {
		table := schema.Outcomes()
		resp.MedianDebt = table.ResolveFloat(outDoc, schema.FieldMedianDebt)
		resp.CompletionByRace = &dto.CompletionByRace{
			White:    schema.AsFloat(schema.Lookup(outDoc, "completion.completion_rate_4yr_150_white")),
			Black:    schema.AsFloat(schema.Lookup(outDoc, "completion.completion_rate_4yr_150_black")),
			Hispanic: schema.AsFloat(schema.Lookup(outDoc, "completion.completion_rate_4yr_150_hispanic")),
			Asian:    schema.AsFloat(schema.Lookup(outDoc, "completion.completion_rate_4yr_150_asian")),
		}
	}

	if summary.State != "" {
		stateBaseline, err := s.baseline(ctx, summary.State, dataYear)
		if err != nil {
			return nil, err
		}
		resp.StateBaseline = stateBaseline
	}
	national, err := s.baseline(ctx, "", dataYear)
	if err != nil {
		return nil, err
	}
	resp.NationalBaseline = national

	history, err := s.outcomeRepo.History(ctx, schoolID)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	resp.Trend = make([]*dto.YearOutcomes, 0, len(history))
	for _, h := range history {
		resp.Trend = append(resp.Trend, yearOutcomes(h))
	}
	return resp, nil
}

// AvailableYears lists the dataset years present in the outcome records.
func (s *AnalyticsService) AvailableYears(ctx context.Context) (*dto.YearsResponse, error) {
	years, err := s.outcomeRepo.Years(ctx)
	if err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	return &dto.YearsResponse{Years: years, DefaultYear: s.defaultYear}, nil
}

// baseline computes the average cost, earnings, and completion rate for
// one state, or nationally when state is empty.
func (s *AnalyticsService) baseline(ctx context.Context, state string, year int) (*dto.Baseline, error) {
	costExpr, earningsExpr, completionExpr := outcomeExprs()

	p := query.NewPipeline().MatchYear(year)
	if state != "" {
		p.LookupSchools()
		if c, err := joined().EqFilter(schema.FieldState, state); err == nil {
			p.Match(c)
		}
	}
	p.Group(nil, bson.M{
		"avg_cost":            bson.M{"$avg": costExpr},
		"avg_earnings":        bson.M{"$avg": earningsExpr},
		"avg_completion_rate": bson.M{"$avg": completionExpr},
	})

	var rows []*dto.Baseline
	if err := s.outcomeRepo.Aggregate(ctx, p.Build(), &rows); err != nil {
		return nil, apperrors.NewQueryError(err)
	}
	if len(rows) == 0 {
		return &dto.Baseline{}, nil
	}
	return rows[0], nil
}

func (s *AnalyticsService) resolveYear(year *int) int {
	if year != nil && *year > 0 {
		return *year
	}
	return s.defaultYear
}

func firstOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
