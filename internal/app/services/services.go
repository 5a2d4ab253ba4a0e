package services

import (
	"github.com/collegescope/api/internal/app/repositories"
	"github.com/collegescope/api/internal/config"
)

// Services bundles every domain service for injection into controllers.
type Services struct {
	School      *SchoolService
	Program     *ProgramService
	Aggregation *AggregationService
	Analytics   *AnalyticsService
}

// NewServices wires all services over the repository set.
func NewServices(repos *repositories.Repositories, cfg *config.Config) *Services {
	return &Services{
		School:      NewSchoolService(repos.School, repos.Outcome, repos.Academics, repos.Admissions, cfg),
		Program:     NewProgramService(repos.School, repos.Program, repos.Academics, cfg),
		Aggregation: NewAggregationService(repos.School, repos.Outcome, repos.Academics, cfg),
		Analytics:   NewAnalyticsService(repos.School, repos.Outcome, cfg),
	}
}
