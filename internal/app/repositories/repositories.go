package repositories

import (
	"errors"

	"github.com/collegescope/api/internal/db"
)

// ErrNotFound is returned when a lookup matches no document. Services
// translate it into the domain-specific not-found errors.
var ErrNotFound = errors.New("record not found")

// Repositories bundles every per-collection repository for injection.
type Repositories struct {
	School     *SchoolRepository
	Outcome    *OutcomeRepository
	Academics  *AcademicsRepository
	Program    *ProgramRepository
	Admissions *AdmissionsRepository
}

// NewRepositories creates all repositories over one store handle.
func NewRepositories(store *db.MongoDB) *Repositories {
	return &Repositories{
		School:     NewSchoolRepository(store),
		Outcome:    NewOutcomeRepository(store),
		Academics:  NewAcademicsRepository(store),
		Program:    NewProgramRepository(store),
		Admissions: NewAdmissionsRepository(store),
	}
}
