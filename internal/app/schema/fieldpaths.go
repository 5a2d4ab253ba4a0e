// Package schema maps logical field names to the physical document paths
// that carry them. The scorecard import pipelines relocated several fields
// across batches (net price alone has lived at three different paths), so
// every read and every query predicate goes through this table instead of
// naming a raw path. Candidate paths are ordered by priority; the first
// non-null one wins.
package schema

import (
	"fmt"
	"sort"

	"github.com/collegescope/api/internal/app/models"
)

// Logical field names. These are the stable vocabulary of the API; the
// physical paths behind them are allowed to drift.
const (
	FieldName                  = "name"
	FieldCity                  = "city"
	FieldState                 = "state"
	FieldOwnership             = "ownership"
	FieldDegreeLevel           = "degree_level"
	FieldSize                  = "size"
	FieldCost                  = "cost"
	FieldEarnings6yr           = "earnings_6yr"
	FieldEarnings10yr          = "earnings_10yr"
	FieldAdmissionRate         = "admission_rate"
	FieldCompletionRate        = "completion_rate"
	FieldCompletionRateOverall = "completion_rate_overall"
	FieldPellGrantRate         = "pell_grant_rate"
	FieldFederalLoanRate       = "federal_loan_rate"
	FieldMedianDebt            = "median_debt"
	FieldDefaultRate           = "default_rate"
)

// Mapping is the logical-to-physical field table for one collection
// context. Build one with Schools or Outcomes, or derive a joined-context
// table with WithPrefix.
type Mapping struct {
	collection string
	fields     map[string][]string
}

// Schools returns the field table for the schools collection, which
// carries a denormalized `latest` copy of current-year satellite fields.
func Schools() *Mapping {
	return &Mapping{
		collection: "schools",
		fields: map[string][]string{
			FieldName:        {"school.name"},
			FieldCity:        {"school.city"},
			FieldState:       {"school.state"},
			FieldOwnership:   {"school.ownership"},
			FieldDegreeLevel: {"school.degrees_awarded.predominant"},
			// Older batches stored size at latest.size.
			FieldSize: {"latest.student.size", "latest.size"},
			// Net price by preference, then sector-specific net price,
			// then in-state tuition as the last resort.
			FieldCost: {
				"latest.cost.avg_net_price.overall",
				"latest.cost.avg_net_price.public",
				"latest.cost.avg_net_price.private",
				"latest.cost.tuition.in_state",
			},
			FieldEarnings6yr:    {"latest.earnings.6_yrs_after_entry.median"},
			FieldEarnings10yr:   {"latest.earnings.10_yrs_after_entry.median"},
			FieldAdmissionRate:  {"latest.admissions.admission_rate.overall"},
			FieldCompletionRate: {"latest.completion.completion_rate_4yr_150nt"},
		},
	}
}

// Outcomes returns the field table for the costs_aid_completion
// collection, the per-year satellite records.
func Outcomes() *Mapping {
	return &Mapping{
		collection: "costs_aid_completion",
		fields: map[string][]string{
			FieldCost: {
				"cost.avg_net_price.overall",
				"cost.avg_net_price.public",
				"cost.avg_net_price.private",
				"cost.tuition.in_state",
			},
			FieldEarnings6yr:    {"earnings.6_yrs_after_entry.median"},
			FieldEarnings10yr:   {"earnings.10_yrs_after_entry.median"},
			FieldCompletionRate: {"completion.completion_rate_4yr_150nt"},
			FieldCompletionRateOverall: {
				"completion.completion_rate_overall",
				"completion.completion_rate_4yr_150nt",
			},
			FieldPellGrantRate:   {"aid.pell_grant_rate"},
			FieldFederalLoanRate: {"aid.federal_loan_rate"},
			FieldMedianDebt:      {"aid.median_debt.completers.overall"},
			FieldDefaultRate:     {"repayment.3_yr_default_rate"},
		},
	}
}

// WithPrefix derives a table whose candidate paths are all prefixed, for
// use after a $lookup stage (e.g. "school_info." + school.state).
func (m *Mapping) WithPrefix(prefix string) *Mapping {
	prefixed := make(map[string][]string, len(m.fields))
	for logical, paths := range m.fields {
		out := make([]string, len(paths))
		for i, p := range paths {
			out[i] = prefix + p
		}
		prefixed[logical] = out
	}
	return &Mapping{collection: m.collection, fields: prefixed}
}

// Paths returns the ordered candidate paths for a logical field.
func (m *Mapping) Paths(logical string) ([]string, error) {
	paths, ok := m.fields[logical]
	if !ok {
		return nil, fmt.Errorf("collection %s has no logical field %q", m.collection, logical)
	}
	return paths, nil
}

// Primary returns the highest-priority candidate path, used for sort
// stages where a single key is required.
func (m *Mapping) Primary(logical string) (string, error) {
	paths, err := m.Paths(logical)
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// Logical returns the sorted logical field names, used by Validate and by
// the normalizer when projecting every known field.
func (m *Mapping) Logical() []string {
	names := make([]string, 0, len(m.fields))
	for name := range m.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every candidate path against the bson-tagged model
// structs, so a mapping typo fails at startup instead of silently
// resolving to null forever.
func Validate() error {
	if err := Schools().validateAgainst(models.School{}); err != nil {
		return err
	}
	if err := Outcomes().validateAgainst(models.OutcomeRecord{}); err != nil {
		return err
	}
	return nil
}
