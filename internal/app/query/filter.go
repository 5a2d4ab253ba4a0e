package query

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/collegescope/api/internal/app/models"
	"github.com/collegescope/api/internal/app/schema"
)

// sortAliases maps the sort names accepted by the API to logical fields.
var sortAliases = map[string]string{
	"size":            schema.FieldSize,
	"name":            schema.FieldName,
	"cost":            schema.FieldCost,
	"earnings":        schema.FieldEarnings10yr,
	"earnings_10yr":   schema.FieldEarnings10yr,
	"admission_rate":  schema.FieldAdmissionRate,
	"completion_rate": schema.FieldCompletionRate,
}

// SchoolFilterQuery translates the flat criteria set into a find
// predicate over the schools collection. Each present criterion adds one
// independent condition; absent criteria add nothing, so relaxing a
// filter can only widen the result set.
func SchoolFilterQuery(f models.SchoolFilter) (bson.M, error) {
	table := schema.Schools()
	var conds []bson.M

	add := func(c bson.M, err error) error {
		if err != nil {
			return err
		}
		if len(c) > 0 {
			conds = append(conds, c)
		}
		return nil
	}

	if f.State != nil {
		if err := add(table.EqFilter(schema.FieldState, *f.State)); err != nil {
			return nil, err
		}
	}
	if f.Ownership != nil {
		if err := add(table.EqFilter(schema.FieldOwnership, *f.Ownership)); err != nil {
			return nil, err
		}
	}
	if f.DegreeLevel != nil {
		if err := add(table.EqFilter(schema.FieldDegreeLevel, *f.DegreeLevel)); err != nil {
			return nil, err
		}
	}
	if err := add(table.RangeFilter(schema.FieldCost, f.CostMin, f.CostMax)); err != nil {
		return nil, err
	}
	if err := add(table.RangeFilter(schema.FieldEarnings10yr, f.EarningsMin, nil)); err != nil {
		return nil, err
	}
	if err := add(table.RangeFilter(schema.FieldAdmissionRate, nil, f.AdmissionRateMax)); err != nil {
		return nil, err
	}
	if err := add(table.RangeFilter(schema.FieldCompletionRate, f.CompletionRateMin, nil)); err != nil {
		return nil, err
	}
	if err := add(table.RangeFilter(schema.FieldSize, intPtrToFloat(f.SizeMin), intPtrToFloat(f.SizeMax))); err != nil {
		return nil, err
	}
	if f.SchoolIDs != nil {
		// An explicit allow-list, even an empty one, constrains the query.
		// Callers short-circuit the empty case before getting here, but an
		// empty $in matching nothing is the correct fallback.
		conds = append(conds, bson.M{"school_id": bson.M{"$in": f.SchoolIDs}})
	}

	switch len(conds) {
	case 0:
		return bson.M{}, nil
	case 1:
		return conds[0], nil
	default:
		return bson.M{"$and": conds}, nil
	}
}

// SchoolSortSpec maps the requested sort to a physical sort key. The
// primary candidate path is authoritative for ordering.
func SchoolSortSpec(sortBy, sortOrder string) (bson.D, error) {
	if sortBy == "" {
		sortBy = models.SortByDefault
	}
	logical, ok := sortAliases[sortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort field %q", sortBy)
	}
	path, err := schema.Schools().Primary(logical)
	if err != nil {
		return nil, err
	}

	if sortOrder == "" {
		sortOrder = models.SortOrderDefault
	}
	order := -1
	if sortOrder == "asc" {
		order = 1
	}
	return bson.D{{Key: path, Value: order}}, nil
}

func intPtrToFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
