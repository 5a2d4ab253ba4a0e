package schema

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Resolve returns the first non-null value among the logical field's
// candidate paths, or nil when none resolve. Absent intermediate path
// segments yield nil rather than an error: a record missing a whole
// sub-object is ordinary partial data.
func (m *Mapping) Resolve(doc bson.M, logical string) interface{} {
	paths, err := m.Paths(logical)
	if err != nil {
		return nil
	}
	for _, p := range paths {
		if v := walkPath(doc, p); v != nil {
			return v
		}
	}
	return nil
}

// ResolveFloat resolves a logical field and coerces it to a float, nil
// when absent or non-numeric.
func (m *Mapping) ResolveFloat(doc bson.M, logical string) *float64 {
	return AsFloat(m.Resolve(doc, logical))
}

// ResolveInt resolves a logical field and coerces it to an int, nil when
// absent or non-numeric.
func (m *Mapping) ResolveInt(doc bson.M, logical string) *int {
	f := AsFloat(m.Resolve(doc, logical))
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// ResolveString resolves a logical field to a string, empty when absent.
func (m *Mapping) ResolveString(doc bson.M, logical string) string {
	if s, ok := m.Resolve(doc, logical).(string); ok {
		return s
	}
	return ""
}

// RangeFilter builds a find predicate constraining the logical field to
// [min, max]. With a single candidate path it is a plain range condition;
// with several it is an $or across the candidates, because the predicate
// executes inside the store before any join or materialization and must
// match whichever physical path the record's import batch used.
func (m *Mapping) RangeFilter(logical string, min, max *float64) (bson.M, error) {
	if min == nil && max == nil {
		return nil, nil
	}
	paths, err := m.Paths(logical)
	if err != nil {
		return nil, err
	}

	rng := bson.M{}
	if min != nil {
		rng["$gte"] = *min
	}
	if max != nil {
		rng["$lte"] = *max
	}

	if len(paths) == 1 {
		return bson.M{paths[0]: rng}, nil
	}

	or := make([]bson.M, len(paths))
	for i, p := range paths {
		or[i] = bson.M{p: rng}
	}
	return bson.M{"$or": or}, nil
}

// EqFilter builds an equality predicate on the logical field, an $or when
// the field has fallback paths.
func (m *Mapping) EqFilter(logical string, value interface{}) (bson.M, error) {
	paths, err := m.Paths(logical)
	if err != nil {
		return nil, err
	}
	if len(paths) == 1 {
		return bson.M{paths[0]: value}, nil
	}
	or := make([]bson.M, len(paths))
	for i, p := range paths {
		or[i] = bson.M{p: value}
	}
	return bson.M{"$or": or}, nil
}

// Expr builds an aggregation expression for the logical field: a plain
// field reference for one candidate, or an $ifNull fallback chain trying
// each candidate in priority order.
func (m *Mapping) Expr(logical string) (interface{}, error) {
	paths, err := m.Paths(logical)
	if err != nil {
		return nil, err
	}
	expr := interface{}("$" + paths[len(paths)-1])
	for i := len(paths) - 2; i >= 0; i-- {
		expr = bson.M{"$ifNull": bson.A{"$" + paths[i], expr}}
	}
	return expr, nil
}

// Lookup reads one dotted physical path from a document, for the few
// fields that sit outside the logical table. Absent segments yield nil.
func Lookup(doc bson.M, path string) interface{} {
	return walkPath(doc, path)
}

// walkPath descends a dotted path through nested documents, returning nil
// the moment a segment is absent or the current node is not a document.
func walkPath(doc interface{}, path string) interface{} {
	cur := doc
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case bson.M:
			cur = node[seg]
		case map[string]interface{}:
			cur = node[seg]
		case bson.D:
			cur = lookupD(node, seg)
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}

func lookupD(d bson.D, key string) interface{} {
	for _, e := range d {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// AsFloat coerces the numeric types the bson decoder produces to *float64.
func AsFloat(v interface{}) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return nil
	}
	return &f
}
