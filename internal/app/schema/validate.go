package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// validateAgainst checks each candidate path in the mapping against the
// set of paths derivable from the bson tags of the given model struct.
func (m *Mapping) validateAgainst(model interface{}) error {
	known := collectPaths(reflect.TypeOf(model), "")
	for _, logical := range m.Logical() {
		for _, path := range m.fields[logical] {
			if !known.contains(path) {
				return fmt.Errorf("schema mapping for collection %s: field %q names unknown path %q",
					m.collection, logical, path)
			}
		}
	}
	return nil
}

// pathSet holds the exact dotted paths declared by a model plus wildcard
// prefixes contributed by map-typed fields, whose keys are open-ended.
type pathSet struct {
	exact    map[string]struct{}
	wildcard []string
}

func (s *pathSet) contains(path string) bool {
	if _, ok := s.exact[path]; ok {
		return true
	}
	for _, prefix := range s.wildcard {
		if strings.HasPrefix(path, prefix+".") {
			return true
		}
	}
	return false
}

func collectPaths(t reflect.Type, prefix string) *pathSet {
	set := &pathSet{exact: make(map[string]struct{})}
	addPaths(t, prefix, set, 0)
	return set
}

func addPaths(t reflect.Type, prefix string, set *pathSet, depth int) {
	// The models nest a handful of levels; anything deeper is a cycle.
	if depth > 8 {
		return
	}
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("bson")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" {
			continue
		}

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		set.exact[path] = struct{}{}

		ft := field.Type
		for ft.Kind() == reflect.Ptr || ft.Kind() == reflect.Slice {
			ft = ft.Elem()
		}
		switch ft.Kind() {
		case reflect.Struct:
			addPaths(ft, path, set, depth+1)
		case reflect.Map:
			// Map keys are dataset-defined; any sub-path is legal.
			set.wildcard = append(set.wildcard, path)
		}
	}
}
