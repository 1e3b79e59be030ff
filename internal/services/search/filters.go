package search

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// column describes a filterable attribute of a collection
type column struct {
	name      string
	rangeable bool
}

// columnSet is a provider's filter allow-list keyed by public filter name
type columnSet map[string]column

// compileFilters turns the generic filter rules into an expression:
//   - a range object applies inclusive bounds, each only when it is a non-negative integer
//   - a list ORs equality over its values and is skipped when empty
//   - a scalar is an equality and is skipped when falsy
//
// Names missing from the allow-list, and range objects on columns that are not
// rangeable, are returned as ignored.
func compileFilters(filters Filters, columns columnSet) (Expression, []string) {
	var exprs []Expression
	var ignored []string

	for _, name := range filters.Names() {
		value := filters[name]
		col, ok := columns[name]
		if !ok {
			ignored = append(ignored, name)
			continue
		}

		expr, applied := compileValue(col, value)
		if !applied {
			ignored = append(ignored, name)
			continue
		}
		if expr != nil {
			exprs = append(exprs, expr)
		}
	}

	if len(exprs) == 0 {
		return nil, ignored
	}
	return And(exprs...), ignored
}

// compileValue returns the predicate for one filter. applied is false only when
// the value shape cannot be used with the column at all.
func compileValue(col column, value any) (Expression, bool) {
	if bounds, ok := asRange(value); ok {
		if !col.rangeable {
			return nil, false
		}
		min, hasMin := parseBound(bounds["min"])
		max, hasMax := parseBound(bounds["max"])
		if !hasMin && !hasMax {
			return nil, true
		}
		var lo, hi any
		if hasMin {
			lo = min
		}
		if hasMax {
			hi = max
		}
		return Range(col.name, lo, hi), true
	}

	if values, ok := asList(value); ok {
		if len(values) == 0 {
			return nil, true
		}
		alternatives := make([]Expression, 0, len(values))
		for _, v := range values {
			alternatives = append(alternatives, Eq(col.name, v))
		}
		return Or(alternatives...), true
	}

	if isFalsy(value) {
		return nil, true
	}
	return Eq(col.name, value), true
}

func asRange(value any) (map[string]any, bool) {
	m, ok := value.(map[string]any)
	return m, ok
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out, true
	}

	rv := reflect.ValueOf(value)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

// parseBound accepts integers and digit-only strings
func parseBound(v any) (int64, bool) {
	switch b := v.(type) {
	case nil:
		return 0, false
	case int:
		return int64(b), b >= 0
	case int64:
		return b, b >= 0
	case float64:
		if b < 0 || b != math.Trunc(b) || b > math.MaxInt64 {
			return 0, false
		}
		return int64(b), true
	case json.Number:
		n, err := b.Int64()
		return n, err == nil && n >= 0
	case string:
		if b == "" {
			return 0, false
		}
		for _, r := range b {
			if r < '0' || r > '9' {
				return 0, false
			}
		}
		n, err := strconv.ParseInt(b, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0
	case int:
		return x == 0
	case int64:
		return x == 0
	case json.Number:
		return x.String() == "0"
	}
	return false
}

// stringValue extracts a scalar string filter value
func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

// termsExpr ORs a case-insensitive match of every term against every field
func termsExpr(terms []string, fields ...string) Expression {
	var alternatives []Expression
	for _, term := range terms {
		if term == "" {
			continue
		}
		for _, field := range fields {
			alternatives = append(alternatives, Like(field, term))
		}
	}
	if len(alternatives) == 0 {
		return nil
	}
	return Or(alternatives...)
}
