package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileFilters(t *testing.T) {
	columns := columnSet{
		"status":   {name: "status"},
		"duration": {name: "duration", rangeable: true},
	}

	tests := []struct {
		name        string
		filters     Filters
		wantSQL     string
		wantArgs    []any
		wantIgnored []string
	}{
		{
			name:    "no filters",
			filters: nil,
		},
		{
			name:     "scalar equality",
			filters:  Filters{"status": "Active"},
			wantSQL:  "status = ?",
			wantArgs: []any{"Active"},
		},
		{
			name:    "falsy scalars are skipped",
			filters: Filters{"status": ""},
		},
		{
			name:     "list becomes OR",
			filters:  Filters{"status": []any{"Recruiting", "Active"}},
			wantSQL:  "(status = ? OR status = ?)",
			wantArgs: []any{"Recruiting", "Active"},
		},
		{
			name:    "empty list is skipped",
			filters: Filters{"status": []any{}},
		},
		{
			name:     "range with both bounds",
			filters:  Filters{"duration": map[string]any{"min": float64(10), "max": float64(20)}},
			wantSQL:  "(duration >= ? AND duration <= ?)",
			wantArgs: []any{int64(10), int64(20)},
		},
		{
			name:     "zero is a valid bound",
			filters:  Filters{"duration": map[string]any{"min": float64(0)}},
			wantSQL:  "duration >= ?",
			wantArgs: []any{int64(0)},
		},
		{
			name:     "digit strings are bounds",
			filters:  Filters{"duration": map[string]any{"min": "5", "max": "abc"}},
			wantSQL:  "duration >= ?",
			wantArgs: []any{int64(5)},
		},
		{
			name:    "non-numeric bounds place no constraint",
			filters: Filters{"duration": map[string]any{"min": "soon", "max": -3.0}},
		},
		{
			name:        "range on a non-range column is ignored",
			filters:     Filters{"status": map[string]any{"min": 1}},
			wantIgnored: []string{"status"},
		},
		{
			name:        "unknown names are ignored",
			filters:     Filters{"color": "blue", "status": "Active"},
			wantSQL:     "status = ?",
			wantArgs:    []any{"Active"},
			wantIgnored: []string{"color"},
		},
		{
			name: "filters are AND-combined",
			filters: Filters{
				"status":   "Active",
				"duration": map[string]any{"max": float64(30)},
			},
			wantSQL:  "(duration <= ? AND status = ?)",
			wantArgs: []any{int64(30), "Active"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, ignored := compileFilters(tt.filters, columns)
			sql, args := toSQL(expr)

			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
			assert.Equal(t, tt.wantIgnored, ignored)
		})
	}
}

func TestParseBound(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int64
		wantOK bool
	}{
		{name: "nil", value: nil},
		{name: "int", value: 7, want: 7, wantOK: true},
		{name: "zero", value: 0, want: 0, wantOK: true},
		{name: "negative int", value: -1},
		{name: "whole float", value: float64(12), want: 12, wantOK: true},
		{name: "fractional float", value: 1.5},
		{name: "json number", value: json.Number("42"), want: 42, wantOK: true},
		{name: "digit string", value: "30", want: 30, wantOK: true},
		{name: "signed string", value: "-30"},
		{name: "empty string", value: ""},
		{name: "bool", value: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseBound(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsFalsy(t *testing.T) {
	assert.True(t, isFalsy(nil))
	assert.True(t, isFalsy(""))
	assert.True(t, isFalsy(false))
	assert.True(t, isFalsy(float64(0)))
	assert.True(t, isFalsy(0))
	assert.False(t, isFalsy("x"))
	assert.False(t, isFalsy(true))
	assert.False(t, isFalsy(float64(3)))
}

func TestTermsExpr(t *testing.T) {
	assert.Nil(t, termsExpr(nil, "title"))
	assert.Nil(t, termsExpr([]string{""}, "title"))

	sql, args := toSQL(termsExpr([]string{"Heart", "lung"}, "title", "description"))
	assert.Equal(t, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", sql)
	assert.Equal(t, []any{"%heart%", "%heart%", "%lung%", "%lung%"}, args)
}
