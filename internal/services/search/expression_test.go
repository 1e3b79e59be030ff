package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSQL(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expression
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "nil places no constraint",
			expr:    nil,
			wantSQL: "",
		},
		{
			name:     "equality",
			expr:     Eq("status", "Active"),
			wantSQL:  "status = ?",
			wantArgs: []any{"Active"},
		},
		{
			name:     "like lowers the term",
			expr:     Like("title", "CaNcEr"),
			wantSQL:  "LOWER(title) LIKE ?",
			wantArgs: []any{"%cancer%"},
		},
		{
			name:     "closed range",
			expr:     Range("duration", int64(10), int64(20)),
			wantSQL:  "(duration >= ? AND duration <= ?)",
			wantArgs: []any{int64(10), int64(20)},
		},
		{
			name:     "open upper bound",
			expr:     Range("duration", int64(0), nil),
			wantSQL:  "duration >= ?",
			wantArgs: []any{int64(0)},
		},
		{
			name:    "fully open range",
			expr:    Range("duration", nil, nil),
			wantSQL: "",
		},
		{
			name:     "greater than",
			expr:     Gt("citations_count", 100),
			wantSQL:  "citations_count > ?",
			wantArgs: []any{100},
		},
		{
			name:     "null or equal",
			expr:     NullOrEq("organization_id", "org-1"),
			wantSQL:  "(organization_id IS NULL OR organization_id = ?)",
			wantArgs: []any{"org-1"},
		},
		{
			name:     "or of equalities",
			expr:     Or(Eq("status", "Recruiting"), Eq("status", "Active")),
			wantSQL:  "(status = ? OR status = ?)",
			wantArgs: []any{"Recruiting", "Active"},
		},
		{
			name:     "and drops nil and empty children",
			expr:     And(nil, Eq("phase", "Phase I"), Range("duration", nil, nil)),
			wantSQL:  "phase = ?",
			wantArgs: []any{"Phase I"},
		},
		{
			name: "nested groups keep their parentheses",
			expr: And(
				Or(Like("title", "a"), Like("drug", "a")),
				Eq("status", "Active"),
			),
			wantSQL:  "((LOWER(title) LIKE ? OR LOWER(drug) LIKE ?) AND status = ?)",
			wantArgs: []any{"%a%", "%a%", "Active"},
		},
		{
			name:    "empty or places no constraint",
			expr:    Or(),
			wantSQL: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := toSQL(tt.expr)
			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestApplyExpr_EmptyLeavesQueryUntouched(t *testing.T) {
	db := setupTestDB(t)
	seedStudies(t, db)

	var count int64
	err := applyExpr(db.Table("clinical_studies"), Or()).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	err = applyExpr(db.Table("clinical_studies"), Eq("status", "Active")).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
