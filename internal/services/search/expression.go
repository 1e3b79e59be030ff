package search

import (
	"strings"

	"gorm.io/gorm"
)

// Expression is a composable predicate over one collection's columns.
// Field names always come from a provider's allow-list, never from the caller.
type Expression interface {
	// expr is a marker method to distinguish expressions from other values
	expr()
}

type baseExpr struct{}

func (baseExpr) expr() {}

// AndExpr matches when every child matches
type AndExpr struct {
	baseExpr
	Exprs []Expression
}

// And combines expressions with AND, dropping nil entries
func And(exprs ...Expression) Expression {
	return AndExpr{Exprs: compact(exprs)}
}

// OrExpr matches when any child matches
type OrExpr struct {
	baseExpr
	Exprs []Expression
}

// Or combines expressions with OR, dropping nil entries
func Or(exprs ...Expression) Expression {
	return OrExpr{Exprs: compact(exprs)}
}

// EqExpr is an equality comparison
type EqExpr struct {
	baseExpr
	Field string
	Value any
}

// Eq creates an equality comparison
func Eq(field string, value any) Expression {
	return EqExpr{Field: field, Value: value}
}

// RangeExpr is an inclusive range. A nil bound is open.
type RangeExpr struct {
	baseExpr
	Field string
	Min   any
	Max   any
}

// Range creates an inclusive range comparison
func Range(field string, min, max any) Expression {
	return RangeExpr{Field: field, Min: min, Max: max}
}

// GtExpr is a strict greater-than comparison
type GtExpr struct {
	baseExpr
	Field string
	Value any
}

// Gt creates a greater-than comparison
func Gt(field string, value any) Expression {
	return GtExpr{Field: field, Value: value}
}

// LikeExpr is a case-insensitive substring match
type LikeExpr struct {
	baseExpr
	Field string
	Term  string
}

// Like creates a case-insensitive substring match
func Like(field, term string) Expression {
	return LikeExpr{Field: field, Term: term}
}

// NullOrEqExpr matches rows where the column is NULL or equals Value
type NullOrEqExpr struct {
	baseExpr
	Field string
	Value any
}

// NullOrEq creates a NULL-or-equal comparison
func NullOrEq(field string, value any) Expression {
	return NullOrEqExpr{Field: field, Value: value}
}

func compact(exprs []Expression) []Expression {
	out := make([]Expression, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// toSQL renders an expression as a parameterised WHERE fragment.
// An empty string means the expression places no constraint.
func toSQL(e Expression) (string, []any) {
	switch x := e.(type) {
	case nil:
		return "", nil
	case EqExpr:
		return x.Field + " = ?", []any{x.Value}
	case GtExpr:
		return x.Field + " > ?", []any{x.Value}
	case NullOrEqExpr:
		return "(" + x.Field + " IS NULL OR " + x.Field + " = ?)", []any{x.Value}
	case LikeExpr:
		return "LOWER(" + x.Field + ") LIKE ?", []any{"%" + strings.ToLower(x.Term) + "%"}
	case RangeExpr:
		var parts []string
		var args []any
		if x.Min != nil {
			parts = append(parts, x.Field+" >= ?")
			args = append(args, x.Min)
		}
		if x.Max != nil {
			parts = append(parts, x.Field+" <= ?")
			args = append(args, x.Max)
		}
		return joinSQL(parts, " AND "), args
	case AndExpr:
		return combine(x.Exprs, " AND ")
	case OrExpr:
		return combine(x.Exprs, " OR ")
	default:
		return "", nil
	}
}

func combine(exprs []Expression, sep string) (string, []any) {
	var parts []string
	var args []any
	for _, child := range exprs {
		sql, childArgs := toSQL(child)
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}
	return joinSQL(parts, sep), args
}

func joinSQL(parts []string, sep string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return "(" + strings.Join(parts, sep) + ")"
	}
}

// applyExpr adds the expression as a WHERE clause, leaving db untouched when it is empty
func applyExpr(db *gorm.DB, e Expression) *gorm.DB {
	sql, args := toSQL(e)
	if sql == "" {
		return db
	}
	return db.Where(sql, args...)
}
