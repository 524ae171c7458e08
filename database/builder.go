package database

import (
	"github.com/uptrace/bun"
)

// QueryBuilder provides a fluent, type-safe API for building column-filtered
// table queries. It is the only way handlers and services touch the store.
type QueryBuilder[T any] struct {
	db        *DB
	tableName string

	// Query clauses
	wheres    []*WhereClause
	orders    []*OrderClause
	limitVal  *int
	offsetVal *int
}

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
	Values   []any // for IN / NOT IN
	Negate   bool
}

// OrderClause represents an ORDER BY clause
type OrderClause struct {
	Column    string
	Direction string // "ASC" or "DESC"
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:     db,
		wheres: []*WhereClause{},
		orders: []*OrderClause{},
	}
}

// Table sets the table name explicitly
func (q *QueryBuilder[T]) Table(name string) *QueryBuilder[T] {
	q.tableName = name
	return q
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "=",
		Value:    value,
	})
	return q
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: operator,
		Value:    value,
	})
	return q
}

// WhereIn adds a WHERE IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IN",
		Values:   values,
	})
	return q
}

// WhereNotIn adds a WHERE NOT IN condition
func (q *QueryBuilder[T]) WhereNotIn(column string, values []any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{
		Column:   column,
		Operator: "IN",
		Values:   values,
		Negate:   true,
	})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &OrderClause{
		Column:    column,
		Direction: string(direction),
	})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// applyWheres attaches the accumulated WHERE conditions to a bun query.
// All values go through bun placeholders; nothing is interpolated by hand.
func applyWheres[T any, Q interface {
	Where(query string, args ...any) Q
}](q *QueryBuilder[T], query Q) Q {
	for _, where := range q.wheres {
		switch {
		case where.Operator == "IN" && where.Negate:
			query = query.Where("? NOT IN (?)", bun.Ident(where.Column), bun.In(where.Values))
		case where.Operator == "IN":
			query = query.Where("? IN (?)", bun.Ident(where.Column), bun.In(where.Values))
		case where.Negate:
			query = query.Where("NOT (? ? ?)", bun.Ident(where.Column), bun.Safe(where.Operator), where.Value)
		default:
			query = query.Where("? ? ?", bun.Ident(where.Column), bun.Safe(where.Operator), where.Value)
		}
	}
	return query
}

func (q *QueryBuilder[T]) applyToSelect(query *bun.SelectQuery) *bun.SelectQuery {
	if q.tableName != "" {
		query = query.ModelTableExpr("?", bun.Ident(q.tableName))
	}

	query = applyWheres(q, selectWhere{query}).q

	for _, order := range q.orders {
		query = query.OrderExpr("? ?", bun.Ident(order.Column), bun.Safe(order.Direction))
	}

	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

// selectWhere adapts bun's SelectQuery to the applyWheres constraint;
// bun's Where methods return concrete query types, not an interface.
type selectWhere struct{ q *bun.SelectQuery }

func (s selectWhere) Where(query string, args ...any) selectWhere {
	return selectWhere{s.q.Where(query, args...)}
}

type updateWhere struct{ q *bun.UpdateQuery }

func (u updateWhere) Where(query string, args ...any) updateWhere {
	return updateWhere{u.q.Where(query, args...)}
}

type deleteWhere struct{ q *bun.DeleteQuery }

func (d deleteWhere) Where(query string, args ...any) deleteWhere {
	return deleteWhere{d.q.Where(query, args...)}
}
