package querybuilder

import (
	"fmt"
	"strings"
)

// JoinType selects the SQL join keyword.
type JoinType int

const (
	JoinTypeLeft JoinType = iota + 1
)

func (j JoinType) ToString() string {
	switch j {
	case JoinTypeLeft:
		return "LEFT JOIN"
	default:
		return ""
	}
}

type join struct {
	joinType JoinType
	table    string
	alias    string
	on       string
}

type condition struct {
	clause string
	args   []interface{}
}

// QueryBuilder assembles SELECT and INSERT statements with '?' placeholders.
// Callers rebind the result for their driver (sqlx.Rebind).
type QueryBuilder interface {
	Select(cols ...string) QueryBuilder
	From(table string) QueryBuilder
	Join(joinType JoinType, table, alias, on string) QueryBuilder
	Where(clause string, args ...interface{}) QueryBuilder
	And(clause string, args ...interface{}) QueryBuilder
	OrderBy(col string, asc bool) QueryBuilder

	Insert(cols ...string) QueryBuilder
	Into(table string) QueryBuilder
	Values(values ...interface{}) QueryBuilder
	OnConflict(cols ...string) QueryBuilder
	DoUpdateExcluded(cols ...string) QueryBuilder

	Build() (string, []interface{})
}

type queryBuilder struct {
	schema     string
	table      string
	cols       []string
	joins      []join
	conditions []condition
	orderBy    []string

	insert      bool
	rows        [][]interface{}
	onConflict  []string
	excludedSet []string
}

// NewQueryBuilder creates a builder; an empty schema leaves table names unqualified.
// A non-empty schema qualifies every table the builder renders, joined ones included.
func NewQueryBuilder(schema string) QueryBuilder {
	return &queryBuilder{schema: schema}
}

func (q *queryBuilder) Select(cols ...string) QueryBuilder {
	q.cols = append(q.cols, cols...)
	return q
}

func (q *queryBuilder) From(table string) QueryBuilder {
	q.table = table
	return q
}

func (q *queryBuilder) Join(joinType JoinType, table, alias, on string) QueryBuilder {
	q.joins = append(q.joins, join{
		joinType: joinType,
		table:    table,
		alias:    alias,
		on:       on,
	})
	return q
}

// Where adds a clause; successive clauses are joined with AND.
func (q *queryBuilder) Where(clause string, args ...interface{}) QueryBuilder {
	q.conditions = append(q.conditions, condition{clause: clause, args: args})
	return q
}

func (q *queryBuilder) And(clause string, args ...interface{}) QueryBuilder {
	return q.Where(clause, args...)
}

func (q *queryBuilder) OrderBy(col string, asc bool) QueryBuilder {
	direction := "ASC"
	if !asc {
		direction = "DESC"
	}
	q.orderBy = append(q.orderBy, fmt.Sprintf("%s %s", col, direction))
	return q
}

func (q *queryBuilder) Insert(cols ...string) QueryBuilder {
	q.insert = true
	q.cols = cols
	return q
}

func (q *queryBuilder) Into(table string) QueryBuilder {
	q.table = table
	return q
}

func (q *queryBuilder) Values(values ...interface{}) QueryBuilder {
	q.rows = append(q.rows, values)
	return q
}

// OnConflict without DoUpdateExcluded renders DO NOTHING.
func (q *queryBuilder) OnConflict(cols ...string) QueryBuilder {
	q.onConflict = cols
	return q
}

// DoUpdateExcluded overwrites cols with the values of the conflicting row.
func (q *queryBuilder) DoUpdateExcluded(cols ...string) QueryBuilder {
	q.excludedSet = cols
	return q
}

func (q *queryBuilder) qualify(table string) string {
	if q.schema == "" {
		return table
	}
	return fmt.Sprintf("%s.%s", q.schema, table)
}

// Build renders the statement. An insert with mismatched rows renders an empty query.
func (q *queryBuilder) Build() (string, []interface{}) {
	if q.insert {
		return q.buildInsert()
	}
	return q.buildSelect()
}

func (q *queryBuilder) buildSelect() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(q.cols, ", "), q.qualify(q.table))
	for _, j := range q.joins {
		query += fmt.Sprintf(" %s %s %s ON %s", j.joinType.ToString(), q.qualify(j.table), j.alias, j.on)
	}

	var args []interface{}
	if len(q.conditions) > 0 {
		clauses := make([]string, 0, len(q.conditions))
		for _, cond := range q.conditions {
			clauses = append(clauses, cond.clause)
			args = append(args, cond.args...)
		}
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	if len(q.orderBy) > 0 {
		query += fmt.Sprintf(" ORDER BY %s", strings.Join(q.orderBy, ", "))
	}

	return query, args
}

func (q *queryBuilder) buildInsert() (string, []interface{}) {
	if len(q.rows) == 0 || len(q.cols) == 0 {
		return "", nil
	}

	tuples := make([]string, 0, len(q.rows))
	args := make([]interface{}, 0, len(q.rows)*len(q.cols))
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(q.cols)), ", ")
	for _, row := range q.rows {
		if len(row) != len(q.cols) {
			return "", nil
		}
		tuples = append(tuples, fmt.Sprintf("(%s)", placeholders))
		args = append(args, row...)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		q.qualify(q.table), strings.Join(q.cols, ", "), strings.Join(tuples, ", "))

	if len(q.onConflict) == 0 {
		return query, args
	}

	query += fmt.Sprintf(" ON CONFLICT (%s)", strings.Join(q.onConflict, ", "))
	if len(q.excludedSet) == 0 {
		return query + " DO NOTHING", args
	}

	sets := make([]string, 0, len(q.excludedSet))
	for _, col := range q.excludedSet {
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	return query + " DO UPDATE SET " + strings.Join(sets, ", "), args
}
