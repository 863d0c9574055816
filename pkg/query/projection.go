// Package query builds parameterized PostgreSQL queries from logical
// field names mapped onto table columns.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps logical field names to qualified column references
// for a table (and optional joins).
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	joins   []string
	columns map[string]string
	ordered []string
}

// NewProjectionMap creates a ProjectionMap for schema.table with an alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project maps a column on the current table to a logical field name.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.columns[field] = qualified
	p.ordered = append(p.ordered, qualified)
	return p
}

// Join appends a join clause; subsequent Project calls still reference
// the base alias, so joined columns should be projected with ProjectAs.
func (p *ProjectionMap) Join(kind, schema, table, alias, on string) *ProjectionMap {
	p.joins = append(p.joins, fmt.Sprintf("%s %s.%s %s ON %s", kind, schema, table, alias, on))
	return p
}

// ProjectAs maps an explicitly qualified column to a logical field name.
func (p *ProjectionMap) ProjectAs(qualified, field string) *ProjectionMap {
	p.columns[field] = qualified
	p.ordered = append(p.ordered, qualified)
	return p
}

// Column resolves a logical field name to its qualified column, or
// returns the input unchanged when unmapped.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.columns[field]; ok {
		return col
	}
	return field
}

// Columns returns the projected column list for a SELECT clause.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ordered, ", ")
}

// From returns the FROM clause source including any joins.
func (p *ProjectionMap) From() string {
	from := fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
	if len(p.joins) > 0 {
		from += " " + strings.Join(p.joins, " ")
	}
	return from
}
