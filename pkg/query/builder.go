package query

import (
	"fmt"
	"reflect"
	"strings"
)

// SortField names a logical field in an ORDER BY clause.
type SortField struct {
	Field      string
	Descending bool
}

// ParseSortFields parses a comma-separated sort expression where a "-"
// prefix marks a descending field, e.g. "received,-confidence".
// Returns nil for empty input.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	var fields []SortField
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if after, ok := strings.CutPrefix(part, "-"); ok {
			fields = append(fields, SortField{Field: after, Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}
	return fields
}

type predicate struct {
	// clause holds "$%d" markers that are numbered at build time
	clause string
	args   []any
}

// Builder accumulates predicates and ordering against a projection and
// renders SELECT, COUNT, and paged queries with sequential parameters.
type Builder struct {
	projection  *ProjectionMap
	predicates  []predicate
	sort        []SortField
	defaultSort []SortField
}

// NewBuilder creates a Builder over the given projection with an
// optional default sort applied when no explicit sort is set.
func NewBuilder(projection *ProjectionMap, defaultSort ...SortField) *Builder {
	return &Builder{projection: projection, defaultSort: defaultSort}
}

// WhereEquals adds an equality predicate. Nil values are ignored.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if isNil(value) {
		return b
	}
	b.predicates = append(b.predicates, predicate{
		clause: b.projection.Column(field) + " = $%d",
		args:   []any{value},
	})
	return b
}

// WhereContains adds a case-insensitive substring predicate. Nil or
// empty values are ignored.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	b.predicates = append(b.predicates, predicate{
		clause: b.projection.Column(field) + " ILIKE $%d",
		args:   []any{"%" + *value + "%"},
	})
	return b
}

// WhereAtLeast adds a >= predicate. Nil values are ignored.
func (b *Builder) WhereAtLeast(field string, value any) *Builder {
	if isNil(value) {
		return b
	}
	b.predicates = append(b.predicates, predicate{
		clause: b.projection.Column(field) + " >= $%d",
		args:   []any{value},
	})
	return b
}

// WhereSearch adds an OR of case-insensitive substring predicates across
// fields. Nil or empty search terms are ignored.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, field := range fields {
		clauses[i] = b.projection.Column(field) + " ILIKE $%d"
		args[i] = "%" + *search + "%"
	}

	b.predicates = append(b.predicates, predicate{
		clause: "(" + strings.Join(clauses, " OR ") + ")",
		args:   args,
	})
	return b
}

// OrderByFields replaces the default sort with an explicit one.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.sort = fields
	return b
}

// Build renders a SELECT with the accumulated predicates and ordering.
func (b *Builder) Build() (string, []any) {
	where, args := b.where()
	return fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(), b.projection.From(), where, b.orderBy(),
	), args
}

// BuildCount renders a COUNT(*) with the accumulated predicates.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.where()
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.From(), where), args
}

// BuildPage renders a paged SELECT with LIMIT/OFFSET.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	where, args := b.where()
	return fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		b.projection.Columns(), b.projection.From(), where, b.orderBy(),
		pageSize, (page-1)*pageSize,
	), args
}

// BuildSingle renders a SELECT for one record by the given key field.
func (b *Builder) BuildSingle(field string, value any) (string, []any) {
	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(), b.projection.From(), b.projection.Column(field),
	), []any{value}
}

func (b *Builder) where() (string, []any) {
	if len(b.predicates) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.predicates))
	var args []any
	param := 1

	for _, p := range b.predicates {
		markers := make([]any, len(p.args))
		for i := range p.args {
			markers[i] = param
			param++
		}
		clauses = append(clauses, fmt.Sprintf(p.clause, markers...))
		args = append(args, p.args...)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (b *Builder) orderBy() string {
	fields := b.sort
	if len(fields) == 0 {
		fields = b.defaultSort
	}
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		parts[i] = b.projection.Column(f.Field) + " " + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}
