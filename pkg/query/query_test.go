package query_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/jmcandrew/stevedore/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "intake_records", "r").
		Project("id", "ID").
		Project("filename", "Filename").
		Project("supplier", "Supplier").
		Project("confidence", "Confidence").
		Project("received_at", "ReceivedAt")
}

func ptr[T any](v T) *T { return &v }

func TestProjectionMapColumns(t *testing.T) {
	p := testProjection()
	want := "r.id, r.filename, r.supplier, r.confidence, r.received_at"
	if got := p.Columns(); got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumn(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"mapped field", "Filename", "r.filename"},
		{"unmapped passthrough", "unknown", "unknown"},
	}

	p := testProjection()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.field); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestProjectionMapFrom(t *testing.T) {
	t.Run("base table", func(t *testing.T) {
		want := "public.intake_records r"
		if got := testProjection().From(); got != want {
			t.Errorf("From() = %q, want %q", got, want)
		}
	})

	t.Run("with join", func(t *testing.T) {
		p := testProjection().
			Join("LEFT JOIN", "public", "suppliers", "s", "r.supplier = s.name").
			ProjectAs("s.rating", "SupplierRating")

		want := "public.intake_records r LEFT JOIN public.suppliers s ON r.supplier = s.name"
		if got := p.From(); got != want {
			t.Errorf("From() = %q, want %q", got, want)
		}
		if got := p.Column("SupplierRating"); got != "s.rating" {
			t.Errorf("Column(SupplierRating) = %q, want s.rating", got)
		}
	})
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty string", "", nil},
		{"single ascending", "Supplier", []query.SortField{{Field: "Supplier"}}},
		{"single descending", "-ReceivedAt", []query.SortField{{Field: "ReceivedAt", Descending: true}}},
		{
			"mixed list",
			"Supplier,-Confidence",
			[]query.SortField{{Field: "Supplier"}, {Field: "Confidence", Descending: true}},
		},
		{"whitespace and empties", " Supplier , ", []query.SortField{{Field: "Supplier"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuilderBuild(t *testing.T) {
	t.Run("no predicates", func(t *testing.T) {
		sql, args := query.NewBuilder(testProjection()).Build()
		want := "SELECT r.id, r.filename, r.supplier, r.confidence, r.received_at FROM public.intake_records r"
		if sql != want {
			t.Errorf("Build() = %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("default sort applies", func(t *testing.T) {
		sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "ReceivedAt", Descending: true}).Build()
		want := " ORDER BY r.received_at DESC"
		if !contains(sql, want) {
			t.Errorf("Build() = %q, want suffix %q", sql, want)
		}
	})

	t.Run("explicit sort replaces default", func(t *testing.T) {
		sql, _ := query.
			NewBuilder(testProjection(), query.SortField{Field: "ReceivedAt", Descending: true}).
			OrderByFields([]query.SortField{{Field: "Supplier"}}).
			Build()
		if !contains(sql, " ORDER BY r.supplier ASC") {
			t.Errorf("Build() = %q, want ORDER BY r.supplier ASC", sql)
		}
	})
}

func TestBuilderPredicates(t *testing.T) {
	t.Run("sequential parameter numbering", func(t *testing.T) {
		sql, args := query.NewBuilder(testProjection()).
			WhereEquals("Supplier", ptr("Maersk")).
			WhereContains("Filename", ptr("invoice")).
			WhereAtLeast("Confidence", ptr(80)).
			Build()

		want := "SELECT r.id, r.filename, r.supplier, r.confidence, r.received_at " +
			"FROM public.intake_records r " +
			"WHERE r.supplier = $1 AND r.filename ILIKE $2 AND r.confidence >= $3"
		if sql != want {
			t.Errorf("Build() = %q, want %q", sql, want)
		}
		if len(args) != 3 {
			t.Fatalf("args length = %d, want 3", len(args))
		}
		if args[1] != "%invoice%" {
			t.Errorf("args[1] = %v, want %%invoice%%", args[1])
		}
	})

	t.Run("nil values skipped", func(t *testing.T) {
		sql, args := query.NewBuilder(testProjection()).
			WhereEquals("Supplier", (*string)(nil)).
			WhereContains("Filename", nil).
			WhereAtLeast("Confidence", (*int)(nil)).
			Build()

		if contains(sql, "WHERE") {
			t.Errorf("Build() = %q, want no WHERE clause", sql)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("search spans fields with OR", func(t *testing.T) {
		sql, args := query.NewBuilder(testProjection()).
			WhereSearch(ptr("maersk"), "Filename", "Supplier").
			Build()

		want := "WHERE (r.filename ILIKE $1 OR r.supplier ILIKE $2)"
		if !contains(sql, want) {
			t.Errorf("Build() = %q, want clause %q", sql, want)
		}
		if len(args) != 2 {
			t.Errorf("args length = %d, want 2", len(args))
		}
	})
}

func TestBuilderBuildCount(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("Supplier", ptr("Maersk")).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.intake_records r WHERE r.supplier = $1"
	if sql != want {
		t.Errorf("BuildCount() = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args length = %d, want 1", len(args))
	}
}

func TestBuilderBuildPage(t *testing.T) {
	sql, _ := query.
		NewBuilder(testProjection(), query.SortField{Field: "ReceivedAt", Descending: true}).
		BuildPage(3, 20)

	if !contains(sql, "LIMIT 20 OFFSET 40") {
		t.Errorf("BuildPage(3, 20) = %q, want LIMIT 20 OFFSET 40", sql)
	}
}

func TestBuilderBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", "abc")

	want := "SELECT r.id, r.filename, r.supplier, r.confidence, r.received_at " +
		"FROM public.intake_records r WHERE r.id = $1"
	if sql != want {
		t.Errorf("BuildSingle() = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args = %v, want [abc]", args)
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
