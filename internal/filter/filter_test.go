package filter

import (
	"reflect"
	"testing"

	"github.com/toeirei/tablekit/internal/model"
	"github.com/toeirei/tablekit/internal/optionset"
)

func TestResolveMode(t *testing.T) {
	cases := []struct {
		fn   string
		want Mode
	}{
		{FnIncludesSome, ModeMulti},
		{"", ModeSingle},
		{"equals", ModeSingle},
		{"arrIncludesAll", ModeSingle},
	}
	for _, tc := range cases {
		if got := ResolveMode(tc.fn); got != tc.want {
			t.Errorf("ResolveMode(%q) = %v, want %v", tc.fn, got, tc.want)
		}
	}
}

func TestMode_FieldName(t *testing.T) {
	if ModeSingle.FieldName() != "filter" {
		t.Fatalf("single mode field = %q", ModeSingle.FieldName())
	}
	if ModeMulti.FieldName() != "filters" {
		t.Fatalf("multi mode field = %q", ModeMulti.FieldName())
	}
}

func TestMemorySink_SetAndClear(t *testing.T) {
	s := NewMemorySink()
	s.SetFilter("status", []string{"open", "closed"})
	if got := s.Values("status"); !reflect.DeepEqual(got, []string{"open", "closed"}) {
		t.Fatalf("Values = %v", got)
	}

	s.ClearFilter("status")
	if got := s.Values("status"); got != nil {
		t.Fatalf("expected cleared filter, got %v", got)
	}
}

func TestMemorySink_NoFilterSentinelClears(t *testing.T) {
	s := NewMemorySink()
	s.SetFilter("status", []string{"open"})

	// A lone empty-string selection means "no filter".
	s.SetFilter("status", []string{NoFilter})
	if got := s.Values("status"); got != nil {
		t.Fatalf("sentinel must clear the filter, got %v", got)
	}

	// Mixed in with real values the sentinel is just dropped.
	s.SetFilter("status", []string{NoFilter, "open"})
	if got := s.Values("status"); !reflect.DeepEqual(got, []string{"open"}) {
		t.Fatalf("got %v", got)
	}
}

func TestMemorySink_EmptySelectionClears(t *testing.T) {
	s := NewMemorySink()
	s.SetFilter("status", []string{"open"})
	s.SetFilter("status", nil)
	if got := s.Values("status"); got != nil {
		t.Fatalf("empty selection must clear, got %v", got)
	}
}

func TestMemorySink_Matches(t *testing.T) {
	row := model.Row{
		"status": optionset.String("open"),
		"pri":    optionset.Number(2),
	}

	s := NewMemorySink()
	if !s.Matches(row) {
		t.Fatal("unfiltered sink must match every row")
	}

	s.SetFilter("status", []string{"open", "stale"})
	if !s.Matches(row) {
		t.Fatal("row should match status filter")
	}

	s.SetFilter("pri", []string{"3"})
	if s.Matches(row) {
		t.Fatal("row should fail the priority filter")
	}

	s.SetFilter("pri", []string{"2"})
	if !s.Matches(row) {
		t.Fatal("row should match both filters via string form")
	}

	// Filters on absent columns compare against the null cell's empty string.
	s.SetFilter("owner", []string{"alice"})
	if s.Matches(row) {
		t.Fatal("row without the column should not match")
	}
}

func TestMemorySink_FilteredColumns(t *testing.T) {
	s := NewMemorySink()
	s.SetFilter("b", []string{"1"})
	s.SetFilter("a", []string{"2"})
	if got := s.FilteredColumns(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("FilteredColumns = %v", got)
	}
}
