package selectfilter

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/tablekit/internal/datasource"
	"github.com/toeirei/tablekit/internal/filter"
	"github.com/toeirei/tablekit/internal/model"
	"github.com/toeirei/tablekit/internal/optionset"
)

func testProvider() *datasource.Memory {
	return datasource.NewMemory(&model.Dataset{
		Columns: []model.Column{
			{ID: "status", Title: "Status", FilterFn: filter.FnIncludesSome},
			{ID: "pri", Title: "Priority"},
		},
		Rows: []model.Row{
			{"status": optionset.String("open"), "pri": optionset.Number(2)},
			{"status": optionset.String("closed"), "pri": optionset.Number(1)},
			{"status": optionset.String("open"), "pri": optionset.Number(3)},
		},
	})
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// drain runs a command tree and collects every produced message.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findClosed(msgs []tea.Msg) (ClosedMsg, bool) {
	for _, m := range msgs {
		if closed, ok := m.(ClosedMsg); ok {
			return closed, true
		}
	}
	return ClosedMsg{}, false
}

func TestNew_DerivesOptionsFromRows(t *testing.T) {
	provider := testProvider()
	col, _ := provider.Dataset().Column("status")
	m := New(col, provider, filter.NewMemorySink())

	opts := m.choice.Options()
	if len(opts) != 2 {
		t.Fatalf("expected deduplicated options, got %v", opts)
	}
	if opts[0].Value != "closed" || opts[1].Value != "open" {
		t.Fatalf("options out of order: %v", opts)
	}
}

func TestNew_ExternalOptionsWin(t *testing.T) {
	provider := testProvider()
	col := model.Column{
		ID:            "status",
		Title:         "Status",
		FilterOptions: []optionset.Value{optionset.String("b"), optionset.String("a"), optionset.String("b")},
	}
	m := New(col, provider, filter.NewMemorySink())

	opts := m.choice.Options()
	if len(opts) != 2 || opts[0].Value != "a" || opts[1].Value != "b" {
		t.Fatalf("external options must win over row data, got %v", opts)
	}
}

func TestApplyFlow_MultiMode(t *testing.T) {
	provider := testProvider()
	sink := filter.NewMemorySink()
	col, _ := provider.Dataset().Column("status")
	m := New(col, provider, sink)

	_ = m.Focus(nil)

	// Toggle the first option ("closed"), move to the apply button, click.
	m.Update(keyMsg(tea.KeySpace))
	m.Update(keyMsg(tea.KeyTab))
	cmd := m.Update(keyMsg(tea.KeyEnter))

	if got := sink.Values("status"); !reflect.DeepEqual(got, []string{"closed"}) {
		t.Fatalf("sink values = %v", got)
	}

	closed, ok := findClosed(drain(cmd))
	if !ok {
		t.Fatal("apply must emit a ClosedMsg")
	}
	if !closed.Applied || closed.ColumnID != "status" {
		t.Fatalf("closed = %+v", closed)
	}
}

func TestApplyFlow_SingleMode(t *testing.T) {
	provider := testProvider()
	sink := filter.NewMemorySink()
	col, _ := provider.Dataset().Column("pri")
	m := New(col, provider, sink)

	_ = m.Focus(nil)

	// Select the second option ("2") and apply.
	m.Update(keyMsg(tea.KeyDown))
	m.Update(keyMsg(tea.KeySpace))
	m.Update(keyMsg(tea.KeyTab))
	cmd := m.Update(keyMsg(tea.KeyEnter))

	if got := sink.Values("pri"); !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("sink values = %v", got)
	}
	if closed, ok := findClosed(drain(cmd)); !ok || !closed.Applied {
		t.Fatalf("expected applied close, got %+v", closed)
	}
}

func TestApplyFlow_EmptySelectionClearsFilter(t *testing.T) {
	provider := testProvider()
	sink := filter.NewMemorySink()
	sink.SetFilter("pri", []string{"1"})

	col, _ := provider.Dataset().Column("pri")
	m := New(col, provider, sink)

	_ = m.Focus(nil)

	// Apply with nothing selected: the single-mode field carries the
	// no-filter sentinel, which clears the column.
	m.Update(keyMsg(tea.KeyTab))
	_ = m.Update(keyMsg(tea.KeyEnter))

	if got := sink.Values("pri"); got != nil {
		t.Fatalf("empty selection must clear the filter, got %v", got)
	}
}

func TestResetFlow_ClearsAndCloses(t *testing.T) {
	provider := testProvider()
	sink := filter.NewMemorySink()
	sink.SetFilter("status", []string{"open"})

	col, _ := provider.Dataset().Column("status")
	m := New(col, provider, sink)

	_ = m.Focus(nil)

	// Move to the reset button (choice -> apply -> reset) and click it.
	m.Update(keyMsg(tea.KeyTab))
	m.Update(keyMsg(tea.KeyTab))
	cmd := m.Update(keyMsg(tea.KeyEnter))

	if got := sink.Values("status"); got != nil {
		t.Fatalf("reset must clear the filter, got %v", got)
	}
	closed, ok := findClosed(drain(cmd))
	if !ok {
		t.Fatal("reset must emit a ClosedMsg")
	}
	if closed.Applied {
		t.Fatal("reset close must not report applied")
	}
}

func TestRefresh_RecomputesOnGenerationChange(t *testing.T) {
	provider := testProvider()
	sink := filter.NewMemorySink()
	col, _ := provider.Dataset().Column("status")
	m := New(col, provider, sink)

	if len(m.choice.Options()) != 2 {
		t.Fatalf("initial options: %v", m.choice.Options())
	}

	// Same generation: no recompute even if data changed under the hood.
	m.Refresh()
	if len(m.choice.Options()) != 2 {
		t.Fatal("refresh without generation change must be a no-op")
	}

	provider.Replace(&model.Dataset{
		Columns: []model.Column{{ID: "status", Title: "Status"}},
		Rows: []model.Row{
			{"status": optionset.String("stale")},
		},
	})
	m.Refresh()

	opts := m.choice.Options()
	if len(opts) != 1 || opts[0].Value != "stale" {
		t.Fatalf("options after refresh: %v", opts)
	}
}

func TestPreselect(t *testing.T) {
	provider := testProvider()
	sink := filter.NewMemorySink()
	col, _ := provider.Dataset().Column("status")
	m := New(col, provider, sink)

	m.Preselect([]string{"open"})
	_ = m.Focus(nil)
	m.Update(keyMsg(tea.KeyTab))
	_ = m.Update(keyMsg(tea.KeyEnter))

	if got := sink.Values("status"); !reflect.DeepEqual(got, []string{"open"}) {
		t.Fatalf("preselected apply = %v", got)
	}
}
