package form

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// fakeInput is a minimal Input for driving the form in tests.
type fakeInput struct {
	value   any
	focused bool
	resets  int
	action  Action
}

func (f *fakeInput) Focus(help.KeyMap) tea.Cmd { f.focused = true; return nil }
func (f *fakeInput) Blur()                     { f.focused = false }
func (f *fakeInput) Reset()                    { f.resets++; f.value = nil }
func (f *fakeInput) Init() tea.Cmd             { return nil }
func (f *fakeInput) Set(v any)                 { f.value = v }
func (f *fakeInput) Get() any                  { return f.value }
func (f *fakeInput) View(int) string           { return "" }

func (f *fakeInput) Update(tea.Msg) (tea.Cmd, Action) {
	a := f.action
	f.action = ActionNone
	return nil, a
}

type loginData struct {
	User   string `mapstructure:"user"`
	Active bool   `mapstructure:"active"`
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestForm_GetDecodesValues(t *testing.T) {
	user := &fakeInput{value: "rei"}
	active := &fakeInput{value: true}
	f := New(
		WithInput[loginData]("user", user),
		WithInput[loginData]("active", active),
	)

	got, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.User != "rei" || !got.Active {
		t.Fatalf("decoded %+v", got)
	}
}

func TestForm_SetDistributesValues(t *testing.T) {
	user := &fakeInput{}
	active := &fakeInput{}
	f := New(
		WithInput[loginData]("user", user),
		WithInput[loginData]("active", active),
	)

	if err := f.Set(loginData{User: "rei", Active: true}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if user.value != "rei" {
		t.Fatalf("user input got %v", user.value)
	}
	if active.value != true {
		t.Fatalf("active input got %v", active.value)
	}
}

func TestForm_TabMovesFocus(t *testing.T) {
	first := &fakeInput{}
	second := &fakeInput{}
	f := New(
		WithInput[loginData]("user", first),
		WithInput[loginData]("active", second),
	)

	_ = f.Focus(nil)
	if !first.focused {
		t.Fatal("first input must take focus")
	}

	f, _ = f.Update(keyMsg(tea.KeyTab))
	if first.focused || !second.focused {
		t.Fatalf("focus did not advance: first=%v second=%v", first.focused, second.focused)
	}

	// Wrap around.
	f, _ = f.Update(keyMsg(tea.KeyTab))
	if !first.focused || second.focused {
		t.Fatal("focus did not wrap to the first input")
	}

	f, _ = f.Update(keyMsg(tea.KeyShiftTab))
	if !second.focused {
		t.Fatal("shift+tab did not move focus backwards")
	}
}

func TestForm_SubmitActionInvokesOnSubmit(t *testing.T) {
	user := &fakeInput{value: "rei"}
	button := &fakeInput{action: ActionSubmit}

	var got loginData
	submitted := false
	f := New(
		WithInput[loginData]("user", user),
		WithInput[loginData]("active", &fakeInput{value: false}),
		WithInput[loginData]("go", button),
		WithOnSubmit(func(result loginData, err error) tea.Cmd {
			if err != nil {
				t.Fatalf("submit error: %v", err)
			}
			submitted = true
			got = result
			return nil
		}),
	)

	_ = f.Focus(nil)
	f, _ = f.Update(keyMsg(tea.KeyTab))
	f, _ = f.Update(keyMsg(tea.KeyTab))

	// Any message reaching the button triggers its pending action.
	f, _ = f.Update(keyMsg(tea.KeyEnter))
	if !submitted {
		t.Fatal("OnSubmit was not called")
	}
	if got.User != "rei" {
		t.Fatalf("submitted %+v", got)
	}
}

func TestForm_CancelActionInvokesOnCancel(t *testing.T) {
	cancelled := false
	f := New(
		WithInput[loginData]("user", &fakeInput{action: ActionCancel}),
		WithOnCancel[loginData](func() tea.Cmd {
			cancelled = true
			return nil
		}),
	)

	_ = f.Focus(nil)
	f, _ = f.Update(keyMsg(tea.KeyEnter))
	if !cancelled {
		t.Fatal("OnCancel was not called")
	}
}

func TestForm_ResetClearsInputs(t *testing.T) {
	first := &fakeInput{value: "a"}
	second := &fakeInput{value: "b"}
	f := New(
		WithInput[loginData]("user", first),
		WithInput[loginData]("active", second),
	)

	_ = f.Focus(nil)
	f, _ = f.Update(keyMsg(tea.KeyTab))
	_ = f.Reset()

	if first.resets != 1 || second.resets != 1 {
		t.Fatalf("resets: %d, %d", first.resets, second.resets)
	}
	if !first.focused {
		t.Fatal("reset must move focus back to the first input")
	}
}

func TestForm_UnfocusedIgnoresKeys(t *testing.T) {
	first := &fakeInput{action: ActionSubmit}
	called := false
	f := New(
		WithInput[loginData]("user", first),
		WithOnSubmit(func(loginData, error) tea.Cmd {
			called = true
			return nil
		}),
	)

	f, _ = f.Update(keyMsg(tea.KeyEnter))
	if called {
		t.Fatal("unfocused form must not dispatch to inputs")
	}
}
