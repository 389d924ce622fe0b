package register

import (
	"errors"
	"testing"

	"github.com/dshills/regstore/internal/buffer"
	"github.com/google/go-cmp/cmp"
)

func TestResolveForPasteShaping(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		linewise bool
		mode     PasteMode
		want     []string
	}{
		{"linewise in visual", []string{"a\n", "b\n"}, true, ModeVisual, []string{"\na\n", "\nb\n"}},
		{"linewise in visual keeps leading newline", []string{"\na\n"}, true, ModeVisual, []string{"\na\n"}},
		{"charwise in visual", []string{"x"}, false, ModeVisual, []string{"x"}},
		{"charwise in visual line", []string{"x"}, false, ModeVisualLine, []string{"x\n"}},
		{"linewise in visual line", []string{"x\n"}, true, ModeVisualLine, []string{"x\n"}},
		{"linewise in normal", []string{"a\n"}, true, ModeNormal, []string{"a\n"}},
		{"charwise in visual block", []string{"x"}, false, ModeVisualBlock, []string{"x"}},
		{"empty fragment in visual", []string{""}, true, ModeVisual, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager()
			mustSet(t, m, "r", tt.values, tt.linewise)

			got, linewise, err := m.ResolveForPaste(newView("sel", buffer.NewRange(0, 3)), "r", tt.mode)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if linewise != tt.linewise {
				t.Errorf("expected linewise %v, got %v", tt.linewise, linewise)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("fragments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveForPasteVisualCapturesReplacedText(t *testing.T) {
	m, _ := newTestManager()
	mustSet(t, m, "a", []string{"X"}, false)

	v := newView("hello world", buffer.NewRange(6, 11))
	got, _, err := m.ResolveForPaste(v, "a", ModeVisual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"X"}, got); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"world"}, mustGet(t, m, nil, `"`)); diff != "" {
		t.Errorf("unnamed should hold the replaced text (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"X"}, mustGet(t, m, nil, "a")); diff != "" {
		t.Errorf("source register changed (-want +got):\n%s", diff)
	}
}

func TestResolveForPasteVisualLineCapturesLinewise(t *testing.T) {
	m, _ := newTestManager()
	mustSet(t, m, "a", []string{"X"}, false)

	v := newView("hello\nworld\n", buffer.NewRange(0, 5))
	if _, _, err := m.ResolveForPaste(v, "a", ModeVisualLine); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"hello\n"}, mustGet(t, m, nil, `"`)); diff != "" {
		t.Errorf("unnamed mismatch (-want +got):\n%s", diff)
	}
	if lw, _ := m.IsLinewise(`"`); !lw {
		t.Error("captured visual line text should be linewise")
	}
}

func TestResolveForPasteUnnamedSwap(t *testing.T) {
	m, _ := newTestManager()
	_ = m.Yank(newView("first", buffer.NewRange(0, 5)), "", Charwise)

	v := newView("second", buffer.NewRange(0, 6))
	got, _, err := m.ResolveForPaste(v, "", ModeVisual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"first"}, got); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"second"}, mustGet(t, m, nil, `"`)); diff != "" {
		t.Errorf("unnamed should hold the overwritten text (-want +got):\n%s", diff)
	}
}

func TestResolveForPasteEmptyRegister(t *testing.T) {
	m, _ := newTestManager()
	mustSet(t, m, `"`, []string{"untouched"}, false)

	got, linewise, err := m.ResolveForPaste(newView("sel", buffer.NewRange(0, 3)), "q", ModeVisual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 || linewise {
		t.Errorf("expected no fragments, got %v (linewise %v)", got, linewise)
	}
	if diff := cmp.Diff([]string{"untouched"}, mustGet(t, m, nil, `"`)); diff != "" {
		t.Errorf("empty paste should not capture (-want +got):\n%s", diff)
	}
}

func TestResolveForPasteConsumesExpression(t *testing.T) {
	m, _ := newTestManager()
	mustSet(t, m, `"`, []string{"U"}, false)
	m.SetExpression([]string{"E"})

	got, _, err := m.ResolveForPaste(newView(""), "", ModeNormal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"E"}, got); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}

	got, _, _ = m.ResolveForPaste(newView(""), "", ModeNormal)
	if diff := cmp.Diff([]string{"U"}, got); diff != "" {
		t.Errorf("expression should be consumed (-want +got):\n%s", diff)
	}
}

func TestResolveForPasteInvalidRegister(t *testing.T) {
	m, _ := newTestManager()
	if _, _, err := m.ResolveForPaste(newView(""), "xy", ModeNormal); !errors.Is(err, ErrInvalidRegisterName) {
		t.Errorf("expected ErrInvalidRegisterName, got %v", err)
	}
}

func TestPasteModeIsVisual(t *testing.T) {
	for _, pm := range []PasteMode{ModeVisual, ModeVisualLine, ModeVisualBlock} {
		if !pm.IsVisual() {
			t.Errorf("%v should be visual", pm)
		}
	}
	for _, pm := range []PasteMode{ModeNormal, ModeInsert} {
		if pm.IsVisual() {
			t.Errorf("%v should not be visual", pm)
		}
	}
}

func TestParsePasteMode(t *testing.T) {
	for pm := ModeNormal; pm <= ModeVisualBlock; pm++ {
		got, err := ParsePasteMode(pm.String())
		if err != nil || got != pm {
			t.Errorf("ParsePasteMode(%q) = %v, %v; want %v", pm.String(), got, err, pm)
		}
	}

	if _, err := ParsePasteMode("select"); !errors.Is(err, ErrInvalidPasteMode) {
		t.Errorf("ParsePasteMode(select) error = %v, want ErrInvalidPasteMode", err)
	}
}
