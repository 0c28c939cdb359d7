package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"w does nothing", runeKey('w'), core.ActionNone},
		{"space does nothing", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHeldKeys(120 * time.Millisecond)

	h.Press(core.ActionLeft, start)
	h.Press(core.ActionNone, start)

	tests := []struct {
		after time.Duration
		left  bool
	}{
		{0, true},
		{100 * time.Millisecond, true},
		{120 * time.Millisecond, true},
		{121 * time.Millisecond, false},
	}

	for _, tc := range tests {
		f := h.Frame(start.Add(tc.after))
		if f.Has(core.ActionLeft) != tc.left {
			t.Errorf("after %v: left held = %v, expected %v", tc.after, f.Has(core.ActionLeft), tc.left)
		}
		if f.Has(core.ActionNone) || f.Has(core.ActionRight) {
			t.Errorf("after %v: unexpected actions %v", tc.after, f.Actions)
		}
	}
}

func TestDefaultHoldWindowBridgesAutorepeat(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHeldKeys(config.DefaultConfig().Input.HoldWindow())

	// First press, then autorepeat after a typical 250ms delay at 30Hz.
	presses := []time.Duration{0, 250 * time.Millisecond, 283 * time.Millisecond, 316 * time.Millisecond}
	next := 0
	for at := time.Duration(0); at <= 316*time.Millisecond; at += 16 * time.Millisecond {
		for next < len(presses) && presses[next] <= at {
			h.Press(core.ActionRight, start.Add(presses[next]))
			next++
		}
		if !h.Frame(start.Add(at)).Has(core.ActionRight) {
			t.Fatalf("right released at %v while the key was held", at)
		}
	}
}

func TestHeldKeysBothDirections(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewHeldKeys(120 * time.Millisecond)
	h.Press(core.ActionLeft, now)
	h.Press(core.ActionRight, now.Add(50*time.Millisecond))

	f := h.Frame(now.Add(60 * time.Millisecond))
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("expected both directions held, got %v", f.Actions)
	}

	// Autorepeat keeps the key held
	h.Press(core.ActionLeft, now.Add(100*time.Millisecond))
	f = h.Frame(now.Add(200 * time.Millisecond))
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("expected both still held, got %v", f.Actions)
	}

	h.Reset()
	if f := h.Frame(now.Add(200 * time.Millisecond)); len(f.Actions) != 0 {
		t.Errorf("after Reset got %v, expected nothing held", f.Actions)
	}
}
