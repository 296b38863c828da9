package monitor

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fovesdk/fove-go/capi"
)

func TestModel_TickPollsAndReschedules(t *testing.T) {
	polls := 0
	m := New(func() Sample {
		polls++
		return Sample{Frame: capi.FrameTimestamp{ID: uint64(polls)}}
	}, 10*time.Millisecond)

	updated, cmd := m.Update(tickMsg(time.Now()))
	if polls != 1 {
		t.Fatalf("poller called %d times, want 1", polls)
	}
	if cmd == nil {
		t.Fatal("tick must reschedule itself")
	}

	view := updated.View()
	if !strings.Contains(view, "frame:    1") {
		t.Errorf("view missing frame line:\n%s", view)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := New(func() Sample { return Sample{} }, time.Second)
	for _, key := range []string{"q", "ctrl+c", "esc"} {
		var msg tea.KeyMsg
		switch key {
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("key %q should quit", key)
		}
	}
}

func TestModel_ViewBeforeFirstSample(t *testing.T) {
	m := New(func() Sample { return Sample{} }, time.Second)
	if !strings.Contains(m.View(), "waiting for first sample") {
		t.Errorf("initial view should show the waiting line:\n%s", m.View())
	}
}

func TestModel_ViewDegradedSample(t *testing.T) {
	depth := float32(2)
	m := New(nil, time.Second)
	m.ticks = 1
	m.sample = Sample{
		Frame:   capi.FrameTimestamp{ID: 3},
		Quality: "Data_Unreliable",
		Depth:   &depth,
	}
	view := m.View()
	if !strings.Contains(view, "Data_Unreliable") {
		t.Errorf("view missing quality line:\n%s", view)
	}
	if !strings.Contains(view, "gaze:     -") {
		t.Errorf("view should dash out a missing gaze ray:\n%s", view)
	}
	if !strings.Contains(view, "depth:    2.00m") {
		t.Errorf("view missing depth line:\n%s", view)
	}
}
