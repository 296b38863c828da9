// Package monitor implements the live terminal view behind `fovectl watch`.
package monitor

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fovesdk/fove-go/capi"
)

// Sample is one snapshot of the tracking state. Pointer fields are nil when
// the runtime had no usable value for them.
type Sample struct {
	Frame       capi.FrameTimestamp
	Quality     string
	Ray         *capi.Ray
	Depth       *float32
	Pose        *capi.Pose
	UserPresent bool
	EyeLeft     capi.EyeState
	EyeRight    capi.EyeState
}

// Poller produces the next sample. It is called from the update loop, once
// per refresh tick.
type Poller func() Sample

// Model is the bubbletea model for the watch view.
type Model struct {
	poll     Poller
	interval time.Duration
	sample   Sample
	ticks    int
}

// New creates a watch model polling at the given interval.
func New(poll Poller, interval time.Duration) Model {
	return Model{poll: poll, interval: interval}
}

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		m.sample = m.poll()
		m.ticks++
		return m, tick(m.interval)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("FOVE headset monitor\n")
	b.WriteString("====================\n\n")

	s := m.sample
	if m.ticks == 0 {
		b.WriteString("waiting for first sample...\n")
	} else {
		fmt.Fprintf(&b, "frame:    %d (t=%dus)\n", s.Frame.ID, s.Frame.Timestamp)
		if s.Quality != "" {
			fmt.Fprintf(&b, "quality:  %s\n", s.Quality)
		}
		fmt.Fprintf(&b, "present:  %v\n", s.UserPresent)
		fmt.Fprintf(&b, "eyes:     L=%s R=%s\n", s.EyeLeft, s.EyeRight)
		if s.Ray != nil {
			d := s.Ray.Direction
			fmt.Fprintf(&b, "gaze:     (%.3f, %.3f, %.3f)\n", d.X, d.Y, d.Z)
		} else {
			b.WriteString("gaze:     -\n")
		}
		if s.Depth != nil {
			fmt.Fprintf(&b, "depth:    %.2fm\n", *s.Depth)
		}
		if s.Pose != nil {
			p := s.Pose
			fmt.Fprintf(&b, "position: (%.3f, %.3f, %.3f)\n", p.Position.X, p.Position.Y, p.Position.Z)
			fmt.Fprintf(&b, "rotation: (%.3f, %.3f, %.3f, %.3f)\n",
				p.Orientation.X, p.Orientation.Y, p.Orientation.Z, p.Orientation.W)
		} else {
			b.WriteString("pose:     -\n")
		}
	}

	b.WriteString("\n(q to quit)")
	return b.String()
}
