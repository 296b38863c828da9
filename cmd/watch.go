package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fovesdk/fove-go"
	"github.com/fovesdk/fove-go/capi"
	"github.com/fovesdk/fove-go/internal/monitor"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal view of gaze and pose",
	Long: `Show a continuously refreshing terminal view of the headset: gaze
direction and depth, head pose, eye states and user presence.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Duration("interval", 100*time.Millisecond, "Refresh interval")
}

func runWatch(cmd *cobra.Command, args []string) error {
	interval, _ := cmd.Flags().GetDuration("interval")

	h, err := openHeadset(cmd, capi.CapEyeTracking|capi.CapGazeDepth|
		capi.CapUserPresence|capi.CapOrientationTracking|capi.CapPositionTracking)
	if err != nil {
		return err
	}
	defer h.Close()

	model := monitor.New(func() monitor.Sample { return pollSample(h) }, interval)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func pollSample(h *fove.Headset) monitor.Sample {
	var s monitor.Sample

	fetch := h.FetchEyeTrackingData()
	if fetch.Acceptable() {
		s.Frame = fetch.Value()
	}
	if !fetch.Succeeded() {
		s.Quality = fetch.Code().String()
	}
	h.FetchPoseData()

	if r := h.CombinedGazeRay(); r.Valid() {
		ray := r.Value()
		s.Ray = &ray
	}
	if r := h.CombinedGazeDepth(); r.Valid() {
		depth := r.Value()
		s.Depth = &depth
	}
	if r := h.Pose(); r.Valid() {
		pose := r.Value()
		s.Pose = &pose
	}
	s.UserPresent = h.IsUserPresent().ValueOr(false)
	s.EyeLeft = h.EyeState(capi.EyeLeft).ValueOr(capi.EyeStateNotDetected)
	s.EyeRight = h.EyeState(capi.EyeRight).ValueOr(capi.EyeStateNotDetected)
	return s
}
