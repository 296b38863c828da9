package cmd

import (
	"time"

	"github.com/fovesdk/fove-go/capi"
	"github.com/fovesdk/fove-go/internal/output"
	"github.com/fovesdk/fove-go/internal/server"
	"github.com/spf13/cobra"
)

var gazeCmd = &cobra.Command{
	Use:   "gaze",
	Short: "Read the current gaze",
	Long: `Fetch one eye tracking frame and print the per-eye gaze vectors, the
combined gaze ray and the gaze depth. With --follow, keep sampling at the
given interval until interrupted.`,
	RunE: runGaze,
}

func init() {
	rootCmd.AddCommand(gazeCmd)
	gazeCmd.Flags().Bool("follow", false, "Keep sampling until interrupted")
	gazeCmd.Flags().Duration("interval", 100*time.Millisecond, "Sampling interval with --follow")
	gazeCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runGaze(cmd *cobra.Command, args []string) error {
	h, err := openHeadset(cmd, capi.CapEyeTracking|capi.CapGazeDepth)
	if err != nil {
		return err
	}
	defer h.Close()

	follow, _ := cmd.Flags().GetBool("follow")
	interval, _ := cmd.Flags().GetDuration("interval")

	if !follow {
		return output.Print(server.SampleGaze(h))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := output.Print(server.SampleGaze(h)); err != nil {
			return err
		}
		select {
		case <-cmd.Context().Done():
			return nil
		case <-ticker.C:
		}
	}
}
