package cmd

import (
	"github.com/fovesdk/fove-go/capi"
	"github.com/fovesdk/fove-go/internal/output"
	"github.com/fovesdk/fove-go/internal/server"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show headset and runtime status",
	Long:  "Report hardware connection, tracking readiness, calibration state, software versions and licenses.",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runStatus(cmd *cobra.Command, args []string) error {
	h, err := openHeadset(cmd, capi.CapNone)
	if err != nil {
		return err
	}
	defer h.Close()

	return output.Print(server.CollectStatus(h))
}
