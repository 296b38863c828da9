package cmd

import (
	"fmt"

	"github.com/fovesdk/fove-go/capi"
	"github.com/fovesdk/fove-go/internal/output"
	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Control eye tracking calibration",
}

var calibrateStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a calibration run",
	Long: `Start an eye tracking calibration. The runtime renders the calibration
targets itself unless a client has taken over rendering. With --lazy the run
is skipped when a calibration is already in place.`,
	RunE: runCalibrateStart,
}

var calibrateStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Abort the calibration run in progress",
	RunE:  runCalibrateStop,
}

var calibrateStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the calibration state",
	RunE:  runCalibrateState,
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
	calibrateCmd.AddCommand(calibrateStartCmd)
	calibrateCmd.AddCommand(calibrateStopCmd)
	calibrateCmd.AddCommand(calibrateStateCmd)
	calibrateStartCmd.Flags().Bool("lazy", false, "Skip if already calibrated")
	calibrateStartCmd.Flags().Bool("restart", false, "Restart a run already in progress")
	calibrateStartCmd.Flags().String("method", "default", "Calibration method: default, one-point, spiral, zero-point")
	calibrateStateCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func parseCalibrationMethod(name string) (capi.CalibrationMethod, error) {
	switch name {
	case "default":
		return capi.CalibrationMethodDefault, nil
	case "one-point":
		return capi.CalibrationMethodOnePoint, nil
	case "spiral":
		return capi.CalibrationMethodSpiral, nil
	case "zero-point":
		return capi.CalibrationMethodZeroPoint, nil
	default:
		return 0, fmt.Errorf("unknown calibration method: %s (use default, one-point, spiral, or zero-point)", name)
	}
}

func runCalibrateStart(cmd *cobra.Command, args []string) error {
	lazy, _ := cmd.Flags().GetBool("lazy")
	restart, _ := cmd.Flags().GetBool("restart")
	methodName, _ := cmd.Flags().GetString("method")

	method, err := parseCalibrationMethod(methodName)
	if err != nil {
		return err
	}

	h, err := openHeadset(cmd, capi.CapEyeTracking)
	if err != nil {
		return err
	}
	defer h.Close()

	return h.StartEyeTrackingCalibration(capi.CalibrationOptions{
		Lazy:    lazy,
		Restart: restart,
		Method:  method,
	}).Err()
}

func runCalibrateStop(cmd *cobra.Command, args []string) error {
	h, err := openHeadset(cmd, capi.CapEyeTracking)
	if err != nil {
		return err
	}
	defer h.Close()

	return h.StopEyeTrackingCalibration().Err()
}

func runCalibrateState(cmd *cobra.Command, args []string) error {
	h, err := openHeadset(cmd, capi.CapNone)
	if err != nil {
		return err
	}
	defer h.Close()

	res := output.CalibrationResult{
		Calibrated:  h.IsEyeTrackingCalibrated().ValueOr(false),
		Calibrating: h.IsEyeTrackingCalibrating().ValueOr(false),
	}
	state := h.EyeTrackingCalibrationState()
	if err := state.Err(); err != nil {
		return err
	}
	res.State = state.Value().String()
	if details := h.EyeTrackingCalibrationStateDetails(); details.Succeeded() {
		res.Method = details.Value().Method.String()
		res.StateInfo = details.Value().StateInfo
	}
	return output.Print(res)
}
