package cmd

import (
	"fmt"

	"github.com/fovesdk/fove-go"
	"github.com/fovesdk/fove-go/capi"
	"github.com/fovesdk/fove-go/internal/frame"
	"github.com/fovesdk/fove-go/internal/output"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Save a camera frame to a PNG file",
	Long: `Fetch the eyes camera image (or, with --position, the position tracking
camera image) and write it to a PNG file.`,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().Bool("position", false, "Capture the position camera instead of the eyes camera")
	captureCmd.Flags().StringP("out", "o", "frame.png", "Output file path")
	captureCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runCapture(cmd *cobra.Command, args []string) error {
	position, _ := cmd.Flags().GetBool("position")
	out, _ := cmd.Flags().GetString("out")

	caps := capi.CapEyesImage
	source := "eyes"
	if position {
		caps = capi.CapPositionImage
		source = "position"
	}

	h, err := openHeadset(cmd, caps)
	if err != nil {
		return err
	}
	defer h.Close()

	var img fove.Result[capi.BitmapImage]
	if position {
		if r := h.FetchPositionImage(); !r.Acceptable() {
			return fmt.Errorf("no position image available: %s", r.Code())
		}
		img = h.PositionImage()
	} else {
		if r := h.FetchEyesImage(); !r.Acceptable() {
			return fmt.Errorf("no eyes image available: %s", r.Code())
		}
		img = h.EyesImage()
	}
	if err := img.Err(); err != nil {
		return err
	}

	decoded, err := frame.Decode(img.Value())
	if err != nil {
		return err
	}
	if err := frame.SavePNG(out, decoded); err != nil {
		return err
	}

	bounds := decoded.Bounds()
	return output.Print(output.CaptureResult{
		Path:      out,
		Source:    source,
		Timestamp: img.Value().Timestamp,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
	})
}
