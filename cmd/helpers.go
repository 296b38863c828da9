package cmd

import (
	"context"
	"fmt"

	"github.com/fovesdk/fove-go"
	"github.com/fovesdk/fove-go/capi"
	"github.com/spf13/cobra"
)

// openHeadset connects to the runtime with the given capability set and, for
// a non-empty set, waits for the data streams to come up within the root
// --connect-timeout budget.
func openHeadset(cmd *cobra.Command, caps capi.ClientCapabilities) (*fove.Headset, error) {
	h, err := fove.CreateHeadset(caps)
	if err != nil {
		return nil, err
	}

	timeout, _ := rootCmd.PersistentFlags().GetDuration("connect-timeout")
	if caps != capi.CapNone && timeout > 0 {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		if err := fove.WaitForConnection(ctx, h); err != nil {
			h.Close()
			return nil, fmt.Errorf("waiting for headset data: %w", err)
		}
	}
	return h, nil
}
