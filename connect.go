package fove

import (
	"context"
	"time"

	"github.com/fovesdk/fove-go/capi"
)

const connectPollInterval = 10 * time.Millisecond

// WaitForConnection blocks until the runtime delivers data for the headset's
// registered capabilities, polling every 10ms. It first waits for the
// hardware to be connected, then for the eye tracking and/or pose data
// streams (whichever the capability set covers) to produce a fetchable
// frame. Data_NoUpdate and Data_Unreliable during this phase are the normal
// bootstrap signals, not failures.
//
// The wait is bounded by ctx; use context.WithTimeout for an attempt budget.
func WaitForConnection(ctx context.Context, h *Headset) error {
	for {
		r := h.IsHardwareConnected()
		if r.Succeeded() && r.Value() {
			break
		}
		if err := sleepPoll(ctx); err != nil {
			return err
		}
	}

	caps := h.Capabilities()
	wantEye := caps.Intersects(capi.CapsEyeTracking)
	wantPose := caps.Intersects(capi.CapsPoseTracking)
	for wantEye || wantPose {
		if wantEye && h.FetchEyeTrackingData().Acceptable() {
			wantEye = false
		}
		if wantPose && h.FetchPoseData().Acceptable() {
			wantPose = false
		}
		if !wantEye && !wantPose {
			break
		}
		if err := sleepPoll(ctx); err != nil {
			return err
		}
	}

	logger.Debug("headset connected", "capabilities", caps.String())
	return nil
}

func sleepPoll(ctx context.Context) error {
	t := time.NewTimer(connectPollInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
