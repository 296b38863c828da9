package fove

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fovesdk/fove-go/capi"
)

func TestWaitForConnection(t *testing.T) {
	hardwarePolls := 0
	eyePolls := 0
	posePolls := 0
	lib := &fakeLibrary{
		hardwareConnected: func() (bool, capi.ErrorCode) {
			hardwarePolls++
			return hardwarePolls >= 3, capi.ErrorNone
		},
		eyeFetchCode: func() capi.ErrorCode {
			eyePolls++
			if eyePolls < 2 {
				return capi.ErrorDataNoUpdate
			}
			return capi.ErrorDataUnreliable
		},
		poseFetchCode: func() capi.ErrorCode {
			posePolls++
			return capi.ErrorNone
		},
	}
	h, err := newHeadset(lib, capi.CapEyeTracking|capi.CapOrientationTracking)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if err := WaitForConnection(context.Background(), h); err != nil {
		t.Fatalf("WaitForConnection() = %v", err)
	}
	if hardwarePolls < 3 {
		t.Errorf("hardware polled %d times, want at least 3", hardwarePolls)
	}
	// Unreliable counts as data flowing during bootstrap.
	if eyePolls != 2 {
		t.Errorf("eye data fetched %d times, want 2", eyePolls)
	}
	if posePolls != 1 {
		t.Errorf("pose data fetched %d times, want 1", posePolls)
	}
}

func TestWaitForConnection_SkipsUnregisteredStreams(t *testing.T) {
	lib := &fakeLibrary{
		eyeFetchCode: func() capi.ErrorCode {
			t.Error("eye data fetched without an eye tracking capability")
			return capi.ErrorNone
		},
	}
	h, err := newHeadset(lib, capi.CapOrientationTracking)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if err := WaitForConnection(context.Background(), h); err != nil {
		t.Fatalf("WaitForConnection() = %v", err)
	}
}

func TestWaitForConnection_ContextBudget(t *testing.T) {
	lib := &fakeLibrary{
		hardwareConnected: func() (bool, capi.ErrorCode) {
			return false, capi.ErrorNone
		},
	}
	h, err := newHeadset(lib, capi.CapEyeTracking)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := WaitForConnection(ctx, h); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitForConnection() = %v, want DeadlineExceeded", err)
	}
}
