package fove

import (
	"testing"

	"github.com/fovesdk/fove-go/capi"
)

func TestResult_Quality(t *testing.T) {
	tests := []struct {
		code       capi.ErrorCode
		reliable   bool
		valid      bool
		acceptable bool
	}{
		{capi.ErrorNone, true, true, true},
		{capi.ErrorDataLowAccuracy, false, true, true},
		{capi.ErrorDataUnreliable, false, false, true},
		{capi.ErrorDataNoUpdate, false, false, false},
		{capi.ErrorDataUncalibrated, false, false, false},
		{capi.ErrorAPINotRegistered, false, false, false},
		{capi.ErrorConnectNotConnected, false, false, false},
	}
	for _, tt := range tests {
		r := resultOf(1.0, tt.code)
		if got := r.Reliable(); got != tt.reliable {
			t.Errorf("%v: Reliable() = %v, want %v", tt.code, got, tt.reliable)
		}
		if got := r.Valid(); got != tt.valid {
			t.Errorf("%v: Valid() = %v, want %v", tt.code, got, tt.valid)
		}
		if got := r.Acceptable(); got != tt.acceptable {
			t.Errorf("%v: Acceptable() = %v, want %v", tt.code, got, tt.acceptable)
		}
		if got := r.Succeeded(); got != (tt.code == capi.ErrorNone) {
			t.Errorf("%v: Succeeded() = %v", tt.code, got)
		}
	}
}

func TestResult_ValueOr(t *testing.T) {
	if got := resultOf(3, capi.ErrorDataLowAccuracy).ValueOr(-1); got != 3 {
		t.Errorf("ValueOr() = %d, want 3 for low-accuracy data", got)
	}
	if got := resultOf(3, capi.ErrorDataNoUpdate).ValueOr(-1); got != -1 {
		t.Errorf("ValueOr() = %d, want fallback for no-update", got)
	}
}

func TestResult_Err(t *testing.T) {
	if err := resultOf(0, capi.ErrorNone).Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
	if err := resultOf(0, capi.ErrorAPITimeout).Err(); err == nil {
		t.Error("Err() = nil, want error for API_Timeout")
	}
}

func TestResult_String(t *testing.T) {
	if got := resultOf(42, capi.ErrorNone).String(); got != "42" {
		t.Errorf("String() = %q, want value on success", got)
	}
	if got := resultOf(42, capi.ErrorDataNoUpdate).String(); got != "Data_NoUpdate" {
		t.Errorf("String() = %q, want the code on failure", got)
	}
	// A low-accuracy result carries a value, but String still reports the
	// degraded code rather than the value.
	if got := resultOf(42, capi.ErrorDataLowAccuracy).String(); got != "Data_LowAccuracy" {
		t.Errorf("String() = %q, want the code for degraded data", got)
	}
}
