package capi

import "testing"

func TestCalibrationState_Classification(t *testing.T) {
	tests := []struct {
		state     CalibrationState
		succeeded bool
		failed    bool
	}{
		{CalibrationNotStarted, false, false},
		{CalibrationWaitingForUser, false, false},
		{CalibrationCollectingData, false, false},
		{CalibrationProcessingData, false, false},
		{CalibrationSuccessfulHighQuality, true, false},
		{CalibrationSuccessfulMediumQuality, true, false},
		{CalibrationSuccessfulLowQuality, true, false},
		{CalibrationFailedUnknown, false, true},
		{CalibrationFailedInaccurateData, false, true},
		{CalibrationFailedAborted, false, true},
	}
	for _, tt := range tests {
		if got := tt.state.Succeeded(); got != tt.succeeded {
			t.Errorf("%v.Succeeded() = %v, want %v", tt.state, got, tt.succeeded)
		}
		if got := tt.state.Failed(); got != tt.failed {
			t.Errorf("%v.Failed() = %v, want %v", tt.state, got, tt.failed)
		}
		if got := tt.state.Done(); got != (tt.succeeded || tt.failed) {
			t.Errorf("%v.Done() = %v", tt.state, got)
		}
	}
}

func TestCalibrationState_String(t *testing.T) {
	if got := CalibrationSuccessfulHighQuality.String(); got != "Successful_HighQuality" {
		t.Errorf("String() = %q", got)
	}
	if got := CalibrationState(99).String(); got != "CalibrationState(?)" {
		t.Errorf("String() = %q", got)
	}
}
