package capi

import (
	"errors"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrorNone, "None"},
		{ErrorConnectNotConnected, "Connect_NotConnected"},
		{ErrorAPINotRegistered, "API_NotRegistered"},
		{ErrorDataNoUpdate, "Data_NoUpdate"},
		{ErrorDataLowAccuracy, "Data_LowAccuracy"},
		{ErrorLicenseFeatureAccessDenied, "License_FeatureAccessDenied"},
		{ErrorUnknown, "UnknownError"},
		{ErrorCode(-42), "ErrorCode(-42)"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}

func TestErrorCode_Err(t *testing.T) {
	if err := ErrorNone.Err(); err != nil {
		t.Errorf("ErrorNone.Err() = %v, want nil", err)
	}

	err := ErrorConnectNotConnected.Err()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("expected *CallError, got %T", err)
	}
	if callErr.Code != ErrorConnectNotConnected {
		t.Errorf("Code = %v, want Connect_NotConnected", callErr.Code)
	}
	if !errors.Is(err, ErrorConnectNotConnected.Err()) {
		t.Error("errors.Is should match errors carrying the same code")
	}
	if errors.Is(err, ErrorAPITimeout.Err()) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestErrorCode_NamesAreUnique(t *testing.T) {
	seen := map[string]ErrorCode{}
	for code, name := range errorNames {
		if prev, dup := seen[name]; dup {
			t.Errorf("name %q used by both %d and %d", name, prev, code)
		}
		seen[name] = code
	}
}
