package cmd

import (
	"testing"

	"github.com/fovesdk/fove-go/capi"
)

func TestCalibrateCommand_Subcommands(t *testing.T) {
	want := []string{"start", "stop", "state"}
	registered := map[string]bool{}
	for _, c := range calibrateCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("subcommand %q not registered on calibrate", name)
		}
	}
}

func TestParseCalibrationMethod(t *testing.T) {
	tests := []struct {
		name    string
		want    capi.CalibrationMethod
		wantErr bool
	}{
		{"default", capi.CalibrationMethodDefault, false},
		{"one-point", capi.CalibrationMethodOnePoint, false},
		{"spiral", capi.CalibrationMethodSpiral, false},
		{"zero-point", capi.CalibrationMethodZeroPoint, false},
		{"freehand", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCalibrationMethod(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCalibrationMethod(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseCalibrationMethod(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCalibrateStartCommand_Flags(t *testing.T) {
	flags := calibrateStartCmd.Flags()
	for _, name := range []string{"lazy", "restart", "method"} {
		if flags.Lookup(name) == nil {
			t.Errorf("expected flag %q not found", name)
		}
	}
}
