package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/fovesdk/fove-go/capi"
	"gopkg.in/yaml.v3"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	result := StatusResult{
		HardwareConnected:  true,
		MotionReady:        true,
		VersionsCompatible: true,
		Hardware: &capi.HeadsetHardwareInfo{
			SerialNumber: "FV-0042",
			Manufacturer: "FOVE",
			ModelName:    "FOVE0",
		},
	}

	out := captureStdout(t, func() error { return PrintYAML(result) })

	// YAML output should be multi-line
	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded StatusResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !decoded.HardwareConnected {
		t.Error("hardwareConnected lost in round trip")
	}
	if decoded.Hardware == nil || decoded.Hardware.SerialNumber != "FV-0042" {
		t.Errorf("hardware: got %+v", decoded.Hardware)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	depth := float32(1.5)
	sample := GazeSample{
		FrameID:   9,
		Timestamp: 1707500000,
		Ray:       &capi.Ray{Direction: capi.Vec3{Z: 1}},
		Depth:     &depth,
	}

	out := captureStdout(t, func() error { return PrintJSON(sample) })

	// Compact output should be a single line (plus newline from Encode)
	if bytes.Count([]byte(out), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}

	var decoded GazeSample
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.FrameID != 9 {
		t.Errorf("frameId: got %d, want 9", decoded.FrameID)
	}
	if decoded.Ray == nil || decoded.Ray.Direction.Z != 1 {
		t.Errorf("ray: got %+v", decoded.Ray)
	}
}

func TestPrint_FormatSelection(t *testing.T) {
	defer func() {
		OutputFormat = FormatYAML
		PrettyOutput = false
	}()

	OutputFormat = FormatJSON
	PrettyOutput = true
	out := captureStdout(t, func() error { return Print(ProfilesResult{Profiles: []string{"alice"}}) })
	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("pretty JSON should be multi-line, got:\n%s", out)
	}

	OutputFormat = Format("xml")
	if err := Print(struct{}{}); err == nil {
		t.Error("unsupported format should error")
	}
}

func TestGazeSample_OmitEmpty(t *testing.T) {
	sample := GazeSample{FrameID: 1, Timestamp: 2, Quality: "Data_NoUpdate"}
	data, err := json.Marshal(sample)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	// Degraded samples omit the value fields entirely
	for _, key := range []string{"left", "right", "ray", "depth"} {
		if _, ok := m[key]; ok {
			t.Errorf("absent %s should be omitted", key)
		}
	}
	if m["quality"] != "Data_NoUpdate" {
		t.Errorf("quality: got %v", m["quality"])
	}
}
