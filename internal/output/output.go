package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fovesdk/fove-go/capi"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// StatusResult is the top-level output of the `status` command.
type StatusResult struct {
	HardwareConnected  bool                      `yaml:"hardwareConnected"            json:"hardwareConnected"`
	MotionReady        bool                      `yaml:"motionReady"                  json:"motionReady"`
	PositionReady      bool                      `yaml:"positionReady"                json:"positionReady"`
	EyeTrackingEnabled bool                      `yaml:"eyeTrackingEnabled"           json:"eyeTrackingEnabled"`
	EyeTrackingReady   bool                      `yaml:"eyeTrackingReady"             json:"eyeTrackingReady"`
	Calibrated         bool                      `yaml:"calibrated"                   json:"calibrated"`
	VersionsCompatible bool                      `yaml:"versionsCompatible"           json:"versionsCompatible"`
	VersionsError      string                    `yaml:"versionsError,omitempty"      json:"versionsError,omitempty"`
	Versions           *capi.Versions            `yaml:"versions,omitempty"           json:"versions,omitempty"`
	Hardware           *capi.HeadsetHardwareInfo `yaml:"hardware,omitempty"           json:"hardware,omitempty"`
	Licenses           []capi.LicenseInfo        `yaml:"licenses,omitempty"           json:"licenses,omitempty"`
}

// GazeSample is the top-level output of the `gaze` command: one latched eye
// tracking frame. Quality carries the frame's error code name when the data
// is degraded.
type GazeSample struct {
	FrameID   uint64     `yaml:"frameId"           json:"frameId"`
	Timestamp uint64     `yaml:"timestamp"         json:"timestamp"`
	Left      *capi.Vec3 `yaml:"left,omitempty"    json:"left,omitempty"`
	Right     *capi.Vec3 `yaml:"right,omitempty"   json:"right,omitempty"`
	Ray       *capi.Ray  `yaml:"ray,omitempty"     json:"ray,omitempty"`
	Depth     *float32   `yaml:"depth,omitempty"   json:"depth,omitempty"`
	Quality   string     `yaml:"quality,omitempty" json:"quality,omitempty"`
}

// ProfilesResult is the top-level output of `profile list`.
type ProfilesResult struct {
	Current  string   `yaml:"current,omitempty" json:"current,omitempty"`
	Profiles []string `yaml:"profiles"          json:"profiles"`
}

// CalibrationResult is the top-level output of `calibrate state`.
type CalibrationResult struct {
	State       string `yaml:"state"               json:"state"`
	Method      string `yaml:"method,omitempty"    json:"method,omitempty"`
	StateInfo   string `yaml:"stateInfo,omitempty" json:"stateInfo,omitempty"`
	Calibrated  bool   `yaml:"calibrated"          json:"calibrated"`
	Calibrating bool   `yaml:"calibrating"         json:"calibrating"`
}

// CaptureResult is the top-level output of the `capture` command.
type CaptureResult struct {
	Path      string `yaml:"path"      json:"path"`
	Source    string `yaml:"source"    json:"source"`
	Timestamp uint64 `yaml:"timestamp" json:"timestamp"`
	Width     int    `yaml:"width"     json:"width"`
	Height    int    `yaml:"height"    json:"height"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
