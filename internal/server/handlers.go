package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/fovesdk/fove-go/capi"
	"github.com/fovesdk/fove-go/internal/output"
)

func (s *Server) registerTools() {
	// status
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report headset and runtime status: hardware connection, tracking readiness, calibration, software versions and licenses"),
		),
		s.handleStatus,
	)

	// gaze
	s.mcp.AddTool(
		mcp.NewTool("gaze",
			mcp.WithDescription("Fetch one eye tracking frame and return the per-eye gaze vectors, combined gaze ray and gaze depth"),
		),
		s.handleGaze,
	)

	// pose
	s.mcp.AddTool(
		mcp.NewTool("pose",
			mcp.WithDescription("Fetch the current headset pose: orientation, position and their derivatives"),
		),
		s.handlePose,
	)

	// calibration_state
	s.mcp.AddTool(
		mcp.NewTool("calibration_state",
			mcp.WithDescription("Report the eye tracking calibration state"),
		),
		s.handleCalibrationState,
	)

	// calibration_start
	s.mcp.AddTool(
		mcp.NewTool("calibration_start",
			mcp.WithDescription("Start an eye tracking calibration run"),
			mcp.WithBoolean("lazy", mcp.Description("Skip if already calibrated")),
			mcp.WithBoolean("restart", mcp.Description("Restart a run already in progress")),
		),
		s.handleCalibrationStart,
	)

	// calibration_stop
	s.mcp.AddTool(
		mcp.NewTool("calibration_stop",
			mcp.WithDescription("Abort the calibration run in progress"),
		),
		s.handleCalibrationStop,
	)

	// profile_list
	s.mcp.AddTool(
		mcp.NewTool("profile_list",
			mcp.WithDescription("List calibration profiles and the current one"),
		),
		s.handleProfileList,
	)

	// profile_use
	s.mcp.AddTool(
		mcp.NewTool("profile_use",
			mcp.WithDescription("Make a calibration profile current, loading its calibration"),
			mcp.WithString("name", mcp.Description("Profile name"), mcp.Required()),
		),
		s.handleProfileUse,
	)
}

// toYAMLResult serializes v to YAML for an MCP text response.
func toYAMLResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.headsetMu.Lock()
	defer s.headsetMu.Unlock()

	return toYAMLResult(s.cache.Get(func() output.StatusResult {
		return CollectStatus(s.headset)
	}))
}

func (s *Server) handleGaze(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.headsetMu.Lock()
	defer s.headsetMu.Unlock()

	return toYAMLResult(SampleGaze(s.headset))
}

func (s *Server) handlePose(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.headsetMu.Lock()
	defer s.headsetMu.Unlock()

	s.headset.FetchPoseData()
	pose := s.headset.Pose()
	if !pose.Acceptable() {
		return mcp.NewToolResultError(fmt.Sprintf("no pose available: %s", pose.Code())), nil
	}
	return toYAMLResult(pose.Value())
}

func (s *Server) handleCalibrationState(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.headsetMu.Lock()
	defer s.headsetMu.Unlock()

	state := s.headset.EyeTrackingCalibrationState()
	if err := state.Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := map[string]interface{}{
		"state":       state.Value().String(),
		"succeeded":   state.Value().Succeeded(),
		"failed":      state.Value().Failed(),
		"calibrated":  s.headset.IsEyeTrackingCalibrated().ValueOr(false),
		"calibrating": s.headset.IsEyeTrackingCalibrating().ValueOr(false),
	}
	return toYAMLResult(result)
}

func (s *Server) handleCalibrationStart(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	options := capi.CalibrationOptions{
		Lazy:    boolParam(params, "lazy", false),
		Restart: boolParam(params, "restart", false),
	}

	s.headsetMu.Lock()
	defer s.headsetMu.Unlock()

	if err := s.headset.StartEyeTrackingCalibration(options).Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.Invalidate()
	return mcp.NewToolResultText("calibration started"), nil
}

func (s *Server) handleCalibrationStop(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.headsetMu.Lock()
	defer s.headsetMu.Unlock()

	if err := s.headset.StopEyeTrackingCalibration().Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.Invalidate()
	return mcp.NewToolResultText("calibration stopped"), nil
}

func (s *Server) handleProfileList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.headsetMu.Lock()
	defer s.headsetMu.Unlock()

	profiles := s.headset.ListProfiles()
	if err := profiles.Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := map[string]interface{}{
		"profiles": profiles.Value(),
	}
	if current := s.headset.CurrentProfile(); current.Succeeded() {
		result["current"] = current.Value()
	}
	return toYAMLResult(result)
}

func (s *Server) handleProfileUse(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := stringParam(request.GetArguments(), "name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	s.headsetMu.Lock()
	defer s.headsetMu.Unlock()

	if err := s.headset.SetCurrentProfile(name).Err(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.Invalidate()
	return mcp.NewToolResultText(fmt.Sprintf("profile %q is now current", name)), nil
}

// stringParam extracts a string parameter from MCP tool arguments.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// boolParam extracts a bool parameter from MCP tool arguments.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
