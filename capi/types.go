package capi

// Eye selects one of the user's eyes.
type Eye int

const (
	EyeLeft Eye = iota
	EyeRight
)

func (e Eye) String() string {
	switch e {
	case EyeLeft:
		return "Left"
	case EyeRight:
		return "Right"
	default:
		return "Eye(?)"
	}
}

// EyeState describes whether an eye was detected and whether it is open.
type EyeState int

const (
	EyeStateNotDetected EyeState = iota
	EyeStateOpened
	EyeStateClosed
)

func (s EyeState) String() string {
	switch s {
	case EyeStateNotDetected:
		return "NotDetected"
	case EyeStateOpened:
		return "Opened"
	case EyeStateClosed:
		return "Closed"
	default:
		return "EyeState(?)"
	}
}

// Vec2 is a 2D vector of floats.
type Vec2 struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
}

// Vec2i is a 2D vector of ints, used for pixel coordinates and resolutions.
type Vec2i struct {
	X int32 `yaml:"x" json:"x"`
	Y int32 `yaml:"y" json:"y"`
}

// Vec3 is a 3D vector of floats.
type Vec3 struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
	Z float32 `yaml:"z" json:"z"`
}

// Quaternion represents a rotation. The identity is {0, 0, 0, 1}.
type Quaternion struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
	Z float32 `yaml:"z" json:"z"`
	W float32 `yaml:"w" json:"w"`
}

// Ray is a half-line: an origin and a direction.
type Ray struct {
	Origin    Vec3 `yaml:"origin"    json:"origin"`
	Direction Vec3 `yaml:"direction" json:"direction"`
}

// Matrix44 is a 4x4 matrix in row-major order.
type Matrix44 struct {
	Mat [4][4]float32
}

// ProjectionParams describes a view frustum at 1 unit away. Multiply by the
// near-plane distance to get the actual frustum planes.
type ProjectionParams struct {
	Left   float32 `yaml:"left"   json:"left"`
	Right  float32 `yaml:"right"  json:"right"`
	Top    float32 `yaml:"top"    json:"top"`
	Bottom float32 `yaml:"bottom" json:"bottom"`
}

// FrameTimestamp identifies a data frame produced by the runtime.
type FrameTimestamp struct {
	// ID is an incremental frame counter.
	ID uint64 `yaml:"id" json:"id"`
	// Timestamp is the capture time in microseconds since an unspecified epoch.
	Timestamp uint64 `yaml:"timestamp" json:"timestamp"`
}

// Pose is the head-mounted display pose, with first and second derivatives.
type Pose struct {
	ID                  uint64     `yaml:"id"                  json:"id"`
	Timestamp           uint64     `yaml:"timestamp"           json:"timestamp"`
	Orientation         Quaternion `yaml:"orientation"         json:"orientation"`
	AngularVelocity     Vec3       `yaml:"angularVelocity"     json:"angularVelocity"`
	AngularAcceleration Vec3       `yaml:"angularAcceleration" json:"angularAcceleration"`
	Position            Vec3       `yaml:"position"            json:"position"`
	StandingPosition    Vec3       `yaml:"standingPosition"    json:"standingPosition"`
	Velocity            Vec3       `yaml:"velocity"            json:"velocity"`
	Acceleration        Vec3       `yaml:"acceleration"        json:"acceleration"`
}

// EyeShapeOutlinePoints is the number of points in an eye outline.
const EyeShapeOutlinePoints = 12

// EyeShape is the outline of an eye in the eyes-camera image.
type EyeShape struct {
	Outline [EyeShapeOutlinePoints]Vec2
}

// PupilShape is the ellipse fitted to a pupil in the eyes-camera image.
type PupilShape struct {
	// Center of the ellipse, in image pixels.
	Center Vec2 `yaml:"center" json:"center"`
	// Size is the width and height of the ellipse.
	Size Vec2 `yaml:"size" json:"size"`
	// Angle is a clockwise rotation around the center, in degrees.
	Angle float32 `yaml:"angle" json:"angle"`
}

// BitmapImage is a camera frame as delivered by the runtime: a BMP-encoded
// buffer plus the timestamp of the source frame.
type BitmapImage struct {
	Timestamp uint64
	// Data holds the image in BMP format, including the file header.
	Data []byte
}

// Versions reports client and runtime software versions. Prefer
// CheckSoftwareVersions over comparing these fields directly.
type Versions struct {
	ClientMajor    int    `yaml:"clientMajor"    json:"clientMajor"`
	ClientMinor    int    `yaml:"clientMinor"    json:"clientMinor"`
	ClientBuild    int    `yaml:"clientBuild"    json:"clientBuild"`
	ClientProtocol int    `yaml:"clientProtocol" json:"clientProtocol"`
	ClientHash     string `yaml:"clientHash"     json:"clientHash"`
	RuntimeMajor   int    `yaml:"runtimeMajor"   json:"runtimeMajor"`
	RuntimeMinor   int    `yaml:"runtimeMinor"   json:"runtimeMinor"`
	RuntimeBuild   int    `yaml:"runtimeBuild"   json:"runtimeBuild"`
	RuntimeHash    string `yaml:"runtimeHash"    json:"runtimeHash"`
	Firmware       int    `yaml:"firmware"       json:"firmware"`
	MaxFirmware    int    `yaml:"maxFirmware"    json:"maxFirmware"`
	MinFirmware    int    `yaml:"minFirmware"    json:"minFirmware"`
	// TooOldHeadsetConnected indicates a headset below MinFirmware is attached.
	TooOldHeadsetConnected bool `yaml:"tooOldHeadsetConnected" json:"tooOldHeadsetConnected"`
}

// LicenseInfo describes one activated license. Only valid, activated
// licenses are ever reported; an expiration of year 0 means no expiration.
type LicenseInfo struct {
	UUID            [16]byte `yaml:"-"               json:"-"`
	ExpirationYear  int      `yaml:"expirationYear"  json:"expirationYear"`
	ExpirationMonth int      `yaml:"expirationMonth" json:"expirationMonth"`
	ExpirationDay   int      `yaml:"expirationDay"   json:"expirationDay"`
	LicenseType     string   `yaml:"licenseType"     json:"licenseType"`
	Licensee        string   `yaml:"licensee"        json:"licensee"`
}

// HeadsetHardwareInfo identifies the attached headset hardware.
type HeadsetHardwareInfo struct {
	SerialNumber string `yaml:"serialNumber" json:"serialNumber"`
	Manufacturer string `yaml:"manufacturer" json:"manufacturer"`
	ModelName    string `yaml:"modelName"    json:"modelName"`
}

// LogLevel is the severity accepted by the runtime's log sink.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelWarning
	LogLevelError
)
