package capi

// ObjectIDInvalid is reported by GazedObjectID when the user is not looking
// at any registered object.
const ObjectIDInvalid = -1

// ObjectGroup is a bit mask assigning gazable objects to render groups.
// Cameras carry a group mask selecting which objects they capture.
type ObjectGroup uint32

// Group returns the ObjectGroup bit for group number n (0-31).
func Group(n uint) ObjectGroup {
	return ObjectGroup(1) << (n & 31)
}

// ObjectPose is the placement of a gazable object or camera in world space.
type ObjectPose struct {
	Scale    Vec3
	Rotation Quaternion
	Position Vec3
	// Velocity of the object in world space, used for gaze prediction.
	Velocity Vec3
}

// BoundingBox is an axis-aligned box given by its center and half-size.
type BoundingBox struct {
	Center Vec3
	Extend Vec3
}

// ColliderType discriminates the shape union in ObjectCollider.
type ColliderType int

const (
	ColliderCube ColliderType = iota
	ColliderSphere
	ColliderMesh
)

// ColliderCubeShape is a cube collider.
type ColliderCubeShape struct {
	Size Vec3
}

// ColliderSphereShape is a sphere collider.
type ColliderSphereShape struct {
	Radius float32
}

// ColliderMeshShape is a triangle-mesh collider. BoundingBox may be left
// zero, in which case the runtime recomputes it from the vertices.
type ColliderMeshShape struct {
	Vertices    []Vec3
	Indices     []uint32
	BoundingBox BoundingBox
}

// ObjectCollider is one collision shape of a gazable object.
type ObjectCollider struct {
	// Center is the offset of the collider from the object origin.
	Center Vec3
	Type   ColliderType
	Cube   ColliderCubeShape
	Sphere ColliderSphereShape
	Mesh   ColliderMeshShape
}

// GazableObject describes a 3D world object registered for gaze detection.
// User-defined objects should use positive IDs.
type GazableObject struct {
	ID        int
	Pose      ObjectPose
	Group     ObjectGroup
	Colliders []ObjectCollider
}

// CameraObject describes a camera registered for gaze detection. The pose
// must include all position-tracking offsets; the runtime adds no headset
// transforms of its own. GroupMask selects which object groups this camera
// renders.
type CameraObject struct {
	ID        int
	Pose      ObjectPose
	GroupMask ObjectGroup
}
