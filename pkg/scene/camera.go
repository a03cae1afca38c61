package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// Camera is a pinhole camera defined by a location, a horizontal
// field-of-view in degrees, and an orientation matrix.
type Camera struct {
	Location vecmath.Vec3
	HorFOV   float64
	RotMat   mgl64.Mat3
}

// NewCamera creates a Camera at location looking down -Z with no rotation
// and the given horizontal field-of-view in degrees.
func NewCamera(location vecmath.Vec3, horFOV float64) Camera {
	return Camera{Location: location, HorFOV: horFOV, RotMat: mgl64.Ident3()}
}

// SetRotation rebuilds the camera's orientation matrix from Euler angles in
// degrees, composed as Ry(yaw) * Rx(pitch) * Rz(roll) — the same order the
// original composes `cgmath::Matrix3::from_angle_{y,x,z}`.
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	rx := mgl64.Rotate3DX(pitch * math.Pi / 180)
	ry := mgl64.Rotate3DY(yaw * math.Pi / 180)
	rz := mgl64.Rotate3DZ(roll * math.Pi / 180)
	c.RotMat = ry.Mul3(rx).Mul3(rz)
}

// NewCameraWithEulerAngles creates a Camera with the given location,
// horizontal field-of-view, and initial rotation (pitch, yaw, roll, in
// degrees).
func NewCameraWithEulerAngles(location vecmath.Vec3, horFOV, pitch, yaw, roll float64) Camera {
	c := NewCamera(location, horFOV)
	c.SetRotation(pitch, yaw, roll)
	return c
}

func toVec3(v mgl64.Vec3) vecmath.Vec3 {
	return vecmath.NewVec3(v[0], v[1], v[2])
}

// CastRay builds the primary ray for image-plane coordinates (x, y), both
// in [0, 1] with (0, 0) at the top-left corner, given the frame's aspect
// ratio (width/height).
func (c Camera) CastRay(x, y, aspectRatio float64) vecmath.Ray {
	scale := math.Tan(c.HorFOV / 360 * math.Pi)

	side := toVec3(c.RotMat.Mul3x1(mgl64.Vec3{1, 0, 0})).Multiply(scale)
	up := toVec3(c.RotMat.Mul3x1(mgl64.Vec3{0, 1, 0})).Multiply(scale / aspectRatio)
	forward := toVec3(c.RotMat.Mul3x1(mgl64.Vec3{0, 0, -1}))

	direction := forward.
		Add(side.Multiply(2*x - 1)).
		Subtract(up.Multiply(2*y - 1)).
		Normalize()

	return vecmath.NewRay(c.Location, direction)
}
