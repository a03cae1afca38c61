package vecmath

// Kind distinguishes camera-emitted rays from every continuation ray a
// marcher or shader produces.
type Kind int

const (
	// Primary rays are emitted directly by the camera.
	Primary Kind = iota
	// Secondary rays are produced by reflection, scattering, or any other
	// continuation of a previous ray.
	Secondary
)

// Ray is a traced ray. Direction is expected to be unit-length at every
// function boundary (spec invariant (i)).
type Ray struct {
	Location   Vec3
	Direction  Vec3
	StepsTaken int
	Kind       Kind
}

// NewRay creates a primary ray with StepsTaken reset to zero.
func NewRay(location, direction Vec3) Ray {
	return Ray{Location: location, Direction: direction, Kind: Primary}
}

// Advance moves the ray forward by dist along its direction and increments
// the step counter. Direction is left unchanged.
func (r *Ray) Advance(dist float64) {
	r.Location = r.Location.Add(r.Direction.Multiply(dist))
	r.StepsTaken++
}

// Reflect returns a new Secondary ray at the same location, mirrored about
// normal, with StepsTaken reset to zero per spec §3.
func (r Ray) Reflect(normal Vec3) Ray {
	return Ray{
		Location:   r.Location,
		Direction:  r.Direction.Subtract(normal.Multiply(2 * r.Direction.Dot(normal))),
		StepsTaken: 0,
		Kind:       Secondary,
	}
}
