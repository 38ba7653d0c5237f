package math

// Ray is the parametric line origin + t*direction.
//
// The zero value is a ray at the origin with a zero direction; At returns the
// origin for every t. Direction is stored as given and is never normalized.
type Ray struct {
	origin    Point3
	direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{origin: origin, direction: direction}
}

// Origin returns the point at t = 0
func (r Ray) Origin() Point3 {
	return r.origin
}

// Direction returns the (unnormalized) direction
func (r Ray) Direction() Vec3 {
	return r.direction
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.origin.Add(r.direction.Multiply(t))
}
