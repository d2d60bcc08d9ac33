package core

import "fmt"

// Ray represents a ray with an origin and direction.
// The direction is not validated; a zero direction makes At constant.
type Ray struct {
	origin    Point3
	direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{origin: origin, direction: direction}
}

// Origin returns the ray's starting point
func (r Ray) Origin() Point3 {
	return r.origin
}

// Direction returns the ray's direction as given to NewRay
func (r Ray) Direction() Vec3 {
	return r.direction
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.origin.Add(r.direction.Multiply(t))
}

// String formats the ray as Ray{origin: x y z, direction: x y z}
func (r Ray) String() string {
	return fmt.Sprintf("Ray{origin: %v, direction: %v}", r.origin, r.direction)
}
