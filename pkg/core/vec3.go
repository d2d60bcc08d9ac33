package core

import (
	"fmt"
	"math"
)

// NearZeroEpsilon is the per-component magnitude below which NearZero reports true
const NearZeroEpsilon = 1e-8

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a Vec3 used as a position
type Point3 = Vec3

// IndexError is the panic value for component access outside {0, 1, 2}
type IndexError int

func (e IndexError) Error() string {
	return fmt.Sprintf("core: Vec3 component index %d out of range [0, 2]", int(e))
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Index returns component i. Panics with IndexError unless i is 0, 1 or 2.
func (v Vec3) Index(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(IndexError(i))
}

// SetIndex assigns component i. Panics with IndexError unless i is 0, 1 or 2.
func (v *Vec3) SetIndex(i int, value float64) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(IndexError(i))
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// AddAssign adds u to v in place
func (v *Vec3) AddAssign(u Vec3) *Vec3 {
	v.X += u.X
	v.Y += u.Y
	v.Z += u.Z
	return v
}

// MultiplyAssign scales v in place
func (v *Vec3) MultiplyAssign(t float64) *Vec3 {
	v.X *= t
	v.Y *= t
	v.Z *= t
	return v
}

// DivideAssign scales v by 1/t in place. t == 0 leaves infinite or NaN components.
func (v *Vec3) DivideAssign(t float64) *Vec3 {
	return v.MultiplyAssign(1 / t)
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Scale is the scalar-first form of Multiply
func Scale(t float64, v Vec3) Vec3 {
	return v.Multiply(t)
}

// Divide returns the vector scaled by 1/scalar. Dividing by zero yields
// infinite or NaN components; nothing is trapped.
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1 / scalar)
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Dot returns the dot product of u and v
func Dot(u, v Vec3) float64 {
	return u.Dot(v)
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Cross returns the right-handed cross product u × v
func Cross(u, v Vec3) Vec3 {
	return u.Cross(v)
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and produces NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// UnitVector returns v / |v|; see Normalize
func UnitVector(v Vec3) Vec3 {
	return v.Normalize()
}

// NearZero reports whether every component is within NearZeroEpsilon of zero
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < NearZeroEpsilon &&
		math.Abs(v.Y) < NearZeroEpsilon &&
		math.Abs(v.Z) < NearZeroEpsilon
}

// Equals reports whether v and other differ by at most tolerance in every component
func (v Vec3) Equals(other Vec3, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance
}

// String formats the vector as "x y z"
func (v Vec3) String() string {
	return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
}

// RandomVec3 returns a vector with each component uniform in [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	return NewVec3(sampler.Get1D(), sampler.Get1D(), sampler.Get1D())
}

// RandomVec3Range returns a vector with each component uniform in [min, max)
func RandomVec3Range(sampler Sampler, min, max float64) Vec3 {
	return NewVec3(
		SampleRange(sampler, min, max),
		SampleRange(sampler, min, max),
		SampleRange(sampler, min, max),
	)
}
