package core

import "math"

// Reflect calculates the reflection of a vector v off a surface with normal n.
// n must be unit length; it is not normalized here.
func Reflect(v, n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit direction uv through a surface with unit normal n
// using Snell's law, where etaiOverEtat is the ratio of refractive indices.
//
// Total internal reflection is not detected: the parallel term takes the
// square root of |1 - |perp|²|, so a value is returned even when no
// refracted ray exists. Callers check CanRefract first.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := incidentCosine(uv, n)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// CanRefract reports whether uv refracts through n rather than undergoing
// total internal reflection
func CanRefract(uv, n Vec3, etaiOverEtat float64) bool {
	cosTheta := incidentCosine(uv, n)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	return etaiOverEtat*sinTheta <= 1.0
}

// incidentCosine is cos of the angle between -uv and n, capped at 1 so
// rounding never pushes 1 - cos² below zero
func incidentCosine(uv, n Vec3) float64 {
	return math.Min(uv.Negate().Dot(n), 1.0)
}
