package core

import "math"

// Candidates shorter than this are rejected before normalization
const minUnitLengthSquared = 1e-160

// RandomUnitVector returns a direction uniformly distributed on the unit sphere.
// Points are drawn from the [-1,1]³ cube until one lands inside the unit ball,
// then projected onto its surface.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3Range(sampler, -1, 1)
		lensq := p.LengthSquared()
		if minUnitLengthSquared < lensq && lensq <= 1 {
			return p.Divide(math.Sqrt(lensq))
		}
	}
}

// RandomOnHemisphere returns a unit direction on the same side as normal.
// A sample exactly perpendicular to normal is flipped.
func RandomOnHemisphere(normal Vec3, sampler Sampler) Vec3 {
	onUnitSphere := RandomUnitVector(sampler)
	if onUnitSphere.Dot(normal) > 0.0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}

// RandomInUnitDisk generates a random point in the z=0 unit disk (for depth of field)
func RandomInUnitDisk(sampler Sampler) Point3 {
	for {
		// Points on the circle itself are rejected along with the corners
		p := NewVec3(SampleRange(sampler, -1, 1), SampleRange(sampler, -1, 1), 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitSphere generates a random point strictly inside the unit ball
func RandomInUnitSphere(sampler Sampler) Point3 {
	for {
		p := RandomVec3Range(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// SampleOnUnitSphere maps two uniform draws straight onto the unit sphere,
// uniform in z and azimuth. It never rejects, so it costs exactly two draws.
func SampleOnUnitSphere(sampler Sampler) Vec3 {
	z := 1.0 - 2.0*sampler.Get1D()
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sampler.Get1D()
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SamplePointInUnitDisk maps the [-1,1]² square onto the z=0 unit disk with
// Shirley's concentric mapping, two draws per point
func SamplePointInUnitDisk(sampler Sampler) Point3 {
	a := SampleRange(sampler, -1, 1)
	b := SampleRange(sampler, -1, 1)
	if a == 0 && b == 0 {
		return Vec3{}
	}

	var r, theta float64
	if math.Abs(a) > math.Abs(b) {
		r = a
		theta = math.Pi / 4 * (b / a)
	} else {
		r = b
		theta = math.Pi/2 - math.Pi/4*(a/b)
	}
	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}

// SamplePointInUnitSphere places a point in the unit ball by inverting the
// radial CDF: radius ∛u, direction uniform on the sphere
func SamplePointInUnitSphere(sampler Sampler) Point3 {
	r := math.Cbrt(sampler.Get1D())
	return SampleOnUnitSphere(sampler).Multiply(r)
}
