package vmath

import "math"

// Vec3F is a float64 3D vector; debris position, velocity, rotation and spin
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// V3FRotate applies rotations about X, then Y, then Z (radians)
func V3FRotate(v Vec3F, rx, ry, rz float64) Vec3F {
	sx, cx := math.Sincos(rx)
	v = Vec3F{v.X, v.Y*cx - v.Z*sx, v.Y*sx + v.Z*cx}

	sy, cy := math.Sincos(ry)
	v = Vec3F{v.X*cy + v.Z*sy, v.Y, -v.X*sy + v.Z*cy}

	sz, cz := math.Sincos(rz)
	return Vec3F{v.X*cz - v.Y*sz, v.X*sz + v.Y*cz, v.Z}
}
