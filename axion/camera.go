package axion

import "axion/vecmath"

// Camera looks from Position towards Target.
type Camera struct {
	Position vecmath.Vector3
	Target   vecmath.Vector3
}

func NewCamera(position, target vecmath.Vector3) *Camera {
	return &Camera{Position: position, Target: target}
}

// View returns the left-handed view matrix with a fixed +Y up vector.
func (c *Camera) View() vecmath.Matrix {
	return vecmath.LookAtLH(c.Position, c.Target, vecmath.UnitY)
}
