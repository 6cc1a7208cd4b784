package services

import (
	"math"
	"navigation-service/internal/domain"
)

// Both links have unit length; the base is pinned at the origin.
const (
	linkLength1 = 1.0
	linkLength2 = 1.0

	singularityTolerance = 1e-9
)

// ComputeJacobian evaluates the forward kinematics of the two-link planar arm.
//
// It returns the full analytic Jacobian (each first-column entry carries both
// the Theta1 and Theta1+Theta2 terms) and the end-effector position.
// The function is total over all real inputs and has no side effects.
func ComputeJacobian(q domain.JointAngles) (domain.Jacobian, domain.Position2D) {
	s1, c1 := math.Sincos(q.Theta1)
	s12, c12 := math.Sincos(q.Theta1 + q.Theta2)

	j := domain.Jacobian{
		{-linkLength1*s1 - linkLength2*s12, -linkLength2 * s12},
		{linkLength1*c1 + linkLength2*c12, linkLength2 * c12},
	}

	end := domain.Position2D{
		X: linkLength1*c1 + linkLength2*c12,
		Y: linkLength1*s1 + linkLength2*s12,
	}

	return j, end
}

// JointTip returns the position of the first link's tip.
func JointTip(q domain.JointAngles) domain.Position2D {
	s1, c1 := math.Sincos(q.Theta1)
	return domain.Position2D{X: linkLength1 * c1, Y: linkLength1 * s1}
}

// Manipulability is the Yoshikawa measure |det J|.
func Manipulability(j domain.Jacobian) float64 {
	return math.Abs(j.Det())
}

// IsSingular reports whether the arm is fully stretched or folded.
func IsSingular(j domain.Jacobian) bool {
	return Manipulability(j) < singularityTolerance
}
