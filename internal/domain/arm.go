package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Joint angles of the two-link arm in radians.
// Theta1 is measured from the positive x-axis, Theta2 relative to the first link.
type JointAngles struct {
	Theta1 float64
	Theta2 float64
}

// JointAnglesFromDegrees converts boundary input (degrees) to radians.
func JointAnglesFromDegrees(angle1, angle2 float64) JointAngles {
	return JointAngles{Theta1: Radians(angle1), Theta2: Radians(angle2)}
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }

func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Planar point in link-length units, base at the origin.
type Position2D struct {
	X float64
	Y float64
}

func (p Position2D) String() string {
	return fmt.Sprintf("[%.8f %.8f]", p.X, p.Y)
}

// Jacobian of the end effector with respect to (Theta1, Theta2).
// Row 0 is dx, row 1 is dy.
type Jacobian [2][2]float64

func (j Jacobian) At(r, c int) float64 { return j[r][c] }

// Dense copies the matrix into a gonum matrix.
func (j Jacobian) Dense() *mat.Dense {
	return mat.NewDense(2, 2, []float64{j[0][0], j[0][1], j[1][0], j[1][1]})
}

func (j Jacobian) Det() float64 { return mat.Det(j.Dense()) }

// Apply maps joint angular velocities to end-effector linear velocity.
func (j Jacobian) Apply(dTheta1, dTheta2 float64) Position2D {
	var v mat.VecDense
	v.MulVec(j.Dense(), mat.NewVecDense(2, []float64{dTheta1, dTheta2}))
	return Position2D{X: v.AtVec(0), Y: v.AtVec(1)}
}

func (j Jacobian) String() string {
	return fmt.Sprintf("[[%.8f %.8f]\n [%.8f %.8f]]", j[0][0], j[0][1], j[1][0], j[1][1])
}
