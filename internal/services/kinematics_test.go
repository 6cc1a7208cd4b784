package services

import (
	"math"
	"navigation-service/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

func TestComputeJacobianZeroAngles(t *testing.T) {
	j, p := ComputeJacobian(domain.JointAngles{})

	approx := cmpopts.EquateApprox(0, eps)
	if diff := cmp.Diff(domain.Position2D{X: 2, Y: 0}, p, approx); diff != "" {
		t.Errorf("end effector mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(domain.Jacobian{{0, 0}, {2, 1}}, j, approx); diff != "" {
		t.Errorf("jacobian mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeJacobianFirstJointVertical(t *testing.T) {
	j, p := ComputeJacobian(domain.JointAnglesFromDegrees(90, 0))

	assert.InDelta(t, 0.0, p.X, 1e-9)
	assert.InDelta(t, 2.0, p.Y, 1e-9)

	assert.InDelta(t, -2.0, j[0][0], 1e-9)
	assert.InDelta(t, -1.0, j[0][1], 1e-9)
	assert.InDelta(t, 0.0, j[1][0], 1e-9)
	assert.InDelta(t, 0.0, j[1][1], 1e-9)
}

func TestComputeJacobianMatchesFiniteDifferences(t *testing.T) {
	cases := []domain.JointAngles{
		domain.JointAnglesFromDegrees(45, 30),
		domain.JointAnglesFromDegrees(-120, 75),
		domain.JointAnglesFromDegrees(180, -180),
		{Theta1: 12.3, Theta2: -45.6},
	}

	const h = 1e-6
	for _, q := range cases {
		j, _ := ComputeJacobian(q)

		_, p1 := ComputeJacobian(domain.JointAngles{Theta1: q.Theta1 + h, Theta2: q.Theta2})
		_, m1 := ComputeJacobian(domain.JointAngles{Theta1: q.Theta1 - h, Theta2: q.Theta2})
		_, p2 := ComputeJacobian(domain.JointAngles{Theta1: q.Theta1, Theta2: q.Theta2 + h})
		_, m2 := ComputeJacobian(domain.JointAngles{Theta1: q.Theta1, Theta2: q.Theta2 - h})

		assert.InDelta(t, (p1.X-m1.X)/(2*h), j[0][0], 1e-6)
		assert.InDelta(t, (p2.X-m2.X)/(2*h), j[0][1], 1e-6)
		assert.InDelta(t, (p1.Y-m1.Y)/(2*h), j[1][0], 1e-6)
		assert.InDelta(t, (p2.Y-m2.Y)/(2*h), j[1][1], 1e-6)
	}
}

func TestComputeJacobianIsPure(t *testing.T) {
	q := domain.JointAnglesFromDegrees(45, 30)

	j1, p1 := ComputeJacobian(q)
	j2, p2 := ComputeJacobian(q)

	assert.Equal(t, j1, j2)
	assert.Equal(t, p1, p2)
}

func TestComputeJacobianNonFiniteInput(t *testing.T) {
	j, p := ComputeJacobian(domain.JointAngles{Theta1: math.Inf(1), Theta2: 0})

	assert.True(t, math.IsNaN(p.X))
	assert.True(t, math.IsNaN(j[0][0]))
}

func TestJointTip(t *testing.T) {
	tip := JointTip(domain.JointAnglesFromDegrees(90, 45))
	assert.InDelta(t, 0.0, tip.X, 1e-9)
	assert.InDelta(t, 1.0, tip.Y, 1e-9)
}

func TestManipulability(t *testing.T) {
	for _, deg := range []float64{-150, -90, -30, 0, 30, 90, 150, 180} {
		j, _ := ComputeJacobian(domain.JointAnglesFromDegrees(17, deg))
		assert.InDelta(t, math.Abs(math.Sin(domain.Radians(deg))), Manipulability(j), 1e-9, "theta2=%v", deg)
	}

	stretched, _ := ComputeJacobian(domain.JointAngles{})
	assert.True(t, IsSingular(stretched))

	bent, _ := ComputeJacobian(domain.JointAnglesFromDegrees(0, 90))
	assert.False(t, IsSingular(bent))
}
