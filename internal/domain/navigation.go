package domain

// Represents the outcome of a single navigation request.
// It bundles the arm kinematics with the geographic leg from the current
// location to the target. It is transient and never persisted.
type NavigationResult struct {
	Current         GeoCoordinate
	Target          GeoCoordinate
	DistanceMeters  float64
	DurationSeconds int
	BearingDegrees  *float64
	DistanceMethod  string

	Angles         JointAngles
	JointTip       Position2D
	EndEffector    Position2D
	Jacobian       Jacobian
	Manipulability float64
	Singular       bool
}
