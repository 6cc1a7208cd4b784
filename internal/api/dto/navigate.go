package dto

// Angles are required. The target is either TargetPlace or both coordinates.
type NavigateRequest struct {
	Angle1      *float64 `json:"angle1"`
	Angle2      *float64 `json:"angle2"`
	TargetLat   *float64 `json:"target_lat"`
	TargetLon   *float64 `json:"target_lon"`
	TargetPlace string   `json:"target_place"`
}

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type PositionResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type NavigateResponse struct {
	Current         CoordinateResponse `json:"current"`
	Target          CoordinateResponse `json:"target"`
	DistanceMeters  float64            `json:"distance_meters"`
	DurationSeconds int                `json:"duration_seconds,omitempty"`
	BearingDegrees  *float64           `json:"bearing_degrees,omitempty"`
	DistanceMethod  string             `json:"distance_method"`

	Jacobian       [2][2]float64    `json:"jacobian"`
	EndEffector    PositionResponse `json:"end_effector"`
	JointTip       PositionResponse `json:"joint_tip"`
	Manipulability float64          `json:"manipulability"`
	Singular       bool             `json:"singular"`

	Report string `json:"report"`
}
