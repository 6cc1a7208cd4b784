package handlers

import (
	"encoding/json"
	"io"
	"navigation-service/internal/api/dto"
	"navigation-service/internal/domain"
	"navigation-service/internal/render"
	"navigation-service/internal/services"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 16

type NavigateHandler struct {
	Navigator *services.Navigator
}

// Navigate evaluates the arm kinematics and the distance to the target.
func (h *NavigateHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.NavigateRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.Angle1 == nil || req.Angle2 == nil {
		writeError(w, r, http.StatusBadRequest, "angle1 and angle2 are required")
		return
	}

	svcReq := services.NavigateRequest{
		Angle1Deg:   *req.Angle1,
		Angle2Deg:   *req.Angle2,
		TargetPlace: strings.TrimSpace(req.TargetPlace),
	}
	if svcReq.TargetPlace == "" {
		if req.TargetLat == nil || req.TargetLon == nil {
			writeError(w, r, http.StatusBadRequest, "target_lat and target_lon are required when target_place is empty")
			return
		}
		svcReq.TargetLat, svcReq.TargetLon = *req.TargetLat, *req.TargetLon
	}

	res, err := h.Navigator.Navigate(r.Context(), svcReq)
	if err != nil {
		writeDomainError(w, r, "navigate", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toNavigateResponse(res))
}

func toNavigateResponse(res *domain.NavigationResult) dto.NavigateResponse {
	return dto.NavigateResponse{
		Current:         dto.CoordinateResponse{Lat: res.Current.Lat, Lon: res.Current.Lon},
		Target:          dto.CoordinateResponse{Lat: res.Target.Lat, Lon: res.Target.Lon},
		DistanceMeters:  res.DistanceMeters,
		DurationSeconds: res.DurationSeconds,
		BearingDegrees:  res.BearingDegrees,
		DistanceMethod:  res.DistanceMethod,
		Jacobian:        res.Jacobian,
		EndEffector:     dto.PositionResponse{X: res.EndEffector.X, Y: res.EndEffector.Y},
		JointTip:        dto.PositionResponse{X: res.JointTip.X, Y: res.JointTip.Y},
		Manipulability:  res.Manipulability,
		Singular:        res.Singular,
		Report:          render.FormatResult(res),
	}
}
