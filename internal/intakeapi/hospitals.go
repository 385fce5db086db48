package intakeapi

import (
	"errors"
	"net/http"

	"github.com/linnemanlabs/intake/internal/hospital"
)

type nearestHospitalRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (a *API) handleNearestHospital(w http.ResponseWriter, r *http.Request) {
	if a.hospitals == nil {
		http.Error(w, `{"error":"hospital lookup not configured"}`, http.StatusServiceUnavailable)
		return
	}

	var req nearestHospitalRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, `{"error":"invalid payload"}`, http.StatusBadRequest)
		return
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "coordinate out of range"})
		return
	}

	h, err := a.hospitals.Nearest(r.Context(), req.Lat, req.Lon)
	if err != nil {
		if errors.Is(err, hospital.ErrNoneFound) {
			http.Error(w, `{"error":"no hospital found nearby"}`, http.StatusNotFound)
			return
		}
		a.logger.Error(r.Context(), err, "hospital lookup failed")
		http.Error(w, `{"error":"hospital lookup unavailable"}`, http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, h)
}
