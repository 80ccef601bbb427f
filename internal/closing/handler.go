package closing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RevOpsHQ/api-salesops/internal/auth"
	"github.com/RevOpsHQ/api-salesops/internal/commission"
	"github.com/gorilla/mux"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// Close handles POST /appointments/{id}/close.
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid appointment id", http.StatusBadRequest)
		return
	}

	var req CloseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	req.AppointmentID = uint(id)

	res, err := h.Service.Close(auth.UserID(r), req)
	if err != nil {
		switch {
		case errors.Is(err, commission.ErrCCRequired),
			errors.Is(err, commission.ErrInvalidMRRMonths):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrProfileNotFound):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, ErrAppointmentNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}
