package runlog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vmanchev/payroll-advanced/internal/rest"
)

type RunDTO struct {
	ID          string    `json:"id"`
	Year        int       `json:"year"`
	Rows        int       `json:"rows"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// GetRuns returns the most recent schedule generations, newest first.
func (handler *Handler) GetRuns(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit := 0
	limitString := r.URL.Query().Get("limit")
	if limitString != "" {
		parsed, err := strconv.Atoi(limitString)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid limit format",
				Details: "limit must be an integer",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
			return
		}
		limit = parsed
	}

	runs, err := handler.service.GetRecent(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	runsDTO := make([]RunDTO, 0, len(runs))
	for _, run := range runs {
		runsDTO = append(runsDTO, RunDTO{
			ID:          run.ID.String(),
			Year:        run.Year,
			Rows:        run.Rows,
			GeneratedAt: run.GeneratedAt,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(runsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
