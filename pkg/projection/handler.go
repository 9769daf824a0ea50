package projection

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vmanchev/payroll-advanced/internal/rest"
	"github.com/vmanchev/payroll-advanced/internal/utils"
	"github.com/vmanchev/payroll-advanced/pkg/schedule"
)

type CostProjectionDTO struct {
	Year          int    `json:"year"`
	MonthlySalary string `json:"monthlySalary"`
	MonthlyBonus  string `json:"monthlyBonus"`
	AnnualSalary  string `json:"annualSalary"`
	AnnualBonus   string `json:"annualBonus"`
	AnnualTotal   string `json:"annualTotal"`
}

type Handler struct {
	service Service
	clock   utils.Clock
}

func NewHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service, clock}
}

// GetProjection returns the annual payroll cost projection for the requested
// year, defaulting to the current year.
func (handler *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year := handler.clock.Now().Year()
	yearString := r.URL.Query().Get("year")
	if yearString != "" {
		parsed, err := strconv.Atoi(yearString)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid year format",
				Details: "year must be an integer",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
			return
		}
		year = parsed
	}

	projection, err := handler.service.Project(r.Context(), year)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidYear) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid year",
				Details: err.Error(),
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
				return
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(CostProjectionDTO{
		Year:          projection.Year,
		MonthlySalary: projection.MonthlySalary.String(),
		MonthlyBonus:  projection.MonthlyBonus.String(),
		AnnualSalary:  projection.AnnualSalary.String(),
		AnnualBonus:   projection.AnnualBonus.String(),
		AnnualTotal:   projection.AnnualTotal.String(),
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
