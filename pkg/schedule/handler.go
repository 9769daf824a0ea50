package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vmanchev/payroll-advanced/internal/rest"
	"github.com/vmanchev/payroll-advanced/internal/utils"
)

type RowDTO struct {
	Month  string `json:"month"`
	Salary string `json:"salary"`
	Bonus  string `json:"bonus"`
}

type ScheduleDTO struct {
	Year int      `json:"year"`
	Rows []RowDTO `json:"rows"`
}

type Handler struct {
	service     Service
	csvRenderer ScheduleRenderer
	clock       utils.Clock
}

func NewHandler(service Service, csvRenderer ScheduleRenderer, clock utils.Clock) *Handler {
	return &Handler{service, csvRenderer, clock}
}

// GetSchedule returns the payment schedule for the requested year, defaulting
// to the current year. Responds with CSV when the Accept header asks for
// text/csv, JSON otherwise.
func (handler *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	year := handler.clock.Now().Year()
	yearString := r.URL.Query().Get("year")
	if yearString != "" {
		parsed, err := strconv.Atoi(yearString)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
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

	generated, err := handler.service.Generate(r.Context(), year)
	if err != nil {
		if errors.Is(err, ErrInvalidYear) {
			w.Header().Set("Content-Type", "application/json")
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

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.csvRenderer.Render(generated)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(scheduleToDTO(generated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func scheduleToDTO(schedule Schedule) ScheduleDTO {
	rows := make([]RowDTO, 0, len(schedule.Rows))
	for _, row := range schedule.Rows {
		rows = append(rows, RowDTO{
			Month:  row.MonthName(),
			Salary: row.SalaryDate.Format(DateFormat),
			Bonus:  row.BonusDate.Format(DateFormat),
		})
	}
	return ScheduleDTO{
		Year: schedule.Year,
		Rows: rows,
	}
}
