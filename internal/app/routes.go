package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Payment schedule
	r.HandleFunc("/api/schedule", deps.ScheduleHandler.GetSchedule).Methods("GET")

	// Annual cost projection
	r.HandleFunc("/api/projection", deps.ProjectionHandler.GetProjection).Methods("GET")

	// Generation run log
	if deps.RunHandler != nil {
		r.HandleFunc("/api/runs", deps.RunHandler.GetRuns).Methods("GET")
	}
}
