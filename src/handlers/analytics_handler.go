package handlers

import (
	"net/http"

	"fintrack-server/src/models"
	"fintrack-server/src/services"
)

// Dashboard returns totals, category breakdown and recent activity,
// optionally narrowed with startDate and endDate query parameters.
func Dashboard(svc *services.Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		dashboard, err := svc.Dashboard(r.Context(), userIDFrom(r), models.DateRange{
			From: q.Get("startDate"),
			To:   q.Get("endDate"),
		})
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dashboard)
	}
}

// MonthlySeries returns up to six months of per-month expense and
// income sums, most recent first.
func MonthlySeries(svc *services.Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := svc.Monthly(r.Context(), userIDFrom(r))
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, points)
	}
}

// CategoryTotals returns all-time expense sums per category, largest
// first.
func CategoryTotals(svc *services.Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := svc.CategoryTotals(r.Context(), userIDFrom(r))
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, totals)
	}
}
