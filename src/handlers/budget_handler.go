package handlers

import (
	"encoding/json"
	"net/http"

	"fintrack-server/src/models"
	"fintrack-server/src/services"
)

// budgetView is a budget with its derived spend state attached.
type budgetView struct {
	*models.Budget
	Progress models.BudgetProgress `json:"progress"`
}

func withProgress(r *http.Request, svc *services.Budgets, budget *models.Budget) (*budgetView, error) {
	progress, err := svc.Progress(r.Context(), budget)
	if err != nil {
		return nil, err
	}
	return &budgetView{Budget: budget, Progress: progress}, nil
}

func CreateBudget(svc *services.Budgets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.BudgetInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		budget, err := svc.Create(r.Context(), userIDFrom(r), req)
		if err != nil {
			serviceError(w, err)
			return
		}
		view, err := withProgress(r, svc, budget)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, view)
	}
}

// ListBudgets returns every budget with its progress embedded.
func ListBudgets(svc *services.Budgets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		budgets, err := svc.List(r.Context(), userIDFrom(r))
		if err != nil {
			serviceError(w, err)
			return
		}

		views := make([]*budgetView, 0, len(budgets))
		for i := range budgets {
			view, err := withProgress(r, svc, &budgets[i])
			if err != nil {
				serviceError(w, err)
				return
			}
			views = append(views, view)
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func GetBudget(svc *services.Budgets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		budget, err := svc.Get(r.Context(), userIDFrom(r), id)
		if err != nil {
			serviceError(w, err)
			return
		}
		view, err := withProgress(r, svc, budget)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// BudgetProgress returns only the derived spend state of one budget.
func BudgetProgress(svc *services.Budgets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		budget, err := svc.Get(r.Context(), userIDFrom(r), id)
		if err != nil {
			serviceError(w, err)
			return
		}
		progress, err := svc.Progress(r.Context(), budget)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, progress)
	}
}

func UpdateBudget(svc *services.Budgets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		var req models.BudgetUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		budget, err := svc.Update(r.Context(), userIDFrom(r), id, req)
		if err != nil {
			serviceError(w, err)
			return
		}
		view, err := withProgress(r, svc, budget)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func DeleteBudget(svc *services.Budgets) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid budget id")
			return
		}
		if err := svc.Delete(r.Context(), userIDFrom(r), id); err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "budget deleted"})
	}
}
