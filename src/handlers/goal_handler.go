package handlers

import (
	"encoding/json"
	"net/http"

	"fintrack-server/src/models"
	"fintrack-server/src/services"
)

// goalView is a goal with its derived state attached.
type goalView struct {
	*models.Goal
	Progress models.GoalProgress `json:"progress"`
}

func CreateGoal(svc *services.Goals) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.GoalInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		goal, err := svc.Create(r.Context(), userIDFrom(r), req)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, goalView{Goal: goal, Progress: svc.Progress(goal)})
	}
}

// ListGoals returns every goal with its progress embedded.
func ListGoals(svc *services.Goals) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := svc.List(r.Context(), userIDFrom(r))
		if err != nil {
			serviceError(w, err)
			return
		}

		views := make([]goalView, 0, len(goals))
		for i := range goals {
			views = append(views, goalView{Goal: &goals[i], Progress: svc.Progress(&goals[i])})
		}
		writeJSON(w, http.StatusOK, views)
	}
}

func GetGoal(svc *services.Goals) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid goal id")
			return
		}
		goal, err := svc.Get(r.Context(), userIDFrom(r), id)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, goalView{Goal: goal, Progress: svc.Progress(goal)})
	}
}

// GoalProgress returns only the derived state of one goal.
func GoalProgress(svc *services.Goals) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid goal id")
			return
		}
		goal, err := svc.Get(r.Context(), userIDFrom(r), id)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, svc.Progress(goal))
	}
}

func UpdateGoal(svc *services.Goals) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid goal id")
			return
		}
		var req models.GoalUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		goal, err := svc.Update(r.Context(), userIDFrom(r), id, req)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, goalView{Goal: goal, Progress: svc.Progress(goal)})
	}
}

func DeleteGoal(svc *services.Goals) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid goal id")
			return
		}
		if err := svc.Delete(r.Context(), userIDFrom(r), id); err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "goal deleted"})
	}
}
