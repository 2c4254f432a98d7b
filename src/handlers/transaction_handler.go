package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"fintrack-server/src/models"
	"fintrack-server/src/services"
)

// CreateTransaction records an income or expense for the caller.
func CreateTransaction(ledger *services.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := userIDFrom(r)
		var req services.CreateTransactionInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		txn, err := ledger.Create(r.Context(), userID, req)
		if err != nil {
			serviceError(w, err)
			return
		}

		slog.Info("transaction created", "user_id", userID, "transaction_id", txn.ID, "type", txn.Kind)
		writeJSON(w, http.StatusCreated, txn)
	}
}

// ListTransactions returns the caller's transactions, newest first.
// Supported query parameters: type, category, startDate, endDate, limit.
func ListTransactions(ledger *services.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := models.TransactionFilter{
			Kind:         q.Get("type"),
			CategoryName: q.Get("category"),
			DateFrom:     q.Get("startDate"),
			DateTo:       q.Get("endDate"),
		}
		if raw := q.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			filter.Limit = limit
		}

		txns, err := ledger.List(r.Context(), userIDFrom(r), filter)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, txns)
	}
}

func GetTransaction(ledger *services.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}
		txn, err := ledger.Get(r.Context(), userIDFrom(r), id)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, txn)
	}
}

func UpdateTransaction(ledger *services.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}
		var req services.UpdateTransactionInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		txn, err := ledger.Update(r.Context(), userIDFrom(r), id, req)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, txn)
	}
}

func DeleteTransaction(ledger *services.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid transaction id")
			return
		}
		if err := ledger.Delete(r.Context(), userIDFrom(r), id); err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
	}
}
