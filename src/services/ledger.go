package services

import (
	"context"
	"time"

	"fintrack-server/src/db"
	"fintrack-server/src/models"
)

// defaultListLimit caps transaction listings when the caller does not
// ask for a specific limit.
const defaultListLimit = 50

// Ledger owns create/read/update/delete of income and expense records,
// always scoped to the owning user.
type Ledger struct {
	store    db.Store
	resolver *CategoryResolver
}

func NewLedger(store db.Store, resolver *CategoryResolver) *Ledger {
	return &Ledger{store: store, resolver: resolver}
}

// CreateTransactionInput is the request side of Ledger.Create. Kind
// defaults to expense, CategoryName may be empty for an uncategorized
// record.
type CreateTransactionInput struct {
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	CategoryName string  `json:"category"`
	Kind         string  `json:"type"`
	Date         string  `json:"date"`
}

// UpdateTransactionInput carries a partial edit; nil fields are left
// unchanged. A non-nil empty CategoryName clears the category.
type UpdateTransactionInput struct {
	Amount       *float64 `json:"amount"`
	Description  *string  `json:"description"`
	CategoryName *string  `json:"category"`
	Kind         *string  `json:"type"`
	Date         *string  `json:"date"`
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validKind(s string) bool {
	return s == models.KindExpense || s == models.KindIncome
}

// Create validates the input, resolves the category and inserts the
// record, returning it joined with the category display fields.
func (l *Ledger) Create(ctx context.Context, userID int64, in CreateTransactionInput) (*models.Transaction, error) {
	if in.Amount < 0 {
		return nil, invalid("amount", "must be non-negative")
	}
	if !validDate(in.Date) {
		return nil, invalid("date", "must be a valid YYYY-MM-DD date")
	}
	kind := in.Kind
	if kind == "" {
		kind = models.KindExpense
	}
	if !validKind(kind) {
		return nil, invalid("type", "must be expense or income")
	}

	categoryID, err := l.resolver.Resolve(ctx, in.CategoryName, userID)
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		UserID:      userID,
		Amount:      in.Amount,
		Description: in.Description,
		CategoryID:  categoryID,
		Kind:        kind,
		Date:        in.Date,
	}
	if err := l.store.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return l.store.GetTransaction(ctx, userID, txn.ID)
}

// List returns the user's transactions, newest first, narrowed by the
// filter. Limit falls back to the default of 50.
func (l *Ledger) List(ctx context.Context, userID int64, filter models.TransactionFilter) ([]models.Transaction, error) {
	if filter.Kind != "" && !validKind(filter.Kind) {
		return nil, invalid("type", "must be expense or income")
	}
	if filter.DateFrom != "" && !validDate(filter.DateFrom) {
		return nil, invalid("startDate", "must be a valid YYYY-MM-DD date")
	}
	if filter.DateTo != "" && !validDate(filter.DateTo) {
		return nil, invalid("endDate", "must be a valid YYYY-MM-DD date")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	return l.store.ListTransactions(ctx, userID, filter)
}

func (l *Ledger) Get(ctx context.Context, userID, id int64) (*models.Transaction, error) {
	return l.store.GetTransaction(ctx, userID, id)
}

// Update applies a partial edit. A supplied category name is re-resolved
// (and created if new); an empty one detaches the record from its
// category.
func (l *Ledger) Update(ctx context.Context, userID, id int64, in UpdateTransactionInput) (*models.Transaction, error) {
	if in.Amount != nil && *in.Amount < 0 {
		return nil, invalid("amount", "must be non-negative")
	}
	if in.Date != nil && !validDate(*in.Date) {
		return nil, invalid("date", "must be a valid YYYY-MM-DD date")
	}
	if in.Kind != nil && !validKind(*in.Kind) {
		return nil, invalid("type", "must be expense or income")
	}

	upd := models.TransactionUpdate{
		Amount:      in.Amount,
		Description: in.Description,
		Kind:        in.Kind,
		Date:        in.Date,
	}
	if in.CategoryName != nil {
		categoryID, err := l.resolver.Resolve(ctx, *in.CategoryName, userID)
		if err != nil {
			return nil, err
		}
		upd.SetCategory = true
		upd.CategoryID = categoryID
	}
	return l.store.UpdateTransaction(ctx, userID, id, upd)
}

// Delete removes the record. Deleting a transaction that is absent or
// owned by someone else reports db.ErrNotFound; this mirrors the
// existence check on update so both mutations behave the same way.
func (l *Ledger) Delete(ctx context.Context, userID, id int64) error {
	return l.store.DeleteTransaction(ctx, userID, id)
}
