// Package session drives the interactive add-transaction flow and the
// sign-out sequence against the gateway.
package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"zenfinance/internal/client"
	apperrors "zenfinance/internal/errors"
	"zenfinance/internal/models"
	"zenfinance/internal/prefs"
	"zenfinance/internal/report"
	"zenfinance/internal/store"
)

// Step identifies the current stage of the add-transaction flow.
type Step string

const (
	StepAmountEntry    Step = "amount_entry"
	StepCategoryPick   Step = "category_pick"
	StepCategoryEditor Step = "category_editor"
	StepCommitted      Step = "committed"
)

// Gateway is the slice of the gateway client the flow needs.
type Gateway interface {
	CreateTransaction(ctx context.Context, entry client.CreateTransactionEntry) (*client.Transaction, error)
	SignOut(ctx context.Context) error
}

// Flow walks a user through recording one transaction: enter an amount,
// pick a category, commit. The amount survives a failed commit so the
// user can retry without retyping it.
type Flow struct {
	gateway Gateway
	store   *store.DomainStore
	prefs   *prefs.Store

	step   Step
	txType models.TransactionType
	amount float64
}

// NewFlow creates a flow positioned at amount entry, defaulting to expense.
func NewFlow(gateway Gateway, domainStore *store.DomainStore, prefsStore *prefs.Store) *Flow {
	return &Flow{
		gateway: gateway,
		store:   domainStore,
		prefs:   prefsStore,
		step:    StepAmountEntry,
		txType:  models.TransactionTypeExpense,
	}
}

// Step returns the current stage.
func (f *Flow) Step() Step {
	return f.step
}

// Amount returns the entered amount, in the currency it was entered in.
func (f *Flow) Amount() float64 {
	return f.amount
}

// SetType switches the flow between income and expense. Only allowed
// before a category is picked.
func (f *Flow) SetType(t models.TransactionType) error {
	if !t.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	f.txType = t
	return nil
}

// EnterAmount validates the raw amount text and advances to category
// selection. Empty or non-numeric input keeps the flow at amount entry.
func (f *Flow) EnterAmount(raw string) error {
	if f.step != StepAmountEntry {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount already entered")
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is required")
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil || amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("%q is not a valid amount", raw))
	}
	f.amount = amount
	f.step = StepCategoryPick
	return nil
}

// Categories lists the stored categories matching the flow's type, for
// the picker.
func (f *Flow) Categories() []models.Category {
	all := f.store.Categories()
	matched := make([]models.Category, 0, len(all))
	for _, cat := range all {
		if string(cat.Type) == string(f.txType) {
			matched = append(matched, cat)
		}
	}
	return matched
}

// OpenCategoryEditor switches from the picker to the category editor.
func (f *Flow) OpenCategoryEditor() error {
	if f.step != StepCategoryPick {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "no category selection in progress")
	}
	f.step = StepCategoryEditor
	return nil
}

// CloseCategoryEditor returns to the picker, keeping the entered amount.
func (f *Flow) CloseCategoryEditor() error {
	if f.step != StepCategoryEditor {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category editor is not open")
	}
	f.step = StepCategoryPick
	return nil
}

// PickCategory commits the transaction under the given category label.
// Amounts entered in the display currency are converted into the base
// currency before they leave the client. On success the stored row is
// prepended to the domain store and the flow lands on the committed
// stage; on failure the flow stays at the picker with the amount intact.
func (f *Flow) PickCategory(ctx context.Context, category string) (*models.Transaction, error) {
	if f.step != StepCategoryPick {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "no category selection in progress")
	}
	if strings.TrimSpace(category) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	state := f.prefs.Snapshot()
	amount := report.NormalizeAmount(f.amount, state.Currency, state.Rate)

	recorded, err := f.gateway.CreateTransaction(ctx, client.CreateTransactionEntry{
		Amount:   amount,
		Type:     string(f.txType),
		Category: category,
	})
	if err != nil {
		return nil, err
	}

	tx := toModelTransaction(*recorded)
	f.store.AddTransaction(tx)
	f.step = StepCommitted
	f.amount = 0
	return &tx, nil
}

// Reset returns the flow to amount entry for the next transaction.
func (f *Flow) Reset() {
	f.step = StepAmountEntry
	f.txType = models.TransactionTypeExpense
	f.amount = 0
}

// SignOut clears the local domain data, then ends the gateway session.
// Local data must be gone before the sign-out call resolves so no stale
// rows can flash for the next account.
func (f *Flow) SignOut(ctx context.Context) error {
	f.store.ClearUserData()
	return f.gateway.SignOut(ctx)
}

func toModelTransaction(tx client.Transaction) models.Transaction {
	createdAt, err := time.Parse(time.RFC3339, tx.CreatedAt)
	if err != nil {
		createdAt = time.Now()
	}
	return models.Transaction{
		Base: models.Base{
			ID:        tx.ID,
			CreatedAt: createdAt,
		},
		UserID:   tx.UserID,
		Amount:   tx.Amount,
		Type:     models.TransactionType(tx.Type),
		Category: tx.Category,
	}
}
