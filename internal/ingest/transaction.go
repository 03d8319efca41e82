package ingest

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"smartspend/internal/core"
	"smartspend/internal/validation"
)

// Input is a manually entered transaction. Category is optional.
type Input struct {
	Date        string          `json:"date" validate:"required,calendar_date"`
	Description string          `json:"description" validate:"required,notblank,max=500"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0"`
	Category    string          `json:"category,omitempty" validate:"max=64"`
}

// NewTransaction validates in and builds a transaction with a new ID.
// A blank category is filled in by cls.
func NewTransaction(in Input, cls Categorizer) (core.Transaction, error) {
	if err := validation.Default().Struct(in); err != nil {
		return core.Transaction{}, err
	}
	desc := strings.TrimSpace(in.Description)
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = cls.Classify(desc)
	}
	return core.Transaction{
		ID:          uuid.NewString(),
		Date:        strings.TrimSpace(in.Date),
		Description: desc,
		Amount:      in.Amount,
		Category:    category,
	}, nil
}
