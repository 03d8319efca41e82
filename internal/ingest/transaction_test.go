package ingest

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartspend/internal/classifier"
	"smartspend/internal/validation"
)

func TestNewTransactionClassifiesBlankCategory(t *testing.T) {
	tx, err := NewTransaction(Input{Date: "2023-03-01", Description: " Swiggy order ", Amount: decimal.NewFromInt(300)}, classifier.Default())
	require.NoError(t, err)
	assert.Equal(t, "Food", tx.Category)
	assert.Equal(t, "Swiggy order", tx.Description)
	assert.NotEmpty(t, tx.ID)
}

func TestNewTransactionKeepsExplicitCategory(t *testing.T) {
	tx, err := NewTransaction(Input{Date: "2023-03-01", Description: "Swiggy order", Amount: decimal.NewFromInt(300), Category: "Travel"}, classifier.Default())
	require.NoError(t, err)
	assert.Equal(t, "Travel", tx.Category)
}

func TestNewTransactionValidation(t *testing.T) {
	cases := []struct {
		name  string
		in    Input
		field string
	}{
		{"missing date", Input{Description: "x", Amount: decimal.NewFromInt(1)}, "date"},
		{"bad date", Input{Date: "tomorrow", Description: "x", Amount: decimal.NewFromInt(1)}, "date"},
		{"blank description", Input{Date: "2023-03-01", Description: "  ", Amount: decimal.NewFromInt(1)}, "description"},
		{"negative amount", Input{Date: "2023-03-01", Description: "x", Amount: decimal.NewFromInt(-1)}, "amount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransaction(tc.in, classifier.Default())
			require.ErrorIs(t, err, validation.ErrInvalid)
			var verr *validation.Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Fields[0].Field)
		})
	}
}
