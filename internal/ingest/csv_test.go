package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartspend/internal/classifier"
)

func TestParseCSV(t *testing.T) {
	in := "Date,Description,Amount\n" +
		"2023-03-01,Uber to work,250\n" +
		"2023-03-02, Zomato dinner ,450.50\r\n" +
		"2023-03-03,Amazon purchase,abc\n" +
		"2023-03-04,Short row\n" +
		"\n" +
		"2023-03-05,Refund,-20\n" +
		"2023-03-06,Electricity bill,800\n"

	res, err := ParseCSV(strings.NewReader(in), classifier.Default())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.Equal(t, 3, res.Skipped)
	require.Len(t, res.Transactions, 3)

	first := res.Transactions[0]
	assert.Equal(t, "2023-03-01", first.Date)
	assert.Equal(t, "Uber to work", first.Description)
	assert.True(t, first.Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "Transport", first.Category)
	_, err = uuid.Parse(first.ID)
	assert.NoError(t, err)

	second := res.Transactions[1]
	assert.Equal(t, "Zomato dinner", second.Description)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("450.5")))
	assert.Equal(t, "Food", second.Category)

	assert.Equal(t, "Utilities", res.Transactions[2].Category)
	assert.NotEqual(t, res.Transactions[0].ID, res.Transactions[2].ID)
}

func TestParseCSVColumnOrderAndFuzzyHeaders(t *testing.T) {
	in := "Amount (INR),Transaction Date,Long description,Notes\n" +
		"199,2023-03-07,Netflix subscription,monthly\n"

	res, err := ParseCSV(strings.NewReader(in), classifier.Default())
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	tx := res.Transactions[0]
	assert.Equal(t, "2023-03-07", tx.Date)
	assert.Equal(t, "Netflix subscription", tx.Description)
	assert.Equal(t, "Entertainment", tx.Category)
}

func TestParseCSVFirstMatchingHeaderWins(t *testing.T) {
	in := "date,updated date,description,amount\n2023-03-01,2024-01-01,Water bill,400\n"
	res, err := ParseCSV(strings.NewReader(in), classifier.Default())
	require.NoError(t, err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "2023-03-01", res.Transactions[0].Date)
}

func TestParseCSVMissingColumns(t *testing.T) {
	cases := []string{
		"Date,Description\n2023-03-01,Uber\n",
		"When,What,How much\n2023-03-01,Uber,10\n",
		"",
		"   \n  ",
	}
	for _, in := range cases {
		_, err := ParseCSV(strings.NewReader(in), classifier.Default())
		require.ErrorIs(t, err, ErrMissingColumns, "input %q", in)
		assert.Equal(t, "CSV file must contain Date, Description, and Amount columns", err.Error())
	}
}

func TestParseCSVQuotedCommasAreNotSpecial(t *testing.T) {
	in := "Date,Description,Amount\n2023-03-01,\"Dinner, drinks\",500\n"
	res, err := ParseCSV(strings.NewReader(in), classifier.Default())
	require.NoError(t, err)
	// The amount column now holds " drinks\"" and the row is dropped.
	assert.Zero(t, res.Imported)
	assert.Equal(t, 1, res.Skipped)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	res, err := ParseCSV(strings.NewReader("Date,Description,Amount\n"), classifier.Default())
	require.NoError(t, err)
	assert.Zero(t, res.Imported)
	assert.NotNil(t, res.Transactions)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParseCSVReadError(t *testing.T) {
	_, err := ParseCSV(errReader{}, classifier.Default())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingColumns)
}
