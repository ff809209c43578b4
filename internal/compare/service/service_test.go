package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
)

// Keys "123" and "123,0" refer to the same customer once normalized; the
// run must place them in one combined summary row.
func TestRunNormalizesBeforeComparing(t *testing.T) {
	res := []model.Account{
		{CustomerKey: "123", CustomerName: "ACME LLC", AccountID: "R1", TotalBalance: 100},
		{CustomerKey: "1230", CustomerName: "ACME LLC", AccountID: "R2", TotalBalance: 50},
	}
	vpp := []model.Account{
		{CustomerKey: "123,0", CustomerName: "ACME LLC", AccountID: "V1", TotalBalance: 25},
	}

	got := Run(res, vpp, model.Options{MatchThreshold: 85, KeyMarker: `\c`})

	require.Len(t, got.Summary, 1)
	assert.Equal(t, `\c1230`, got.Summary[0].CustomerKey)
	assert.Equal(t, "R2, V1", got.Summary[0].AccountIDs)
	assert.Equal(t, 75.0, got.Summary[0].TotalBalance)

	// "123" stayed RES-only but shares the customer name; the matcher may
	// pair it, never with an equal key
	for _, m := range got.Matches {
		assert.NotEqual(t, m.ResKey, m.VppKey)
	}
}

func TestRunIndependentAnalyses(t *testing.T) {
	res := []model.Account{
		{CustomerKey: "1", CustomerName: "Common Co", AccountID: "R1", TotalBalance: 10},
		{CustomerKey: "2", CustomerName: "John Smith", AccountID: "R2", Street: "100 Main St"},
	}
	vpp := []model.Account{
		{CustomerKey: "1", CustomerName: "Common Co", AccountID: "V1", TotalBalance: 5},
		{CustomerKey: "3", CustomerName: "Smith, John", AccountID: "V2", Street: "100 Main Street"},
		{CustomerKey: "9", CustomerName: "Dup Co", AccountID: "V3"},
		{CustomerKey: "9", CustomerName: "Dup Co", AccountID: "V4"},
	}

	got := Run(res, vpp, model.Options{MatchThreshold: 85, KeyMarker: `\c`})

	require.Len(t, got.Summary, 1)
	require.Len(t, got.Matches, 1)
	require.Len(t, got.Duplicates, 2)

	assert.Equal(t, `\c1`, got.Summary[0].CustomerKey)
	assert.Equal(t, `\c2`, got.Matches[0].ResKey)
	assert.Equal(t, `\c3`, got.Matches[0].VppKey)
	assert.Equal(t, `\c9`, got.Duplicates[0].CustomerKey)
}

func TestRunEmptyInputs(t *testing.T) {
	got := Run(nil, nil, model.Options{MatchThreshold: 85, KeyMarker: `\c`})
	assert.Empty(t, got.Summary)
	assert.Empty(t, got.Matches)
	assert.Empty(t, got.Duplicates)
}
