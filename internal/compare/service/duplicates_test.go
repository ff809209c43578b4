package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
)

func TestMultiAccountCustomers(t *testing.T) {
	vpp := []model.Account{
		{CustomerKey: "600", AccountID: "V9"},
		{CustomerKey: "500", AccountID: "V3"},
		{CustomerKey: "500", AccountID: "V1"},
		{CustomerKey: "700", AccountID: "V5"}, // unique key
		{CustomerKey: "500", AccountID: "V2"},
		{CustomerKey: "600", AccountID: "V8"},
	}

	got := MultiAccountCustomers(vpp, `\c`)
	require.Len(t, got, 5)

	keys := make([]string, len(got))
	ids := make([]string, len(got))
	for i, r := range got {
		keys[i] = r.CustomerKey
		ids[i] = r.AccountID
	}
	assert.Equal(t, []string{`\c500`, `\c500`, `\c500`, `\c600`, `\c600`}, keys)
	assert.Equal(t, []string{"V1", "V2", "V3", "V8", "V9"}, ids)
}

func TestMultiAccountCustomersAllUnique(t *testing.T) {
	vpp := []model.Account{
		{CustomerKey: "1", AccountID: "V1"},
		{CustomerKey: "2", AccountID: "V2"},
	}
	assert.Empty(t, MultiAccountCustomers(vpp, `\c`))
}

func TestMultiAccountCustomersEmpty(t *testing.T) {
	assert.Empty(t, MultiAccountCustomers(nil, `\c`))
}
