package handler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
	"github.com/wtravers1/duplicate-taxpayer-detection/internal/utils"
)

// Column contract of the delinquent account detail reports.
const (
	colCustomerKey  = "Customer Key"
	colCustomerName = "Customer Name"
	colAccountID    = "Account ID"
	colTotalBalance = "Total Balance"
	colStreet       = "Street"
)

var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey — canonical header form: lowercase, NBSP to space,
// punctuation stripped, single spaces.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", " ", " ", " ").Replace(s)
	s = nonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the real header in a record for a wanted column name.
// Exact match first, then normalized equality, then containment either way
// (report headers sometimes carry suffixes like "Total Balance Due").
func resolveKey(rec map[string]string, want string) string {
	if _, ok := rec[want]; ok {
		return want
	}
	nWant := normHeaderKey(want)

	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		if nk == nWant {
			return k
		}
		score := 0
		if strings.Contains(nk, nWant) || strings.Contains(nWant, nk) {
			score = len(nk)
		}
		if score > bestScore || (score == bestScore && k < bestKey) {
			bestScore, bestKey = score, k
		}
	}
	if bestScore == 0 {
		return ""
	}
	return bestKey
}

// toAccounts maps raw report records onto Account rows. Rows without a
// customer key are dropped; the "Street" column is optional.
func toAccounts(maps []map[string]string) []model.Account {
	rows := make([]model.Account, 0, len(maps))
	for _, rec := range maps {
		keyCol := resolveKey(rec, colCustomerKey)
		if keyCol == "" {
			continue
		}
		key := strings.TrimSpace(rec[keyCol])
		if key == "" {
			continue
		}
		balance, _ := utils.ParseAmount(rec[resolveKey(rec, colTotalBalance)])
		rows = append(rows, model.Account{
			CustomerKey:  key,
			CustomerName: strings.TrimSpace(rec[resolveKey(rec, colCustomerName)]),
			AccountID:    strings.TrimSpace(rec[resolveKey(rec, colAccountID)]),
			TotalBalance: balance,
			Street:       strings.TrimSpace(rec[resolveKey(rec, colStreet)]),
		})
	}
	return rows
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func toFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
