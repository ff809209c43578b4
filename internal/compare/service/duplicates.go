package service

import (
	"sort"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
)

// MultiAccountCustomers returns every VPP row whose customer key occurs
// more than once in the table, sorted by (key, account ID) so accounts of
// one customer sit together. Keys come back marker-prefixed.
func MultiAccountCustomers(vpp []model.Account, marker string) []model.Account {
	counts := make(map[string]int, len(vpp))
	for _, r := range vpp {
		counts[r.CustomerKey]++
	}

	out := make([]model.Account, 0)
	for _, r := range vpp {
		if counts[r.CustomerKey] > 1 {
			out = append(out, r)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CustomerKey != out[j].CustomerKey {
			return out[i].CustomerKey < out[j].CustomerKey
		}
		return out[i].AccountID < out[j].AccountID
	})

	for i := range out {
		out[i].CustomerKey = marker + out[i].CustomerKey
	}
	return out
}
