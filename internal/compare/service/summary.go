package service

import (
	"sort"
	"strings"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
)

// The account reports carry a footer row whose key is literally "Totals";
// it must never survive into the summary.
const totalsSentinel = "Totals"

type groupKey struct {
	key  string
	name string
}

type groupAgg struct {
	ids     []string
	balance float64
}

// CombinedSummary lists every customer key present in BOTH tables, one row
// per (key, name) group: account IDs sorted and joined with ", ", balances
// summed across both reports. Rows come back balance-descending with the
// key marker already applied.
func CombinedSummary(res, vpp []model.Account, marker string) []model.SummaryRow {
	common := make(map[string]bool)
	vppKeys := keySet(vpp)
	for _, r := range res {
		if vppKeys[r.CustomerKey] {
			common[r.CustomerKey] = true
		}
	}

	groups := make(map[groupKey]*groupAgg)
	combine := func(rows []model.Account) {
		for _, r := range rows {
			if !common[r.CustomerKey] {
				continue
			}
			gk := groupKey{key: r.CustomerKey, name: r.CustomerName}
			g, ok := groups[gk]
			if !ok {
				g = &groupAgg{}
				groups[gk] = g
			}
			g.ids = append(g.ids, r.AccountID)
			g.balance += r.TotalBalance
		}
	}
	combine(res)
	combine(vpp)

	out := make([]model.SummaryRow, 0, len(groups))
	for gk, g := range groups {
		if gk.key == totalsSentinel {
			continue
		}
		sort.Strings(g.ids)
		out = append(out, model.SummaryRow{
			CustomerKey:  gk.key,
			CustomerName: gk.name,
			AccountIDs:   strings.Join(g.ids, ", "),
			TotalBalance: g.balance,
		})
	}

	// key/name ascending first so equal balances keep a deterministic order
	sort.Slice(out, func(i, j int) bool {
		if out[i].CustomerKey != out[j].CustomerKey {
			return out[i].CustomerKey < out[j].CustomerKey
		}
		return out[i].CustomerName < out[j].CustomerName
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalBalance > out[j].TotalBalance
	})

	for i := range out {
		out[i].CustomerKey = marker + out[i].CustomerKey
	}
	return out
}

func keySet(rows []model.Account) map[string]bool {
	s := make(map[string]bool, len(rows))
	for _, r := range rows {
		s[r.CustomerKey] = true
	}
	return s
}
