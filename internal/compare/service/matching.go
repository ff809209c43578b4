package service

import (
	"sort"

	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
)

// ProbableMatches pairs customers that appear in only one report with their
// closest counterpart on the other side, by name similarity.
//
// Matching is greedy and one-directional: each RES-only row independently
// picks its single best VPP-only candidate, so one VPP row can be the best
// match for several RES rows. That is intentional — a global assignment
// would change which pairs surface, and the reviewers working the report
// prefer seeing every plausible pairing.
func ProbableMatches(res, vpp []model.Account, opt model.Options) []model.MatchRow {
	resKeys := keySet(res)
	vppKeys := keySet(vpp)

	resOnly := exclusiveRows(res, vppKeys)
	vppOnly := exclusiveRows(vpp, resKeys)

	// precompute canonical names once; the scan below is O(res*vpp)
	vppCanon := make([]string, len(vppOnly))
	for i, v := range vppOnly {
		vppCanon[i] = canonicalName(v.CustomerName)
	}

	matches := make([]model.MatchRow, 0)
	for _, rr := range resOnly {
		rc := canonicalName(rr.CustomerName)

		bestIdx := -1
		bestScore := 0.0
		for i, vc := range vppCanon {
			s := 100 * similarity(rc, vc)
			if s > bestScore {
				bestScore = s
				bestIdx = i
			}
		}
		if bestIdx < 0 || bestScore < opt.MatchThreshold {
			continue
		}

		vr := vppOnly[bestIdx]
		// keys already normalized; equality here would mean the set
		// difference above misclassified the row
		if vr.CustomerKey == rr.CustomerKey {
			continue
		}

		var streetScore *float64
		if rr.Street != "" && vr.Street != "" {
			s := TokenSortRatio(rr.Street, vr.Street)
			streetScore = &s
		}

		matches = append(matches, model.MatchRow{
			ResKey:      opt.KeyMarker + rr.CustomerKey,
			ResName:     rr.CustomerName,
			ResStreet:   rr.Street,
			VppKey:      opt.KeyMarker + vr.CustomerKey,
			VppName:     vr.CustomerName,
			VppStreet:   vr.Street,
			NameScore:   bestScore,
			StreetScore: streetScore,
		})
	}

	// street similarity descending; rows without a street score sort last
	sort.SliceStable(matches, func(i, j int) bool {
		si, sj := matches[i].StreetScore, matches[j].StreetScore
		switch {
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return *si > *sj
		}
	})
	return matches
}

// exclusiveRows keeps rows whose key is absent from the other table, drops
// rows without a customer name, and dedupes by (key, name).
func exclusiveRows(rows []model.Account, otherKeys map[string]bool) []model.Account {
	seen := make(map[groupKey]bool)
	out := make([]model.Account, 0)
	for _, r := range rows {
		if otherKeys[r.CustomerKey] || r.CustomerName == "" {
			continue
		}
		gk := groupKey{key: r.CustomerKey, name: r.CustomerName}
		if seen[gk] {
			continue
		}
		seen[gk] = true
		out = append(out, r)
	}
	return out
}
