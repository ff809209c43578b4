package service

import (
	"github.com/wtravers1/duplicate-taxpayer-detection/internal/compare/model"
)

// Run — full comparison pass. Normalizes keys on both tables, then the
// three analyses, each a pure function of the normalized inputs.
func Run(res, vpp []model.Account, opt model.Options) model.Result {
	// 1) Key normalization (must hit both tables before any comparison)
	NormalizeKeys(res)
	NormalizeKeys(vpp)

	// 2) Customers holding both RES and VPP accounts
	summary := CombinedSummary(res, vpp, opt.KeyMarker)

	// 3) Fuzzy name matches across the side-exclusive customers
	matches := ProbableMatches(res, vpp, opt)

	// 4) VPP customers with more than one account
	duplicates := MultiAccountCustomers(vpp, opt.KeyMarker)

	return model.Result{
		Summary:    summary,
		Matches:    matches,
		Duplicates: duplicates,
		Opts:       opt,
	}
}
