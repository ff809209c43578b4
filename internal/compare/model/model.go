package model

// Options control the comparison run. Zero fields get defaults from config.
type Options struct {
	MatchThreshold     float64 // minimum name similarity for a probable match (0..100)
	HighlightThreshold float64 // street similarity above which a match row is highlighted
	KeyMarker          string  // display escape prepended to customer keys (lookup code for the tax system)
}

// Account is one delinquent account row from either the RES or VPP report.
type Account struct {
	CustomerKey  string  `json:"customerKey"`
	CustomerName string  `json:"customerName"`
	AccountID    string  `json:"accountId"`
	TotalBalance float64 `json:"totalBalance"`
	Street       string  `json:"street"`
}

// SummaryRow is one customer holding both RES and VPP accounts.
type SummaryRow struct {
	CustomerKey  string  `json:"customerKey"`
	CustomerName string  `json:"customerName"`
	AccountIDs   string  `json:"accountIds"` // sorted, ", "-joined
	TotalBalance float64 `json:"totalBalance"`
}

// MatchRow pairs a RES-only customer with its best-scoring VPP-only customer.
type MatchRow struct {
	ResKey      string   `json:"resCustomerKey"`
	ResName     string   `json:"resName"`
	ResStreet   string   `json:"resStreet"`
	VppKey      string   `json:"vppCustomerKey"`
	VppName     string   `json:"vppName"`
	VppStreet   string   `json:"vppStreet"`
	NameScore   float64  `json:"nameSimilarity"`
	StreetScore *float64 `json:"streetSimilarity,omitempty"` // nil when either street is missing
}

type Result struct {
	Summary    []SummaryRow `json:"summary"`
	Matches    []MatchRow   `json:"matches"`
	Duplicates []Account    `json:"duplicates"`
	Opts       Options      `json:"opts"`
	File       string       `json:"file,omitempty"` // path of the exported workbook
}
