package models

// Summary represents aggregated spending for a user.
//
// MonthTotal and ByCategory cover the requested month. YearTotal covers the
// current calendar year up to now, regardless of which month was requested.
type Summary struct {
	Month      string             `json:"month"`
	MonthTotal float64            `json:"month_total"`
	ByCategory map[string]float64 `json:"by_category"`
	YearTotal  float64            `json:"year_total"`
}
