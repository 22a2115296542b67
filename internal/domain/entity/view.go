package entity

import "league_table/internal/domain/value"

// View is the outcome of one league render: the ranked table, the names
// offered in the team selector and the chart of the selected team.
type View struct {
	Order     value.SortOrder
	Teams     []Team
	Names     []string
	Selected  string
	Breakdown *Breakdown
}
