package entity

const (
	SliceWon   = "Won"
	SliceDrawn = "Drawn"
	SliceLost  = "Lost"
)

// Slice is one category of a team's results chart.
type Slice struct {
	Label      string
	Count      int
	Percent    float64 // share of games played, 0 when nothing was played
	Color      string
	Emphasized bool
}

// Breakdown is the won/drawn/lost chart of a single team.
type Breakdown struct {
	Team   string
	Played int
	Slices []Slice
}
