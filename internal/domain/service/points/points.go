package points

const (
	PerWin  = 3
	PerDraw = 1
)

// Calculate returns league points for a win/draw tally.
func Calculate(won, drawn int) int {
	return won*PerWin + drawn*PerDraw
}

// Played returns the number of games behind a won/drawn/lost tally.
func Played(won, drawn, lost int) int {
	return won + drawn + lost
}
