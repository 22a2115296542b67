package entity

// MaxTeams is the largest league a single submission may contain.
const MaxTeams = 20

// Team is one row of league input. Played and Points are derived from
// Won/Drawn/Lost when the team is built and never change afterwards.
type Team struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
	Drawn  int    `json:"drawn"`
	Lost   int    `json:"lost"`
	Points int    `json:"points"`
}
