// Package rest holds the JSON shapes of the HTTP API.
package rest

type LeagueTableRequest struct {
	// Input Team rows, one per line: "name, won, drawn, lost"
	Input string `json:"input" validate:"max=65536"`

	// Order Descending (default) or Ascending
	Order string `json:"order" validate:"omitempty,oneof=Descending Ascending"`

	// Team Name of the team to chart, first ranked team when empty
	Team string `json:"team" validate:"max=256"`
}

type LeagueTable struct {
	Order    string   `json:"order"`
	Teams    []Team   `json:"teams"`
	Names    []string `json:"names"`
	Selected string   `json:"selected,omitempty"`
	Chart    *Chart   `json:"chart,omitempty"`
}

type Team struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
	Drawn  int    `json:"drawn"`
	Lost   int    `json:"lost"`
	Points int    `json:"points"`
}

type Chart struct {
	Team   string       `json:"team"`
	Played int          `json:"played"`
	Slices []ChartSlice `json:"slices"`
}

type ChartSlice struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percent    float64 `json:"percent"`
	Color      string  `json:"color"`
	Emphasized bool    `json:"emphasized"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке для отображения в UI
	Message string `json:"message"`

	// SupportID Trace id of the failed request
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
