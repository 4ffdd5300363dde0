package dto

import "github.com/ChokeGuy/coin-change/coin"

type CoinChangeResponse struct {
	Request             coin.Request `json:"request"`
	Coins               coin.Result  `json:"coins"`
	Count               int          `json:"count"`
	Total               string       `json:"total"`
	Rejected            []string     `json:"rejected"`
	DenominationWarning bool         `json:"denominationWarning"`
}

type ValidationErrorResponse struct {
	Field    string   `json:"field"`
	Rejected []string `json:"rejected"`
}

type SolverErrorResponse struct {
	SolverStatusCode int `json:"solverStatusCode,omitempty"`
}

type DenominationsResponse struct {
	Allowed         []float64 `json:"allowed"`
	Default         string    `json:"default"`
	MinTargetAmount float64   `json:"minTargetAmount"`
	MaxTargetAmount float64   `json:"maxTargetAmount"`
	Policy          string    `json:"policy"`
}
