package dto

// CoinChangeRequest carries the form fields as typed by the user
type CoinChangeRequest struct {
	TargetAmount  string `json:"targetAmount"`
	Denominations string `json:"denominations"`
}

// StrictCoinChangeRequest is the solver payload itself; every denomination must be allowed
type StrictCoinChangeRequest struct {
	TargetAmount      *float64  `json:"targetAmount" binding:"required,min=0,max=10000"`
	CoinDenominations []float64 `json:"coinDenominations" binding:"required,min=1,dive,denomination"`
}
