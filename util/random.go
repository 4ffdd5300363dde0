package util

import (
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func RandomInt(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

// RandomTargetAmount returns an amount with two decimals inside the accepted range
func RandomTargetAmount() float64 {
	return float64(RandomInt(0, int64(MaxTargetAmount)*100)) / 100
}

func RandomDenomination() float64 {
	denominations := SupportedDenominations()
	n := len(denominations)
	return denominations[rand.Intn(n)]
}

// RandomDenominations returns n allowed denominations, duplicates possible
func RandomDenominations(n int) []float64 {
	denominations := make([]float64, n)
	for i := range denominations {
		denominations[i] = RandomDenomination()
	}
	return denominations
}

// RandomUnsupportedDenomination returns a positive whole number outside the allowed set
func RandomUnsupportedDenomination() float64 {
	for {
		d := float64(RandomInt(3, 999))
		if !IsSupportedDenomination(d) {
			return d
		}
	}
}
