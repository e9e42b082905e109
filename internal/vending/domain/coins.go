package domain

import "strconv"

// Denominations lists the accepted coins in cents, largest first.
var Denominations = [...]int64{100, 50, 20, 10, 5}

type CoinCount struct {
	Denomination int64
	Count        int64
}

// Change is a coin breakdown ordered like Denominations. It always holds one
// entry per denomination.
type Change []CoinCount

func IsValidDenomination(amount int64) bool {
	for _, d := range Denominations {
		if d == amount {
			return true
		}
	}

	return false
}

// ComputeChange splits amount into the fewest coins by greedy descent.
// amount must be non-negative and a multiple of the smallest denomination.
func ComputeChange(amount int64) Change {
	change := make(Change, 0, len(Denominations))
	remaining := amount

	for _, d := range Denominations {
		count := remaining / d
		remaining -= count * d
		change = append(change, CoinCount{Denomination: d, Count: count})
	}

	return change
}

func (c Change) Total() int64 {
	var total int64
	for _, coin := range c {
		total += coin.Denomination * coin.Count
	}

	return total
}

func (c Change) Coins() int64 {
	var coins int64
	for _, coin := range c {
		coins += coin.Count
	}

	return coins
}

// ByLabel renders the breakdown keyed as "100c", "50c", ... "5c".
func (c Change) ByLabel() map[string]int64 {
	labeled := make(map[string]int64, len(c))
	for _, coin := range c {
		labeled[strconv.FormatInt(coin.Denomination, 10)+"c"] = coin.Count
	}

	return labeled
}
