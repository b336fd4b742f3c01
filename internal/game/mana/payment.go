package mana

import (
	"fmt"
)

// PaymentResult represents the result of a payment attempt. On success Pool
// holds the updated pool; on failure it holds the caller's original pool
// untouched, with Reason set.
type PaymentResult struct {
	Success bool
	Pool    Pool
	Reason  string
}

// CanPay reports whether pool can cover cost: every specific color must be
// covered, and the leftover after covering colors must reach the generic
// requirement.
func CanPay(pool Pool, cost Cost) bool {
	leftover := 0
	for _, c := range Colors {
		remaining := pool.Get(c) - cost.Required(c)
		if remaining < 0 {
			return false
		}
		leftover += remaining
	}
	return leftover >= cost.TotalGeneric()
}

// Pay attempts to pay cost from pool. The allocation argument lets the caller
// direct which colors cover the generic portion; whatever it leaves open is
// auto-paid in fixed priority order (colorless first, then W, U, B, R, G),
// one unit at a time. Failure never exposes a partially spent pool.
func Pay(pool Pool, cost Cost, allocation Pool) PaymentResult {
	if !CanPay(pool, cost) {
		return PaymentResult{Pool: pool, Reason: "insufficient mana for cost"}
	}

	work := pool
	for _, c := range Colors {
		work = work.Remove(c, cost.Required(c))
	}

	generic := cost.TotalGeneric()
	if total := allocation.Total(); total > generic {
		return PaymentResult{
			Pool:   pool,
			Reason: fmt.Sprintf("allocation of %d exceeds generic requirement of %d", total, generic),
		}
	}
	for _, c := range Colors {
		amount := allocation.Get(c)
		if amount == 0 {
			continue
		}
		if amount > work.Get(c) {
			return PaymentResult{
				Pool:   pool,
				Reason: fmt.Sprintf("allocation wants %d %s but only %d remains", amount, c, work.Get(c)),
			}
		}
		work = work.Remove(c, amount)
		generic -= amount
	}

	for _, c := range paymentOrder {
		for generic > 0 && work.Get(c) > 0 {
			work = work.Remove(c, 1)
			generic--
		}
	}

	if generic > 0 {
		return PaymentResult{
			Pool:   pool,
			Reason: fmt.Sprintf("insufficient mana for generic cost (need %d more)", generic),
		}
	}

	return PaymentResult{Success: true, Pool: work}
}
