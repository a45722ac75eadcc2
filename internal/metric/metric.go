// Package metric holds the derived display values. Everything here is a pure
// function recomputed on read; nothing is cached or stored.
package metric

import "math"

// Number covers the numeric field types that appear on records.
type Number interface {
	~int | ~int64 | ~float64
}

// Percentage returns round(part/whole*100). A zero whole yields 0 rather
// than dividing by zero.
func Percentage[N Number](part, whole N) int {
	if whole == 0 {
		return 0
	}

	return int(math.Round(float64(part) / float64(whole) * 100))
}

// Sum aggregates a numeric field across all records.
func Sum[T any, N Number](items []T, field func(T) N) N {
	var total N
	for _, item := range items {
		total += field(item)
	}

	return total
}

// SumWhere aggregates a numeric field across the records matching pred.
func SumWhere[T any, N Number](items []T, pred func(T) bool, field func(T) N) N {
	var total N

	for _, item := range items {
		if pred(item) {
			total += field(item)
		}
	}

	return total
}

// CountWhere counts the records matching pred.
func CountWhere[T any](items []T, pred func(T) bool) int {
	count := 0

	for _, item := range items {
		if pred(item) {
			count++
		}
	}

	return count
}

// Gain returns the absolute gain of an investment in cents.
func Gain(amount, currentValue int64) int64 {
	return currentValue - amount
}

// GainPercent returns the gain as a percentage of the purchase amount,
// or 0 when nothing was invested.
func GainPercent(amount, currentValue int64) float64 {
	if amount == 0 {
		return 0
	}

	return float64(currentValue-amount) / float64(amount) * 100
}

// Remaining returns how much of an allocation is left to spend.
func Remaining(allocated, spent int64) int64 {
	return allocated - spent
}
