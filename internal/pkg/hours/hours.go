// Package hours splits a worked duration into ordinary and overtime hours.
package hours

import (
	"math"
	"time"
)

// DefaultOrdinaryThreshold is the daily ordinary-hours cap. Work beyond it in
// a single session is overtime.
const DefaultOrdinaryThreshold = 8.0

// Split divides the elapsed time between clockIn and clockOut at the ordinary
// threshold. Rounding happens once on the total and once on the overtime
// remainder so that ordinary + overtime always equals the rounded total.
func Split(clockIn, clockOut time.Time, threshold float64) (ordinary, overtime, total float64) {
	total = Round2(clockOut.Sub(clockIn).Hours())
	if total <= 0 {
		return 0, 0, 0
	}

	ordinary = total
	if ordinary > threshold {
		ordinary = threshold
	}
	overtime = Round2(total - ordinary)

	return ordinary, overtime, total
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
