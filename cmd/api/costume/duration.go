package costume

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

// DurationHours is the rental length in hours, rounded to one decimal.
func DurationHours(start, end time.Time) float64 {
	return math.Round(end.Sub(start).Hours()*10) / 10
}

/*
Formats a duration in hours for display: "N day(s)" plus the remaining
whole hours as " Mh" from 24 hours on, "N hour(s)" below that.
*/
func FormatDuration(hours float64) string {
	if hours >= hoursPerDay {
		days := int(math.Floor(hours / hoursPerDay))
		rest := int(hours) % hoursPerDay
		s := fmt.Sprintf("%d day", days)
		if days > 1 {
			s += "s"
		}
		if rest > 0 {
			s += fmt.Sprintf(" %dh", rest)
		}
		return s
	}

	s := strconv.FormatFloat(hours, 'f', -1, 64) + " hour"
	if hours != 1 {
		s += "s"
	}
	return s
}

// BillableDays rounds any partial day up to a full day.
func BillableDays(hours float64) int {
	return int(math.Ceil(hours / hoursPerDay))
}

func EstimatedRevenue(hours float64, dailyRate decimal.Decimal) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(int64(BillableDays(hours))))
}
