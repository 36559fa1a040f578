package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatPrice renders minor units as dollars with two decimals: 12345 -> "$123.45".
func FormatPrice(pennies int64) string {
	sign := ""
	if pennies < 0 {
		sign = "-"
		pennies = -pennies
	}
	return fmt.Sprintf("$%s%d.%02d", sign, pennies/100, pennies%100)
}

// FormatDuration rounds seconds to the nearest minute and renders
// "<d> Day(s) <h> Hour(s) <m> Minute(s)", leaving out zero components.
// Days only appear from 24 hours up, hours only from 60 minutes up.
func FormatDuration(seconds int64) string {
	minutes := int64(math.Floor(float64(seconds)/60 + 0.5))
	if minutes < 60 {
		return strings.Join(units(unit{minutes, "Minute"}), " ")
	}

	hours, rem := minutes/60, minutes%60
	if hours < 24 {
		return strings.Join(units(unit{hours, "Hour"}, unit{rem, "Minute"}), " ")
	}

	days := hours / 24
	return strings.Join(units(unit{days, "Day"}, unit{hours % 24, "Hour"}, unit{rem, "Minute"}), " ")
}

type unit struct {
	n    int64
	name string
}

func units(list ...unit) []string {
	parts := make([]string, 0, len(list))
	for _, u := range list {
		if u.n == 0 {
			continue
		}
		part := strconv.FormatInt(u.n, 10) + " " + u.name
		if u.n > 1 {
			part += "s"
		}
		parts = append(parts, part)
	}
	return parts
}

// FormatTimestamp renders t in its own location as
// "Saturday, June 1st 2024, 08:05am".
func FormatTimestamp(t time.Time) string {
	return t.Format("Monday, January ") + ordinal(t.Day()) + t.Format(" 2006, 03:04pm")
}

func ordinal(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(day) + suffix
}
