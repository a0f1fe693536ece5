// Package timespan renders spans of seconds as human-readable strings, for
// the review-answer and next-due labels a scheduler shows ("3.5 months",
// "in 2 days"). Like the timing package it is pure and locale-free.
package timespan

import (
	"math"
	"strconv"
)

// Unit is a span reporting unit, ordered smallest to largest.
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Months
	Years
)

// Month and year spans use fixed 30 and 365 day approximations.
const (
	secsPerMinute = 60
	secsPerHour   = 3600
	secsPerDay    = 86400
	secsPerMonth  = 2592000
	secsPerYear   = 31536000
)

var unitNames = [...][2]string{
	Seconds: {"second", "seconds"},
	Minutes: {"minute", "minutes"},
	Hours:   {"hour", "hours"},
	Days:    {"day", "days"},
	Months:  {"month", "months"},
	Years:   {"year", "years"},
}

var unitAbbrevs = [...]string{
	Seconds: "s",
	Minutes: "m",
	Hours:   "h",
	Days:    "d",
	Months:  "mo",
	Years:   "y",
}

// Format returns a string representing a time span, eg "2 days".
func Format(seconds float64) string {
	return format(seconds, 0, false, false, Years)
}

// FormatIn is like Format but phrased as a future point, eg "in 2 days".
func FormatIn(seconds float64) string {
	return format(seconds, 0, false, true, Years)
}

// FormatShort abbreviates the unit, eg "12.3mo". point is the number of
// decimal places to keep for units of a minute and up.
func FormatShort(seconds float64, point int) string {
	return format(seconds, point, true, false, Years)
}

// FormatCapped is like Format but never reports a unit above maxUnit, so a
// span of weeks can be forced to read in days.
func FormatCapped(seconds float64, maxUnit Unit) string {
	return format(seconds, 0, false, false, maxUnit)
}

func format(seconds float64, point int, short, in bool, maxUnit Unit) string {
	unit, point := optimalPeriod(seconds, point, maxUnit)
	span := convertSecondsTo(seconds, unit)
	if point == 0 {
		span = math.Round(span)
	}
	num := strconv.FormatFloat(span, 'f', point, 64)
	if short {
		return num + unitAbbrevs[unit]
	}
	name := unitNames[unit][0]
	if pluralCount(span, point) != 1 {
		name = unitNames[unit][1]
	}
	if in {
		return "in " + num + " " + name
	}
	return num + " " + name
}

// optimalPeriod picks the largest unit (up to maxUnit) that keeps the span
// above 1, adjusting the decimal precision: sub-minute spans drop a place,
// month and year spans gain one.
func optimalPeriod(seconds float64, point int, maxUnit Unit) (Unit, int) {
	abs := math.Abs(seconds)
	var unit Unit
	switch {
	case abs < secsPerMinute || maxUnit < Minutes:
		unit = Seconds
		point--
	case abs < secsPerHour || maxUnit < Hours:
		unit = Minutes
	case abs < secsPerDay || maxUnit < Days:
		unit = Hours
	case abs < 30*secsPerDay || maxUnit < Months:
		unit = Days
	case abs < 365*secsPerDay || maxUnit < Years:
		unit = Months
		point++
	default:
		unit = Years
		point++
	}
	return unit, max(point, 0)
}

func convertSecondsTo(seconds float64, unit Unit) float64 {
	switch unit {
	case Seconds:
		return seconds
	case Minutes:
		return seconds / secsPerMinute
	case Hours:
		return seconds / secsPerHour
	case Days:
		return seconds / secsPerDay
	case Months:
		return seconds / secsPerMonth
	case Years:
		return seconds / secsPerYear
	}
	return seconds
}

// Any span shown with decimal places pluralizes; otherwise the rounded
// count decides.
func pluralCount(span float64, point int) int {
	if point > 0 {
		return 2
	}
	return int(math.Floor(span))
}
