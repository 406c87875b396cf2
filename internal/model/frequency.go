package model

import (
	"fmt"
	"time"
)

type Frequency string

const (
	Daily     Frequency = "daily"
	Weekly    Frequency = "weekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
)

func (f Frequency) String() string {
	return string(f)
}

func ToFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case Daily, Weekly, Monthly, Quarterly:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// ExpectedObservations derives how many observations a series of this
// frequency should carry over [first, last] inclusive. Daily series are
// counted on weekdays only, which matches both providers' calendars.
func (f Frequency) ExpectedObservations(first, last time.Time) int {
	if last.Before(first) {
		return 0
	}
	switch f {
	case Daily:
		return weekdaysBetween(first, last)
	case Weekly:
		return int(last.Sub(first).Hours()/(24*7)) + 1
	case Monthly:
		return monthsBetween(first, last) + 1
	case Quarterly:
		return monthsBetween(first, last)/3 + 1
	}
	return 0
}

func weekdaysBetween(first, last time.Time) int {
	n := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n++
		}
	}
	return n
}

func monthsBetween(first, last time.Time) int {
	return (last.Year()-first.Year())*12 + int(last.Month()) - int(first.Month())
}

type Category string

const (
	Credit    Category = "credit"
	Sovereign Category = "sovereign"
	Inflation Category = "inflation"
	Macro     Category = "macro"
	Monetary  Category = "monetary"
	Commodity Category = "commodity"
	Equity    Category = "equity"
	FX        Category = "fx"
	Spread    Category = "spread"
)

func (c Category) String() string {
	return string(c)
}
