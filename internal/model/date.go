package model

import (
	"fmt"
	"time"
)

// Date is the composite calendar value the backend uses for all
// date fields. Equipment dates carry only year/month/day; issue
// timestamps also populate hour and minute.
type Date struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour,omitempty"`
	Minute int `json:"minute,omitempty"`
}

// Now returns the current local time as a Date.
func Now() *Date {
	t := time.Now()
	return &Date{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Compare orders two dates most-significant component first.
func (d Date) Compare(other Date) int {
	pairs := [5][2]int{
		{d.Year, other.Year},
		{d.Month, other.Month},
		{d.Day, other.Day},
		{d.Hour, other.Hour},
		{d.Minute, other.Minute},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// Display formats a date as M/D/YYYY. A nil date renders empty.
func (d *Date) Display() string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}
