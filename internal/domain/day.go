package domain

import "time"

// Day represents a day of lookup history
type Day struct {
	Date        time.Time
	LookupCount int
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format("20060102")
}

// DisplayString returns user-friendly date string relative to the current
// day in loc. Date already holds the calendar day as grouped in loc.
func (d Day) DisplayString(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return d.displayAt(time.Now().In(loc))
}

func (d Day) displayAt(now time.Time) string {
	date := d.Date

	if sameDay(date, now) {
		return "Сегодня"
	}
	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Вчера"
	}

	return date.Format("2 ") + monthNames[date.Month()] + date.Format(" 2006")
}

// ParseDateString parses the YYYYMMDD form produced by DateString
func ParseDateString(s string) (time.Time, error) {
	return time.Parse("20060102", s)
}

var monthNames = [...]string{
	"", "янв", "фев", "мар", "апр", "мая", "июн",
	"июл", "авг", "сен", "окт", "ноя", "дек",
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

