package calendar

import "time"

type Day struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	Blocked bool   `json:"blocked"`
	Past    bool   `json:"past"`
	Today   bool   `json:"today"`
}

type Month struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Tomorrow string     `json:"tomorrow"`
	Cells    []*Day     `json:"cells"`
}

// AvailabilityMonth annotates the month grid with the blocked and past flags.
func AvailabilityMonth(year int, month time.Month, blocked []string, now time.Time) *Month {
	grid := MonthGrid(year, month)
	today := Today(now)

	cells := make([]*Day, len(grid))
	for i, cell := range grid {
		if cell == nil {
			continue
		}
		date := Format(*cell)
		cells[i] = &Day{
			Date:    date,
			Day:     cell.Day(),
			Blocked: IsBlocked(blocked, date),
			Past:    date < today,
			Today:   date == today,
		}
	}

	return &Month{
		Year:     year,
		Month:    month,
		Tomorrow: Tomorrow(now),
		Cells:    cells,
	}
}
