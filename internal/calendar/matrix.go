package calendar

import "time"

// monthMatrix builds the month grid as full weeks starting on Monday.
// Cells outside the month are nil.
func monthMatrix(year int, month time.Month) [][]*time.Time {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	// Weekday is Sunday-based, shift so Monday is 0.
	offset := (int(firstOfMonth.Weekday()) + 6) % 7
	totalDays := lastOfMonth.Day()

	cells := make([]*time.Time, 0, offset+totalDays)
	for i := 0; i < offset; i++ {
		cells = append(cells, nil)
	}
	for d := 1; d <= totalDays; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, time.Local)
		cells = append(cells, &day)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}

	weeks := make([][]*time.Time, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	return weeks
}
