package wizard

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the dd/mm/yyyy form dates travel in between steps.
	DateLayout = "02/01/2006"

	WindowDays = 7
	TodayLabel = "Today"

	firstSlot    = 18 * time.Hour
	lastSlot     = 22 * time.Hour
	slotInterval = 30 * time.Minute
)

// Day is one entry of the rolling date window.
type Day struct {
	Date      string // dd/mm/yyyy
	Label     string // "Today" or weekday abbreviation
	DayNumber string // zero-padded day of month
	Time      time.Time
}

// DateWindow returns WindowDays consecutive calendar days starting on now's day,
// in now's location.
func DateWindow(now time.Time) []Day {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	days := make([]Day, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		t := start.AddDate(0, 0, i)
		label := t.Format("Mon")
		if i == 0 {
			label = TodayLabel
		}
		days = append(days, Day{
			Date:      t.Format(DateLayout),
			Label:     label,
			DayNumber: t.Format("02"),
			Time:      t,
		})
	}
	return days
}

// TimeSlots lists the bookable times, every half hour from 18:00 to 22:00 inclusive.
func TimeSlots() []string {
	var out []string
	for d := firstSlot; d <= lastSlot; d += slotInterval {
		out = append(out, fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60))
	}
	return out
}

// PartySizes lists the selectable party sizes.
func PartySizes() []int {
	out := make([]int, 0, MaxPartySize-MinPartySize+1)
	for n := MinPartySize; n <= MaxPartySize; n++ {
		out = append(out, n)
	}
	return out
}

func inWindow(window []Day, date string) bool {
	for _, d := range window {
		if d.Date == date {
			return true
		}
	}
	return false
}

func isSlot(tm string) bool {
	for _, s := range TimeSlots() {
		if s == tm {
			return true
		}
	}
	return false
}
