package calendar

import "github.com/BurtMcGurt64/owlplanner/internal/domain"

// PaletteSize is the number of block colors before assignment wraps.
const PaletteSize = 6

// Grid fixes the geometry of the weekly calendar: which days are shown,
// the visible hour range [StartHour, EndHour), and the vertical scale.
type Grid struct {
	Days         []domain.Weekday
	StartHour    int
	EndHour      int
	HourHeightPx float64
}

// DefaultGrid is the Mon-Fri 8 AM to 9 PM grid at 60 px per hour.
func DefaultGrid() Grid {
	return Grid{
		Days:         domain.Weekdays(),
		StartHour:    8,
		EndHour:      21,
		HourHeightPx: 60,
	}
}

func (g Grid) hasDay(day domain.Weekday) bool {
	for _, d := range g.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Block is one positioned, colored rectangle on the grid.
type Block struct {
	Day         domain.Weekday
	Course      string
	Start       int
	End         int
	TopOffsetPx float64
	HeightPx    float64
	ColorIndex  int
}

// Layout converts a schedule's meeting intervals into positioned blocks.
// It is a pure function: identical input always yields identical geometry.
//
// Intervals outside [StartHour*60, EndHour*60) are positioned with the
// same linear formula rather than clipped; they may land above or below
// the visible range and the view decides how to show them. Color follows
// the course's position within this schedule modulo the palette, so the
// same identifier can carry different colors in different schedules.
//
// Overlapping intervals are emitted as-is in course order (last drawn wins
// visually); the service is the source of truth for conflict-freedom and
// the client never re-validates.
func Layout(s domain.Schedule, g Grid) []Block {
	scale := g.HourHeightPx / 60
	gridStart := g.StartHour * 60

	var blocks []Block
	for ordinal, course := range s.Courses {
		for _, mt := range course.MeetingTimes {
			if !g.hasDay(mt.Day) {
				continue
			}
			blocks = append(blocks, Block{
				Day:         mt.Day,
				Course:      course.Course,
				Start:       mt.Start,
				End:         mt.End,
				TopOffsetPx: float64(mt.Start-gridStart) * scale,
				HeightPx:    float64(mt.End-mt.Start) * scale,
				ColorIndex:  ordinal % PaletteSize,
			})
		}
	}
	return blocks
}
