package domain

// Weekday is the short day name used on the wire ("Mon".."Fri").
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
)

// Weekdays returns the teaching days in display order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
}

// MeetingInterval is one weekly-recurring time block for a course on one
// day. Start and End are minutes of the day, Start < End.
type MeetingInterval struct {
	Day   Weekday `json:"day"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

func (m MeetingInterval) Minutes() int {
	return m.End - m.Start
}

// CourseBlock is a course section with its meeting times as the scheduling
// service returns it.
type CourseBlock struct {
	Course       string            `json:"course"`
	CRN          string            `json:"crn,omitempty"`
	Instructor   string            `json:"instructor,omitempty"`
	MeetingTimes []MeetingInterval `json:"meeting_times"`
}

// Schedule is one candidate weekly arrangement, assumed conflict-free by
// the producing service. Identity is positional within a ScheduleResult;
// schedules are never mutated after decoding.
type Schedule struct {
	Courses              []CourseBlock `json:"courses"`
	SatisfiedPreferences []string      `json:"satisfied_preferences,omitempty"`
}

// ScheduleResult holds the server-ranked schedules. Total counts every
// valid schedule found server-side before truncation, so Total is always
// at least len(Schedules).
type ScheduleResult struct {
	Schedules []Schedule `json:"schedules"`
	Total     int        `json:"total"`
}
