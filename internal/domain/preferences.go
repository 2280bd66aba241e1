package domain

// Preference flag names as they appear on the wire. The set is closed:
// exactly these six keys, always all present.
const (
	PrefMorning            = "morning_preference"
	PrefAvoid5Days         = "avoid_5_days"
	PrefLunchBreak         = "lunch_break"
	PrefLimitClassesPerDay = "limit_classes_per_day"
	PrefAvoidLateNights    = "avoid_late_nights"
	PrefBalanceGaps        = "balance_gaps"
)

// PreferenceFlags returns the six recognized flag names in display order.
func PreferenceFlags() []string {
	return []string{
		PrefMorning,
		PrefAvoid5Days,
		PrefLunchBreak,
		PrefLimitClassesPerDay,
		PrefAvoidLateNights,
		PrefBalanceGaps,
	}
}

// PreferenceSet carries the desired schedule qualities. The client never
// interprets the flags; it only transports them faithfully to the service.
type PreferenceSet struct {
	MorningPreference  bool `json:"morning_preference"`
	Avoid5Days         bool `json:"avoid_5_days"`
	LunchBreak         bool `json:"lunch_break"`
	LimitClassesPerDay bool `json:"limit_classes_per_day"`
	AvoidLateNights    bool `json:"avoid_late_nights"`
	BalanceGaps        bool `json:"balance_gaps"`
}

// DefaultPreferenceSet enables every preference, matching the defaults the
// scheduling service ranks against when nothing is toggled.
func DefaultPreferenceSet() PreferenceSet {
	return PreferenceSet{
		MorningPreference:  true,
		Avoid5Days:         true,
		LunchBreak:         true,
		LimitClassesPerDay: true,
		AvoidLateNights:    true,
		BalanceGaps:        true,
	}
}

// Toggle returns a copy of the set with exactly one flag inverted. The
// receiver is never mutated. Unknown flags are rejected with
// ErrUnknownPreference; with a closed set of UI controls that path should
// be unreachable.
func (p PreferenceSet) Toggle(flag string) (PreferenceSet, error) {
	switch flag {
	case PrefMorning:
		p.MorningPreference = !p.MorningPreference
	case PrefAvoid5Days:
		p.Avoid5Days = !p.Avoid5Days
	case PrefLunchBreak:
		p.LunchBreak = !p.LunchBreak
	case PrefLimitClassesPerDay:
		p.LimitClassesPerDay = !p.LimitClassesPerDay
	case PrefAvoidLateNights:
		p.AvoidLateNights = !p.AvoidLateNights
	case PrefBalanceGaps:
		p.BalanceGaps = !p.BalanceGaps
	default:
		return p, ErrUnknownPreference
	}
	return p, nil
}

// Enabled reports whether the named flag is set. Unknown flags read false.
func (p PreferenceSet) Enabled(flag string) bool {
	switch flag {
	case PrefMorning:
		return p.MorningPreference
	case PrefAvoid5Days:
		return p.Avoid5Days
	case PrefLunchBreak:
		return p.LunchBreak
	case PrefLimitClassesPerDay:
		return p.LimitClassesPerDay
	case PrefAvoidLateNights:
		return p.AvoidLateNights
	case PrefBalanceGaps:
		return p.BalanceGaps
	default:
		return false
	}
}
