package appointment

// ===============================
// Time Slots
// ===============================

// slots is the fixed daily timetable. One appointment per slot per day.
var slots = []string{
	"09:00",
	"10:00",
	"11:00",
	"12:00",
	"13:00",
	"14:00",
	"15:00",
	"16:00",
	"17:00",
	"18:00",
}

// Slots returns the full timetable in chronological order.
func Slots() []string {
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

func IsValidSlot(label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}

// AvailableSlots subtracts the taken labels from the full timetable,
// preserving chronological order. Insertion order of taken is irrelevant.
func AvailableSlots(taken []string) []string {
	takenSet := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}

	free := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, ok := takenSet[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}
