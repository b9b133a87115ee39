package workout

import "strings"

// ResolveName links a free-text exercise name to a canonical schedule
// item name. It is a best-effort fuzzy linker for loosely worded voice
// and manual input, not a general matcher.
//
// Resolution order:
//  1. exact name match (case-insensitive), over every day's exercises
//     then every day's activities;
//  2. substring match, same scan order;
//  3. cycling heuristics relative to the given day type;
//  4. no match, the caller keeps the original name.
func (s Schedule) ResolveName(name string, dayType int) (string, bool) {
	input := strings.ToLower(strings.TrimSpace(name))
	if input == "" {
		return "", false
	}

	// exact match beats a substring match on any day
	for _, day := range s {
		for _, e := range day.Exercises {
			if strings.ToLower(e.Name) == input {
				return e.Name, true
			}
		}
	}
	for _, day := range s {
		for _, a := range day.Activities {
			if strings.ToLower(a.Name) == input {
				return a.Name, true
			}
		}
	}

	for _, day := range s {
		for _, e := range day.Exercises {
			if strings.Contains(strings.ToLower(e.Name), input) {
				return e.Name, true
			}
		}
	}
	for _, day := range s {
		for _, a := range day.Activities {
			if strings.Contains(strings.ToLower(a.Name), input) {
				return a.Name, true
			}
		}
	}

	if strings.Contains(input, "cycling") || strings.Contains(input, "cycle") {
		return s.resolveCycling(input, dayType)
	}

	return "", false
}

// resolveCycling handles cycling phrasings that the generic scan did
// not catch, preferring the given day before the rest of the week.
func (s Schedule) resolveCycling(input string, dayType int) (string, bool) {
	if strings.Contains(input, "light") {
		for _, day := range s.daysStartingAt(dayType) {
			for _, a := range day.Activities {
				lower := strings.ToLower(a.Name)
				if strings.Contains(lower, "light") && strings.Contains(lower, "cycling") {
					return a.Name, true
				}
			}
		}
		return "", false
	}

	for _, day := range s.daysStartingAt(dayType) {
		for _, e := range day.Exercises {
			if strings.ToLower(e.Name) == "cycling" {
				return e.Name, true
			}
		}
		for _, a := range day.Activities {
			if strings.ToLower(a.Name) == "cycling" {
				return a.Name, true
			}
		}
	}
	return "", false
}

// daysStartingAt returns the week with the given day first and the
// remaining days in schedule order.
func (s Schedule) daysStartingAt(dayType int) []Day {
	current := ((dayType % 7) + 7) % 7
	days := make([]Day, 0, len(s))
	days = append(days, s[current])
	for i := range s {
		if i == current {
			continue
		}
		days = append(days, s[i])
	}
	return days
}
