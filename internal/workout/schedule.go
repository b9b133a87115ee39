package workout

// Exercise is one scheduled item of a plan day. Reps and Duration are
// display texts, not parsed values.
type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets,omitempty"`
	Reps     string `json:"reps,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// Activity is a light, optional item on recovery and rest days.
type Activity struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

type Day struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
	Activities  []Activity `json:"activities,omitempty"`
}

// Schedule is the fixed weekly plan, indexed by day type 0-6 where 0
// is Sunday, matching time.Weekday. It is read-only reference data,
// never user data.
type Schedule [7]Day

func (s Schedule) Day(dayType int) Day {
	return s[((dayType%7)+7)%7]
}

// ItemCount returns the number of completable items on a day.
func (d Day) ItemCount() int {
	return len(d.Exercises) + len(d.Activities)
}

// DefaultSchedule returns the built-in weekly plan.
func DefaultSchedule() Schedule {
	return Schedule{
		0: {
			Title:       "Upper Body Focus",
			Description: "Focus on strengthening chest, shoulders, arms, and core.",
			Exercises: []Exercise{
				{Name: "Standard Push-ups", Sets: 3, Reps: "12-15 reps"},
				{Name: "Wide-grip Push-ups", Sets: 3, Reps: "10-12 reps"},
				{Name: "Diamond Push-ups", Sets: 2, Reps: "8-10 reps"},
				{Name: "Running Man", Sets: 3, Duration: "45 seconds"},
				{Name: "Burpees", Sets: 3, Reps: "10 reps"},
				{Name: "Punching Bag - Straight punches", Sets: 3, Duration: "30 seconds"},
				{Name: "Punching Bag - Hooks/uppercuts", Sets: 3, Duration: "30 seconds"},
				{Name: "Punching Bag - Combinations", Sets: 3, Duration: "30 seconds"},
				{Name: "Punching Bag - Power shots", Sets: 3, Duration: "30 seconds"},
			},
		},
		1: {
			Title:       "Lower Body Focus",
			Description: "Focus on strengthening legs and lower body.",
			Exercises: []Exercise{
				{Name: "Bodyweight Squats", Sets: 3, Reps: "15-20 reps"},
				{Name: "Dumbbell Squats", Sets: 3, Reps: "12-15 reps"},
				{Name: "Lunges (each leg)", Sets: 3, Reps: "10-12 reps"},
				{Name: "Running Man", Sets: 3, Duration: "45 seconds"},
				{Name: "Cycling", Sets: 1, Duration: "15-20 minutes"},
			},
		},
		2: {
			Title:       "Rest or Light Activity",
			Description: "Active recovery day to help your muscles recover.",
			Exercises:   []Exercise{},
			Activities: []Activity{
				{Name: "Light Cycling (optional)", Duration: "20-30 minutes"},
				{Name: "Stretching/Mobility Work", Duration: "15-20 minutes"},
			},
		},
		3: {
			Title:       "Full Body",
			Description: "Comprehensive workout targeting all major muscle groups.",
			Exercises: []Exercise{
				{Name: "Push-ups (variation of choice)", Sets: 3, Reps: "12-15 reps"},
				{Name: "Burpees", Sets: 4, Reps: "8-10 reps"},
				{Name: "Dumbbell Squats", Sets: 3, Reps: "12-15 reps"},
				{Name: "Lunges (each leg)", Sets: 3, Reps: "10 reps"},
				{Name: "Running Man", Sets: 4, Duration: "30 seconds"},
				{Name: "Punching Bag - Jab-cross combos", Sets: 3, Duration: "30 seconds"},
				{Name: "Punching Bag - Body-head combinations", Sets: 3, Duration: "30 seconds"},
				{Name: "Punching Bag - Speed work", Sets: 3, Duration: "30 seconds"},
				{Name: "Punching Bag - Power combinations", Sets: 3, Duration: "30 seconds"},
			},
		},
		4: {
			Title:       "Active Recovery",
			Description: "Light exercise to promote recovery while maintaining activity.",
			Exercises: []Exercise{
				{Name: "Cycling", Sets: 1, Duration: "25-30 minutes"},
				{Name: "Light Bodyweight Squats", Sets: 2, Reps: "15 reps"},
				{Name: "Light Punching Bag - Shadow boxing", Sets: 1, Duration: "1 minute"},
				{Name: "Light Punching Bag - Technical punches", Sets: 1, Duration: "1 minute"},
			},
		},
		5: {
			Title:       "Rest Day",
			Description: "Give your body time to recover and rebuild.",
			Exercises:   []Exercise{},
			Activities: []Activity{
				{Name: "Light Stretching", Duration: "10-15 minutes"},
				{Name: "Walking (optional)", Duration: "20-30 minutes"},
			},
		},
		6: {
			Title:       "Rest Day",
			Description: "Give your body time to recover and rebuild.",
			Exercises:   []Exercise{},
			Activities: []Activity{
				{Name: "Light Stretching", Duration: "10-15 minutes"},
				{Name: "Walking (optional)", Duration: "20-30 minutes"},
			},
		},
	}
}
