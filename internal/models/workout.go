package models

const (
	SheetA = "A"
	SheetB = "B"
	SheetC = "C"
)

// WeekDays holds the six training day keys in week order. There is no
// sunday slot: rest day.
var WeekDays = []string{"segunda", "terca", "quarta", "quinta", "sexta", "sabado"}

type Exercise struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Sets      int     `json:"sets"`
	Reps      string  `json:"reps"` // Can be "8-12" or "10" etc.
	Weight    float64 `json:"weight,omitempty"`
	Completed bool    `json:"completed"`
	Notes     string  `json:"notes"`
	RestTime  int     `json:"restTime,omitempty"` // Rest time in seconds.
}

type WorkoutSheet struct {
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

type WorkoutSheets struct {
	A WorkoutSheet `json:"A"`
	B WorkoutSheet `json:"B"`
	C WorkoutSheet `json:"C"`
}

// Get returns the sheet for the given key (A, B or C).
func (ws WorkoutSheets) Get(key string) (WorkoutSheet, bool) {
	switch key {
	case SheetA:
		return ws.A, true
	case SheetB:
		return ws.B, true
	case SheetC:
		return ws.C, true
	}
	return WorkoutSheet{}, false
}

// DayWorkout binds a weekday to a sheet plus any per-exercise overrides the
// user entered this week. Overrides are sparse: an id missing from
// CompletedExercises means the sheet's template values still apply.
type DayWorkout struct {
	SelectedSheet      string              `json:"selectedSheet"`
	CompletedExercises map[string]Exercise `json:"completedExercises"`
}

type WeekWorkout map[string]DayWorkout

// WorkoutHistory is an append-only log entry recording a weight achieved for
// an exercise on a given date. Entries are never mutated after creation.
type WorkoutHistory struct {
	Date         string  `json:"date"` // ISO date, e.g. "2025-09-01".
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Day          string  `json:"day"`
	Sheet        string  `json:"sheet"`
}

// WorkoutSession is the immutable record of one timed workout, finalized when
// the user stops the timer.
type WorkoutSession struct {
	ID                 string     `json:"id"`
	Date               string     `json:"date"`
	Day                string     `json:"day"`
	Sheet              string     `json:"sheet"`
	SheetName          string     `json:"sheetName"`
	StartTime          string     `json:"startTime"` // RFC 3339.
	EndTime            string     `json:"endTime,omitempty"`
	Duration           int        `json:"duration,omitempty"` // In minutes.
	CompletedExercises int        `json:"completedExercises"`
	TotalExercises     int        `json:"totalExercises"`
	Notes              string     `json:"notes"`
	Exercises          []Exercise `json:"exercises"`
}

// ActiveSession exists only between start-session and end-session.
type ActiveSession struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	Day       string `json:"day"`
	Sheet     string `json:"sheet"`
}

// AppState is the whole persisted blob: the three sheets, the current week's
// assignments and overrides, the durable history/session logs, and at most one
// in-progress session.
type AppState struct {
	WorkoutSheets WorkoutSheets    `json:"workoutSheets"`
	CurrentWeek   WeekWorkout      `json:"currentWeek"`
	History       []WorkoutHistory `json:"history"`
	Sessions      []WorkoutSession `json:"sessions"`
	WeekStartDate string           `json:"weekStartDate"` // Monday of the current week.
	ActiveSession *ActiveSession   `json:"activeSession,omitempty"`
}

// ValidDay reports whether day is one of the six weekday keys.
func ValidDay(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

// ValidSheet reports whether key is A, B or C.
func ValidSheet(key string) bool {
	return key == SheetA || key == SheetB || key == SheetC
}
