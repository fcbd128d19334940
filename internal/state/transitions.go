package state

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/cavanisc/ficha-treino/internal/models"
)

// SelectSheet assigns a sheet to a weekday and clears that day's overrides:
// switching sheets discards in-progress completion state for that day only.
// Returns false (no-op) for an unknown day or sheet.
func SelectSheet(st *models.AppState, day, sheet string) bool {
	dw, ok := st.CurrentWeek[day]
	if !ok || !models.ValidSheet(sheet) {
		return false
	}
	dw.SelectedSheet = sheet
	dw.CompletedExercises = map[string]models.Exercise{}
	st.CurrentWeek[day] = dw
	return true
}

// UpdateExercise stores an exercise override for a day. When the exercise is
// completed with a weight above zero, and either no override existed yet or
// the previous override carried a different weight, a history record dated
// now is appended. Re-saving the same weight or un-completing never touches
// history. The comparison is against this week's override only, not the last
// history record: reverting to an earlier weight within the same week logs a
// new row for the revert.
func UpdateExercise(st *models.AppState, day string, ex models.Exercise, now time.Time) bool {
	dw, ok := st.CurrentWeek[day]
	if !ok {
		return false
	}
	prev, had := dw.CompletedExercises[ex.ID]
	dw.CompletedExercises[ex.ID] = ex
	st.CurrentWeek[day] = dw

	if ex.Completed && ex.Weight > 0 && (!had || prev.Weight != ex.Weight) {
		st.History = append(st.History, models.WorkoutHistory{
			Date:         now.Format(ISODate),
			ExerciseID:   ex.ID,
			ExerciseName: ex.Name,
			Weight:       ex.Weight,
			Day:          day,
			Sheet:        dw.SelectedSheet,
		})
	}
	return true
}

// StartSession opens a timed session for the given day. No-op when a session
// is already running or the day is unknown.
func StartSession(st *models.AppState, day string, now time.Time) (*models.ActiveSession, bool) {
	if st.ActiveSession != nil {
		return nil, false
	}
	dw, ok := st.CurrentWeek[day]
	if !ok {
		return nil, false
	}
	st.ActiveSession = &models.ActiveSession{
		ID:        uuid.New().String(),
		StartTime: now.Format(time.RFC3339),
		Day:       day,
		Sheet:     dw.SelectedSheet,
	}
	return st.ActiveSession, true
}

// StopSession finalizes the running session: duration rounded to whole
// minutes, completion counts taken from the day's current sheet and
// overrides, and a full snapshot of the day's exercises. The finished session
// is appended to the log and the active session cleared. No-op when nothing
// is running.
func StopSession(st *models.AppState, notes string, now time.Time) (*models.WorkoutSession, bool) {
	active := st.ActiveSession
	if active == nil {
		return nil, false
	}

	start, err := time.Parse(time.RFC3339, active.StartTime)
	if err != nil {
		start = now
	}
	duration := int(math.Round(now.Sub(start).Minutes()))

	dw := st.CurrentWeek[active.Day]
	sheet, _ := st.WorkoutSheets.Get(dw.SelectedSheet)
	exercises := MergedExercises(st, active.Day)

	completed := 0
	for _, ex := range exercises {
		if ex.Completed {
			completed++
		}
	}

	session := models.WorkoutSession{
		ID:                 active.ID,
		Date:               now.Format(ISODate),
		Day:                active.Day,
		Sheet:              dw.SelectedSheet,
		SheetName:          sheet.Name,
		StartTime:          active.StartTime,
		EndTime:            now.Format(time.RFC3339),
		Duration:           duration,
		CompletedExercises: completed,
		TotalExercises:     len(sheet.Exercises),
		Notes:              notes,
		Exercises:          exercises,
	}
	st.Sessions = append(st.Sessions, session)
	st.ActiveSession = nil
	return &session, true
}

// CancelSession drops the running session without recording anything.
func CancelSession(st *models.AppState) bool {
	if st.ActiveSession == nil {
		return false
	}
	st.ActiveSession = nil
	return true
}

// ResetWeek clears every day's overrides while keeping the sheet assignments,
// restamps the week start and drops any running session. History and sessions
// stay untouched: completion flags are ephemeral, weight history is durable.
func ResetWeek(st *models.AppState, now time.Time) {
	for day, dw := range st.CurrentWeek {
		dw.CompletedExercises = map[string]models.Exercise{}
		st.CurrentWeek[day] = dw
	}
	st.WeekStartDate = WeekStart(now)
	st.ActiveSession = nil
}
