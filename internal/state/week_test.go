package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavanisc/ficha-treino/internal/models"
)

func TestWeekStart(t *testing.T) {
	// 2025-03-10 is a Monday; the whole table lives in that week.
	monday := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	require.Equal(t, time.Monday, monday.Weekday())

	cases := []struct {
		name string
		day  time.Time
		want string
	}{
		{"monday maps to itself", monday, "2025-03-10"},
		{"midweek maps back to monday", monday.AddDate(0, 0, 2), "2025-03-10"},
		{"saturday maps back to monday", monday.AddDate(0, 0, 5), "2025-03-10"},
		{"sunday maps six days back", monday.AddDate(0, 0, 6), "2025-03-10"},
		{"next monday starts a new week", monday.AddDate(0, 0, 7), "2025-03-17"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeekStart(tc.day))
		})
	}
}

func TestReconcileSameWeekIsIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local)

	st := NewState(now)
	require.True(t, SelectSheet(st, "terca", models.SheetC))
	require.True(t, UpdateExercise(st, "segunda", models.Exercise{
		ID: "a-1", Name: "Supino Reto", Completed: true, Weight: 50,
	}, now))
	st.ActiveSession = &models.ActiveSession{ID: "s1", StartTime: now.Format(time.RFC3339), Day: "segunda", Sheet: models.SheetA}

	Reconcile(st, now)

	assert.Equal(t, WeekStart(now), st.WeekStartDate)
	assert.Equal(t, models.SheetC, st.CurrentWeek["terca"].SelectedSheet, "selection survives within the same week")
	assert.Contains(t, st.CurrentWeek["segunda"].CompletedExercises, "a-1", "overrides survive within the same week")
	assert.Len(t, st.History, 1)
	assert.NotNil(t, st.ActiveSession)
}

func TestReconcileNewWeekResets(t *testing.T) {
	lastWeek := time.Date(2025, 3, 5, 9, 0, 0, 0, time.Local)
	now := lastWeek.AddDate(0, 0, 7)

	st := NewState(lastWeek)
	st.WorkoutSheets.A.Name = "Ficha A customizada"
	require.True(t, SelectSheet(st, "terca", models.SheetC))
	require.True(t, UpdateExercise(st, "segunda", models.Exercise{
		ID: "a-1", Name: "Supino Reto", Completed: true, Weight: 50,
	}, lastWeek))
	_, ok := StartSession(st, "segunda", lastWeek)
	require.True(t, ok)

	history := append([]models.WorkoutHistory(nil), st.History...)
	sessions := append([]models.WorkoutSession(nil), st.Sessions...)

	Reconcile(st, now)

	assert.Equal(t, WeekStart(now), st.WeekStartDate)
	assert.Nil(t, st.ActiveSession, "rollover drops an in-progress session")
	assert.Equal(t, "Ficha A customizada", st.WorkoutSheets.A.Name, "sheets carry over")
	assert.Equal(t, history, st.History, "history unchanged in content and order")
	assert.Equal(t, sessions, st.Sessions)

	want := models.DefaultWeek()
	for _, day := range models.WeekDays {
		assert.Equal(t, want[day].SelectedSheet, st.CurrentWeek[day].SelectedSheet, day)
		assert.Empty(t, st.CurrentWeek[day].CompletedExercises, day)
	}
}
