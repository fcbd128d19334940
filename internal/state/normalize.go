package state

import (
	"time"

	"github.com/cavanisc/ficha-treino/internal/models"
)

// NewState builds the first-run state: default sheets, default week, empty
// logs, week start stamped from now.
func NewState(now time.Time) *models.AppState {
	return &models.AppState{
		WorkoutSheets: models.DefaultSheets(),
		CurrentWeek:   models.DefaultWeek(),
		History:       []models.WorkoutHistory{},
		Sessions:      []models.WorkoutSession{},
		WeekStartDate: WeekStart(now),
	}
}

// Normalize fills in the defaults a blob saved by an older version may be
// missing: nil session/history logs become empty slices, absent weekdays get
// their default day entry, and nil override maps are allocated. It runs once,
// right after deserialization, before the rollover check.
func Normalize(st *models.AppState) {
	if st.History == nil {
		st.History = []models.WorkoutHistory{}
	}
	if st.Sessions == nil {
		st.Sessions = []models.WorkoutSession{}
	}
	if st.CurrentWeek == nil {
		st.CurrentWeek = models.DefaultWeek()
		return
	}
	defaults := models.DefaultWeek()
	for _, day := range models.WeekDays {
		dw, ok := st.CurrentWeek[day]
		if !ok {
			st.CurrentWeek[day] = defaults[day]
			continue
		}
		if dw.CompletedExercises == nil {
			dw.CompletedExercises = map[string]models.Exercise{}
		}
		if !models.ValidSheet(dw.SelectedSheet) {
			dw.SelectedSheet = defaults[day].SelectedSheet
		}
		st.CurrentWeek[day] = dw
	}
}
