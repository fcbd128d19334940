package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cavanisc/ficha-treino/internal/models"
)

func TestNormalizeBackfillsOlderBlobs(t *testing.T) {
	// A blob saved before sessions existed: nil logs, one day missing, nil
	// override map on another.
	st := &models.AppState{
		WorkoutSheets: models.DefaultSheets(),
		CurrentWeek: models.WeekWorkout{
			"segunda": {SelectedSheet: models.SheetA, CompletedExercises: map[string]models.Exercise{}},
			"terca":   {SelectedSheet: models.SheetB},
			"quarta":  {SelectedSheet: models.SheetC, CompletedExercises: map[string]models.Exercise{}},
			"quinta":  {SelectedSheet: models.SheetA, CompletedExercises: map[string]models.Exercise{}},
			"sexta":   {SelectedSheet: models.SheetB, CompletedExercises: map[string]models.Exercise{}},
		},
		WeekStartDate: "2025-03-10",
	}

	Normalize(st)

	assert.NotNil(t, st.History)
	assert.NotNil(t, st.Sessions)
	assert.Empty(t, st.Sessions)

	require.Len(t, st.CurrentWeek, 6)
	assert.Equal(t, models.SheetC, st.CurrentWeek["sabado"].SelectedSheet, "missing day gets its default")
	assert.NotNil(t, st.CurrentWeek["terca"].CompletedExercises)
	assert.Equal(t, models.SheetB, st.CurrentWeek["terca"].SelectedSheet, "existing day is untouched")
}

func TestNormalizeRepairsInvalidSheet(t *testing.T) {
	st := NewState(testNow)
	dw := st.CurrentWeek["quinta"]
	dw.SelectedSheet = "X"
	st.CurrentWeek["quinta"] = dw

	Normalize(st)

	assert.Equal(t, models.SheetA, st.CurrentWeek["quinta"].SelectedSheet)
}

func TestNormalizeNilWeek(t *testing.T) {
	st := &models.AppState{WorkoutSheets: models.DefaultSheets()}

	Normalize(st)

	require.Len(t, st.CurrentWeek, 6)
	assert.Equal(t, models.DefaultWeek(), st.CurrentWeek)
}
