package storage

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/cavanisc/ficha-treino/internal/models"
	"github.com/cavanisc/ficha-treino/internal/state"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "ficha.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, InitializeDB(db))
	return &Storage{DB: db}
}

var testNow = time.Date(2025, 3, 10, 18, 30, 0, 0, time.Local)

func TestLoadStateEmpty(t *testing.T) {
	st := newTestStorage(t)
	assert.Nil(t, st.LoadState(), "no row means no data")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStorage(t)

	app := state.NewState(testNow)
	state.UpdateExercise(app, "segunda", models.Exercise{
		ID: "a-1", Name: "Supino Reto", Sets: 4, Reps: "8-12", Completed: true, Weight: 50, Notes: "paused reps",
	}, testNow)
	state.StartSession(app, "segunda", testNow)
	state.StopSession(app, "felt great", testNow.Add(40*time.Minute))

	st.SaveState(app)
	loaded := st.LoadState()

	require.NotNil(t, loaded)
	assert.Equal(t, app, loaded)
}

func TestLoadStateBackfillsSessions(t *testing.T) {
	// Blobs saved before sessions existed carry no sessions field at all.
	st := newTestStorage(t)

	app := state.NewState(testNow)
	app.Sessions = nil
	st.SaveState(app)

	loaded := st.LoadState()
	require.NotNil(t, loaded)
	require.Nil(t, loaded.Sessions)

	state.Normalize(loaded)
	assert.NotNil(t, loaded.Sessions)
	assert.Empty(t, loaded.Sessions)
	assert.Nil(t, loaded.ActiveSession)
}

func TestLoadStateCorruptBlob(t *testing.T) {
	st := newTestStorage(t)
	_, err := st.DB.Exec(
		"INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)",
		StateKey, "{not json", time.Now().UTC().Format(time.RFC3339),
	)
	require.NoError(t, err)

	assert.Nil(t, st.LoadState(), "corrupt data reads as no data")
}

func TestSaveStateOverwrites(t *testing.T) {
	st := newTestStorage(t)

	app := state.NewState(testNow)
	st.SaveState(app)

	state.SelectSheet(app, "segunda", models.SheetC)
	st.SaveState(app)

	loaded := st.LoadState()
	require.NotNil(t, loaded)
	assert.Equal(t, models.SheetC, loaded.CurrentWeek["segunda"].SelectedSheet)

	var count int
	require.NoError(t, st.DB.QueryRow("SELECT COUNT(*) FROM app_state").Scan(&count))
	assert.Equal(t, 1, count, "a single blob under a single key")
}

func TestImportSheetsRejectsMalformed(t *testing.T) {
	st := newTestStorage(t)

	app := state.NewState(testNow)
	app.WorkoutSheets.A.Name = "Ficha A original"
	st.SaveState(app)

	cases := []struct {
		name    string
		payload string
	}{
		{"not json", "{oops"},
		{"missing workoutSheets", `{"foo": 1}`},
		{"empty sheet", `{"workoutSheets": {"A": {"name": "A", "exercises": []}, "B": {"name": "B", "exercises": []}, "C": {"name": "C", "exercises": []}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := st.ImportSheets([]byte(tc.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidImport)

			loaded := st.LoadState()
			require.NotNil(t, loaded)
			assert.Equal(t, "Ficha A original", loaded.WorkoutSheets.A.Name, "stored sheets untouched")
		})
	}
}

func TestImportSheetsReplacesOnlySheets(t *testing.T) {
	st := newTestStorage(t)

	app := state.NewState(testNow)
	state.SelectSheet(app, "terca", models.SheetC)
	state.UpdateExercise(app, "segunda", models.Exercise{
		ID: "a-1", Name: "Supino Reto", Completed: true, Weight: 50,
	}, testNow)
	st.SaveState(app)

	imported := state.NewState(testNow)
	imported.WorkoutSheets.A.Name = "Ficha A importada"
	payload, err := json.Marshal(map[string]any{"workoutSheets": imported.WorkoutSheets, "history": []int{1, 2, 3}})
	require.NoError(t, err)

	require.NoError(t, st.ImportSheets(payload))

	loaded := st.LoadState()
	require.NotNil(t, loaded)
	assert.Equal(t, "Ficha A importada", loaded.WorkoutSheets.A.Name)
	assert.Equal(t, models.SheetC, loaded.CurrentWeek["terca"].SelectedSheet, "current week kept")
	assert.Len(t, loaded.History, 1, "history kept, extra top-level fields ignored")
	assert.Equal(t, app.WeekStartDate, loaded.WeekStartDate)
}

func TestImportSheetsWithNothingPersisted(t *testing.T) {
	st := newTestStorage(t)

	imported := state.NewState(testNow)
	imported.WorkoutSheets.B.Name = "Ficha B importada"
	payload, err := json.Marshal(map[string]any{"workoutSheets": imported.WorkoutSheets})
	require.NoError(t, err)

	require.NoError(t, st.ImportSheets(payload))

	loaded := st.LoadState()
	require.NotNil(t, loaded)
	assert.Equal(t, "Ficha B importada", loaded.WorkoutSheets.B.Name)
	assert.Len(t, loaded.CurrentWeek, 6, "defaults fill the rest")
}

func TestExportState(t *testing.T) {
	st := newTestStorage(t)

	app := state.NewState(testNow)
	st.SaveState(app)

	data, err := st.ExportState()
	require.NoError(t, err)

	var exported models.AppState
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, app.WeekStartDate, exported.WeekStartDate)
	assert.Contains(t, string(data), "\n  \"workoutSheets\"", "pretty-printed")
}
