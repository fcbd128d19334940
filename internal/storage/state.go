package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cavanisc/ficha-treino/internal/models"
	"github.com/cavanisc/ficha-treino/internal/state"
)

// StateKey is the single key the whole blob is stored under. Kept from the
// original browser build so an exported blob round-trips unchanged.
const StateKey = "workout_tracker_abc_data"

// ErrInvalidImport marks an import payload that failed the shape check.
var ErrInvalidImport = errors.New("invalid import: missing or malformed workoutSheets")

// LoadState reads the persisted blob. A missing row means no data (nil).
// Read or decode failures are logged and also read as no data: the caller
// starts fresh rather than crashing.
func (s *Storage) LoadState() *models.AppState {
	var raw string
	err := s.DB.QueryRow(
		"SELECT value FROM app_state WHERE key = ?", StateKey,
	).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			logrus.WithError(err).Warn("Failed to read state, starting fresh")
		}
		return nil
	}

	var st models.AppState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		logrus.WithError(err).Warn("Failed to decode stored state, starting fresh")
		return nil
	}
	return &st
}

// SaveState overwrites the blob unconditionally. Failures are logged and
// swallowed: the in-memory state stays authoritative until the next
// successful save.
func (s *Storage) SaveState(st *models.AppState) {
	data, err := json.Marshal(st)
	if err != nil {
		logrus.WithError(err).Warn("Failed to encode state")
		return
	}
	_, err = s.DB.Exec(
		"INSERT OR REPLACE INTO app_state (key, value, updated_at) VALUES (?, ?, ?)",
		StateKey, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		logrus.WithError(err).Warn("Failed to persist state")
	}
}

// ExportState returns the persisted blob pretty-printed, or the first-run
// defaults when nothing is stored yet.
func (s *Storage) ExportState() ([]byte, error) {
	st := s.LoadState()
	if st == nil {
		st = state.NewState(time.Now())
	} else {
		state.Normalize(st)
	}
	return json.MarshalIndent(st, "", "  ")
}

// importPayload is the accepted import shape; every other top-level field is
// ignored.
type importPayload struct {
	WorkoutSheets *models.WorkoutSheets `json:"workoutSheets"`
}

// ImportSheets replaces the stored workoutSheets with the ones in data,
// keeping the current week, history, sessions and week start from whatever is
// persisted right now (defaults when nothing is). Malformed JSON or a missing
// or empty A/B/C mapping rejects the whole import without touching storage.
func (s *Storage) ImportSheets(data []byte) error {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if payload.WorkoutSheets == nil {
		return ErrInvalidImport
	}
	for _, key := range []string{models.SheetA, models.SheetB, models.SheetC} {
		sheet, _ := payload.WorkoutSheets.Get(key)
		if len(sheet.Exercises) == 0 {
			return fmt.Errorf("%w: sheet %s has no exercises", ErrInvalidImport, key)
		}
	}

	// Merge over the freshly persisted state, never the in-memory session.
	st := s.LoadState()
	if st == nil {
		st = state.NewState(time.Now())
	} else {
		state.Normalize(st)
	}
	st.WorkoutSheets = *payload.WorkoutSheets
	s.SaveState(st)
	return nil
}
