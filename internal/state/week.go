package state

import (
	"time"

	"github.com/cavanisc/ficha-treino/internal/models"
)

// ISODate is the layout used for every stored date.
const ISODate = "2006-01-02"

// WeekStart returns the Monday of the week containing t, in the local
// calendar, as an ISO date. On a Sunday the Monday is six days back.
func WeekStart(t time.Time) string {
	offset := 1 - int(t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	return t.AddDate(0, 0, offset).Format(ISODate)
}

// Reconcile applies the week rollover policy once after load. Same
// weekStartDate means the loaded state is current and stays as is. A
// different one means a new week: sheets, history and sessions carry over,
// the week resets to the default assignment, and any in-progress session is
// dropped.
func Reconcile(st *models.AppState, now time.Time) {
	current := WeekStart(now)
	if st.WeekStartDate == current {
		return
	}
	st.CurrentWeek = models.DefaultWeek()
	st.WeekStartDate = current
	st.ActiveSession = nil
}
