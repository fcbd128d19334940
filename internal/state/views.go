package state

import (
	"sort"
	"time"

	"github.com/cavanisc/ficha-treino/internal/models"
)

// MergedExercises returns the day's exercise list: the selected sheet's
// template exercises in order, each replaced by this week's override when one
// exists.
func MergedExercises(st *models.AppState, day string) []models.Exercise {
	dw, ok := st.CurrentWeek[day]
	if !ok {
		return nil
	}
	sheet, ok := st.WorkoutSheets.Get(dw.SelectedSheet)
	if !ok {
		return nil
	}
	out := make([]models.Exercise, 0, len(sheet.Exercises))
	for _, ex := range sheet.Exercises {
		if override, ok := dw.CompletedExercises[ex.ID]; ok {
			out = append(out, override)
			continue
		}
		out = append(out, ex)
	}
	return out
}

// ExerciseHistory is one exercise's slice of the history log, grouped under
// its sheet.
type ExerciseHistory struct {
	ExerciseName string
	Sheet        string
	Records      []models.WorkoutHistory
}

// GroupHistory partitions the history log by (sheet, exercise name), keyed
// "A-Supino Reto" style. Records keep their append order; sort with
// SortRecords for display.
func GroupHistory(history []models.WorkoutHistory) map[string]*ExerciseHistory {
	groups := make(map[string]*ExerciseHistory)
	for _, rec := range history {
		key := rec.Sheet + "-" + rec.ExerciseName
		g, ok := groups[key]
		if !ok {
			g = &ExerciseHistory{ExerciseName: rec.ExerciseName, Sheet: rec.Sheet}
			groups[key] = g
		}
		g.Records = append(g.Records, rec)
	}
	return groups
}

// SortRecords orders records by date, ascending for trend analysis or
// descending for display. ISO dates compare correctly as strings.
func SortRecords(records []models.WorkoutHistory, ascending bool) {
	sort.SliceStable(records, func(i, j int) bool {
		if ascending {
			return records[i].Date < records[j].Date
		}
		return records[i].Date > records[j].Date
	})
}

const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// ProgressAnalysis classifies an exercise's recent weight trend. Change is
// the percent difference between the two windows.
type ProgressAnalysis struct {
	Trend  string
	Change float64
}

// AnalyzeProgress compares the mean weight of the most recent three records
// against the mean of the three before them. Records must be sorted by date
// ascending. Fewer than two records, or an empty older window, reads as
// stable. A swing past ±5% classifies as up or down.
func AnalyzeProgress(records []models.WorkoutHistory) ProgressAnalysis {
	if len(records) < 2 {
		return ProgressAnalysis{Trend: TrendStable}
	}

	recentFrom := len(records) - 3
	if recentFrom < 0 {
		recentFrom = 0
	}
	olderFrom := len(records) - 6
	if olderFrom < 0 {
		olderFrom = 0
	}
	recent := records[recentFrom:]
	older := records[olderFrom:recentFrom]
	if len(older) == 0 {
		return ProgressAnalysis{Trend: TrendStable}
	}

	change := ((mean(recent) - mean(older)) / mean(older)) * 100
	switch {
	case change > 5:
		return ProgressAnalysis{Trend: TrendUp, Change: change}
	case change < -5:
		return ProgressAnalysis{Trend: TrendDown, Change: change}
	default:
		return ProgressAnalysis{Trend: TrendStable, Change: change}
	}
}

func mean(records []models.WorkoutHistory) float64 {
	var sum float64
	for _, r := range records {
		sum += r.Weight
	}
	return sum / float64(len(records))
}

// MonthStats aggregates the sessions of one calendar month.
type MonthStats struct {
	Total   int
	BySheet map[string]int
}

// MonthlyStats counts the sessions falling in the given month and year,
// overall and per sheet.
func MonthlyStats(sessions []models.WorkoutSession, month time.Month, year int) MonthStats {
	stats := MonthStats{BySheet: map[string]int{}}
	for _, s := range sessions {
		t, err := time.Parse(ISODate, s.Date)
		if err != nil {
			continue
		}
		if t.Month() == month && t.Year() == year {
			stats.Total++
			stats.BySheet[s.Sheet]++
		}
	}
	return stats
}

// SessionsByDay groups a month's sessions by day of month, for the calendar
// grid.
func SessionsByDay(sessions []models.WorkoutSession, month time.Month, year int) map[int][]models.WorkoutSession {
	byDay := make(map[int][]models.WorkoutSession)
	for _, s := range sessions {
		t, err := time.Parse(ISODate, s.Date)
		if err != nil {
			continue
		}
		if t.Month() == month && t.Year() == year {
			byDay[t.Day()] = append(byDay[t.Day()], s)
		}
	}
	return byDay
}
