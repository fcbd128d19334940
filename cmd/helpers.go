package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/cavanisc/ficha-treino/internal/models"
	"github.com/cavanisc/ficha-treino/internal/state"
	"github.com/cavanisc/ficha-treino/internal/storage"
)

// loadApp opens storage, loads and normalizes the persisted state, applies
// the week rollover, and persists the result. Every command goes through
// here, so a stale week is reset no matter which subcommand runs first.
func loadApp() (*models.AppState, *storage.Storage) {
	st := storage.NewStorage()

	app := st.LoadState()
	if app == nil {
		app = state.NewState(time.Now())
	} else {
		state.Normalize(app)
		state.Reconcile(app, time.Now())
	}
	st.SaveState(app)
	return app, st
}

// parseDay lowercases and validates a weekday argument.
func parseDay(arg string) (string, error) {
	day := strings.ToLower(strings.TrimSpace(arg))
	if !models.ValidDay(day) {
		return "", fmt.Errorf("Invalid day %q (expected one of: %s)", arg, strings.Join(models.WeekDays, ", "))
	}
	return day, nil
}

// sheetColor maps each sheet to its fixed display color: A red, B green,
// C blue.
func sheetColor(sheet string) *color.Color {
	switch sheet {
	case models.SheetA:
		return color.New(color.FgRed, color.Bold)
	case models.SheetB:
		return color.New(color.FgGreen, color.Bold)
	case models.SheetC:
		return color.New(color.FgBlue, color.Bold)
	}
	return color.New(color.FgWhite)
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-len(s)-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}
