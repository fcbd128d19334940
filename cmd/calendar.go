package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/models"
	"github.com/cavanisc/ficha-treino/internal/state"
	"github.com/cavanisc/ficha-treino/internal/utils"
)

// details is a flag to enable verbose session details.
var details bool

// calendarCmd prints the month grid. Days with recorded sessions are marked
// with the color of the sheet trained that day, and the monthly totals are
// printed below. The --details flag adds a per-day session listing.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days with monthly totals per sheet",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		app, _ := loadApp()

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
		sessionsByDay := state.SessionsByDay(app.Sessions, month, year)

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		// Print day numbers, marking training days with their sheet's color.
		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if sessList, hasSession := sessionsByDay[day]; hasSession {
				dayStr = sheetColor(sessList[0].Sheet).Sprint(dayStr + "*")
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		// Legend and monthly totals.
		stats := state.MonthlyStats(app.Sessions, month, year)
		fmt.Println("Legend:")
		for _, sheet := range []string{models.SheetA, models.SheetB, models.SheetC} {
			fmt.Printf("  %s: Ficha %s (%d)\n", sheetColor(sheet).Sprint("██"), sheet, stats.BySheet[sheet])
		}
		fmt.Printf("\nTotal sessions this month: %d\n", stats.Total)

		if details {
			fmt.Println("\nSession Details:")
			var days []int
			for d := range sessionsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, sess := range sessionsByDay[day] {
					fmt.Printf("  %s (%d/%d exercises, %s)",
						sess.SheetName, sess.CompletedExercises, sess.TotalExercises,
						utils.FormatDuration(sess.Duration))
					if sess.Notes != "" {
						fmt.Printf(" | %s", sess.Notes)
					}
					fmt.Println()
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional session details")
}
