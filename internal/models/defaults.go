package models

// DefaultSheets returns a fresh copy of the canonical A/B/C sheets. Callers
// get their own exercise slices, so mutating the result never leaks into
// another state.
func DefaultSheets() WorkoutSheets {
	return WorkoutSheets{
		A: WorkoutSheet{
			Name: "Ficha A - Peito, Ombro e Tríceps",
			Exercises: []Exercise{
				{ID: "a-1", Name: "Supino Reto", Sets: 4, Reps: "8-12"},
				{ID: "a-2", Name: "Supino Inclinado", Sets: 3, Reps: "10-12"},
				{ID: "a-3", Name: "Crucifixo", Sets: 3, Reps: "12-15"},
				{ID: "a-4", Name: "Desenvolvimento", Sets: 4, Reps: "8-12"},
				{ID: "a-5", Name: "Elevação Lateral", Sets: 3, Reps: "12-15"},
				{ID: "a-6", Name: "Elevação Frontal", Sets: 3, Reps: "12-15"},
				{ID: "a-7", Name: "Tríceps Testa", Sets: 3, Reps: "10-12"},
				{ID: "a-8", Name: "Tríceps Pulley", Sets: 3, Reps: "12-15"},
			},
		},
		B: WorkoutSheet{
			Name: "Ficha B - Costas e Bíceps",
			Exercises: []Exercise{
				{ID: "b-1", Name: "Puxada Frontal", Sets: 4, Reps: "8-12"},
				{ID: "b-2", Name: "Remada Baixa", Sets: 3, Reps: "10-12"},
				{ID: "b-3", Name: "Remada Alta", Sets: 3, Reps: "12-15"},
				{ID: "b-4", Name: "Pullover", Sets: 3, Reps: "12-15"},
				{ID: "b-5", Name: "Rosca Direta", Sets: 3, Reps: "10-12"},
				{ID: "b-6", Name: "Rosca Martelo", Sets: 3, Reps: "12-15"},
				{ID: "b-7", Name: "Rosca Concentrada", Sets: 3, Reps: "12-15"},
			},
		},
		C: WorkoutSheet{
			Name: "Ficha C - Pernas e Glúteos",
			Exercises: []Exercise{
				{ID: "c-1", Name: "Agachamento", Sets: 4, Reps: "8-12"},
				{ID: "c-2", Name: "Leg Press", Sets: 3, Reps: "12-15"},
				{ID: "c-3", Name: "Extensora", Sets: 3, Reps: "12-15"},
				{ID: "c-4", Name: "Flexora", Sets: 3, Reps: "12-15"},
				{ID: "c-5", Name: "Stiff", Sets: 4, Reps: "8-12"},
				{ID: "c-6", Name: "Afundo", Sets: 3, Reps: "10-12"},
				{ID: "c-7", Name: "Panturrilha", Sets: 4, Reps: "15-20"},
				{ID: "c-8", Name: "Glúteo 4 Apoios", Sets: 3, Reps: "15-20"},
			},
		},
	}
}

// DefaultWeek returns the canonical week assignment: A on monday/thursday,
// B on tuesday/friday, C on wednesday/saturday, nothing completed.
func DefaultWeek() WeekWorkout {
	week := make(WeekWorkout, len(WeekDays))
	sheets := []string{SheetA, SheetB, SheetC, SheetA, SheetB, SheetC}
	for i, day := range WeekDays {
		week[day] = DayWorkout{
			SelectedSheet:      sheets[i],
			CompletedExercises: map[string]Exercise{},
		}
	}
	return week
}
