package store

import (
	"strings"

	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/models"
	"github.com/liftsheet/liftsheet-go/pkg/liftsheet/parser"
)

type blockPlan struct {
	Days []dayPlan
	// Skipped counts records dropped for having no exercise name.
	Skipped int
}

type dayPlan struct {
	WeekDay string
	// Number is the 1-based order in which the week-day first appears.
	Number    int
	Week      int
	Day       int
	Exercises []exercisePlan
}

type exercisePlan struct {
	Name  string
	Order int
	Sets  []models.NormalizedSetRecord
}

// planBlock groups records by week-day in first-appearance order, then by
// exercise in first-appearance order within the day. When an exercise
// reappears later in the same day its sets continue after the highest set
// number already planned, so (day, exercise, set) stays unique.
func planBlock(records []models.NormalizedSetRecord) blockPlan {
	var (
		plan     blockPlan
		dayIndex = make(map[string]int)
		exIndex  = make(map[string]map[string]int)
		maxSet   = make(map[string]map[string]int)
	)

	for _, rec := range records {
		name := strings.TrimSpace(rec.Exercise)
		if name == "" {
			plan.Skipped++
			continue
		}

		di, ok := dayIndex[rec.WeekDay]
		if !ok {
			week, day, _ := parser.ParseWeekDay(rec.WeekDay)
			plan.Days = append(plan.Days, dayPlan{
				WeekDay: rec.WeekDay,
				Number:  len(plan.Days) + 1,
				Week:    week,
				Day:     day,
			})
			di = len(plan.Days) - 1
			dayIndex[rec.WeekDay] = di
			exIndex[rec.WeekDay] = make(map[string]int)
			maxSet[rec.WeekDay] = make(map[string]int)
		}
		day := &plan.Days[di]

		ei, ok := exIndex[rec.WeekDay][name]
		if !ok {
			day.Exercises = append(day.Exercises, exercisePlan{
				Name:  name,
				Order: len(day.Exercises) + 1,
			})
			ei = len(day.Exercises) - 1
			exIndex[rec.WeekDay][name] = ei
		}
		ex := &day.Exercises[ei]

		rec.Exercise = name
		if top := maxSet[rec.WeekDay][name]; rec.SetNumber <= top {
			rec.SetNumber = top + 1
		}
		maxSet[rec.WeekDay][name] = rec.SetNumber
		ex.Sets = append(ex.Sets, rec)
	}

	return plan
}
