package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayLayout is the calendar-day key format used for storage and history output.
const DayLayout = "2006-01-02"

// DailyLog is the aggregate record for one calendar day's metrics.
// Day is unique across the collection.
type DailyLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Day       string             `bson:"day" json:"day"`
	Date      time.Time          `bson:"date" json:"date"` // start of Day in the configured zone
	Weight    *float64           `bson:"weight,omitempty" json:"weight"`
	BodyFat   *float64           `bson:"bodyFat,omitempty" json:"bodyFat"`
	Notes     *string            `bson:"notes,omitempty" json:"notes"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DailyLogView is a DailyLog with its workouts and meals loaded.
type DailyLogView struct {
	DailyLog
	Workouts []WorkoutLog `json:"workouts"`
	Meals    []FoodLog    `json:"meals"`
	Totals   MacroTotals  `json:"totals"`
}

// NewDailyLogView assembles a view and computes its nutrition totals.
// Nil slices are normalised so that JSON never carries null lists.
func NewDailyLogView(log DailyLog, workouts []WorkoutLog, meals []FoodLog) *DailyLogView {
	if workouts == nil {
		workouts = []WorkoutLog{}
	}
	if meals == nil {
		meals = []FoodLog{}
	}
	return &DailyLogView{
		DailyLog: log,
		Workouts: workouts,
		Meals:    meals,
		Totals:   SumMacros(meals),
	}
}

// WorkoutTypes lists the type label of every workout in the view, in order.
func (v *DailyLogView) WorkoutTypes() []string {
	types := make([]string, 0, len(v.Workouts))
	for _, w := range v.Workouts {
		types = append(types, w.Type)
	}
	return types
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay returns the last representable instant of t's calendar day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DayKey formats t's calendar day in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}
