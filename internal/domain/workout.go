package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutLog is a single training session on a given day.
// Day and Date are copied from the owning DailyLog so history queries need no join.
type WorkoutLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DailyLogID primitive.ObjectID `bson:"dailyLogId" json:"dailyLogId"`
	Day        string             `bson:"day" json:"-"`
	Date       time.Time          `bson:"date" json:"-"`
	Type       string             `bson:"type" json:"type"` // e.g. "Workout A", "Cardio"
	Exercises  []ExerciseLog      `bson:"exercises" json:"exercises"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// ExerciseLog only exists embedded in its WorkoutLog.
type ExerciseLog struct {
	Name   string  `bson:"name" json:"name"`
	Sets   int     `bson:"sets" json:"sets"`
	Reps   string  `bson:"reps" json:"reps"` // free text: "8-10", "30s"
	Weight float64 `bson:"weight" json:"weight"`
}
