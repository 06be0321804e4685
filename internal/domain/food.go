package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultMealType = "Any"

// Macros is the nutrition payload shared by food logs and presets.
type Macros struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fats     float64 `bson:"fats" json:"fats"`
}

// FoodLog is one meal entry belonging to a DailyLog.
type FoodLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DailyLogID primitive.ObjectID `bson:"dailyLogId" json:"dailyLogId"`
	Name       string             `bson:"name" json:"name"`
	Macros     `bson:",inline"`
	MealType   string    `bson:"mealType" json:"mealType"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FoodPreset is a reusable named template used to prefill the food form.
type FoodPreset struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Macros    `bson:",inline"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// MacroTotals is the sum of the macro fields across a day's meals.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// SumMacros adds up the macros of every meal. No meals yields zero totals.
func SumMacros(meals []FoodLog) MacroTotals {
	var t MacroTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fats += m.Fats
	}
	return t
}
