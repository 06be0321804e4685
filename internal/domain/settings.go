package domain

import "time"

// SettingsID is the well-known key of the single settings document.
const SettingsID = "settings"

// Fallback goals used when a goal has never been set (zero).
const (
	DefaultTargetWeight = 80
	DefaultBodyFatGoal  = 15
	DefaultCalorieGoal  = 2200
	DefaultProteinGoal  = 180
)

// Settings holds the user's goals and AI preferences. Exactly one exists.
type Settings struct {
	ID           string    `bson:"_id" json:"-"`
	TargetWeight float64   `bson:"targetWeight" json:"targetWeight"`
	BodyFatGoal  float64   `bson:"bodyFatGoal" json:"bodyFatGoal"`
	CalorieGoal  float64   `bson:"calorieGoal" json:"calorieGoal"`
	ProteinGoal  float64   `bson:"proteinGoal" json:"proteinGoal"`
	CarbGoal     float64   `bson:"carbGoal" json:"carbGoal"`
	FatGoal      float64   `bson:"fatGoal" json:"fatGoal"`
	AIModel      string    `bson:"aiModel" json:"aiModel"`
	CustomPrompt *string   `bson:"customPrompt,omitempty" json:"customPrompt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (s *Settings) TargetWeightOrDefault() float64 {
	return orDefault(s.TargetWeight, DefaultTargetWeight)
}

func (s *Settings) BodyFatGoalOrDefault() float64 {
	return orDefault(s.BodyFatGoal, DefaultBodyFatGoal)
}

func (s *Settings) CalorieGoalOrDefault() float64 {
	return orDefault(s.CalorieGoal, DefaultCalorieGoal)
}

func (s *Settings) ProteinGoalOrDefault() float64 {
	return orDefault(s.ProteinGoal, DefaultProteinGoal)
}

// HasCustomPrompt reports whether a non-empty prompt template is configured.
func (s *Settings) HasCustomPrompt() bool {
	return s.CustomPrompt != nil && *s.CustomPrompt != ""
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
