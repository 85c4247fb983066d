package domain

// Profile is the onboarding payload sent to the coach service, and the
// shape returned inside the profile lookup response. Field names match
// the wire contract. The mapstructure tags let the API client decode
// the untyped profile object the server returns.
type Profile struct {
	WeightKg          int    `json:"weight_kg" mapstructure:"weight_kg"`
	HeightCm          int    `json:"height_cm" mapstructure:"height_cm"`
	Age               int    `json:"age" mapstructure:"age"`
	Gender            string `json:"gender" mapstructure:"gender"`
	MainGoal          string `json:"main_goal" mapstructure:"main_goal"`
	Experience        string `json:"experience" mapstructure:"experience"`
	DaysPerWeek       int    `json:"days_per_week" mapstructure:"days_per_week"`
	MinutesPerWorkout int    `json:"minutes_per_workout" mapstructure:"minutes_per_workout"`
	Injuries          bool   `json:"injuries_yes_no" mapstructure:"injuries_yes_no"`
	InjuriesDetails   string `json:"injuries_details" mapstructure:"injuries_details"`
}
