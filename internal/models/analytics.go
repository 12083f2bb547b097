package models

// MockSummary carries randomly generated dashboard figures. Mock is always
// true; none of these values are derived from ride or chat state.
type MockSummary struct {
	User           string    `json:"user"`
	Mock           bool      `json:"mock"`
	Earnings       float64   `json:"earnings"`
	Spending       float64   `json:"spending"`
	Savings        float64   `json:"savings"`
	CO2SavedKg     float64   `json:"co2_saved_kg"`
	RidesThisWeek  int       `json:"rides_this_week"`
	GoalProgress   float64   `json:"goal_progress"`
	WeeklyEarnings []float64 `json:"weekly_earnings"`
	WeeklySpending []float64 `json:"weekly_spending"`
	Currency       string    `json:"currency"`
}
