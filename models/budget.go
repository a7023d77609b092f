package models

// Budget split applied to the traveler's total.
const (
	TransportationShare = 0.40
	AccommodationShare  = 0.30
	FoodShare           = 0.15
	ActivitiesShare     = 0.10
	MiscShare           = 0.05
)

type BudgetBreakdown struct {
	TotalBudget    float64 `json:"total_budget" bson:"total_budget"`
	Transportation float64 `json:"transportation" bson:"transportation"`
	Accommodation  float64 `json:"accommodation" bson:"accommodation"`
	Food           float64 `json:"food" bson:"food"`
	Activities     float64 `json:"activities" bson:"activities"`
	Misc           float64 `json:"misc" bson:"misc"`
	Currency       string  `json:"currency" bson:"currency"`
}

// NewBudgetBreakdown splits total across the five categories. Zero and
// negative totals are split as-is.
func NewBudgetBreakdown(total float64, currency string) BudgetBreakdown {
	if currency == "" {
		currency = DefaultCurrency
	}
	return BudgetBreakdown{
		TotalBudget:    total,
		Transportation: total * TransportationShare,
		Accommodation:  total * AccommodationShare,
		Food:           total * FoodShare,
		Activities:     total * ActivitiesShare,
		Misc:           total * MiscShare,
		Currency:       currency,
	}
}

// BudgetFromCategories builds a breakdown whose total is the sum of the parts.
func BudgetFromCategories(transportation, accommodation, food, activities, misc float64) BudgetBreakdown {
	return BudgetBreakdown{
		TotalBudget:    transportation + accommodation + food + activities + misc,
		Transportation: transportation,
		Accommodation:  accommodation,
		Food:           food,
		Activities:     activities,
		Misc:           misc,
		Currency:       DefaultCurrency,
	}
}

func (b BudgetBreakdown) TotalCost() float64 {
	return b.Transportation + b.Accommodation + b.Food + b.Activities + b.Misc
}

func (b BudgetBreakdown) Remaining() float64 {
	return b.TotalBudget - b.TotalCost()
}

func (b BudgetBreakdown) WithinBudget() bool {
	return b.Remaining() >= 0
}
