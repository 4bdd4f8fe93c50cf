package game

type StandardRules struct {
	StepCost  float64
	FoodValue float64
	WinBonus  float64
	LoseCost  float64
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		StepCost:  1,
		FoodValue: 10,
		WinBonus:  500,
		LoseCost:  500,
	}
}

func (sr *StandardRules) TimePenalty() float64 {
	return sr.StepCost
}

func (sr *StandardRules) FoodReward() float64 {
	return sr.FoodValue
}

func (sr *StandardRules) WinReward() float64 {
	return sr.WinBonus
}

func (sr *StandardRules) LosePenalty() float64 {
	return sr.LoseCost
}
