package game

// Rules defines how the score changes as the game is played.
type Rules interface {
	TimePenalty() float64
	FoodReward() float64
	WinReward() float64
	LosePenalty() float64
}
