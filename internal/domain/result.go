package domain

import "time"

// StoredResult is the persisted record for a processed game. Created exactly
// once per completed game and never mutated afterwards.
type StoredResult struct {
	GameID         string `json:"gameId"`
	GameDate       string `json:"gameDate"`
	Opponent       string `json:"opponent"`
	IsHomeGame     bool   `json:"isHomeGame"`
	Lost           bool   `json:"lost"`
	TrackedScore   int    `json:"trackedScore"`
	OpponentScore  int    `json:"opponentScore"`
	WentToOvertime bool   `json:"wentToOvertime"`
	WentToShootout bool   `json:"wentToShootout"`
	RecapText      string `json:"recapText"`
}

// NewStoredResult builds the persisted record from a verdict and recap.
func NewStoredResult(game Game, verdict Verdict, recap string) StoredResult {
	return StoredResult{
		GameID:         game.IDString(),
		GameDate:       game.Date,
		Opponent:       verdict.Opponent,
		IsHomeGame:     verdict.TrackedIsHome,
		Lost:           verdict.Lost,
		TrackedScore:   verdict.TrackedScore,
		OpponentScore:  verdict.OpponentScore,
		WentToOvertime: verdict.WentToOvertime,
		WentToShootout: verdict.WentToShootout,
		RecapText:      recap,
	}
}

// PollState is the small cross-cycle scalar state persisted by the poller.
type PollState struct {
	LastProcessedGameKey string     `json:"lastProcessedGameKey,omitempty"`
	NextGameStart        *time.Time `json:"nextGameStart,omitempty"`
}
