package domain

// Verdict is the derived win/loss summary for a completed game.
type Verdict struct {
	GameID         int    `json:"gameId"`
	Date           string `json:"date"`
	TrackedTeam    string `json:"trackedTeam"`
	TrackedIsHome  bool   `json:"trackedIsHome"`
	TrackedScore   int    `json:"trackedScore"`
	OpponentScore  int    `json:"opponentScore"`
	Opponent       string `json:"opponent"`
	Lost           bool   `json:"lost"`
	WentToOvertime bool   `json:"wentToOvertime"`
	WentToShootout bool   `json:"wentToShootout"`
}

// DeriveVerdict computes the verdict for a completed game. Home/away is
// decided by matching teamCode against the game's abbreviations; a missing
// score is coerced to 0, which only happens on degraded upstream data.
// OT/SO flags come from the detail's scoring periods, not the game record.
func DeriveVerdict(game Game, detail GameDetail, teamCode string) Verdict {
	trackedIsHome := game.HomeAbbrev == teamCode

	home := scoreOrZero(game.HomeScore)
	away := scoreOrZero(game.AwayScore)

	trackedScore, opponentScore := home, away
	opponent := game.AwayAbbrev
	if !trackedIsHome {
		trackedScore, opponentScore = away, home
		opponent = game.HomeAbbrev
	}

	return Verdict{
		GameID:         game.ID,
		Date:           game.Date,
		TrackedTeam:    teamCode,
		TrackedIsHome:  trackedIsHome,
		TrackedScore:   trackedScore,
		OpponentScore:  opponentScore,
		Opponent:       opponent,
		Lost:           trackedScore < opponentScore,
		WentToOvertime: detail.WentToOvertime(),
		WentToShootout: detail.WentToShootout(),
	}
}

func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
