package domain

// Period labels for scoring and penalty summaries.
const (
	PeriodOvertime = "OT"
	PeriodShootout = "SO"
)

// Goal is a single scoring event within a period.
type Goal struct {
	Scorer       string   `json:"scorer"`
	TeamAbbrev   string   `json:"teamAbbrev"`
	TimeInPeriod string   `json:"timeInPeriod"`
	Assists      []string `json:"assists,omitempty"`
	HomeScore    int      `json:"homeScore"`
	AwayScore    int      `json:"awayScore"`
	Strength     string   `json:"strength,omitempty"` // ev, pp, sh
	Modifier     string   `json:"modifier,omitempty"` // empty-net, penalty-shot, ...
}

// ScoringPeriod groups goals under a period label ("1", "2", "3", "OT", "SO").
type ScoringPeriod struct {
	Label string `json:"label"`
	Goals []Goal `json:"goals"`
}

// Penalty is a single infraction within a period.
type Penalty struct {
	TeamAbbrev   string `json:"teamAbbrev"`
	Player       string `json:"player"`
	TimeInPeriod string `json:"timeInPeriod"`
	Infraction   string `json:"infraction"`
	Minutes      int    `json:"minutes"`
}

// PenaltyPeriod groups penalties under a period label.
type PenaltyPeriod struct {
	Label     string    `json:"label"`
	Penalties []Penalty `json:"penalties"`
}

// TopPerformer is one of the game's ranked standout players.
type TopPerformer struct {
	Rank       int    `json:"rank"`
	Player     string `json:"player"`
	TeamAbbrev string `json:"teamAbbrev"`
	Position   string `json:"position,omitempty"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
	Points     int    `json:"points"`
}

// TeamStats aggregates one side's game totals.
type TeamStats struct {
	Abbrev         string `json:"abbrev"`
	ShotsOnGoal    int    `json:"shotsOnGoal"`
	PowerPlay      string `json:"powerPlay,omitempty"` // e.g. "1/4"
	PenaltyMinutes int    `json:"penaltyMinutes"`
}

// SkaterLine is a per-player boxscore row.
type SkaterLine struct {
	Player     string `json:"player"`
	TeamAbbrev string `json:"teamAbbrev"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
	Points     int    `json:"points"`
	PlusMinus  int    `json:"plusMinus"`
	Hits       int    `json:"hits"`
	Shots      int    `json:"shots"`
	TimeOnIce  string `json:"timeOnIce"`
}

// GoalieLine is a goaltender boxscore row.
type GoalieLine struct {
	Player         string  `json:"player"`
	TeamAbbrev     string  `json:"teamAbbrev"`
	SavePercentage float64 `json:"savePercentage"`
	TimeOnIce      string  `json:"timeOnIce"`
}

// PartialFlags records which detail sections could not be fetched, so callers
// can distinguish "no data" from "data unavailable".
type PartialFlags struct {
	ScoringMissing  bool `json:"scoringMissing,omitempty"`
	BoxscoreMissing bool `json:"boxscoreMissing,omitempty"`
}

// GameDetail carries the per-game summary used for verdicts and recaps.
// Sections default to empty when the corresponding sub-fetch fails.
type GameDetail struct {
	GameID        int             `json:"gameId"`
	Scoring       []ScoringPeriod `json:"scoring"`
	Penalties     []PenaltyPeriod `json:"penalties"`
	TopPerformers []TopPerformer  `json:"topPerformers"`
	HomeStats     *TeamStats      `json:"homeStats,omitempty"`
	AwayStats     *TeamStats      `json:"awayStats,omitempty"`
	Skaters       []SkaterLine    `json:"skaters,omitempty"`
	Goalies       []GoalieLine    `json:"goalies,omitempty"`
	Partial       PartialFlags    `json:"partial,omitempty"`
}

// Goals returns all scoring events in chronological order.
func (d GameDetail) Goals() []Goal {
	var out []Goal
	for _, p := range d.Scoring {
		out = append(out, p.Goals...)
	}
	return out
}

// WentToOvertime reports whether any scoring period is labeled OT.
func (d GameDetail) WentToOvertime() bool {
	return d.hasPeriod(PeriodOvertime)
}

// WentToShootout reports whether any scoring period is labeled SO.
func (d GameDetail) WentToShootout() bool {
	return d.hasPeriod(PeriodShootout)
}

func (d GameDetail) hasPeriod(label string) bool {
	for _, p := range d.Scoring {
		if p.Label == label {
			return true
		}
	}
	return false
}
