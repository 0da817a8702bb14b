package domain

import (
	"fmt"
	"time"
)

// GameState mirrors the lifecycle of a scheduled game as reported upstream.
type GameState string

const (
	StateScheduled  GameState = "SCHEDULED"
	StateInProgress GameState = "IN_PROGRESS"
	StateCompleted  GameState = "COMPLETED"
)

// Game is the canonical schedule entry for the tracked team.
// Score pointers are nil until the upstream reports a score.
type Game struct {
	ID         int       `json:"id"`
	Date       string    `json:"date"` // YYYY-MM-DD
	State      GameState `json:"state"`
	HomeAbbrev string    `json:"homeAbbrev"`
	AwayAbbrev string    `json:"awayAbbrev"`
	HomeScore  *int      `json:"homeScore,omitempty"`
	AwayScore  *int      `json:"awayScore,omitempty"`
	StartTime  time.Time `json:"startTimeUTC"`
}

// Key identifies a game uniquely across reschedules: a postponed game keeps
// its id but moves to a new date.
func (g Game) Key() string {
	return fmt.Sprintf("%d-%s", g.ID, g.Date)
}

// IDString returns the game id in the string form used as a store key.
func (g Game) IDString() string {
	return fmt.Sprintf("%d", g.ID)
}

// Schedule is a season schedule in chronological ascending order.
type Schedule []Game

// CompletedGames returns the games whose state is terminal.
func (s Schedule) CompletedGames() []Game {
	var out []Game
	for _, g := range s {
		if g.State == StateCompleted {
			out = append(out, g)
		}
	}
	return out
}

// LatestCompleted returns the most recent completed game, relying on the
// schedule's chronological ordering.
func (s Schedule) LatestCompleted() (Game, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].State == StateCompleted {
			return s[i], true
		}
	}
	return Game{}, false
}

// NextUpcoming returns the first game still in a future state.
func (s Schedule) NextUpcoming() (Game, bool) {
	for _, g := range s {
		if g.State == StateScheduled {
			return g, true
		}
	}
	return Game{}, false
}

// AnyInProgress reports whether a game is currently live.
func (s Schedule) AnyInProgress() bool {
	for _, g := range s {
		if g.State == StateInProgress {
			return true
		}
	}
	return false
}
