package domain

import "testing"

func TestDeriveVerdictLossTableExhaustive(t *testing.T) {
	// lost must equal: trackedIsHome ? home < away : away < home,
	// across every score pair in a small grid.
	for home := 0; home <= 3; home++ {
		for away := 0; away <= 3; away++ {
			for _, trackedIsHome := range []bool{true, false} {
				game := Game{
					ID:         1,
					HomeScore:  intPtr(home),
					AwayScore:  intPtr(away),
					HomeAbbrev: "BOS",
					AwayAbbrev: "BOS",
				}
				if trackedIsHome {
					game.HomeAbbrev = "TOR"
				} else {
					game.AwayAbbrev = "TOR"
				}

				v := DeriveVerdict(game, GameDetail{}, "TOR")

				wantLost := away < home
				if trackedIsHome {
					wantLost = home < away
				}
				if v.Lost != wantLost {
					t.Fatalf("home=%d away=%d trackedIsHome=%v: lost=%v, want %v",
						home, away, trackedIsHome, v.Lost, wantLost)
				}
				if v.TrackedIsHome != trackedIsHome {
					t.Fatalf("trackedIsHome mismatch for %+v", game)
				}
			}
		}
	}
}

func TestDeriveVerdictScoresAndOpponent(t *testing.T) {
	game := Game{
		ID:         2024020500,
		Date:       "2024-11-16",
		HomeAbbrev: "TOR",
		AwayAbbrev: "BOS",
		HomeScore:  intPtr(4),
		AwayScore:  intPtr(2),
	}

	v := DeriveVerdict(game, GameDetail{}, "TOR")

	if v.Lost {
		t.Fatal("4-2 home win reported as loss")
	}
	if v.TrackedScore != 4 || v.OpponentScore != 2 {
		t.Fatalf("unexpected scores: %d-%d", v.TrackedScore, v.OpponentScore)
	}
	if v.Opponent != "BOS" {
		t.Fatalf("unexpected opponent %q", v.Opponent)
	}
	if !v.TrackedIsHome {
		t.Fatal("expected home game")
	}
}

func TestDeriveVerdictAwayGame(t *testing.T) {
	game := Game{
		HomeAbbrev: "BOS",
		AwayAbbrev: "TOR",
		HomeScore:  intPtr(5),
		AwayScore:  intPtr(1),
	}

	v := DeriveVerdict(game, GameDetail{}, "TOR")

	if !v.Lost {
		t.Fatal("1-5 road loss not reported as loss")
	}
	if v.Opponent != "BOS" || v.TrackedIsHome {
		t.Fatalf("unexpected verdict %+v", v)
	}
}

func TestDeriveVerdictMissingScoreCoercedToZero(t *testing.T) {
	game := Game{
		HomeAbbrev: "TOR",
		AwayAbbrev: "BOS",
		HomeScore:  nil,
		AwayScore:  intPtr(2),
	}

	v := DeriveVerdict(game, GameDetail{}, "TOR")

	if v.TrackedScore != 0 {
		t.Fatalf("expected missing score coerced to 0, got %d", v.TrackedScore)
	}
	if !v.Lost {
		t.Fatal("0-2 should count as loss")
	}
}

func TestDeriveVerdictOvertimeAndShootoutFlags(t *testing.T) {
	game := Game{HomeAbbrev: "TOR", AwayAbbrev: "BOS", HomeScore: intPtr(2), AwayScore: intPtr(3)}

	regulation := GameDetail{Scoring: []ScoringPeriod{{Label: "1"}, {Label: "2"}, {Label: "3"}}}
	v := DeriveVerdict(game, regulation, "TOR")
	if v.WentToOvertime || v.WentToShootout {
		t.Fatalf("regulation game flagged OT/SO: %+v", v)
	}

	overtime := GameDetail{Scoring: []ScoringPeriod{{Label: "3"}, {Label: PeriodOvertime}}}
	v = DeriveVerdict(game, overtime, "TOR")
	if !v.WentToOvertime || v.WentToShootout {
		t.Fatalf("unexpected flags for OT game: %+v", v)
	}

	shootout := GameDetail{Scoring: []ScoringPeriod{{Label: PeriodOvertime}, {Label: PeriodShootout}}}
	v = DeriveVerdict(game, shootout, "TOR")
	if !v.WentToOvertime || !v.WentToShootout {
		t.Fatalf("unexpected flags for SO game: %+v", v)
	}
}
