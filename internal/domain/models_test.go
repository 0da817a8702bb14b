package domain

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func sampleSchedule() Schedule {
	return Schedule{
		{ID: 100, Date: "2024-10-09", State: StateCompleted, HomeAbbrev: "TOR", AwayAbbrev: "MTL", HomeScore: intPtr(1), AwayScore: intPtr(0)},
		{ID: 101, Date: "2024-10-11", State: StateCompleted, HomeAbbrev: "BOS", AwayAbbrev: "TOR", HomeScore: intPtr(3), AwayScore: intPtr(2)},
		{ID: 102, Date: "2024-10-13", State: StateInProgress, HomeAbbrev: "TOR", AwayAbbrev: "NYR"},
		{ID: 103, Date: "2024-10-15", State: StateScheduled, HomeAbbrev: "TOR", AwayAbbrev: "OTT", StartTime: time.Date(2024, 10, 15, 23, 0, 0, 0, time.UTC)},
		{ID: 104, Date: "2024-10-17", State: StateScheduled, HomeAbbrev: "DET", AwayAbbrev: "TOR"},
	}
}

func TestScheduleClassificationPartitionsGames(t *testing.T) {
	sched := sampleSchedule()

	completed := len(sched.CompletedGames())
	var inProgress, scheduled int
	for _, g := range sched {
		switch g.State {
		case StateInProgress:
			inProgress++
		case StateScheduled:
			scheduled++
		}
	}

	if completed+inProgress+scheduled != len(sched) {
		t.Fatalf("classification does not partition schedule: %d+%d+%d != %d",
			completed, inProgress, scheduled, len(sched))
	}
	if completed != 2 || inProgress != 1 || scheduled != 2 {
		t.Fatalf("unexpected classification counts: completed=%d inProgress=%d scheduled=%d",
			completed, inProgress, scheduled)
	}
}

func TestLatestCompletedIsLastInScheduleOrder(t *testing.T) {
	latest, ok := sampleSchedule().LatestCompleted()
	if !ok {
		t.Fatal("expected a completed game")
	}
	if latest.ID != 101 {
		t.Fatalf("expected game 101, got %d", latest.ID)
	}
}

func TestLatestCompletedEmptySchedule(t *testing.T) {
	if _, ok := (Schedule{}).LatestCompleted(); ok {
		t.Fatal("expected no completed game in empty schedule")
	}
}

func TestNextUpcomingIsFirstScheduled(t *testing.T) {
	next, ok := sampleSchedule().NextUpcoming()
	if !ok {
		t.Fatal("expected an upcoming game")
	}
	if next.ID != 103 {
		t.Fatalf("expected game 103, got %d", next.ID)
	}
}

func TestAnyInProgress(t *testing.T) {
	if !sampleSchedule().AnyInProgress() {
		t.Fatal("expected a live game")
	}

	var allDone Schedule
	for _, g := range sampleSchedule() {
		if g.State != StateInProgress {
			allDone = append(allDone, g)
		}
	}
	if allDone.AnyInProgress() {
		t.Fatal("expected no live game")
	}
}

func TestGameKeyIncludesDate(t *testing.T) {
	g := Game{ID: 2024020500, Date: "2024-11-16"}
	if got := g.Key(); got != "2024020500-2024-11-16" {
		t.Fatalf("unexpected key %q", got)
	}

	// A rescheduled game keeps its id but moves dates; keys must differ.
	moved := g
	moved.Date = "2024-12-01"
	if g.Key() == moved.Key() {
		t.Fatal("expected distinct keys for rescheduled game")
	}
}
