package nhle

import (
	"fmt"

	"leafs-result-service/internal/domain"
	"leafs-result-service/internal/timeutil"
)

func mapGame(raw scheduleGame) domain.Game {
	return domain.Game{
		ID:         raw.ID,
		Date:       raw.GameDate,
		State:      mapState(raw.GameState),
		HomeAbbrev: raw.HomeTeam.Abbrev,
		AwayAbbrev: raw.AwayTeam.Abbrev,
		HomeScore:  raw.HomeTeam.Score,
		AwayScore:  raw.AwayTeam.Score,
		StartTime:  timeutil.ParseInstant(raw.StartTimeUTC),
	}
}

// mapState buckets upstream lifecycle states. Terminal and future markers are
// matched explicitly; every other value counts as live.
func mapState(raw string) domain.GameState {
	switch raw {
	case stateFuture, statePregame:
		return domain.StateScheduled
	case stateOfficial, stateFinal, stateOver:
		return domain.StateCompleted
	default:
		return domain.StateInProgress
	}
}

func periodLabel(pd periodDescriptor) string {
	switch pd.PeriodType {
	case "OT":
		return domain.PeriodOvertime
	case "SO":
		return domain.PeriodShootout
	default:
		return fmt.Sprintf("%d", pd.Number)
	}
}

func mapScoring(periods []landingScoringPeriod) []domain.ScoringPeriod {
	out := make([]domain.ScoringPeriod, 0, len(periods))
	for _, p := range periods {
		sp := domain.ScoringPeriod{Label: periodLabel(p.PeriodDescriptor)}
		for _, g := range p.Goals {
			assists := make([]string, 0, len(g.Assists))
			for _, a := range g.Assists {
				assists = append(assists, a.Name.Default)
			}
			sp.Goals = append(sp.Goals, domain.Goal{
				Scorer:       g.Name.Default,
				TeamAbbrev:   g.TeamAbbrev.Default,
				TimeInPeriod: g.TimeInPeriod,
				Assists:      assists,
				HomeScore:    g.HomeScore,
				AwayScore:    g.AwayScore,
				Strength:     g.Strength,
				Modifier:     g.GoalModifier,
			})
		}
		out = append(out, sp)
	}
	return out
}

func mapPenalties(periods []landingPenaltyPeriod) []domain.PenaltyPeriod {
	out := make([]domain.PenaltyPeriod, 0, len(periods))
	for _, p := range periods {
		pp := domain.PenaltyPeriod{Label: periodLabel(p.PeriodDescriptor)}
		for _, pen := range p.Penalties {
			pp.Penalties = append(pp.Penalties, domain.Penalty{
				TeamAbbrev:   pen.TeamAbbrev.Default,
				Player:       pen.CommittedByPlayer.Default,
				TimeInPeriod: pen.TimeInPeriod,
				Infraction:   pen.DescKey,
				Minutes:      pen.Duration,
			})
		}
		out = append(out, pp)
	}
	return out
}

func mapStars(stars []landingStar) []domain.TopPerformer {
	out := make([]domain.TopPerformer, 0, len(stars))
	for _, s := range stars {
		out = append(out, domain.TopPerformer{
			Rank:       s.Star,
			Player:     s.Name,
			TeamAbbrev: s.TeamAbbrev,
			Position:   s.Position,
			Goals:      s.Goals,
			Assists:    s.Assists,
			Points:     s.Points,
		})
	}
	return out
}

func mapTeamStats(raw boxscoreTeam) *domain.TeamStats {
	return &domain.TeamStats{
		Abbrev:         raw.Abbrev.Default,
		ShotsOnGoal:    raw.SOG,
		PowerPlay:      raw.PowerPlayConv,
		PenaltyMinutes: raw.PenaltyMinutes,
	}
}

func mapSkaters(side boxscoreSide, team string) []domain.SkaterLine {
	rows := make([]domain.SkaterLine, 0, len(side.Forwards)+len(side.Defense))
	for _, s := range append(append([]boxscoreSkater{}, side.Forwards...), side.Defense...) {
		rows = append(rows, domain.SkaterLine{
			Player:     s.Name.Default,
			TeamAbbrev: team,
			Goals:      s.Goals,
			Assists:    s.Assists,
			Points:     s.Points,
			PlusMinus:  s.PlusMinus,
			Hits:       s.Hits,
			Shots:      s.SOG,
			TimeOnIce:  s.TOI,
		})
	}
	return rows
}

func mapGoalies(side boxscoreSide, team string) []domain.GoalieLine {
	rows := make([]domain.GoalieLine, 0, len(side.Goalies))
	for _, g := range side.Goalies {
		rows = append(rows, domain.GoalieLine{
			Player:         g.Name.Default,
			TeamAbbrev:     team,
			SavePercentage: g.SavePctg,
			TimeOnIce:      g.TOI,
		})
	}
	return rows
}
