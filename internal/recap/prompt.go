package recap

import (
	"fmt"
	"strings"

	"leafs-result-service/internal/domain"
)

// systemPrompt is the fixed persona instruction sent with every request.
const systemPrompt = `You are a long-suffering Toronto Maple Leafs beat writer. ` +
	`Write a short, dry, lightly sardonic recap of the game described below. ` +
	`Two paragraphs at most. Stick to the facts you are given; do not invent ` +
	`players, goals or statistics.`

// BuildPrompt renders the verdict and detail into a deterministic prompt.
// Same inputs always produce the same prompt text; only the model's reply
// varies.
func BuildPrompt(verdict domain.Verdict, detail domain.GameDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\n", verdict.Date)
	b.WriteString(resultLine(verdict))
	b.WriteString("\n")

	goals := detail.Goals()
	if len(goals) > 0 {
		b.WriteString("\nGoals:\n")
		for _, p := range detail.Scoring {
			for _, g := range p.Goals {
				b.WriteString(goalLine(p.Label, g))
				b.WriteString("\n")
			}
		}
	}

	if len(detail.TopPerformers) > 0 {
		b.WriteString("\nTop performers:\n")
		for _, tp := range detail.TopPerformers {
			fmt.Fprintf(&b, "%d. %s (%s): %dG %dA %dP\n",
				tp.Rank, tp.Player, tp.TeamAbbrev, tp.Goals, tp.Assists, tp.Points)
		}
	}

	if detail.HomeStats != nil && detail.AwayStats != nil {
		b.WriteString("\nTeam stats:\n")
		b.WriteString(teamStatsLine(*detail.HomeStats))
		b.WriteString(teamStatsLine(*detail.AwayStats))
	}

	if len(detail.Goalies) > 0 {
		b.WriteString("\nGoaltending:\n")
		for _, g := range detail.Goalies {
			fmt.Fprintf(&b, "%s (%s): %.3f save pct, %s TOI\n",
				g.Player, g.TeamAbbrev, g.SavePercentage, g.TimeOnIce)
		}
	}

	return b.String()
}

func resultLine(v domain.Verdict) string {
	outcome := "beat"
	if v.Lost {
		outcome = "lost to"
	}
	venue := "at home"
	if !v.TrackedIsHome {
		venue = "on the road"
	}
	suffix := ""
	if v.WentToShootout {
		suffix = " in a shootout"
	} else if v.WentToOvertime {
		suffix = " in overtime"
	}
	return fmt.Sprintf("Result: %s %s %s %d-%d %s%s",
		v.TrackedTeam, outcome, v.Opponent, v.TrackedScore, v.OpponentScore, venue, suffix)
}

// goalLine formats one scoring event:
// "<period> <time>: <scorer> (<team>)[, modifiers] - assists: <names|unassisted>"
func goalLine(period string, g domain.Goal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s (%s)", period, g.TimeInPeriod, g.Scorer, g.TeamAbbrev)
	if g.Strength != "" && g.Strength != "ev" {
		fmt.Fprintf(&b, ", %s", g.Strength)
	}
	if g.Modifier != "" {
		fmt.Fprintf(&b, ", %s", g.Modifier)
	}
	if len(g.Assists) > 0 {
		fmt.Fprintf(&b, " - assists: %s", strings.Join(g.Assists, ", "))
	} else {
		b.WriteString(" - unassisted")
	}
	return b.String()
}

func teamStatsLine(s domain.TeamStats) string {
	return fmt.Sprintf("%s: %d shots, PP %s, %d PIM\n",
		s.Abbrev, s.ShotsOnGoal, s.PowerPlay, s.PenaltyMinutes)
}
