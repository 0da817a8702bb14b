package nhle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"leafs-result-service/internal/domain"
	"leafs-result-service/internal/providers"
)

// Config controls how the client reaches the NHL web API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches schedule and gamecenter data from api-web.nhle.com and maps
// them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchSeasonSchedule retrieves the club's full season schedule, normalized
// and in the upstream's chronological order.
func (c *Client) FetchSeasonSchedule(ctx context.Context, teamCode string) (domain.Schedule, error) {
	endpoint := fmt.Sprintf("%s/v1/club-schedule-season/%s/now", c.baseURL, teamCode)

	var payload clubScheduleResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	schedule := make(domain.Schedule, 0, len(payload.Games))
	for _, g := range payload.Games {
		schedule = append(schedule, mapGame(g))
	}
	return schedule, nil
}

// FetchGameDetail retrieves the gamecenter landing and boxscore payloads
// concurrently. A failed sub-fetch degrades its section to empty and sets the
// matching Partial flag; the call itself only errors when neither request
// could even be attempted.
func (c *Client) FetchGameDetail(ctx context.Context, gameID int) (domain.GameDetail, error) {
	detail := domain.GameDetail{GameID: gameID}

	var (
		landing     landingResponse
		landingErr  error
		boxscore    boxscoreResponse
		boxscoreErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		endpoint := fmt.Sprintf("%s/v1/gamecenter/%d/landing", c.baseURL, gameID)
		landingErr = c.getJSON(gctx, endpoint, &landing)
		return nil
	})
	g.Go(func() error {
		endpoint := fmt.Sprintf("%s/v1/gamecenter/%d/boxscore", c.baseURL, gameID)
		boxscoreErr = c.getJSON(gctx, endpoint, &boxscore)
		return nil
	})
	_ = g.Wait()

	if landingErr != nil {
		detail.Partial.ScoringMissing = true
	} else {
		detail.Scoring = mapScoring(landing.Summary.Scoring)
		detail.Penalties = mapPenalties(landing.Summary.Penalties)
		detail.TopPerformers = mapStars(landing.Summary.ThreeStars)
	}

	if boxscoreErr != nil {
		detail.Partial.BoxscoreMissing = true
	} else {
		detail.HomeStats = mapTeamStats(boxscore.HomeTeam)
		detail.AwayStats = mapTeamStats(boxscore.AwayTeam)
		home := boxscore.HomeTeam.Abbrev.Default
		away := boxscore.AwayTeam.Abbrev.Default
		detail.Skaters = append(
			mapSkaters(boxscore.PlayerByGameStats.HomeTeam, home),
			mapSkaters(boxscore.PlayerByGameStats.AwayTeam, away)...,
		)
		detail.Goalies = append(
			mapGoalies(boxscore.PlayerByGameStats.HomeTeam, home),
			mapGoalies(boxscore.PlayerByGameStats.AwayTeam, away)...,
		)
	}

	return detail, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &providers.UpstreamError{Provider: ProviderName, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.UpstreamError{Provider: ProviderName, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.UpstreamError{
			Provider:   ProviderName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return &providers.UpstreamError{Provider: ProviderName, Endpoint: endpoint, Err: err}
	}
	return nil
}
