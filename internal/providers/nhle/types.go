package nhle

// The api-web.nhle.com payloads localize display names as {"default": "..."}.
type localizedName struct {
	Default string `json:"default"`
}

type scheduleTeam struct {
	Abbrev string `json:"abbrev"`
	Score  *int   `json:"score"`
}

type scheduleGame struct {
	ID           int          `json:"id"`
	GameDate     string       `json:"gameDate"`
	GameState    string       `json:"gameState"`
	StartTimeUTC string       `json:"startTimeUTC"`
	HomeTeam     scheduleTeam `json:"homeTeam"`
	AwayTeam     scheduleTeam `json:"awayTeam"`
}

type clubScheduleResponse struct {
	Games []scheduleGame `json:"games"`
}

type periodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"` // REG, OT, SO
}

type landingAssist struct {
	Name localizedName `json:"name"`
}

type landingGoal struct {
	Name         localizedName   `json:"name"`
	TeamAbbrev   localizedName   `json:"teamAbbrev"`
	TimeInPeriod string          `json:"timeInPeriod"`
	Assists      []landingAssist `json:"assists"`
	HomeScore    int             `json:"homeScore"`
	AwayScore    int             `json:"awayScore"`
	Strength     string          `json:"strength"`
	GoalModifier string          `json:"goalModifier"`
}

type landingScoringPeriod struct {
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	Goals            []landingGoal    `json:"goals"`
}

type landingPenalty struct {
	TimeInPeriod      string        `json:"timeInPeriod"`
	Duration          int           `json:"duration"`
	CommittedByPlayer localizedName `json:"committedByPlayer"`
	TeamAbbrev        localizedName `json:"teamAbbrev"`
	DescKey           string        `json:"descKey"`
}

type landingPenaltyPeriod struct {
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	Penalties        []landingPenalty `json:"penalties"`
}

type landingStar struct {
	Star       int    `json:"star"`
	Name       string `json:"name"`
	TeamAbbrev string `json:"teamAbbrev"`
	Position   string `json:"position"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
	Points     int    `json:"points"`
}

type landingSummary struct {
	Scoring    []landingScoringPeriod `json:"scoring"`
	Penalties  []landingPenaltyPeriod `json:"penalties"`
	ThreeStars []landingStar          `json:"threeStars"`
}

type landingResponse struct {
	ID      int            `json:"id"`
	Summary landingSummary `json:"summary"`
}

type boxscoreTeam struct {
	Abbrev         localizedName `json:"abbrev"`
	Score          int           `json:"score"`
	SOG            int           `json:"sog"`
	PowerPlayConv  string        `json:"powerPlayConversion"`
	PenaltyMinutes int           `json:"pim"`
}

type boxscoreSkater struct {
	Name      localizedName `json:"name"`
	Goals     int           `json:"goals"`
	Assists   int           `json:"assists"`
	Points    int           `json:"points"`
	PlusMinus int           `json:"plusMinus"`
	Hits      int           `json:"hits"`
	SOG       int           `json:"sog"`
	TOI       string        `json:"toi"`
}

type boxscoreGoalie struct {
	Name     localizedName `json:"name"`
	SavePctg float64       `json:"savePctg"`
	TOI      string        `json:"toi"`
}

type boxscoreSide struct {
	Forwards []boxscoreSkater `json:"forwards"`
	Defense  []boxscoreSkater `json:"defense"`
	Goalies  []boxscoreGoalie `json:"goalies"`
}

type playerByGameStats struct {
	HomeTeam boxscoreSide `json:"homeTeam"`
	AwayTeam boxscoreSide `json:"awayTeam"`
}

type boxscoreResponse struct {
	ID                int               `json:"id"`
	HomeTeam          boxscoreTeam      `json:"homeTeam"`
	AwayTeam          boxscoreTeam      `json:"awayTeam"`
	PlayerByGameStats playerByGameStats `json:"playerByGameStats"`
}
