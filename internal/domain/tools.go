package domain

// Los campos numéricos usan Int/Float: un valor raro anula solo ese campo.

// --- Game tools ---

type OddsData struct {
	MatchID      *string `json:"match_id"`
	CommenceTime *string `json:"commence_time"`
	OddsHome     Float   `json:"odds_home"`
	OddsDraw     Float   `json:"odds_draw"`
	OddsAway     Float   `json:"odds_away"`
	Bookmaker    *string `json:"bookmaker"`
}

type VenueData struct {
	VenueName     *string `json:"venue_name"`
	VenueCity     *string `json:"venue_city"`
	VenueCapacity Int     `json:"venue_capacity"`
	VenueAddress  *string `json:"venue_address"`
	VenueSurface  *string `json:"venue_surface"`
}

type WeatherData struct {
	VenueCity                *string `json:"venue_city"`
	MatchDatetime            *string `json:"match_datetime"`
	TemperatureCelsius       Float   `json:"temperature_celsius"`
	PrecipitationMm          Float   `json:"precipitation_mm"`
	PrecipitationProbability Float   `json:"precipitation_probability"`
	WindSpeedKmh             Float   `json:"wind_speed_kmh"`
	Conditions               *string `json:"conditions"`
}

// H2H winner values.
const (
	WinnerHome = "HOME_TEAM"
	WinnerAway = "AWAY_TEAM"
)

type H2HMatch struct {
	Date      string `json:"date"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	ScoreHome Int    `json:"score_home"`
	ScoreAway Int    `json:"score_away"`
	Winner    string `json:"winner"` // HOME_TEAM | AWAY_TEAM | cualquier otra cosa = empate
}

type H2HData struct {
	HomeTeam          string     `json:"home_team"`
	AwayTeam          string     `json:"away_team"`
	UpcomingMatchDate *string    `json:"upcoming_match_date"`
	Matches           []H2HMatch `json:"h2h_matches"`
	TotalH2H          Int        `json:"total_h2h"`
}

// --- Team tools ---

type FormMatch struct {
	Date         string `json:"date"`
	Opponent     string `json:"opponent"`
	HomeAway     string `json:"home_away"`
	Result       string `json:"result"` // W | D | L
	GoalsFor     Int    `json:"goals_for"`
	GoalsAgainst Int    `json:"goals_against"`
	Competition  string `json:"competition"`
}

type FormRecord struct {
	Wins   Int `json:"wins"`
	Draws  Int `json:"draws"`
	Losses Int `json:"losses"`
}

type FormData struct {
	TeamName string      `json:"team_name"`
	Matches  []FormMatch `json:"matches"`
	Record   *FormRecord `json:"record"`
}

type LeaguePositionData struct {
	TeamName       string  `json:"team_name"`
	LeagueName     *string `json:"league_name"`
	Position       Int     `json:"position"`
	Played         Int     `json:"played"`
	Won            Int     `json:"won"`
	Draw           Int     `json:"draw"`
	Lost           Int     `json:"lost"`
	GoalsFor       Int     `json:"goals_for"`
	GoalsAgainst   Int     `json:"goals_against"`
	GoalDifference Int     `json:"goal_difference"`
	Points         Int     `json:"points"`
	Form           *string `json:"form"` // "WWDLW"
}

type Injury struct {
	PlayerName     string  `json:"player_name"`
	PlayerType     *string `json:"player_type"`
	InjuryType     *string `json:"injury_type"`
	ExpectedReturn *string `json:"expected_return"`
}

type InjuriesData struct {
	TeamName      string   `json:"team_name"`
	Injuries      []Injury `json:"injuries"`
	TotalInjuries Int      `json:"total_injuries"`
	Source        *string  `json:"source"`
}

// Recovery status values.
const (
	RecoveryShort    = "Short"
	RecoveryNormal   = "Normal"
	RecoveryExtended = "Extended"
)

type RecoveryData struct {
	TeamName          string  `json:"team_name"`
	LastMatchDate     *string `json:"last_match_date"`
	UpcomingMatchDate *string `json:"upcoming_match_date"`
	RecoveryDays      Int     `json:"recovery_days"`
	RecoveryStatus    *string `json:"recovery_status"`
}
