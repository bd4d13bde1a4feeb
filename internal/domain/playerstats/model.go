package playerstats

// Raw record keys. The first three are injected by the extractor, the rest are the
// data-stat identifiers of the squad stats table.
const (
	KeyTeam        = "team"
	KeyPlayerName  = "player_name"
	KeyPlayerURL   = "player_url"
	KeyPlayer      = "player"
	KeyNationality = "nationality"
	KeyPosition    = "position"
	KeyAge         = "age"
	KeyGames       = "games"
)

// TeamRef points at one squad page.
type TeamRef struct {
	Name string
	URL  string
}

// RawRecord holds the trimmed cell text of one table row keyed by column identifier.
type RawRecord map[string]string

// Record is the normalized shape written to player_data.
type Record struct {
	Team        string `json:"team"`
	PlayerName  string `json:"player_name"`
	URL         string `json:"url"`
	Nationality string `json:"nationality"`
	Position    string `json:"position"`
	Age         string `json:"age"`
	Games       string `json:"games"`
}
