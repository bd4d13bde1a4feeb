package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"
	"gopkg.in/yaml.v3"
)

var defaultTeams = []playerstats.TeamRef{
	{Name: "Liverpool", URL: "https://fbref.com/en/squads/822bd0ba/Liverpool-Stats"},
	{Name: "Arsenal", URL: "https://fbref.com/en/squads/18bb7c10/Arsenal-Stats"},
	{Name: "Nottingham Forest", URL: "https://fbref.com/en/squads/e4a775cb/Nottingham-Forest-Stats"},
	{Name: "Chelsea", URL: "https://fbref.com/en/squads/cff3d9bb/Chelsea-Stats"},
	{Name: "Manchester City", URL: "https://fbref.com/en/squads/b8fd03ef/Manchester-City-Stats"},
	{Name: "Newcastle United", URL: "https://fbref.com/en/squads/b2b47a98/Newcastle-United-Stats"},
	{Name: "Bournemouth", URL: "https://fbref.com/en/squads/4ba7cbea/Bournemouth-Stats"},
	{Name: "Aston Villa", URL: "https://fbref.com/en/squads/8602292d/Aston-Villa-Stats"},
	{Name: "Brighton & Hove Albion", URL: "https://fbref.com/en/squads/d07537b9/Brighton-and-Hove-Albion-Stats"},
	{Name: "Fulham", URL: "https://fbref.com/en/squads/fd962109/Fulham-Stats"},
	{Name: "Brentford", URL: "https://fbref.com/en/squads/cd051869/Brentford-Stats"},
	{Name: "Crystal Palace", URL: "https://fbref.com/en/squads/47c64c55/Crystal-Palace-Stats"},
	{Name: "Manchester United", URL: "https://fbref.com/en/squads/19538871/Manchester-United-Stats"},
	{Name: "West Ham United", URL: "https://fbref.com/en/squads/7c21e445/West-Ham-United-Stats"},
	{Name: "Tottenham Hotspur", URL: "https://fbref.com/en/squads/361ca564/Tottenham-Hotspur-Stats"},
	{Name: "Everton", URL: "https://fbref.com/en/squads/d3fd31cc/Everton-Stats"},
	{Name: "Wolverhampton Wanderers", URL: "https://fbref.com/en/squads/8cec06e1/Wolverhampton-Wanderers-Stats"},
	{Name: "Ipswich Town", URL: "https://fbref.com/en/squads/b74092de/Ipswich-Town-Stats"},
	{Name: "Leicester City", URL: "https://fbref.com/en/squads/a2d435b3/Leicester-City-Stats"},
	{Name: "Southampton", URL: "https://fbref.com/en/squads/33c895d4/Southampton-Stats"},
}

// DefaultTeams returns a copy of the built-in 2024/25 Premier League squad pages.
func DefaultTeams() []playerstats.TeamRef {
	out := make([]playerstats.TeamRef, len(defaultTeams))
	copy(out, defaultTeams)
	return out
}

type teamsFile struct {
	Teams []teamEntry `yaml:"teams" validate:"required,min=1,dive"`
}

type teamEntry struct {
	Name string `yaml:"name" validate:"required"`
	URL  string `yaml:"url" validate:"required,url"`
}

// LoadTeamsFile reads a YAML document of the form:
//
//	teams:
//	  - name: Liverpool
//	    url: https://fbref.com/en/squads/822bd0ba/Liverpool-Stats
func LoadTeamsFile(path string) ([]playerstats.TeamRef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read teams file: %w", err)
	}
	return ParseTeams(raw)
}

func ParseTeams(raw []byte) ([]playerstats.TeamRef, error) {
	var doc teamsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode teams yaml: %w", err)
	}
	for i := range doc.Teams {
		doc.Teams[i].Name = strings.TrimSpace(doc.Teams[i].Name)
		doc.Teams[i].URL = strings.TrimSpace(doc.Teams[i].URL)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("validate teams: %w", err)
	}

	out := make([]playerstats.TeamRef, 0, len(doc.Teams))
	for _, item := range doc.Teams {
		out = append(out, playerstats.TeamRef{Name: item.Name, URL: item.URL})
	}
	return out, nil
}
