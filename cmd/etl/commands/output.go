package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"
	"github.com/riskibarqy/player-stats-etl/internal/usecase"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func validateFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid --format %q (want %s or %s)", format, formatTable, formatJSON)
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func writeRecords(w io.Writer, format string, records []playerstats.Record) error {
	if strings.EqualFold(strings.TrimSpace(format), formatJSON) {
		return writeJSON(w, records)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Team", "Player", "Nation", "Pos", "Age", "MP", "URL"})
	for _, record := range records {
		t.AppendRow(table.Row{
			record.Team,
			record.PlayerName,
			record.Nationality,
			record.Position,
			record.Age,
			record.Games,
			record.URL,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", len(records), "rows"})
	t.Render()
	return nil
}

func writeSummary(w io.Writer, summary usecase.RunSummary) error {
	t := newTable(w)
	t.AppendHeader(table.Row{"Run", "Teams", "Extracted", "Loaded", "Flagged nationalities", "Duration"})
	t.AppendRow(table.Row{
		summary.RunID,
		summary.Teams,
		summary.Extracted,
		summary.Loaded,
		summary.FlaggedNationalities,
		summary.Duration.String(),
	})
	t.Render()
	return nil
}

func writeTeams(w io.Writer, teams []playerstats.TeamRef) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Team", "Squad page"})
	for idx, team := range teams {
		t.AppendRow(table.Row{idx + 1, team.Name, team.URL})
	}
	t.Render()
}

func writeJSON(w io.Writer, value any) error {
	raw, err := sonic.ConfigStd.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	raw = append(raw, '\n')
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
