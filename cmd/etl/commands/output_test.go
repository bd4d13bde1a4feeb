package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"
	"github.com/riskibarqy/player-stats-etl/internal/usecase"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"table", "json", " JSON "} {
		if err := validateFormat(format); err != nil {
			t.Fatalf("validateFormat(%q): %v", format, err)
		}
	}
	if err := validateFormat("csv"); err == nil {
		t.Fatalf("expected csv to be rejected")
	}
}

func TestWriteRecords_Table(t *testing.T) {
	var buf bytes.Buffer
	err := writeRecords(&buf, formatTable, []playerstats.Record{{
		Team:        "Arsenal",
		PlayerName:  "Bukayo Saka",
		Nationality: "ENG",
		Position:    "FW",
		Age:         "22-150",
		Games:       "12",
	}})
	if err != nil {
		t.Fatalf("write records: %v", err)
	}

	out := buf.String()
	require.Contains(t, out, "Bukayo Saka")
	require.Contains(t, out, "ENG")
	require.Contains(t, out, "rows")
}

func TestWriteRecords_JSON(t *testing.T) {
	var buf bytes.Buffer
	records := []playerstats.Record{{Team: "Chelsea", PlayerName: "Cole Palmer", Games: "14"}}
	if err := writeRecords(&buf, formatJSON, records); err != nil {
		t.Fatalf("write records: %v", err)
	}

	var decoded []playerstats.Record
	if err := sonic.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	require.Equal(t, records, decoded)
}

func TestWriteJSON_RawRecordsSortedKeys(t *testing.T) {
	var buf bytes.Buffer
	raws := []playerstats.RawRecord{{"team": "Arsenal", "games": "12", "age": "22-150"}}
	if err := writeJSON(&buf, raws); err != nil {
		t.Fatalf("write json: %v", err)
	}

	out := buf.String()
	if strings.Index(out, `"age"`) > strings.Index(out, `"games"`) || strings.Index(out, `"games"`) > strings.Index(out, `"team"`) {
		t.Fatalf("expected sorted keys, got %s", out)
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	err := writeSummary(&buf, usecase.RunSummary{
		RunID:                "20261019T060000Z-0badc0de",
		Teams:                20,
		Extracted:            512,
		Loaded:               512,
		FlaggedNationalities: 2,
		Duration:             42 * time.Second,
	})
	if err != nil {
		t.Fatalf("write summary: %v", err)
	}
	require.Contains(t, buf.String(), "512")
	require.Contains(t, buf.String(), "42s")
	require.Contains(t, buf.String(), "0badc0de")
}

func TestTeamsCommand_ListsConfiguredTeams(t *testing.T) {
	t.Setenv("ETL_TEAMS_FILE", "")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "error")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"teams"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute teams: %v", err)
	}

	out := buf.String()
	require.Contains(t, out, "Arsenal")
	require.Contains(t, out, "https://fbref.com/en/squads/")
}

func TestRunCommand_RejectsUnknownFormat(t *testing.T) {
	t.Setenv("ETL_TEAMS_FILE", "")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "error")

	rootCmd.SetArgs([]string{"run", "--dry-run", "--format", "csv"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		runFormat = formatTable
		runDryRun = false
	})

	err := ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "invalid --format") {
		t.Fatalf("expected format error, got %v", err)
	}
}
