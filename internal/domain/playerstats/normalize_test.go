package playerstats

import "testing"

func TestNationalityCode(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "eng ENG", want: "ENG", wantOK: true},
		{raw: "br BRA", want: "BRA", wantOK: true},
		{raw: "", want: "", wantOK: false},
		{raw: "NL", want: "NL", wantOK: false},
		{raw: "ci CIV ", want: "IV ", wantOK: false},
		{raw: "ésp", want: "ésp", wantOK: false},
	}

	for _, tc := range tests {
		got, ok := NationalityCode(tc.raw)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("NationalityCode(%q) = (%q, %t), want (%q, %t)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNormalize(t *testing.T) {
	raw := RawRecord{
		KeyTeam:        "Liverpool",
		KeyPlayerName:  "Mohamed Salah",
		KeyPlayerURL:   "https://fbref.com/en/players/e342ad68/Mohamed-Salah",
		KeyNationality: "eg EGY",
		KeyPosition:    "FW",
		KeyAge:         "32-150",
		KeyGames:       "20",
		"minutes":      "1,780",
	}

	got := Normalize(raw)
	want := Record{
		Team:        "Liverpool",
		PlayerName:  "Mohamed Salah",
		URL:         "https://fbref.com/en/players/e342ad68/Mohamed-Salah",
		Nationality: "EGY",
		Position:    "FW",
		Age:         "32-150",
		Games:       "20",
	}
	if got != want {
		t.Fatalf("unexpected record:\nwant: %+v\ngot:  %+v", want, got)
	}
}

func TestNormalize_MissingFieldsBecomeEmpty(t *testing.T) {
	got := Normalize(RawRecord{KeyTeam: "Arsenal", KeyGames: "3"})
	if got.Nationality != "" || got.URL != "" || got.Position != "" || got.Age != "" || got.PlayerName != "" {
		t.Fatalf("expected empty optional fields, got %+v", got)
	}
	if got.Team != "Arsenal" || got.Games != "3" {
		t.Fatalf("unexpected copied fields: %+v", got)
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	raws := []RawRecord{
		{KeyPlayerName: "a", KeyGames: "1"},
		{KeyPlayerName: "b", KeyGames: "2"},
		{KeyPlayerName: "c", KeyGames: "3"},
	}

	got := NormalizeAll(raws)
	if len(got) != len(raws) {
		t.Fatalf("expected %d records, got %d", len(raws), len(got))
	}
	for i, rec := range got {
		if rec.PlayerName != raws[i][KeyPlayerName] {
			t.Fatalf("record %d out of order: %s", i, rec.PlayerName)
		}
	}
}
