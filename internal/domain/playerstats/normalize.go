package playerstats

// NationalityCode keeps the last three characters of the raw nationality cell, which
// fbref renders as "<flag> <CODE>" (e.g. "eng ENG"). Shorter values are returned whole.
// ok is false when the result is not a three letter upper case code.
func NationalityCode(raw string) (string, bool) {
	runes := []rune(raw)
	if len(runes) > 3 {
		runes = runes[len(runes)-3:]
	}
	code := string(runes)
	return code, isCountryCode(code)
}

func isCountryCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

func Normalize(raw RawRecord) Record {
	nationality, _ := NationalityCode(raw[KeyNationality])
	return Record{
		Team:        raw[KeyTeam],
		PlayerName:  raw[KeyPlayerName],
		URL:         raw[KeyPlayerURL],
		Nationality: nationality,
		Position:    raw[KeyPosition],
		Age:         raw[KeyAge],
		Games:       raw[KeyGames],
	}
}

func NormalizeAll(raws []RawRecord) []Record {
	out := make([]Record, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}
