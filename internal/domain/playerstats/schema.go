package playerstats

import (
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var ErrSchemaMismatch = crerr.New("squad table does not match column contract")

type ColumnKind string

const (
	ColumnText ColumnKind = "text"
	ColumnInt  ColumnKind = "int"
)

type Column struct {
	Key  string
	Kind ColumnKind
	// Required columns are needed by the inclusion rule. Optional ones normalize to "".
	Required bool
}

// SquadColumns lists the identifiers the normalizer reads.
var SquadColumns = []Column{
	{Key: KeyPlayer, Kind: ColumnText, Required: true},
	{Key: KeyNationality, Kind: ColumnText},
	{Key: KeyPosition, Kind: ColumnText},
	{Key: KeyAge, Kind: ColumnText},
	gamesColumn,
}

var gamesColumn = Column{Key: KeyGames, Kind: ColumnInt, Required: true}

// Accepts reports whether value is well formed for the column kind.
func (c Column) Accepts(value string) bool {
	switch c.Kind {
	case ColumnInt:
		return IsDigits(value)
	default:
		return true
	}
}

// MissingColumns splits the declared identifiers absent from seen into required and
// optional ones, each in declaration order.
func MissingColumns(seen map[string]struct{}) (required, optional []string) {
	for _, col := range SquadColumns {
		if _, ok := seen[col.Key]; ok {
			continue
		}
		if col.Required {
			required = append(required, col.Key)
		} else {
			optional = append(optional, col.Key)
		}
	}
	return required, optional
}

// CheckColumns fails only when a required identifier is missing. The optional
// identifiers that are missing are returned for the caller to report.
func CheckColumns(seen map[string]struct{}) ([]string, error) {
	required, optional := MissingColumns(seen)
	if len(required) == 0 {
		return optional, nil
	}
	err := crerr.Wrapf(ErrSchemaMismatch, "missing column identifiers [%s]", strings.Join(required, ", "))
	return optional, crerr.WithDetailf(err, "identifiers seen: %d, optional missing: [%s]", len(seen), strings.Join(optional, ", "))
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// HasAppearances is the extractor inclusion rule: games must be a digit string > 0.
func HasAppearances(raw RawRecord) bool {
	games, ok := raw[KeyGames]
	if !ok || !gamesColumn.Accepts(games) {
		return false
	}
	n, err := strconv.Atoi(games)
	return err == nil && n > 0
}

// ParseGames coerces the games field for the INT column. ok is false when the value
// must be stored as NULL, including values outside the 32-bit range.
func ParseGames(value string) (int64, bool) {
	if !IsDigits(value) {
		return 0, false
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}
