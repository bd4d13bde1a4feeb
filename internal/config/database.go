package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// DatabaseConfig is the destination connection shared by the ETL job and the migrator.
type DatabaseConfig struct {
	ConnID                string
	URL                   string
	DisablePreparedBinary bool
}

func LoadDatabase() (DatabaseConfig, error) {
	connID := strings.TrimSpace(getEnv("DB_CONN_ID", defaultDBConnID))
	dbURL, err := ResolveConnection(connID)
	if err != nil {
		return DatabaseConfig{}, err
	}

	disablePreparedBinary, err := parseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	return DatabaseConfig{
		ConnID:                connID,
		URL:                   dbURL,
		DisablePreparedBinary: disablePreparedBinary,
	}, nil
}

// DSN returns URL with disable_prepared_binary_result=yes appended when enabled. An
// explicit value already in the URL, or a keyword/value DSN, is left untouched.
func (d DatabaseConfig) DSN() string {
	if !d.DisablePreparedBinary {
		return d.URL
	}

	parsed, err := url.Parse(d.URL)
	if err != nil || parsed.Scheme == "" {
		return d.URL
	}

	query := parsed.Query()
	if query.Get(preparedBinaryParam) == "" {
		query.Set(preparedBinaryParam, "yes")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

// Name is the database name from the DSN, or the connection alias when the DSN does
// not carry one.
func (d DatabaseConfig) Name() string {
	raw := strings.TrimSpace(d.URL)
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	} else {
		for _, token := range strings.Fields(raw) {
			name, ok := strings.CutPrefix(token, "dbname=")
			if !ok {
				continue
			}
			if name = strings.Trim(name, `"'`); name != "" {
				return name
			}
		}
	}
	return d.ConnID
}

// ResolveConnection maps a connection alias such as "postgres_default" to a DSN. The
// alias is looked up as DB_CONN_<ALIAS>; DB_URL and then a local default are fallbacks.
func ResolveConnection(connID string) (string, error) {
	connID = strings.TrimSpace(connID)
	if connID == "" {
		return "", fmt.Errorf("DB_CONN_ID cannot be empty")
	}
	if dsn := strings.TrimSpace(os.Getenv(ConnectionEnvKey(connID))); dsn != "" {
		return dsn, nil
	}
	return getEnv("DB_URL", defaultDBURL), nil
}

func ConnectionEnvKey(connID string) string {
	key := strings.ToUpper(strings.TrimSpace(connID))
	key = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(key)
	return "DB_CONN_" + key
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", raw)
	}
}
