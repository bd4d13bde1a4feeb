package fbref

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
	"github.com/riskibarqy/player-stats-etl/internal/domain/playerstats"
	"github.com/riskibarqy/player-stats-etl/internal/platform/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://fbref.com"
	maxBodyPreview = 256
)

var ErrFetchFailed = crerr.New("fbref squad page fetch failed")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	Logger     *logging.Logger
}

// Client fetches squad pages. It never retries: the first failure is returned to the
// caller, which aborts the run.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  *logging.Logger
}

var _ playerstats.Source = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.NewWithClient(httpClient)
	client.SetRetryCount(0)
	client.SetHeader("accept", "text/html,application/xhtml+xml")
	if ua := strings.TrimSpace(cfg.UserAgent); ua != "" {
		client.SetHeader("user-agent", ua)
	}

	return &Client{
		http:    client,
		baseURL: baseURL,
		logger:  logger,
	}
}

// FetchSquad downloads the team's squad page and extracts the players with appearances.
func (c *Client) FetchSquad(ctx context.Context, team playerstats.TeamRef) ([]playerstats.RawRecord, error) {
	body, err := c.fetchPage(ctx, team.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch squad page team=%s: %w", team.Name, err)
	}

	page, err := parseSquadPage(bytes.NewReader(body), team.Name, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse squad page team=%s: %w", team.Name, err)
	}
	if len(page.missingOptional) > 0 {
		c.logger.WarnContext(ctx, "squad table lacks optional columns",
			"team", team.Name,
			"missing", strings.Join(page.missingOptional, ","),
		)
	}

	c.logger.DebugContext(ctx, "parsed squad page", "team", team.Name, "players", len(page.records))
	return page.records, nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		c.logger.WarnContext(ctx, "fbref request failed", "url", pageURL, "error", err)
		return nil, fmt.Errorf("%w: send request: %w", ErrFetchFailed, err)
	}
	if !resp.IsSuccess() {
		c.logger.WarnContext(ctx, "fbref request rejected", "url", pageURL, "status", resp.StatusCode())
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrFetchFailed, resp.StatusCode(), abbreviateBody(resp.Body()))
	}

	return resp.Body(), nil
}

func abbreviateBody(raw []byte) string {
	text := strings.Join(strings.Fields(string(raw)), " ")
	if len(text) <= maxBodyPreview {
		return text
	}
	return text[:maxBodyPreview] + "..."
}
