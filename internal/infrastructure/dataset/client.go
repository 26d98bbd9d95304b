package dataset

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"

	"github.com/draftlab/nbadraft/internal/platform/logging"
)

// DefaultURL is the data.world export of the historical NBA draft dataset.
const DefaultURL = "https://query.data.world/s/ezwk64ej624qyverrw6x7od7co7ftm"

// ErrUnavailable marks fetch failures where neither the cache file nor the
// network could serve the dataset.
var ErrUnavailable = crerr.New("dataset unavailable")

type ClientConfig struct {
	HTTPClient *http.Client
	URL        string
	CachePath  string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client obtains the raw dataset text, preferring a local cache file over
// the network. It performs at most one GET per call; there are no retries.
type Client struct {
	httpClient *http.Client
	url        string
	cachePath  string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		url = DefaultURL
	}

	return &Client{
		httpClient: httpClient,
		url:        url,
		cachePath:  strings.TrimSpace(cfg.CachePath),
		logger:     logger,
	}
}

// FetchRaw returns the full CSV text. A readable cache file wins outright;
// otherwise the configured URL is fetched once and the body decoded as UTF-8.
func (c *Client) FetchRaw(ctx context.Context) (string, error) {
	if c.cachePath != "" {
		raw, err := os.ReadFile(c.cachePath)
		if err == nil {
			c.logger.Debug("dataset served from cache", "path", c.cachePath, "bytes", len(raw))
			return string(raw), nil
		}
		if !os.IsNotExist(err) {
			return "", crerr.Mark(crerr.Wrapf(err, "read cache %s", c.cachePath), ErrUnavailable)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", crerr.Mark(crerr.Wrap(err, "build dataset request"), ErrUnavailable)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", crerr.Mark(crerr.Wrap(err, "fetch dataset"), ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", crerr.Mark(crerr.Newf("fetch dataset: unexpected status %d", resp.StatusCode), ErrUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", crerr.Mark(crerr.Wrap(err, "read dataset body"), ErrUnavailable)
	}
	if !utf8.Valid(body) {
		return "", crerr.Mark(crerr.New("dataset body is not valid UTF-8"), ErrUnavailable)
	}

	c.logger.Debug("dataset fetched", "url", c.url, "bytes", len(body))
	return string(body), nil
}
