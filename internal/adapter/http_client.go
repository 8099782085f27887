package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/readersim/readersim/internal/logger"
	"github.com/readersim/readersim/models"
)

// Sync response headers of the device protocol. The continuation contract
// lives entirely in these two: "x-kobo-sync: continue" means more pages, and
// x-kobo-synctoken carries the continuation token in both directions.
const (
	headerSyncToken  = "x-kobo-synctoken"
	headerSyncSignal = "x-kobo-sync"
	signalContinue   = "continue"
)

// deviceHeaders identify the client as a real device. Servers key sync
// behavior off the model headers, so they are sent on every request.
var deviceHeaders = map[string]string{
	"Accept":                 "application/json",
	"Accept-Encoding":        "gzip, deflate",
	"User-Agent":             "Kobo/8.11.24971 Android/12 (Build/RQ3A.211001.001; CPU/arm64-v8a; Screen/1920x1200; Touch/true)",
	"X-Kobo-Devicemodel":     "Kobo Sage",
	"X-Kobo-Deviceos":        "Android",
	"X-Kobo-Deviceosversion": "12",
}

// HTTPClientConfig configures the HTTP library adapter.
type HTTPClientConfig struct {
	// BaseURL is the server root, e.g. "https://books.example.com".
	BaseURL string
	// AuthToken is the opaque device credential embedded in the URL path.
	// It is never parsed or validated client-side.
	AuthToken string
	// DeviceID is sent as the X-Kobo-Deviceid header.
	DeviceID string
	// Timeout bounds every single request.
	Timeout time.Duration
}

type httpLibraryAdapter struct {
	client    *resty.Client
	authToken string
	log       *logger.Logger
}

// NewHTTPLibraryAdapter builds a [LibraryAdapter] speaking the device sync
// protocol over HTTP.
func NewHTTPLibraryAdapter(cfg HTTPClientConfig, log *logger.Logger) LibraryAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeaders(deviceHeaders).
		SetHeader("X-Kobo-Deviceid", cfg.DeviceID)

	return &httpLibraryAdapter{client: cli, authToken: cfg.AuthToken, log: log}
}

func (h *httpLibraryAdapter) FetchSyncPage(ctx context.Context, token models.SyncToken) (models.SyncPage, error) {
	req := h.client.R().SetContext(ctx)
	if !token.IsEmpty() {
		req.SetHeader(headerSyncToken, token.String())
	}

	h.log.Debug().Str("token", token.Abbrev()).Msg("GET /v1/library/sync")
	resp, err := req.Get(h.endpoint("/v1/library/sync"))
	if err != nil {
		return models.SyncPage{}, fmt.Errorf("sync page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncPage{}, err
	}

	page := models.SyncPage{
		Continue:  strings.EqualFold(resp.Header().Get(headerSyncSignal), signalContinue),
		NextToken: models.ParseSyncToken(resp.Header().Get(headerSyncToken)),
	}

	body := resp.Body()
	if len(strings.TrimSpace(string(body))) > 0 {
		if err = json.Unmarshal(body, &page.Items); err != nil {
			return models.SyncPage{}, fmt.Errorf("decode sync page body: %w", err)
		}
	}

	h.log.Debug().
		Int("items", len(page.Items)).
		Bool("continue", page.Continue).
		Str("next_token", page.NextToken.Abbrev()).
		Msg("sync page received")

	return page, nil
}

func (h *httpLibraryAdapter) GetBookMetadata(ctx context.Context, bookID string) (json.RawMessage, error) {
	h.log.Debug().Str("book_id", bookID).Msg("GET /v1/library/{id}/metadata")
	resp, err := h.client.R().SetContext(ctx).
		Get(h.endpoint("/v1/library/" + bookID + "/metadata"))
	if err != nil {
		return nil, fmt.Errorf("book metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

func (h *httpLibraryAdapter) UpdateReadingState(ctx context.Context, bookID string, progress float64, status models.ReadingStatus) error {
	payload := map[string]any{
		"CurrentBookmark": map[string]any{
			"ProgressPercent":              progress * 100,
			"ContentSourceProgressPercent": progress * 100,
		},
		"StatusInfo": map[string]any{
			"Status": status,
		},
	}

	h.log.Debug().Str("book_id", bookID).Float64("progress", progress).Msg("PUT /v1/library/{id}/state")
	resp, err := h.client.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put(h.endpoint("/v1/library/" + bookID + "/state"))
	if err != nil {
		return fmt.Errorf("update reading state request: %w", err)
	}

	return mapHTTPError(resp)
}

// endpoint builds the device API path: the server routes device traffic under
// /kobo/<auth-token>/.
func (h *httpLibraryAdapter) endpoint(path string) string {
	return "/kobo/" + h.authToken + path
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
