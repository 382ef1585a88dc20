// Package wikipedia fetches reference prose from the MediaWiki API.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"quizforge/internal/content"
	"quizforge/internal/domain"

	"go.uber.org/zap"
)

// DefaultBaseURL points at English Wikipedia.
const DefaultBaseURL = "https://en.wikipedia.org"

// maxContentChars bounds how much of an article extract is handed to
// cleaning and extraction.
const maxContentChars = 3000

// Source implements domain.ContentSource against the MediaWiki search
// and extracts API. Every failure path resolves to synthetic filler
// text, so Fetch never returns a non-nil error.
type Source struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewSource creates a Source. timeout bounds each HTTP call; a timeout
// is treated like any other fetch failure.
func NewSource(baseURL string, timeout time.Duration, logger *zap.Logger) *Source {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Source{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// buildQuery widens the search as attempts accumulate. broader drops
// the subject qualifier entirely and overrides the attempt-based form.
func buildQuery(subject, topic string, attempt int, broader bool) string {
	switch {
	case broader:
		return topic
	case attempt == 0:
		return fmt.Sprintf("%s %s", topic, subject)
	case attempt == 1:
		return fmt.Sprintf("%s definition %s", topic, subject)
	default:
		return fmt.Sprintf("%s introduction", topic)
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			PageID int    `json:"pageid"`
			Title  string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type extractResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// Fetch searches for the topic, picks the result indexed by the
// attempt (clamped to the last hit), downloads that page's plain-text
// extract and returns it cleaned. On any failure it returns a
// deterministic filler paragraph instead.
func (s *Source) Fetch(ctx context.Context, subject, topic string, attempt int, broader bool) (string, error) {
	query := buildQuery(subject, topic, attempt, broader)
	s.logger.Debug("searching for reference content",
		zap.String("query", query),
		zap.Int("attempt", attempt),
		zap.Bool("broader", broader))

	var search searchResponse
	if err := s.getJSON(ctx, s.searchURL(query), &search); err != nil {
		s.logger.Warn("content search failed, using filler text",
			zap.String("query", query), zap.Error(err))
		return content.Filler(subject, topic, content.FillerFetchError), nil
	}

	hits := search.Query.Search
	if len(hits) == 0 {
		s.logger.Warn("content search returned no results, using filler text",
			zap.String("query", query))
		return content.Filler(subject, topic, content.FillerNoResults), nil
	}

	// Attempts past the result count reuse the last result instead of
	// failing.
	index := attempt
	if index > len(hits)-1 {
		index = len(hits) - 1
	}
	pageID := hits[index].PageID

	var extract extractResponse
	if err := s.getJSON(ctx, s.extractURL(pageID), &extract); err != nil {
		s.logger.Warn("content fetch failed, using filler text",
			zap.Int("page_id", pageID), zap.Error(err))
		return content.Filler(subject, topic, content.FillerFetchError), nil
	}

	page, ok := extract.Query.Pages[fmt.Sprintf("%d", pageID)]
	if !ok || page.Extract == "" {
		s.logger.Warn("content fetch returned no extract, using filler text",
			zap.Int("page_id", pageID))
		return content.Filler(subject, topic, content.FillerFetchError), nil
	}

	raw := page.Extract
	if len(raw) > maxContentChars {
		raw = raw[:maxContentChars]
	}
	cleaned := content.Clean(raw)
	if len(cleaned) < content.MinUsefulLength {
		s.logger.Warn("content too short after cleaning, using filler text",
			zap.Int("page_id", pageID), zap.Int("length", len(cleaned)))
		return content.Filler(subject, topic, content.FillerTooShort), nil
	}

	return cleaned, nil
}

func (s *Source) searchURL(query string) string {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")
	return s.baseURL + "/w/api.php?" + params.Encode()
}

func (s *Source) extractURL(pageID int) string {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("pageids", fmt.Sprintf("%d", pageID))
	params.Set("format", "json")
	return s.baseURL + "/w/api.php?" + params.Encode()
}

func (s *Source) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.ContentSource = (*Source)(nil)
