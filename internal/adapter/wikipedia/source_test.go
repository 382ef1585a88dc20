package wikipedia

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quizforge/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testExtract = "Gravity is a fundamental interaction which causes mutual attraction between all things that have mass. " +
	"Gravity is the weakest of the four fundamental interactions, yet it is the dominant interaction at the macroscopic scale. " +
	"On Earth, gravity gives weight to physical objects and causes the ocean tides."

type fakeWiki struct {
	pageIDs       []int
	searchQueries []string
	extractPages  []string
	extract       string
	failSearch    bool
	failExtract   bool
}

func (f *fakeWiki) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("list") == "search":
			if f.failSearch {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			f.searchQueries = append(f.searchQueries, q.Get("srsearch"))
			hits := make([]string, 0, len(f.pageIDs))
			for _, id := range f.pageIDs {
				hits = append(hits, fmt.Sprintf(`{"pageid":%d,"title":"Page %d"}`, id, id))
			}
			fmt.Fprintf(w, `{"query":{"search":[%s]}}`, strings.Join(hits, ","))
		case q.Get("prop") == "extracts":
			if f.failExtract {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			pageID := q.Get("pageids")
			f.extractPages = append(f.extractPages, pageID)
			fmt.Fprintf(w, `{"query":{"pages":{%q:{"extract":%q}}}}`, pageID, f.extract)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}
}

func newTestSource(t *testing.T, wiki *fakeWiki) *Source {
	t.Helper()
	server := httptest.NewServer(wiki.handler())
	t.Cleanup(server.Close)
	return NewSource(server.URL, 5*time.Second, zap.NewNop())
}

func TestFetchReturnsCleanedExtract(t *testing.T) {
	wiki := &fakeWiki{pageIDs: []int{101}, extract: testExtract + " [1] (see below)"}
	source := newTestSource(t, wiki)

	text, err := source.Fetch(context.Background(), "Physics", "Gravity", 0, false)
	require.NoError(t, err)

	assert.Equal(t, content.Clean(testExtract), text)
	assert.NotContains(t, text, "[1]")
	assert.NotContains(t, text, "(see below)")
}

func TestFetchQueryEscalation(t *testing.T) {
	tests := []struct {
		name     string
		attempt  int
		broader  bool
		expected string
	}{
		{"first attempt", 0, false, "Gravity Physics"},
		{"second attempt", 1, false, "Gravity definition Physics"},
		{"third attempt", 2, false, "Gravity introduction"},
		{"later attempts stay broad", 5, false, "Gravity introduction"},
		{"broader overrides attempt", 1, true, "Gravity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wiki := &fakeWiki{pageIDs: []int{101}, extract: testExtract}
			source := newTestSource(t, wiki)

			_, err := source.Fetch(context.Background(), "Physics", "Gravity", tt.attempt, tt.broader)
			require.NoError(t, err)
			require.Len(t, wiki.searchQueries, 1)
			assert.Equal(t, tt.expected, wiki.searchQueries[0])
		})
	}
}

func TestFetchClampsResultIndex(t *testing.T) {
	wiki := &fakeWiki{pageIDs: []int{101, 202}, extract: testExtract}
	source := newTestSource(t, wiki)

	// Attempt 5 exceeds the hit count; the last result is reused.
	_, err := source.Fetch(context.Background(), "Physics", "Gravity", 5, false)
	require.NoError(t, err)
	require.Len(t, wiki.extractPages, 1)
	assert.Equal(t, "202", wiki.extractPages[0])
}

func TestFetchFallsBackToFiller(t *testing.T) {
	tests := []struct {
		name     string
		wiki     *fakeWiki
		expected string
	}{
		{
			name:     "search failure",
			wiki:     &fakeWiki{failSearch: true},
			expected: content.Filler("Physics", "Gravity", content.FillerFetchError),
		},
		{
			name:     "no search hits",
			wiki:     &fakeWiki{pageIDs: nil},
			expected: content.Filler("Physics", "Gravity", content.FillerNoResults),
		},
		{
			name:     "extract failure",
			wiki:     &fakeWiki{pageIDs: []int{101}, failExtract: true},
			expected: content.Filler("Physics", "Gravity", content.FillerFetchError),
		},
		{
			name:     "empty extract",
			wiki:     &fakeWiki{pageIDs: []int{101}, extract: ""},
			expected: content.Filler("Physics", "Gravity", content.FillerFetchError),
		},
		{
			name:     "extract too short after cleaning",
			wiki:     &fakeWiki{pageIDs: []int{101}, extract: "Gravity pulls."},
			expected: content.Filler("Physics", "Gravity", content.FillerTooShort),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newTestSource(t, tt.wiki)
			text, err := source.Fetch(context.Background(), "Physics", "Gravity", 0, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestFetchNeverErrorsOnUnreachableServer(t *testing.T) {
	source := NewSource("http://127.0.0.1:1", 500*time.Millisecond, zap.NewNop())

	text, err := source.Fetch(context.Background(), "Physics", "Gravity", 0, false)
	require.NoError(t, err)
	assert.Equal(t, content.Filler("Physics", "Gravity", content.FillerFetchError), text)
}

func TestFetchTruncatesLongExtracts(t *testing.T) {
	wiki := &fakeWiki{pageIDs: []int{101}, extract: strings.Repeat(testExtract+" ", 30)}
	source := newTestSource(t, wiki)

	text, err := source.Fetch(context.Background(), "Physics", "Gravity", 0, false)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), maxContentChars)
}
