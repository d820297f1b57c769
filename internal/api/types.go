package api

import (
	"encoding/json"
	"strings"
	"time"
)

// Sentiment is one of the three fixed classification categories.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Neutral  Sentiment = "neutral"
	Negative Sentiment = "negative"
)

// Sentiments lists the categories in their fixed display order.
var Sentiments = []Sentiment{Positive, Neutral, Negative}

// RawSample is one time-bucketed classification counter as returned by
// /api/sentiment/trends. Immutable once received.
type RawSample struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Hour      int    `json:"hour"` // 0-23
	Sentiment string `json:"sentiment"`
	Count     int    `json:"count"`
}

// Summary holds percentage shares plus the total post count for a window.
// The percentages are rounded server-side and need not sum to exactly 100.
type Summary struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
	Total    int     `json:"total"`
}

// Share returns the percentage for the given category.
func (s Summary) Share(c Sentiment) float64 {
	switch c {
	case Positive:
		return s.Positive
	case Neutral:
		return s.Neutral
	case Negative:
		return s.Negative
	}
	return 0
}

// PostSentiment carries the classifier output attached to a post.
type PostSentiment struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Post is one entry from /api/posts/top.
type Post struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Platform  string        `json:"platform"`
	Sentiment PostSentiment `json:"sentiment"`
	CreatedAt Timestamp     `json:"created_at"`
}

// Overview is the payload of /api/stats/overview.
type Overview struct {
	Overall     Summary            `json:"overall"`
	Platforms   map[string]Summary `json:"platforms"`
	LastUpdated string             `json:"last_updated"`
}

// Timestamp tolerates the backend's timezone-less ISO timestamps alongside
// RFC 3339.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.Format(time.RFC3339))
}
