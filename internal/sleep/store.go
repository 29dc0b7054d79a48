package sleep

import (
	"context"

	"github.com/ogaietttiffal-sys/garmin-to-notion/internal/notion"
)

// NotionStore adapts the Notion client to the Store interface, mapping
// a Record onto the fixed property schema of the sleep database.
type NotionStore struct {
	client       *notion.Client
	databaseID   string
	dateProperty string
}

// NewNotionStore creates a store backed by one Notion database.
// dateProperty is the date-typed property used for equality lookups
// ("Long Date" in the stock schema).
func NewNotionStore(client *notion.Client, databaseID, dateProperty string) *NotionStore {
	return &NotionStore{
		client:       client,
		databaseID:   databaseID,
		dateProperty: dateProperty,
	}
}

// Exists reports whether any page matches the date exactly
func (s *NotionStore) Exists(ctx context.Context, date string) (bool, error) {
	page, err := s.client.QueryByDate(ctx, s.databaseID, s.dateProperty, date)
	if err != nil {
		return false, err
	}
	return page != nil, nil
}

// Create inserts one page for the record
func (s *NotionStore) Create(ctx context.Context, rec *Record) error {
	props := notion.Properties{
		"Date":      notion.TitleProperty(rec.Title),
		"Times":     notion.TextProperty(rec.Times),
		"Long Date": notion.DateProperty(rec.LongDate),

		"Total Sleep (h)": notion.NumberProperty(rec.TotalHours),
		"Light Sleep (h)": notion.NumberProperty(rec.LightHours),
		"Deep Sleep (h)":  notion.NumberProperty(rec.DeepHours),
		"REM Sleep (h)":   notion.NumberProperty(rec.RemHours),
		"Awake Time (h)":  notion.NumberProperty(rec.AwakeHours),

		"Total Sleep": notion.TextProperty(rec.TotalText),
		"Light Sleep": notion.TextProperty(rec.LightText),
		"Deep Sleep":  notion.TextProperty(rec.DeepText),
		"REM Sleep":   notion.TextProperty(rec.RemText),
		"Awake Time":  notion.TextProperty(rec.AwakeText),

		"Resting HR": notion.NumberProperty(float64(rec.RestingHR)),
	}

	// The date range needs a start; with the start timestamp absent the
	// property is omitted rather than sent as a null the API rejects.
	if rec.FullStart != "" {
		props["Full Date/Time"] = notion.DateRangeProperty(rec.FullStart, rec.FullEnd)
	}

	icon := &notion.Icon{Type: "emoji", Emoji: RecordIcon}
	_, err := s.client.CreatePage(ctx, s.databaseID, icon, props)
	return err
}
