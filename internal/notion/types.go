package notion

// Property is one database property value in the shape the Notion API
// expects. Exactly one of the value fields is set; the rest stay nil so
// they are dropped from the JSON.
type Property struct {
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	Number   *float64   `json:"number,omitempty"`
	Date     *Date      `json:"date,omitempty"`
}

// RichText is the minimal rich text fragment: plain content, no
// annotations.
type RichText struct {
	Text Text `json:"text"`
}

// Text holds rich text content
type Text struct {
	Content string `json:"content"`
}

// Date is a Notion date value. End is only set for ranges.
type Date struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// Properties maps property names to values for a page create call
type Properties map[string]Property

// Icon is a page icon; only emoji icons are used here
type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// Page is a page returned from a database query. Only identity fields
// are mapped; property round-tripping is not needed.
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// TitleProperty builds a title value
func TitleProperty(content string) Property {
	return Property{Title: []RichText{{Text: Text{Content: content}}}}
}

// TextProperty builds a rich_text value
func TextProperty(content string) Property {
	return Property{RichText: []RichText{{Text: Text{Content: content}}}}
}

// NumberProperty builds a number value
func NumberProperty(n float64) Property {
	return Property{Number: &n}
}

// DateProperty builds a date value with only a start
func DateProperty(start string) Property {
	return Property{Date: &Date{Start: start}}
}

// DateRangeProperty builds a date value with a start and an end
func DateRangeProperty(start, end string) Property {
	d := &Date{Start: start}
	if end != "" {
		d.End = &end
	}
	return Property{Date: d}
}
