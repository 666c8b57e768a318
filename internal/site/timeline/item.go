package timeline

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Categories a timeline item can be tagged with.
const (
	CategoryAll       = "all"
	CategoryWork      = "work"
	CategoryEducation = "education"
)

const periodLayout = "Jan 2006"

// Item is an experience as the Experience page holds it. It mirrors the
// content API record plus a category tag used for filtering.
type Item struct {
	ID          string     `json:"_id"`
	Position    string     `json:"position" validate:"required,notblank"`
	Company     string     `json:"company" validate:"required,notblank"`
	StartDate   time.Time  `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
}

// UnmarshalJSON accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func (i *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	var raw struct {
		plain
		StartDate *string `json:"startDate"`
		EndDate   *string `json:"endDate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	item := Item(raw.plain)
	item.StartDate = time.Time{}
	item.EndDate = nil

	if raw.StartDate != nil {
		start, err := parseDate(*raw.StartDate)
		if err != nil {
			return fmt.Errorf("startDate: %w", err)
		}
		item.StartDate = start
	}
	if raw.EndDate != nil {
		end, err := parseDate(*raw.EndDate)
		if err != nil {
			return fmt.Errorf("endDate: %w", err)
		}
		item.EndDate = &end
	}

	*i = item
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, s)
}

// Ongoing reports whether the item has no end date.
func (i Item) Ongoing() bool {
	return i.EndDate == nil
}

// Period renders the date range, e.g. "Oct 2021 - Present".
func (i Item) Period() string {
	end := "Present"
	if i.EndDate != nil {
		end = i.EndDate.Format(periodLayout)
	}
	return i.StartDate.Format(periodLayout) + " - " + end
}

// ParseCategory normalises a user supplied filter value. Unknown values select all.
func ParseCategory(s string) string {
	switch c := strings.ToLower(strings.TrimSpace(s)); c {
	case CategoryWork, CategoryEducation:
		return c
	default:
		return CategoryAll
	}
}

// Filter returns the items tagged with category, keeping their relative order.
// "all" and "" return the full list. It never fetches.
func Filter(items []Item, category string) []Item {
	if category == "" || category == CategoryAll {
		out := make([]Item, len(items))
		copy(out, items)
		return out
	}

	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
