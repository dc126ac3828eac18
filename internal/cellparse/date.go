package cellparse

import "time"

// parseWithLayout parses cell using a time.Parse-compatible layout,
// falling back to RFC3339 full-date when layout is empty.
func parseWithLayout(layout, cell string) (time.Time, error) {
	if layout == "" {
		layout = "2006-01-02"
	}
	return time.Parse(layout, cell)
}
