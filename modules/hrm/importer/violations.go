package importer

import "sort"

// Violation is one row- and field-addressable defect. Row is 1-based
// against the original file; the header is row 1.
type Violation struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Collector accumulates violations instead of failing fast. It is not safe
// for concurrent use; parallel row validators each fill their own and the
// results are merged at the join point.
type Collector struct {
	violations []Violation
}

func (c *Collector) Add(row int, field, message string) {
	c.violations = append(c.violations, Violation{Row: row, Field: field, Message: message})
}

func (c *Collector) Merge(other *Collector) {
	c.violations = append(c.violations, other.violations...)
}

func (c *Collector) Empty() bool {
	return len(c.violations) == 0
}

func (c *Collector) Len() int {
	return len(c.violations)
}

// Sorted returns the violations ordered by row, then by column declaration
// order, so rejection reports are deterministic.
func (c *Collector) Sorted() []Violation {
	out := make([]Violation, len(c.violations))
	copy(out, c.violations)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return columnOrder[out[i].Field] < columnOrder[out[j].Field]
	})
	return out
}
