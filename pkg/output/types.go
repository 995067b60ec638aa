// Package output provides count report formatting for rawlines.
package output

// Report is the complete count output for one run.
type Report struct {
	// Sources contains one count per input source, in processing order.
	Sources []SourceCount `json:"sources"`
}

// SourceCount is the executable line count for a single input source.
type SourceCount struct {
	// Name is the file path, or "-" for standard input.
	Name string `json:"name"`

	// Lines is the number of executable lines.
	Lines int `json:"lines"`
}

// Add appends a count for the named source.
func (r *Report) Add(name string, lines int) {
	r.Sources = append(r.Sources, SourceCount{Name: name, Lines: lines})
}

// Total returns the sum of all source counts.
func (r *Report) Total() int {
	total := 0
	for _, s := range r.Sources {
		total += s.Lines
	}
	return total
}
