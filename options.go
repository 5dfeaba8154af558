package beadchart

// ExtractOptions holds configuration for pattern extraction.
type ExtractOptions struct {
	// Sheet selection for workbooks (1-indexed in the API, stored as-is).
	// Empty means all sheets.
	sheets []int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		sheets: nil,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{}
	if o.sheets != nil {
		newOpts.sheets = make([]int, len(o.sheets))
		copy(newOpts.sheets, o.sheets)
	}
	return newOpts
}
