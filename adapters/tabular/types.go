package tabular

// RawTable is the untyped contents of a tabular file
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex maps each header to its position. Later duplicates win.
func (t *RawTable) ColumnIndex() map[string]int {
	index := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		index[h] = i
	}
	return index
}
