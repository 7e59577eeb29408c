package tabular

// Config holds settings for reading the survey source file
type Config struct {
	FilePath  string `json:"file_path"`
	Sheet     string `json:"sheet"`
	Delimiter rune   `json:"delimiter"`
}

// DefaultConfig returns sensible defaults for a CSV export or a single-sheet workbook
func DefaultConfig() Config {
	return Config{
		Sheet:     "Sheet1",
		Delimiter: ',',
	}
}
