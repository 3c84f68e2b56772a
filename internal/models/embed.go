package models

// EmbedMatch is the data extracted from one recognized embed
type EmbedMatch struct {
	Provider string
	VideoID  string
	Title    string // YouTube only
}

// ConversionResult describes the outcome of converting a single file
type ConversionResult struct {
	Path         string
	OutputPath   string
	Modified     bool
	Replacements int
	Matches      []EmbedMatch
	DryRun       bool
	BackupPath   string
	Err          error
}

// Failed reports whether the file could not be read, converted or written
func (r ConversionResult) Failed() bool {
	return r.Err != nil
}

// BatchSummary aggregates the results of a directory run
type BatchSummary struct {
	Root            string
	FilesFound      int
	FilesModified   int
	FilesFailed     int
	EmbedsConverted int // best effort, per-file Modified is authoritative
	Results         []ConversionResult
}

// Add folds a file result into the summary
func (s *BatchSummary) Add(res ConversionResult) {
	s.Results = append(s.Results, res)
	if res.Failed() {
		s.FilesFailed++
		return
	}
	if res.Modified {
		s.FilesModified++
		s.EmbedsConverted += res.Replacements
	}
}

// EmbedInfo describes an iframe found by the scanner
type EmbedInfo struct {
	Provider   string
	VideoID    string
	Src        string
	Title      string
	Width      string
	Height     string
	Responsive bool // wrapped in a 56.25% padding container
}
