package transcriber

// Source records how a Transcript was produced.
type Source int

const (
	// SourceParsed means the model returned the expected JSON structure.
	SourceParsed Source = iota
	// SourceFallback means the response was not parseable and the raw text
	// was wrapped in a single zero-span segment. Degraded but usable.
	SourceFallback
)

// Segment is a contiguous, timestamped span of transcribed speech.
// start <= end is expected but not enforced; malformed model output is
// tolerated, not validated.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript holds the full transcription plus its timestamped segments,
// ordered by start time.
type Transcript struct {
	FullText string    `json:"full_text"`
	Segments []Segment `json:"segments"`
	Source   Source    `json:"-"`
}
