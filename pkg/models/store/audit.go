package store

// Audit is one report item as returned by the Columbo API. Pointer fields
// mark the parts the API sometimes omits.
type Audit struct {
	Name        string      `json:"name"`
	LastSweepAt string      `json:"lastSweepAt"`
	Summary     *Summary    `json:"summary,omitempty"`
	Screenshot  *Screenshot `json:"screenshot,omitempty"`
}

type Summary struct {
	Pages Pages `json:"pages"`
}

type Pages struct {
	Scanned float64 `json:"scanned"`
	Found   float64 `json:"found"`
}

type Screenshot struct {
	Directory string `json:"directory"`
	Filename  string `json:"filename"`
}
