package record

// Kind identifies what kind of content a scan examined.
type Kind string

const (
	KindURL  Kind = "url"
	KindFile Kind = "file"
	KindJob  Kind = "job"
)

// Record is one audit history entry as returned by the history service.
// Records are decoded from the service response and never constructed
// or mutated client-side; the service's ordering is preserved.
type Record struct {
	Date    string `json:"date"`
	Kind    Kind   `json:"type"`
	Snippet string `json:"snippet,omitempty"`
	Score   int    `json:"score"`
	Verdict string `json:"verdict"`
}
