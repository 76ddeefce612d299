package domain

// UnknownLabel is the sentinel used when the provider sends neither an exact
// value nor a coarse label for a metric.
const UnknownLabel = "Unknown"

// Keyword represents one normalized keyword suggestion
type Keyword struct {
	Term       string
	Volume     Volume
	Difficulty string // coarse label, UnknownLabel when absent
}

// Volume holds a search-volume metric that may arrive either as an exact
// number or as a coarse provider label. Both representations are preserved;
// they are reconciled only at render time.
type Volume struct {
	Exact   int
	Label   string
	Exacted bool // true when Exact carries a provider-supplied number
}

// ExactVolume returns a Volume carrying an exact number
func ExactVolume(n int) Volume {
	return Volume{Exact: n, Exacted: true}
}

// LabelVolume returns a Volume carrying a coarse label
func LabelVolume(label string) Volume {
	return Volume{Label: label}
}

// SearchPhase identifies which of the mutually exclusive search states is active
type SearchPhase int

const (
	PhaseIdle SearchPhase = iota
	PhaseLoading
	PhaseError
	PhaseLoaded
)

// String returns a readable phase name for logging
func (p SearchPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// SearchState is the single source of truth for what the results panel shows.
// Exactly one phase is active at a time. Info carries the non-fatal
// "no results" message that coexists with an empty Loaded list.
type SearchState struct {
	Phase    SearchPhase
	Keywords []Keyword
	Message  string // error message, set only in PhaseError
	Info     string // informational message, may coexist with PhaseLoaded
}
