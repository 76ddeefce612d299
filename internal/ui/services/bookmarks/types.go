package bookmarks

// State holds the bookmarked terms. Client-local only; bookmarks do not
// survive the session.
type State struct {
	Terms map[string]bool
}
