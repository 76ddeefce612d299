package debounce

import "time"

// DefaultInterval is the quiet period between the last edit and the
// committed query
const DefaultInterval = 300 * time.Millisecond
