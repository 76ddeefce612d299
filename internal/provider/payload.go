package provider

// Keyword API JSON structures. Numeric volume fields decode to pointers so a
// provider-supplied 0 is distinguishable from an absent field.

// Payload is the success response body: two independently shaped suggestion
// collections, general ideas first.
type Payload struct {
	AllIdeas      IdeaGroup `json:"allIdeas"`
	QuestionIdeas IdeaGroup `json:"questionIdeas"`
}

// IdeaGroup wraps one suggestion collection
type IdeaGroup struct {
	Results []Idea `json:"results"`
}

// Idea is one raw suggestion item
type Idea struct {
	Keyword         string   `json:"keyword"`
	SearchVolume    *float64 `json:"searchVolume"`
	Volume          *float64 `json:"volume"`
	AvgSearchVolume *float64 `json:"avgSearchVolume"`
	VolumeLabel     string   `json:"volumeLabel"`
	DifficultyLabel string   `json:"difficultyLabel"`
}

// ExactVolume returns the first present numeric volume field, in the
// provider's priority order. ok is false when none is present.
func (i Idea) ExactVolume() (int, bool) {
	for _, v := range []*float64{i.SearchVolume, i.Volume, i.AvgSearchVolume} {
		if v != nil {
			return int(*v), true
		}
	}
	return 0, false
}
