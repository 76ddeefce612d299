package search

import (
	"log"

	"kwscout/internal/domain"
	"kwscout/internal/provider"
)

// Normalize flattens a raw provider payload into the keyword list shown in
// the panel. General suggestions come first, question suggestions after, each
// in provider order; no sorting, deduplication or ranking is applied.
//
// Items without a keyword field are skipped and counted. The provider is not
// supposed to send them, but an unnamed suggestion cannot be rendered or
// bookmarked, so dropping it beats showing an empty card.
func Normalize(payload *provider.Payload) []domain.Keyword {
	if payload == nil {
		return nil
	}

	raw := make([]provider.Idea, 0, len(payload.AllIdeas.Results)+len(payload.QuestionIdeas.Results))
	raw = append(raw, payload.AllIdeas.Results...)
	raw = append(raw, payload.QuestionIdeas.Results...)

	keywords := make([]domain.Keyword, 0, len(raw))
	skipped := 0
	for _, idea := range raw {
		if idea.Keyword == "" {
			skipped++
			continue
		}
		keywords = append(keywords, normalizeIdea(idea))
	}

	if skipped > 0 {
		log.Printf("Normalize: skipped %d item(s) without a keyword field", skipped)
	}
	return keywords
}

func normalizeIdea(idea provider.Idea) domain.Keyword {
	kw := domain.Keyword{Term: idea.Keyword}

	// Exact numeric volume wins over the coarse label; 0 is a valid exact
	// value, not a missing one.
	if n, ok := idea.ExactVolume(); ok {
		kw.Volume = domain.ExactVolume(n)
	} else if idea.VolumeLabel != "" {
		kw.Volume = domain.LabelVolume(idea.VolumeLabel)
	} else {
		kw.Volume = domain.LabelVolume(domain.UnknownLabel)
	}

	kw.Difficulty = idea.DifficultyLabel
	if kw.Difficulty == "" {
		kw.Difficulty = domain.UnknownLabel
	}
	return kw
}
