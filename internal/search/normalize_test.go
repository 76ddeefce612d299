package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kwscout/internal/domain"
	"kwscout/internal/provider"
)

func fptr(f float64) *float64 { return &f }

func TestNormalizeOrderAndFields(t *testing.T) {
	payload := &provider.Payload{
		AllIdeas: provider.IdeaGroup{Results: []provider.Idea{
			{Keyword: "x", SearchVolume: fptr(120), DifficultyLabel: "EASY"},
		}},
		QuestionIdeas: provider.IdeaGroup{Results: []provider.Idea{
			{Keyword: "y", VolumeLabel: "MoreThanTenThousand", DifficultyLabel: "Unknown"},
		}},
	}

	got := Normalize(payload)
	require.Len(t, got, 2)

	assert.Equal(t, "x", got[0].Term)
	assert.Equal(t, domain.ExactVolume(120), got[0].Volume)
	assert.Equal(t, "EASY", got[0].Difficulty)

	assert.Equal(t, "y", got[1].Term)
	assert.Equal(t, domain.LabelVolume("MoreThanTenThousand"), got[1].Volume)
	assert.Equal(t, "Unknown", got[1].Difficulty)

	// Rendered forms for the same payload
	assert.Equal(t, "10,000+", FormatVolume(got[1].Volume))
	assert.Equal(t, "Unknown", FormatDifficulty(got[1].Difficulty))
	assert.Equal(t, "Easy", FormatDifficulty(got[0].Difficulty))
}

func TestNormalizeGeneralIdeasComeFirst(t *testing.T) {
	payload := &provider.Payload{
		AllIdeas: provider.IdeaGroup{Results: []provider.Idea{
			{Keyword: "b"}, {Keyword: "a"},
		}},
		QuestionIdeas: provider.IdeaGroup{Results: []provider.Idea{
			{Keyword: "d"}, {Keyword: "c"},
		}},
	}

	got := Normalize(payload)
	terms := make([]string, len(got))
	for i, kw := range got {
		terms[i] = kw.Term
	}
	// Provider order within each group, no sorting
	assert.Equal(t, []string{"b", "a", "d", "c"}, terms)
}

func TestNormalizeVolumeFieldPriority(t *testing.T) {
	payload := &provider.Payload{
		AllIdeas: provider.IdeaGroup{Results: []provider.Idea{
			{Keyword: "k1", SearchVolume: fptr(1), Volume: fptr(2), AvgSearchVolume: fptr(3)},
			{Keyword: "k2", Volume: fptr(2), AvgSearchVolume: fptr(3)},
			{Keyword: "k3", AvgSearchVolume: fptr(3)},
		}},
	}

	got := Normalize(payload)
	require.Len(t, got, 3)
	assert.Equal(t, domain.ExactVolume(1), got[0].Volume)
	assert.Equal(t, domain.ExactVolume(2), got[1].Volume)
	assert.Equal(t, domain.ExactVolume(3), got[2].Volume)
}

func TestNormalizeZeroVolumeBeatsLabel(t *testing.T) {
	payload := &provider.Payload{
		AllIdeas: provider.IdeaGroup{Results: []provider.Idea{
			{Keyword: "rare", SearchVolume: fptr(0), VolumeLabel: "LessThanOneHundred"},
		}},
	}

	got := Normalize(payload)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ExactVolume(0), got[0].Volume)
}

func TestNormalizeMissingMetricsDefaultToUnknown(t *testing.T) {
	payload := &provider.Payload{
		AllIdeas: provider.IdeaGroup{Results: []provider.Idea{
			{Keyword: "bare"},
		}},
	}

	got := Normalize(payload)
	require.Len(t, got, 1)
	assert.Equal(t, domain.LabelVolume(domain.UnknownLabel), got[0].Volume)
	assert.Equal(t, domain.UnknownLabel, got[0].Difficulty)
}

func TestNormalizeSkipsItemsWithoutKeyword(t *testing.T) {
	payload := &provider.Payload{
		AllIdeas: provider.IdeaGroup{Results: []provider.Idea{
			{Keyword: "kept"},
			{SearchVolume: fptr(50)},
		}},
		QuestionIdeas: provider.IdeaGroup{Results: []provider.Idea{
			{DifficultyLabel: "HARD"},
			{Keyword: "also kept"},
		}},
	}

	got := Normalize(payload)
	require.Len(t, got, 2)
	assert.Equal(t, "kept", got[0].Term)
	assert.Equal(t, "also kept", got[1].Term)
}

func TestNormalizeNilAndEmpty(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Empty(t, Normalize(&provider.Payload{}))
}
