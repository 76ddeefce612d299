package search

import (
	"strconv"
	"strings"

	"kwscout/internal/domain"
)

// volumeLabels maps the provider's coarse volume tokens to human ranges.
// Unrecognized tokens pass through unchanged.
var volumeLabels = map[string]string{
	"MoreThanOneHundredThousand": "100,000+",
	"MoreThanTenThousand":        "10,000+",
	"MoreThanOneThousand":        "1,000+",
	"MoreThanOneHundred":         "100+",
	"LessThanOneHundred":         "<100",
}

// FormatVolume renders a volume metric: exact values with thousands
// separators, coarse labels through the range mapping.
func FormatVolume(v domain.Volume) string {
	if v.Exacted {
		return groupThousands(v.Exact)
	}
	if human, ok := volumeLabels[v.Label]; ok {
		return human
	}
	return v.Label
}

// FormatDifficulty title-cases a difficulty label ("EASY" -> "Easy").
// The Unknown sentinel passes through unchanged.
func FormatDifficulty(label string) string {
	if label == "" || label == domain.UnknownLabel {
		return domain.UnknownLabel
	}
	return strings.ToUpper(label[:1]) + strings.ToLower(label[1:])
}

// groupThousands formats n with comma separators (1234567 -> "1,234,567")
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
