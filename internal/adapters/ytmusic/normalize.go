package ytmusic

import (
	"strings"
	"unicode"
)

// The upstream frequently lists the same recording several times: the album
// cut, a lyric video, a remaster. Dedup keys ignore those decorations.
var noiseTokens = map[string]struct{}{
	"audio":      {},
	"deluxe":     {},
	"edition":    {},
	"explicit":   {},
	"feat":       {},
	"featuring":  {},
	"ft":         {},
	"lyric":      {},
	"lyrics":     {},
	"official":   {},
	"remaster":   {},
	"remastered": {},
	"version":    {},
	"video":      {},
}

// dedupKey reduces title plus artist to a canonical form so near-identical
// catalog entries collapse into one.
func dedupKey(title, artist string) string {
	return normalizeInput(title) + "|" + normalizeInput(artist)
}

func normalizeInput(input string) string {
	if input == "" {
		return ""
	}

	lower := strings.ToLower(input)
	filtered := stripBracketedSegments(lower)
	tokens := strings.Fields(cleanSeparators(filtered))

	cleaned := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, drop := noiseTokens[token]; drop {
			continue
		}
		cleaned = append(cleaned, token)
	}

	return strings.Join(cleaned, " ")
}

func stripBracketedSegments(input string) string {
	var out strings.Builder
	depth := 0
	for _, r := range input {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				out.WriteRune(r)
			}
		}
	}

	return out.String()
}

func cleanSeparators(input string) string {
	var out strings.Builder
	lastSpace := false
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			out.WriteRune(' ')
			lastSpace = true
		}
	}

	return out.String()
}
