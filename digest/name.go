package digest

import (
	"strings"
	"unicode"
)

// Name particles that stay lowercase wherever they appear.
var particles = map[string]bool{
	"von": true,
	"van": true,
	"de":  true,
	"du":  true,
	"la":  true,
	"le":  true,
}

// FormatName normalizes competitor capitalization. Pairs joined with "/"
// are formatted independently and rejoined as "A / B". The function is
// idempotent: formatting an already formatted name is a no-op.
func FormatName(name string) string {
	if strings.Contains(name, "/") {
		parts := strings.Split(name, "/")
		for i, p := range parts {
			parts[i] = capitalizeName(strings.TrimSpace(p))
		}
		return strings.Join(parts, " / ")
	}
	return capitalizeName(name)
}

func capitalizeName(name string) string {
	tokens := strings.Fields(name)
	for i, tok := range tokens {
		switch {
		case particles[strings.ToLower(tok)]:
			tokens[i] = strings.ToLower(tok)
		case strings.Contains(tok, "-"):
			words := strings.Split(tok, "-")
			for j, w := range words {
				words[j] = capitalizeWord(w)
			}
			tokens[i] = strings.Join(words, "-")
		default:
			tokens[i] = capitalizeWord(tok)
		}
	}
	return strings.Join(tokens, " ")
}

func capitalizeWord(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
