package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single word-like unit of text.
type Token struct {
	// Surface is the token as written in the source.
	Surface string
	// Key is the lower-cased form used for lookups.
	Key string
	// Joined is true when the token touches '&' or '-', as the letters of
	// "R&D" and "C-level" do.
	Joined bool
}

// isTokenRune reports whether r may appear inside a token. The symbols keep
// names like c++, c# and node.js intact.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.'
}

// isApostrophe reports whether r is dropped without splitting the token ("team's" -> "teams").
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// Tokenize splits s into tokens. Tokens without any letter are dropped and
// trailing dots are trimmed.
func Tokenize(s string) []Token {
	var tokens []Token
	var current strings.Builder
	joined := false
	var prev rune

	flush := func() {
		if current.Len() == 0 {
			return
		}
		surface := trimToken(current.String())
		current.Reset()
		if surface == "" || !HasLetter(surface) {
			return
		}
		tokens = append(tokens, Token{Surface: surface, Key: strings.ToLower(surface), Joined: joined})
	}

	for _, r := range s {
		switch {
		case isApostrophe(r):
			continue
		case isTokenRune(r):
			if current.Len() == 0 {
				joined = isJoiner(prev)
			}
			current.WriteRune(r)
		default:
			if isJoiner(r) {
				joined = true
			}
			flush()
		}
		prev = r
	}
	flush()

	return tokens
}

func isJoiner(r rune) bool {
	return r == '&' || r == '-'
}

// Sentences splits s after each '.', '!', '?' or ';' that is followed by
// whitespace or the end of s. A dot inside a token ("node.js") does not split.
func Sentences(s string) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if r != '.' && r != '!' && r != '?' && r != ';' {
			continue
		}
		next := i + utf8.RuneLen(r)
		if next < len(s) {
			if after, _ := utf8.DecodeRuneInString(s[next:]); !unicode.IsSpace(after) {
				continue
			}
		}
		parts = append(parts, s[start:next])
		start = next
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// trimToken removes trailing dots and runs of leading dots ("...and").
// A single leading dot is kept for names like .net.
func trimToken(s string) string {
	s = strings.TrimRight(s, ".")
	if strings.HasPrefix(s, "..") {
		s = strings.TrimLeft(s, ".")
	}
	return s
}

// Stem strips common English plural suffixes from a lower-cased key so that
// "services" and "service" compare equal. Keys containing symbols and keys of
// three runes or fewer are returned unchanged.
func Stem(key string) string {
	if len([]rune(key)) <= 3 || strings.ContainsAny(key, ".+#") {
		return key
	}

	switch {
	case strings.HasSuffix(key, "ies") && len(key) > 4:
		return strings.TrimSuffix(key, "ies") + "y"
	case strings.HasSuffix(key, "sses"):
		return strings.TrimSuffix(key, "es")
	case strings.HasSuffix(key, "xes"), strings.HasSuffix(key, "ches"), strings.HasSuffix(key, "shes"):
		return strings.TrimSuffix(key, "es")
	case strings.HasSuffix(key, "ss"), strings.HasSuffix(key, "us"), strings.HasSuffix(key, "is"):
		return key
	case strings.HasSuffix(key, "s"):
		return strings.TrimSuffix(key, "s")
	}
	return key
}
