package search

import (
	"strings"
	"unicode"
)

const maxVariants = 8

// Aliases maps common shorthand to the names roles and catalog skills
// are stored under. Keys and values are normalized lowercase.
var Aliases = map[string][]string{
	"golang":   {"go"},
	"js":       {"javascript"},
	"ts":       {"typescript"},
	"postgres": {"postgresql"},
	"k8s":      {"kubernetes"},
	"node":     {"node.js", "nodejs"},
	"frontend": {"front end", "ui"},
	"backend":  {"back end", "server"},
	"devops":   {"platform", "infrastructure"},
}

type Query struct {
	Original   string
	Normalized string
	Variants   []string
}

// Normalize lowercases the input and strips everything except letters,
// digits, dots and single spaces. Dots survive so "node.js" stays one
// term.
func Normalize(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '.':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Expand returns the normalized query plus alias variants: the full
// query's aliases, then per-token alias substitutions. The normalized
// query itself is always the first variant.
func Expand(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return nil
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" || len(out) >= maxVariants {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	for _, alias := range Aliases[normalized] {
		add(alias)
	}

	words := strings.Fields(normalized)
	for i, w := range words {
		for _, alias := range Aliases[w] {
			variant := make([]string, len(words))
			copy(variant, words)
			variant[i] = alias
			add(strings.Join(variant, " "))
		}
	}
	return out
}

func Parse(input string) Query {
	q := Query{Original: input, Normalized: Normalize(input)}
	q.Variants = Expand(q.Normalized)
	return q
}
