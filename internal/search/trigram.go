package search

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

const (
	minCoverage    = 0.4
	substringBonus = 0.5
	wordStartBonus = 0.25
)

// Match is an item that matched a query. Index points into the items the
// Matcher was built from.
type Match struct {
	Index int
	Score float64
}

type gramSet map[string]struct{}

// Matcher is a trigram index over items. Every query word must match.
type Matcher struct {
	texts    []string
	grams    []gramSet
	postings map[string][]int
}

// NewMatcher indexes items by their FilterValue.
func NewMatcher(items []Item) *Matcher {
	m := &Matcher{
		texts:    make([]string, len(items)),
		grams:    make([]gramSet, len(items)),
		postings: make(map[string][]int),
	}
	for i, item := range items {
		text := normalize(item.FilterValue())
		m.texts[i] = text
		m.grams[i] = trigrams(text)
		for g := range m.grams[i] {
			m.postings[g] = append(m.postings[g], i)
		}
	}
	return m
}

// Search returns the matches of query, best first. Equal scores keep item
// order. An empty query matches everything with a zero score.
func (m *Matcher) Search(query string) []Match {
	words := strings.Fields(normalize(query))
	if len(words) == 0 {
		all := make([]Match, len(m.texts))
		for i := range all {
			all[i] = Match{Index: i}
		}
		return all
	}

	wordGrams := make([]gramSet, len(words))
	for i, w := range words {
		wordGrams[i] = trigrams(w)
	}

	var matches []Match
	for _, i := range m.candidates(words, wordGrams) {
		if score := m.score(i, words, wordGrams); score > 0 {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}

// candidates narrows the search to items sharing a trigram with the first
// long word. Short words are checked by substring, so they cannot narrow.
func (m *Matcher) candidates(words []string, wordGrams []gramSet) []int {
	for i, w := range words {
		if len(w) <= 2 {
			continue
		}
		seen := make(map[int]struct{})
		for g := range wordGrams[i] {
			for _, idx := range m.postings[g] {
				seen[idx] = struct{}{}
			}
		}
		out := make([]int, 0, len(seen))
		for idx := range seen {
			out = append(out, idx)
		}
		slices.Sort(out)
		return out
	}
	all := make([]int, len(m.texts))
	for i := range all {
		all[i] = i
	}
	return all
}

// score averages the per-word scores of item i, or returns 0 when a word
// does not match.
func (m *Matcher) score(i int, words []string, wordGrams []gramSet) float64 {
	text := m.texts[i]
	total := 0.0
	for w, word := range words {
		var s float64
		if len(word) <= 2 {
			if !strings.Contains(text, word) {
				return 0
			}
			s = 1
		} else {
			s = coverage(wordGrams[w], m.grams[i])
			if s < minCoverage {
				return 0
			}
			if strings.Contains(text, word) {
				s += substringBonus
			}
		}
		if startsWord(text, word) {
			s += wordStartBonus
		}
		total += s
	}
	return total / float64(len(words))
}

// startsWord reports whether word appears at the start of a word of text.
func startsWord(text, word string) bool {
	return strings.HasPrefix(text, word) || strings.Contains(text, " "+word)
}

var punctuation = strings.NewReplacer(
	"\u2019", "'",
	"\u2018", "'",
	"\u00a0", " ",
	"\u2014", " ",
	"\u2013", " ",
)

// normalize lowercases, drops combining marks and folds the typographic
// quotes and dashes found in affirmation texts to their ASCII forms.
func normalize(s string) string {
	return strings.ToLower(RemoveDiacritics(punctuation.Replace(s)))
}

// trigrams returns the trigrams of s padded with two spaces on each side,
// so prefixes and suffixes get their own grams.
func trigrams(s string) gramSet {
	if s == "" {
		return nil
	}
	runes := []rune("  " + s + "  ")
	set := make(gramSet, len(runes))
	for i := 0; i+3 <= len(runes); i++ {
		g := string(runes[i : i+3])
		if strings.TrimSpace(g) != "" {
			set[g] = struct{}{}
		}
	}
	return set
}

// coverage is the share of query grams found in item: |q ∩ i| / |q|.
// Unlike Jaccard it does not punish short queries against long texts.
func coverage(query, item gramSet) float64 {
	if len(query) == 0 {
		return 0
	}
	hit := 0
	for g := range query {
		if _, ok := item[g]; ok {
			hit++
		}
	}
	return float64(hit) / float64(len(query))
}

// RemoveDiacritics drops combining marks, so a decomposed "café" matches
// "cafe".
func RemoveDiacritics(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)
}
