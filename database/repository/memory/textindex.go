package memoryRepo

import (
	"strings"
	"unicode"

	"lexconnect/models"
)

// textIndex maps lowercase terms to the profiles containing them, with term frequency.
type textIndex struct {
	postings map[string]map[string]int
	terms    map[string][]string
}

func newTextIndex() *textIndex {
	return &textIndex{
		postings: make(map[string]map[string]int),
		terms:    make(map[string][]string),
	}
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// indexedText is the searchable text of a profile: city, state, specializations and languages.
func indexedText(p *models.LawyerProfile) []string {
	var out []string
	out = append(out, tokenize(p.Location.City)...)
	out = append(out, tokenize(p.Location.State)...)
	for _, s := range p.Specializations {
		out = append(out, tokenize(s)...)
	}
	for _, l := range p.Languages {
		out = append(out, tokenize(l)...)
	}
	return out
}

func (ix *textIndex) put(p *models.LawyerProfile) {
	ix.remove(p.ID)
	terms := indexedText(p)
	for _, t := range terms {
		docs, ok := ix.postings[t]
		if !ok {
			docs = make(map[string]int)
			ix.postings[t] = docs
		}
		docs[p.ID]++
	}
	ix.terms[p.ID] = terms
}

func (ix *textIndex) remove(id string) {
	for _, t := range ix.terms[id] {
		if docs, ok := ix.postings[t]; ok {
			delete(docs, id)
			if len(docs) == 0 {
				delete(ix.postings, t)
			}
		}
	}
	delete(ix.terms, id)
}

// search scores every profile that contains at least one query term.
func (ix *textIndex) search(query string) map[string]float64 {
	scores := make(map[string]float64)
	seen := make(map[string]bool)
	for _, t := range tokenize(query) {
		if seen[t] {
			continue
		}
		seen[t] = true
		for id, tf := range ix.postings[t] {
			scores[id] += float64(tf)
		}
	}
	return scores
}
