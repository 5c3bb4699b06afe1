// Package tfidf weights token lists by term frequency and smoothed inverse
// document frequency, and compares the resulting vectors.
package tfidf

import (
	"math"
	"sort"

	"github.com/okian/matchcore/internal/domain/text"
)

// IDF maps a term to its inverse document frequency.
type IDF map[string]float64

// Vector maps a term to its weight. Weights are never negative.
type Vector map[string]float64

// Tokenize returns the filtered TF-IDF terms of s.
func Tokenize(s string) []string {
	return text.Terms(s)
}

// BuildIDF computes idf[t] = ln((N+1)/(df[t]+1)) + 1 over corpus, where df
// counts documents containing t at least once. The result is always > 0.
func BuildIDF(corpus [][]string) IDF {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := float64(len(corpus))
	idf := make(IDF, len(df))
	for term, count := range df {
		idf[term] = math.Log((n+1)/(float64(count)+1)) + 1
	}
	return idf
}

// Vectorize weights raw term counts by idf. Terms missing from idf are left
// out of the vector.
func Vectorize(tokens []string, idf IDF) Vector {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	vec := make(Vector, len(tf))
	for term, count := range tf {
		w, ok := idf[term]
		if !ok || w == 0 {
			continue
		}
		vec[term] = float64(count) * w
	}
	return vec
}

// Norm returns the L2 norm of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.sumSquares())
}

// sumSquares adds in sorted term order so results do not depend on map
// iteration order.
func (v Vector) sumSquares() float64 {
	var sum float64
	for _, term := range v.terms() {
		sum += v[term] * v[term]
	}
	return sum
}

func (v Vector) terms() []string {
	keys := make([]string, 0, len(v))
	for term := range v {
		keys = append(keys, term)
	}
	sort.Strings(keys)
	return keys
}

// CosineSimilarity returns dot(a,b)/(|a||b|), or 0 when either norm is 0.
// The result is clamped to [0,1]; weights are non-negative so only float
// drift can leave that range.
func CosineSimilarity(a, b Vector) float64 {
	sa, sb := a.sumSquares(), b.sumSquares()
	if sa == 0 || sb == 0 {
		return 0
	}

	var dot float64
	for _, term := range a.terms() {
		dot += a[term] * b[term]
	}

	sim := dot / math.Sqrt(sa*sb)
	return math.Max(0, math.Min(1, sim))
}
