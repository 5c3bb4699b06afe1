// Package signals tags free text with canonical labels from fixed lexicons.
package signals

import (
	"sort"
	"strings"

	"github.com/okian/matchcore/internal/domain/model"
	"github.com/okian/matchcore/internal/domain/text"
)

// Entry is one canonical tag and its normalized aliases.
type Entry struct {
	Tag     string
	Aliases []string
}

// Lexicon maps canonical tags to aliases. Entries are kept sorted by tag so
// scanning order is stable.
type Lexicon struct {
	entries []Entry
}

// NewLexicon builds a Lexicon from a tag -> aliases mapping. Aliases are
// normalized once; aliases that normalize to "" are dropped. The tag itself
// is not an implicit alias.
func NewLexicon(m map[string][]string) Lexicon {
	tags := make([]string, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	entries := make([]Entry, 0, len(tags))
	for _, tag := range tags {
		aliases := make([]string, 0, len(m[tag]))
		for _, a := range m[tag] {
			if n := text.Normalize(a); n != "" {
				aliases = append(aliases, n)
			}
		}
		entries = append(entries, Entry{Tag: tag, Aliases: aliases})
	}
	return Lexicon{entries: entries}
}

// Entries returns a copy of the lexicon entries in scan order.
func (l Lexicon) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = Entry{Tag: e.Tag, Aliases: append([]string(nil), e.Aliases...)}
	}
	return out
}

// Len returns the number of tags.
func (l Lexicon) Len() int { return len(l.entries) }

// Tags returns the canonical tags in scan order.
func (l Lexicon) Tags() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Tag
	}
	return out
}

// Match returns the sorted tags with at least one alias occurring as a
// substring of the already normalized haystack.
func (l Lexicon) Match(normalized string) []string {
	tags := []string{}
	if normalized == "" {
		return tags
	}
	for _, e := range l.entries {
		for _, alias := range e.Aliases {
			if strings.Contains(normalized, alias) {
				tags = append(tags, e.Tag)
				break
			}
		}
	}
	return tags
}

// Extract tags raw text against a single lexicon.
func Extract(s string, l Lexicon) []string {
	return l.Match(text.Normalize(s))
}

// Extractor runs the three built-in lexicons.
type Extractor struct {
	capabilities Lexicon
	roles        Lexicon
	industries   Lexicon
}

// NewExtractor creates an extractor over the given lexicons.
func NewExtractor(capabilities, roles, industries Lexicon) *Extractor {
	return &Extractor{
		capabilities: capabilities,
		roles:        roles,
		industries:   industries,
	}
}

// ExtractAll tags s against every lexicon, normalizing s once.
func (x *Extractor) ExtractAll(s string) model.SignalSet {
	n := text.Normalize(s)
	return model.SignalSet{
		Capabilities: x.capabilities.Match(n),
		Roles:        x.roles.Match(n),
		Industries:   x.industries.Match(n),
	}
}

// Overlap counts the tags present in both sorted, duplicate-free slices.
func Overlap(a, b []string) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			n++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return n
}
