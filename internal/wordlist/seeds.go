package wordlist

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinSeedLength is the shortest cleaned token kept as a seed.
const MinSeedLength = 3

// DefaultSeeds are used when no personal data or custom word survives cleaning.
var DefaultSeeds = []string{"password", "admin", "user", "login", "welcome"}

// nameFields are personal data keys whose values are split into name parts.
var nameFields = map[string]bool{
	"name":      true,
	"full_name": true,
}

// CleanInput lowercases text, folds diacritics and strips everything that is
// not an ASCII letter or digit. Results shorter than MinSeedLength are
// returned as "".
func CleanInput(text string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		strings.ToLower(strings.TrimSpace(text)),
	)
	if err != nil {
		folded = strings.ToLower(text)
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if len(cleaned) < MinSeedLength {
		return ""
	}
	return cleaned
}

// seedSet is the set of cleaned seed words.
type seedSet map[string]struct{}

func (s seedSet) add(word string) {
	if word != "" {
		s[word] = struct{}{}
	}
}

// addPersonalData adds every non-empty field value. Name fields also
// contribute each whitespace-separated part longer than two characters.
func (s seedSet) addPersonalData(personalData map[string]string) {
	for key, value := range personalData {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		s.add(CleanInput(value))

		if nameFields[key] {
			parts := strings.Fields(value)
			if len(parts) < 2 {
				continue
			}
			for _, part := range parts {
				if cleaned := CleanInput(part); len(cleaned) > 2 {
					s.add(cleaned)
				}
			}
		}
	}
}

func (s seedSet) addCustomWords(words []string) {
	for _, w := range words {
		s.add(CleanInput(w))
	}
}

// sorted returns the seeds in lexicographic order so that enumeration is
// stable across runs.
func (s seedSet) sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// BuildSeeds returns the sorted seed words for the given inputs, substituting
// DefaultSeeds when nothing usable was supplied.
func BuildSeeds(personalData map[string]string, customWords []string) []string {
	seeds := seedSet{}
	seeds.addPersonalData(personalData)
	seeds.addCustomWords(customWords)

	if len(seeds) == 0 {
		for _, w := range DefaultSeeds {
			seeds.add(w)
		}
	}
	return seeds.sorted()
}
