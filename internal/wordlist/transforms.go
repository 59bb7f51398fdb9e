package wordlist

import (
	"strings"
	"unicode"
)

// MaxLeetVariants caps the leetspeak variants produced per word.
const MaxLeetVariants = 10

// maxLeetPositions bounds how many characters are substituted at once.
const maxLeetPositions = 3

// leetSubstitutions maps a lowercase letter to its replacements.
var leetSubstitutions = map[rune][]string{
	'a': {"@", "4"},
	'e': {"3"},
	'i': {"1", "!"},
	'o': {"0"},
	's': {"$", "5"},
	't': {"7"},
	'l': {"1"},
	'g': {"9"},
	'b': {"6"},
	'z': {"2"},
}

// Affixes combined with every word when prefixes/suffixes are enabled.
var (
	CommonPrefixes = []string{"", "my", "the", "super", "best", "cool", "new"}
	CommonSuffixes = []string{"", "!", "!!", "123", "1", "01", "x", "er", "est"}
)

// affixComboLimit bounds the prefix and suffix lists for combined affixes.
const affixComboLimit = 3

// CaseVariations returns the lowercase, uppercase and capitalized forms of
// word, plus an alternating-case form for words longer than four characters.
func CaseVariations(word string) []string {
	lower := strings.ToLower(word)
	variations := []string{lower, strings.ToUpper(word), capitalize(word)}

	r := []rune(lower)
	if len(r) > 4 {
		for i := 0; i < len(r); i += 2 {
			r[i] = unicode.ToUpper(r[i])
		}
		variations = append(variations, string(r))
	}
	return variations
}

func capitalize(word string) string {
	r := []rune(strings.ToLower(word))
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

type leetPosition struct {
	subs  []string
	index int
}

// Leetspeak returns up to MaxLeetVariants substitutions of word. It
// substitutes 1..3 positions at a time, enumerating positions left to right
// and replacements in table order. A word without substitutable letters
// yields itself.
func Leetspeak(word string) []string {
	chars := []rune(strings.ToLower(word))

	var positions []leetPosition
	for i, c := range chars {
		if subs, ok := leetSubstitutions[c]; ok {
			positions = append(positions, leetPosition{index: i, subs: subs})
		}
	}
	if len(positions) == 0 {
		return []string{word}
	}

	variants := make([]string, 0, MaxLeetVariants)
	seen := make(map[string]struct{}, MaxLeetVariants)
	emit := func(v string) bool {
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			variants = append(variants, v)
		}
		return len(variants) >= MaxLeetVariants
	}

	limit := min(maxLeetPositions, len(positions))
	for k := 1; k <= limit; k++ {
		for _, combo := range combinations(len(positions), k) {
			if substituteAll(chars, positions, combo, emit) {
				return variants
			}
		}
	}
	return variants
}

// substituteAll emits every replacement product for the chosen positions and
// reports whether emit asked to stop.
func substituteAll(chars []rune, positions []leetPosition, combo []int, emit func(string) bool) bool {
	choice := make([]int, len(combo))
	for {
		var b strings.Builder
		replaced := make(map[int]string, len(combo))
		for i, p := range combo {
			pos := positions[p]
			replaced[pos.index] = pos.subs[choice[i]]
		}
		for i, c := range chars {
			if sub, ok := replaced[i]; ok {
				b.WriteString(sub)
			} else {
				b.WriteRune(c)
			}
		}
		if emit(b.String()) {
			return true
		}

		// Advance the odometer, rightmost position fastest.
		i := len(choice) - 1
		for ; i >= 0; i-- {
			choice[i]++
			if choice[i] < len(positions[combo[i]].subs) {
				break
			}
			choice[i] = 0
		}
		if i < 0 {
			return false
		}
	}
}

// combinations returns all k-element index subsets of 0..n-1 in
// lexicographic order.
func combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}

	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// AffixVariations returns word with each non-empty prefix, each non-empty
// suffix, and the prefix+suffix combinations of the first three of each.
func AffixVariations(word string) []string {
	variations := make([]string, 0, len(CommonPrefixes)+len(CommonSuffixes)+affixComboLimit*affixComboLimit)

	for _, prefix := range CommonPrefixes {
		if prefix != "" {
			variations = append(variations, prefix+word)
		}
	}
	for _, suffix := range CommonSuffixes {
		if suffix != "" {
			variations = append(variations, word+suffix)
		}
	}
	for _, prefix := range CommonPrefixes[:affixComboLimit] {
		for _, suffix := range CommonSuffixes[:affixComboLimit] {
			if prefix != "" || suffix != "" {
				variations = append(variations, prefix+word+suffix)
			}
		}
	}
	return variations
}
