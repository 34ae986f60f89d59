package pantry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
)

// ErrNoIngredients indicates that a run resolved an empty pantry after
// both the CLI arguments and the interactive prompt were exhausted.
var ErrNoIngredients = errors.New("no ingredients provided")

// Set holds normalized ingredient names with duplicates collapsed.
type Set map[string]struct{}

// Normalize canonicalizes an ingredient name so lookups are forgiving:
// lowercase, punctuation stripped, runs of whitespace collapsed to single
// spaces. Empty input yields the empty string.
func Normalize(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Parse turns raw input chunks (space or comma separated) into a
// normalized set. Empty pieces are discarded, duplicates collapse.
func Parse(chunks []string) Set {
	set := make(Set)
	for _, chunk := range chunks {
		for _, piece := range strings.Split(chunk, ",") {
			set.Add(piece)
		}
	}
	return set
}

// Add normalizes a name and inserts it unless it normalizes to nothing.
func (s Set) Add(name string) {
	if normalized := Normalize(name); normalized != "" {
		s[normalized] = struct{}{}
	}
}

// Has reports whether the normalized form of name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[Normalize(name)]
	return ok
}

// Len returns the number of items in the set.
func (s Set) Len() int {
	return len(s)
}

// Items returns the set contents sorted for stable output.
func (s Set) Items() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// Ensure prompts once for a comma separated ingredient line when the set
// is empty. End of input on the prompt leaves the set as it is, so callers
// decide how to handle an empty pantry. The reader and writer are
// injectable to keep the matching core testable.
func Ensure(set Set, in io.Reader, out io.Writer) Set {
	if set.Len() > 0 {
		return set
	}
	fmt.Fprint(out, "List the ingredients in your fridge (comma separated): ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return set
	}
	return Parse([]string{scanner.Text()})
}
