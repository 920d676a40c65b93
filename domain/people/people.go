// Package people holds pure transformations over an ordered list of person names.
// A name is conventionally "First Last", both parts separated by a single space.
// Nothing here mutates its input, performs I/O or keeps state between calls.
package people

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const separator = " "

// FilterByLength keeps the names whose character count, spaces included,
// is strictly greater than length.
func FilterByLength(names []string, length int) []string {
	return lo.Filter(names, func(name string, _ int) bool {
		return utf8.RuneCountInString(name) > length
	})
}

// EveryNPerson returns the names found at indices 0, n, 2n...
// A step of zero means no skipping: the whole list is returned.
func EveryNPerson(names []string, n int) []string {
	if n == 0 {
		return slices.Clone(names)
	}
	return lo.Filter(names, func(_ string, index int) bool {
		return index%n == 0
	})
}

// Initials concatenates the first character of the first and second segments of each name.
// Every name must contain a space, otherwise it panics.
func Initials(names []string) []string {
	return lo.Map(names, func(name string, _ int) string {
		segments := strings.Split(name, separator)
		return firstChar(segments[0]) + firstChar(segments[1])
	})
}

// PeopleWithPosition prefixes each name with its zero-based index, e.g. "0: Kanye".
func PeopleWithPosition(names []string) []string {
	return lo.Map(names, func(name string, index int) string {
		return fmt.Sprintf("%d: %s", index, name)
	})
}

// SortByFirstName sorts a copy of names by the whole string, which in
// practice orders by first name then last name.
func SortByFirstName(names []string) []string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return sorted
}

// SortByLastName sorts a copy of names by the segment following the first space.
// The comparator never reports equality, so names sharing a last name
// come out in an unspecified order. Every name must contain a space.
func SortByLastName(names []string) []string {
	sorted := slices.Clone(names)
	slices.SortFunc(sorted, func(a, b string) int {
		if lastName(a) > lastName(b) {
			return 1
		}
		return -1
	})
	return sorted
}

// CountTotalCharacters sums the character count of every name, spaces included.
func CountTotalCharacters(names []string) int {
	return lo.SumBy(names, utf8.RuneCountInString)
}

// EveryoneHasLetter reports whether every name contains letter. Case-sensitive.
// An empty list is vacuously true.
func EveryoneHasLetter(names []string, letter string) bool {
	return lo.EveryBy(names, containing(letter))
}

// SomeoneHasLetter reports whether at least one name contains letter. Case-sensitive.
func SomeoneHasLetter(names []string, letter string) bool {
	return lo.SomeBy(names, containing(letter))
}

func containing(letter string) func(string) bool {
	return func(name string) bool {
		return strings.Contains(name, letter)
	}
}

func lastName(name string) string {
	return strings.Split(name, separator)[1]
}

// firstChar panics on an empty segment, same as a missing one.
func firstChar(segment string) string {
	return string([]rune(segment)[0])
}
