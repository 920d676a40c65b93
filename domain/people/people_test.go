package people

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var roster = []string{"Matt Damon", "Kim Wexler", "Kanye West", "Barack Obama", "Hans Zimmer"}

func TestFilterByLength(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		length   int
		expected []string
	}{
		{
			name:     "Strictly greater, spaces counted",
			names:    []string{"Kim Li", "Matt Damon", "Barack Obama"},
			length:   10,
			expected: []string{"Barack Obama"},
		},
		{
			name:     "Zero threshold keeps every non empty name",
			names:    []string{"Kim", "Matt"},
			length:   0,
			expected: []string{"Kim", "Matt"},
		},
		{
			name:     "Original order preserved",
			names:    []string{"Hans Zimmer", "Al Bo", "Kanye West"},
			length:   5,
			expected: []string{"Hans Zimmer", "Kanye West"},
		},
		{
			name:     "Characters, not bytes",
			names:    []string{"Zoë Li", "Al Li"},
			length:   5,
			expected: []string{"Zoë Li"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FilterByLength(tt.names, tt.length))
		})
	}
}

func TestFilterByLength_Properties(t *testing.T) {
	req := require.New(t)
	for length := 0; length < 14; length++ {
		kept := FilterByLength(roster, length)
		for _, name := range kept {
			req.Greater(len([]rune(name)), length)
		}
		for _, name := range roster {
			if !slices.Contains(kept, name) {
				req.LessOrEqual(len([]rune(name)), length)
			}
		}
		req.Equal(kept, FilterByLength(kept, length), "filtering twice equals filtering once")
	}
}

func TestFilterByLength_Empty(t *testing.T) {
	require.Empty(t, FilterByLength(nil, 3))
	require.Empty(t, FilterByLength([]string{}, 3))
}

func TestEveryNPerson(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		n        int
		expected []string
	}{
		{
			name:     "Every second person starting at index 0",
			names:    []string{"Matt", "Kim", "Kanye", "Obama", "Hans"},
			n:        2,
			expected: []string{"Matt", "Kanye", "Hans"},
		},
		{
			name:     "Step of one keeps everybody",
			names:    []string{"Matt", "Kim"},
			n:        1,
			expected: []string{"Matt", "Kim"},
		},
		{
			name:     "Step larger than the list keeps the first person",
			names:    []string{"Matt", "Kim", "Kanye"},
			n:        10,
			expected: []string{"Matt"},
		},
		{
			name:     "Step of zero returns everybody",
			names:    []string{"Matt", "Kim", "Kanye"},
			n:        0,
			expected: []string{"Matt", "Kim", "Kanye"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, EveryNPerson(tt.names, tt.n))
		})
	}
}

func TestEveryNPerson_Length(t *testing.T) {
	req := require.New(t)
	for n := 1; n <= len(roster)+1; n++ {
		got := EveryNPerson(roster, n)
		req.Len(got, (len(roster)+n-1)/n)
		req.Equal(roster[0], got[0])
	}
	req.Empty(EveryNPerson(nil, 3))
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected []string
	}{
		{"Two famous people", []string{"Kanye West", "Barack Obama"}, []string{"KW", "BO"}},
		{"Case preserved", []string{"kanye west", "Matt damon"}, []string{"kw", "Md"}},
		{"Multibyte first letters", []string{"Élodie Ünal"}, []string{"ÉÜ"}},
		{"Only the first two segments count", []string{"Jean Paul Sartre"}, []string{"JP"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Initials(tt.names))
		})
	}
}

func TestInitials_MalformedName(t *testing.T) {
	require.Panics(t, func() { Initials([]string{"Kanye"}) })
	require.Panics(t, func() { Initials([]string{"Kanye  West"}) })
	require.Empty(t, Initials(nil))
}

func TestPeopleWithPosition(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"0: Kanye", "1: Barack"}, PeopleWithPosition([]string{"Kanye", "Barack"}))
	req.Equal([]string{"0: Matt Damon"}, PeopleWithPosition([]string{"Matt Damon"}))
	req.Empty(PeopleWithPosition(nil))

	got := PeopleWithPosition(roster)
	req.Len(got, len(roster))
	req.Equal("4: Hans Zimmer", got[4])
}

func TestSortByFirstName(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected []string
	}{
		{"Two names", []string{"Bob", "Alice"}, []string{"Alice", "Bob"}},
		{"Whole string compared", []string{"Kim Wexler", "Kim West", "Hans Zimmer"}, []string{"Hans Zimmer", "Kim West", "Kim Wexler"}},
		{"Uppercase before lowercase", []string{"bob", "Bob", "alice"}, []string{"Bob", "alice", "bob"}},
		{"Empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SortByFirstName(tt.names))
		})
	}
}

func TestSortByLastName(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected []string
	}{
		{"Already sorted", []string{"Barack Obama", "Kanye West"}, []string{"Barack Obama", "Kanye West"}},
		{"Reversed", []string{"Kanye West", "Barack Obama"}, []string{"Barack Obama", "Kanye West"}},
		{
			name:     "Whole roster",
			names:    roster,
			expected: []string{"Matt Damon", "Barack Obama", "Kanye West", "Kim Wexler", "Hans Zimmer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SortByLastName(tt.names))
		})
	}
}

func TestSortByLastName_SharedLastName(t *testing.T) {
	names := []string{"Kanye West", "Adam West", "Barack Obama"}
	got := SortByLastName(names)

	require.ElementsMatch(t, names, got)
	require.Equal(t, "Barack Obama", got[0])
}

func TestSortByLastName_MalformedName(t *testing.T) {
	require.Panics(t, func() { SortByLastName([]string{"Kanye West", "Obama"}) })
}

func TestSort_Idempotent(t *testing.T) {
	req := require.New(t)
	byFirst := SortByFirstName(roster)
	req.Equal(byFirst, SortByFirstName(byFirst))
	byLast := SortByLastName(roster)
	req.Equal(byLast, SortByLastName(byLast))
}

func TestCountTotalCharacters(t *testing.T) {
	req := require.New(t)
	req.Equal(7, CountTotalCharacters([]string{"Kim", "Matt"}))
	req.Equal(10, CountTotalCharacters([]string{"Matt Damon"}))
	req.Equal(3, CountTotalCharacters([]string{"Zoë"}))
	req.Equal(0, CountTotalCharacters(nil))
}

func TestEveryoneHasLetter(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		letter   string
		expected bool
	}{
		{"Everybody has it", []string{"Matt", "Kanye"}, "a", true},
		{"One is missing it", []string{"Matt", "Kim"}, "a", false},
		{"Case sensitive", []string{"Matt", "Kanye"}, "A", false},
		{"Substring needle", []string{"Anna", "Hannah"}, "nn", true},
		{"Vacuously true", nil, "a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, EveryoneHasLetter(tt.names, tt.letter))
		})
	}
}

func TestSomeoneHasLetter(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		letter   string
		expected bool
	}{
		{"One has it", []string{"Matt", "Kim"}, "a", true},
		{"Nobody has it", []string{"Bob", "Tom"}, "z", false},
		{"Case sensitive", []string{"Bob", "Tom"}, "b", true},
		{"Empty list", nil, "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SomeoneHasLetter(tt.names, tt.letter))
		})
	}
}

// Every function must leave its argument untouched
func TestNoMutation(t *testing.T) {
	req := require.New(t)
	names := []string{"Kanye West", "Barack Obama", "Adam West", "Matt Damon"}
	snapshot := slices.Clone(names)

	_ = FilterByLength(names, 9)
	_ = EveryNPerson(names, 2)
	_ = EveryNPerson(names, 0)
	_ = Initials(names)
	_ = PeopleWithPosition(names)
	_ = SortByFirstName(names)
	_ = SortByLastName(names)
	_ = CountTotalCharacters(names)
	_ = EveryoneHasLetter(names, "a")
	_ = SomeoneHasLetter(names, "z")

	req.Equal(snapshot, names)
}

func BenchmarkSortByLastName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SortByLastName(roster)
	}
}
