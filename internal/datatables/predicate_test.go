package datatables

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombinators(t *testing.T) {
	a := ContainsText(Attribute{Name: "a", Text: true}, "x")
	b := ContainsText(Attribute{Name: "b", Text: true}, "y")

	assert.True(t, IsMatchAll(AllOf()))
	assert.True(t, IsMatchAll(AnyOf()))
	assert.True(t, IsMatchAll(AllOf(nil, MatchAll{})))
	assert.True(t, IsMatchAll(AnyOf(a, MatchAll{})))

	assert.Equal(t, a, AllOf(MatchAll{}, a, nil))
	assert.Equal(t, b, AnyOf(nil, b))
	assert.Equal(t, Conjunction{Predicates: []Predicate{a, b}}, AllOf(a, b))
	assert.Equal(t, Disjunction{Predicates: []Predicate{a, b}}, AnyOf(a, b))
}

func TestContainsMatch(t *testing.T) {
	when := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		term  string
		want  bool
	}{
		{name: "substring", value: "Hello World", term: "o w", want: true},
		{name: "ignores case", value: "hello", term: "HEL", want: true},
		{name: "bytes", value: []byte("payload"), term: "load", want: true},
		{name: "number", value: int64(12345), term: "234", want: true},
		{name: "float", value: 2.5, term: "2.5", want: true},
		{name: "stringer", value: when, term: "2024-03-09", want: true},
		{name: "nil", value: nil, term: "", want: false},
		{name: "miss", value: "abc", term: "abd", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := ContainsText(Attribute{Name: "f"}, tc.term)
			assert.Equal(t, tc.want, p.Match(Row{"f": tc.value}))
		})
	}

	assert.False(t, ContainsText(Attribute{Name: "missing"}, "").Match(Row{"f": "x"}))
}

func TestCompareValues(t *testing.T) {
	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	assert.Equal(t, 0, compareValues(nil, nil))
	assert.Equal(t, -1, compareValues(nil, 1))
	assert.Equal(t, 1, compareValues("a", nil))
	assert.Equal(t, -1, compareValues(2, int64(10)))
	assert.Equal(t, 1, compareValues(3.5, 3))
	assert.Equal(t, -1, compareValues(early, late))
	assert.Equal(t, 1, compareValues("b", "a"))
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"": Asc, "asc": Asc, "ASC": Asc, " desc ": Desc, "Desc": Desc} {
		got, err := ParseDirection(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDirection("up")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "ASC", Asc.String())
	assert.Equal(t, "DESC", Desc.String())
}

func TestAttributes(t *testing.T) {
	attrs := TextAttributes("title")
	assert.Equal(t, 1, attrs.Len())

	attr, err := attrs.Lookup("title")
	assert.NoError(t, err)
	assert.True(t, attr.Text)

	_, err = Attributes{}.Lookup("title")
	assert.True(t, IsMappingError(err))

	for typ, want := range map[string]bool{
		"character varying": true,
		"VARCHAR(255)":      true,
		"longtext":          true,
		"TEXT":              true,
		"integer":           false,
		"timestamp":         false,
		"uuid":              false,
	} {
		assert.Equal(t, want, isTextType(typ), typ)
	}
}
