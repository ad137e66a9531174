package datatables

import (
	"fmt"
	"strings"
)

// Row is one entity returned by a Store, keyed by attribute name.
type Row = map[string]any

// Predicate is a boolean condition over entity attributes. Only the types in
// this package implement it; stores translate them into their native query
// language or evaluate them with Match.
type Predicate interface {
	Match(row Row) bool
	isPredicate()
}

// MatchAll imposes no restriction.
type MatchAll struct{}

func (MatchAll) Match(Row) bool { return true }
func (MatchAll) isPredicate()   {}

// Contains matches rows whose attribute value contains Term, ignoring case.
// Non-text attributes are matched on their textual rendering.
type Contains struct {
	Attribute Attribute
	Term      string
}

func (p Contains) Match(row Row) bool {
	v, ok := row[p.Attribute.Name]
	if !ok || v == nil {
		return false
	}
	return strings.Contains(strings.ToLower(textOf(v)), strings.ToLower(p.Term))
}

func (Contains) isPredicate() {}

// Conjunction matches when every member matches.
type Conjunction struct {
	Predicates []Predicate
}

func (p Conjunction) Match(row Row) bool {
	for _, sub := range p.Predicates {
		if !sub.Match(row) {
			return false
		}
	}
	return true
}

func (Conjunction) isPredicate() {}

// Disjunction matches when at least one member matches.
type Disjunction struct {
	Predicates []Predicate
}

func (p Disjunction) Match(row Row) bool {
	for _, sub := range p.Predicates {
		if sub.Match(row) {
			return true
		}
	}
	return false
}

func (Disjunction) isPredicate() {}

func ContainsText(attr Attribute, term string) Predicate {
	return Contains{Attribute: attr, Term: term}
}

// AllOf joins predicates with AND. MatchAll members and nils are dropped;
// with nothing left the result is MatchAll.
func AllOf(preds ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p == nil || IsMatchAll(p) {
			continue
		}
		kept = append(kept, p)
	}
	switch len(kept) {
	case 0:
		return MatchAll{}
	case 1:
		return kept[0]
	}
	return Conjunction{Predicates: kept}
}

// AnyOf joins predicates with OR. An empty group, or one containing
// MatchAll, imposes no restriction and yields MatchAll.
func AnyOf(preds ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p == nil {
			continue
		}
		if IsMatchAll(p) {
			return MatchAll{}
		}
		kept = append(kept, p)
	}
	switch len(kept) {
	case 0:
		return MatchAll{}
	case 1:
		return kept[0]
	}
	return Disjunction{Predicates: kept}
}

func IsMatchAll(p Predicate) bool {
	_, ok := p.(MatchAll)
	return ok
}

func textOf(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(v)
	}
}
