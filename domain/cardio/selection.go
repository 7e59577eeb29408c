package cardio

import "sort"

// ValueSet is a set of accepted categorical values. A nil or empty set accepts nothing.
type ValueSet map[string]struct{}

// NewValueSet builds a set from values
func NewValueSet(values ...string) ValueSet {
	set := make(ValueSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Contains reports membership
func (s ValueSet) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of accepted values
func (s ValueSet) Len() int {
	return len(s)
}

// Values returns the members in lexical order
func (s ValueSet) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FilterSelection holds the accepted values for each filterable field
type FilterSelection struct {
	AgeCategory    ValueSet
	Sex            ValueSet
	SmokingHistory ValueSet
}

// Matches reports whether rec passes all three field filters
func (s FilterSelection) Matches(rec Record) bool {
	return s.AgeCategory.Contains(rec.AgeCategory) &&
		s.Sex.Contains(rec.Sex) &&
		s.SmokingHistory.Contains(rec.SmokingHistory)
}

// FilteredView is the subset of a Dataset matching a FilterSelection
type FilteredView struct {
	Records []Record
}

// Len returns the number of rows in the view
func (v FilteredView) Len() int {
	return len(v.Records)
}
