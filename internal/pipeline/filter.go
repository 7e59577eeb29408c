package pipeline

import "cardiodash/domain/cardio"

// FieldFilter is an optional restriction on one field. When Set is false every
// value present in the Dataset is accepted; when Set is true only Values are,
// and an empty Values accepts nothing.
type FieldFilter struct {
	Set    bool
	Values []string
}

// Only returns a filter accepting exactly values
func Only(values ...string) FieldFilter {
	return FieldFilter{Set: true, Values: values}
}

// SelectionRequest describes the user's filter choices before they are resolved
// against a Dataset
type SelectionRequest struct {
	AgeCategory    FieldFilter
	Sex            FieldFilter
	SmokingHistory FieldFilter
}

// Merge returns r with every Set field of override replacing the corresponding field
func (r SelectionRequest) Merge(override SelectionRequest) SelectionRequest {
	if override.AgeCategory.Set {
		r.AgeCategory = override.AgeCategory
	}
	if override.Sex.Set {
		r.Sex = override.Sex
	}
	if override.SmokingHistory.Set {
		r.SmokingHistory = override.SmokingHistory
	}
	return r
}

// Resolve turns the request into concrete value sets for ds
func (r SelectionRequest) Resolve(ds *cardio.Dataset) cardio.FilterSelection {
	resolve := func(f FieldFilter, field cardio.Field) cardio.ValueSet {
		if !f.Set {
			return cardio.NewValueSet(ds.Distinct(field)...)
		}
		return cardio.NewValueSet(f.Values...)
	}
	return cardio.FilterSelection{
		AgeCategory:    resolve(r.AgeCategory, cardio.FieldAgeCategory),
		Sex:            resolve(r.Sex, cardio.FieldSex),
		SmokingHistory: resolve(r.SmokingHistory, cardio.FieldSmokingHistory),
	}
}

// DefaultSelection accepts every distinct value present in ds
func DefaultSelection(ds *cardio.Dataset) cardio.FilterSelection {
	return SelectionRequest{}.Resolve(ds)
}

// Filter keeps the records whose age band, sex and smoking history are all selected.
// The returned view owns a fresh slice.
func Filter(ds *cardio.Dataset, sel cardio.FilterSelection) cardio.FilteredView {
	var kept []cardio.Record
	ds.Each(func(rec cardio.Record) {
		if sel.Matches(rec) {
			kept = append(kept, rec)
		}
	})
	return cardio.FilteredView{Records: kept}
}

// FilterOptions are the choices offered for each filterable field
type FilterOptions struct {
	AgeCategory    []string `json:"age_category"`
	Sex            []string `json:"sex"`
	SmokingHistory []string `json:"smoking_history"`
}

// AvailableOptions lists age bands in lexical order and the other fields in first-seen order
func AvailableOptions(ds *cardio.Dataset) FilterOptions {
	return FilterOptions{
		AgeCategory:    ds.SortedDistinct(cardio.FieldAgeCategory),
		Sex:            ds.Distinct(cardio.FieldSex),
		SmokingHistory: ds.Distinct(cardio.FieldSmokingHistory),
	}
}
