package cardio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetDistinctFirstSeenOrder(t *testing.T) {
	ds := NewDataset([]Record{
		{AgeCategory: "80+", Sex: "Male", SmokingHistory: "No"},
		{AgeCategory: "18-24", Sex: "Female", SmokingHistory: "Yes"},
		{AgeCategory: "80+", Sex: "Male", SmokingHistory: "No"},
	})

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"80+", "18-24"}, ds.Distinct(FieldAgeCategory))
	assert.Equal(t, []string{"18-24", "80+"}, ds.SortedDistinct(FieldAgeCategory))
	assert.Equal(t, []string{"Male", "Female"}, ds.Distinct(FieldSex))
	assert.Empty(t, ds.Distinct(FieldBMI))
}

func TestDatasetRecordsIsACopy(t *testing.T) {
	ds := NewDataset([]Record{{Sex: "Male"}})

	recs := ds.Records()
	recs[0].Sex = "Changed"

	assert.Equal(t, "Male", ds.Records()[0].Sex)
}

func TestRecordValue(t *testing.T) {
	rec := Record{
		AgeCategory: "18-24", Sex: "Female", SmokingHistory: "No", HeartDisease: "Yes",
		Checkup: "Within the past year", BMI: 30, Exercise: "Yes", Diabetes: "No",
		Arthritis: "No", Depression: "Yes",
	}

	assert.Equal(t, "18-24", rec.Value(FieldAgeCategory))
	assert.Equal(t, "Yes", rec.Value(FieldDepression))
	assert.Equal(t, "", rec.Value(FieldBMI))
	assert.True(t, rec.HasHeartDisease())
}

func TestFilterSelectionMatches(t *testing.T) {
	sel := FilterSelection{
		AgeCategory:    NewValueSet("18-24"),
		Sex:            NewValueSet("Male", "Female"),
		SmokingHistory: NewValueSet("No"),
	}

	assert.True(t, sel.Matches(Record{AgeCategory: "18-24", Sex: "Female", SmokingHistory: "No"}))
	assert.False(t, sel.Matches(Record{AgeCategory: "25-29", Sex: "Female", SmokingHistory: "No"}))
	assert.False(t, FilterSelection{}.Matches(Record{}))
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Smoking History", FieldSmokingHistory.Label())
	assert.Len(t, AgeBands, 13)
}
