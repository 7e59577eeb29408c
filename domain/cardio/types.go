package cardio

import (
	"sort"
	"time"
)

// Field identifies a column of the survey dataset
type Field string

const (
	FieldAgeCategory    Field = "Age_Category"
	FieldSex            Field = "Sex"
	FieldSmokingHistory Field = "Smoking_History"
	FieldHeartDisease   Field = "Heart_Disease"
	FieldCheckup        Field = "Checkup"
	FieldBMI            Field = "BMI"
	FieldExercise       Field = "Exercise"
	FieldDiabetes       Field = "Diabetes"
	FieldArthritis      Field = "Arthritis"
	FieldDepression     Field = "Depression"
)

// RequiredFields lists every column the loader insists on
var RequiredFields = []Field{
	FieldAgeCategory,
	FieldSex,
	FieldSmokingHistory,
	FieldHeartDisease,
	FieldCheckup,
	FieldBMI,
	FieldExercise,
	FieldDiabetes,
	FieldArthritis,
	FieldDepression,
}

// RiskFactors are the fields charted against heart disease prevalence, in display order
var RiskFactors = []Field{
	FieldExercise,
	FieldSmokingHistory,
	FieldDiabetes,
	FieldArthritis,
	FieldDepression,
}

// AgeBands is the fixed ordinal order of Age_Category values
var AgeBands = []string{
	"18-24", "25-29", "30-34", "35-39", "40-44", "45-49", "50-54",
	"55-59", "60-64", "65-69", "70-74", "75-79", "80+",
}

const (
	HeartDiseaseYes      = "Yes"
	DefaultRecentCheckup = "Within the past year"
)

// Label returns the field name with underscores replaced for display
func (f Field) Label() string {
	b := []byte(f)
	for i := range b {
		if b[i] == '_' {
			b[i] = ' '
		}
	}
	return string(b)
}

// Record is one survey participant
type Record struct {
	AgeCategory    string  `json:"age_category"`
	Sex            string  `json:"sex"`
	SmokingHistory string  `json:"smoking_history"`
	HeartDisease   string  `json:"heart_disease"`
	Checkup        string  `json:"checkup"`
	BMI            float64 `json:"bmi"`
	Exercise       string  `json:"exercise"`
	Diabetes       string  `json:"diabetes"`
	Arthritis      string  `json:"arthritis"`
	Depression     string  `json:"depression"`
}

// Value returns the categorical value of field. BMI and unknown fields yield "".
func (r Record) Value(field Field) string {
	switch field {
	case FieldAgeCategory:
		return r.AgeCategory
	case FieldSex:
		return r.Sex
	case FieldSmokingHistory:
		return r.SmokingHistory
	case FieldHeartDisease:
		return r.HeartDisease
	case FieldCheckup:
		return r.Checkup
	case FieldExercise:
		return r.Exercise
	case FieldDiabetes:
		return r.Diabetes
	case FieldArthritis:
		return r.Arthritis
	case FieldDepression:
		return r.Depression
	default:
		return ""
	}
}

// HasHeartDisease reports whether the record is a positive outcome
func (r Record) HasHeartDisease() bool {
	return r.HeartDisease == HeartDiseaseYes
}

// Dataset is the immutable, in-memory survey table. It is never modified after construction.
type Dataset struct {
	records  []Record
	distinct map[Field][]string

	LoadID   string
	Source   string
	LoadedAt time.Time
}

// NewDataset takes ownership of records and indexes distinct values in first-seen order
func NewDataset(records []Record) *Dataset {
	ds := &Dataset{
		records:  records,
		distinct: make(map[Field][]string, len(RequiredFields)),
	}
	for _, field := range RequiredFields {
		if field == FieldBMI {
			continue
		}
		seen := make(map[string]bool)
		var values []string
		for _, rec := range records {
			v := rec.Value(field)
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
		ds.distinct[field] = values
	}
	return ds
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the record slice
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Each calls fn for every record in order without copying
func (d *Dataset) Each(fn func(Record)) {
	for _, rec := range d.records {
		fn(rec)
	}
}

// Distinct returns the distinct values of field in first-seen order
func (d *Dataset) Distinct(field Field) []string {
	values := d.distinct[field]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// SortedDistinct returns the distinct values of field in lexical order
func (d *Dataset) SortedDistinct(field Field) []string {
	out := d.Distinct(field)
	sort.Strings(out)
	return out
}
