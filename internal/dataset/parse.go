package dataset

import (
	"math"
	"strconv"
	"strings"

	"cardiodash/adapters/tabular"
	"cardiodash/domain/cardio"
	"cardiodash/internal/errors"
)

// Parse types a raw table into a Dataset. Every required column must be present and
// every BMI cell must be a finite number; other columns are kept as-is.
func Parse(raw *tabular.RawTable) (*cardio.Dataset, error) {
	index := raw.ColumnIndex()

	var missing []string
	for _, field := range cardio.RequiredFields {
		if _, ok := index[string(field)]; !ok {
			missing = append(missing, string(field))
		}
	}
	if len(missing) > 0 {
		return nil, errors.DataFormat("missing required columns: %s", strings.Join(missing, ", "))
	}

	col := func(row []string, field cardio.Field) string {
		return row[index[string(field)]]
	}

	records := make([]cardio.Record, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		bmiText := col(row, cardio.FieldBMI)
		bmi, err := strconv.ParseFloat(bmiText, 64)
		if err != nil || math.IsNaN(bmi) || math.IsInf(bmi, 0) {
			return nil, errors.DataFormat("data row %d: BMI value %q is not a number", i+1, bmiText)
		}

		records = append(records, cardio.Record{
			AgeCategory:    col(row, cardio.FieldAgeCategory),
			Sex:            col(row, cardio.FieldSex),
			SmokingHistory: col(row, cardio.FieldSmokingHistory),
			HeartDisease:   col(row, cardio.FieldHeartDisease),
			Checkup:        col(row, cardio.FieldCheckup),
			BMI:            bmi,
			Exercise:       col(row, cardio.FieldExercise),
			Diabetes:       col(row, cardio.FieldDiabetes),
			Arthritis:      col(row, cardio.FieldArthritis),
			Depression:     col(row, cardio.FieldDepression),
		})
	}

	return cardio.NewDataset(records), nil
}
