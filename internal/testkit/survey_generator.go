package testkit

import (
	"encoding/csv"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"

	"cardiodash/domain/cardio"
)

// SurveyGeneratorConfig configures the synthetic survey generator
type SurveyGeneratorConfig struct {
	Participants     int     `json:"participants"`
	BaseHeartRisk    float64 `json:"base_heart_risk"`
	RecentCheckupPct float64 `json:"recent_checkup_pct"`
	Seed             int64   `json:"seed"`
}

// DefaultSurveyConfig returns sensible defaults for survey generation
func DefaultSurveyConfig() SurveyGeneratorConfig {
	return SurveyGeneratorConfig{
		Participants:     1000,
		BaseHeartRisk:    0.02,
		RecentCheckupPct: 0.78,
		Seed:             42,
	}
}

var (
	sexValues     = []string{"Female", "Male"}
	checkupValues = []string{"Within the past 2 years", "Within the past 5 years", "5 or more years ago", "Never"}
	yesNo         = []string{"Yes", "No"}
	diabetesExtra = []string{"No, pre-diabetes or borderline diabetes", "Yes, but female told only during pregnancy"}
)

// extra absolute heart disease risk when the factor is "Yes"
var factorRisk = []struct {
	field cardio.Field
	extra float64
}{
	{cardio.FieldSmokingHistory, 0.03},
	{cardio.FieldDiabetes, 0.05},
	{cardio.FieldArthritis, 0.02},
	{cardio.FieldDepression, 0.01},
}

// SurveyDataGenerator produces deterministic survey records whose heart disease
// risk grows with age and risk factors
type SurveyDataGenerator struct {
	config SurveyGeneratorConfig
	rng    *rand.Rand
}

// NewSurveyDataGenerator creates a new survey data generator
func NewSurveyDataGenerator(config SurveyGeneratorConfig) *SurveyDataGenerator {
	return &SurveyDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate returns config.Participants records
func (g *SurveyDataGenerator) Generate() []cardio.Record {
	records := make([]cardio.Record, 0, g.config.Participants)
	for i := 0; i < g.config.Participants; i++ {
		records = append(records, g.participant())
	}
	return records
}

func (g *SurveyDataGenerator) participant() cardio.Record {
	band := g.rng.Intn(len(cardio.AgeBands))
	rec := cardio.Record{
		AgeCategory:    cardio.AgeBands[band],
		Sex:            g.pick(sexValues),
		SmokingHistory: g.yesNo(0.4),
		Exercise:       g.yesNo(0.77),
		Diabetes:       g.yesNo(0.13),
		Arthritis:      g.yesNo(0.1 + 0.03*float64(band)),
		Depression:     g.yesNo(0.2),
	}
	if rec.Diabetes == "No" && g.rng.Float64() < 0.03 {
		rec.Diabetes = g.pick(diabetesExtra)
	}

	if g.rng.Float64() < g.config.RecentCheckupPct {
		rec.Checkup = cardio.DefaultRecentCheckup
	} else {
		rec.Checkup = g.pick(checkupValues)
	}

	bmi := 28.5 + g.rng.NormFloat64()*6.5
	if rec.Exercise == "No" {
		bmi += 1.5
	}
	rec.BMI = math.Round(math.Max(12, math.Min(bmi, 90))*100) / 100

	risk := g.config.BaseHeartRisk * (1 + 0.35*float64(band))
	for _, f := range factorRisk {
		if rec.Value(f.field) == "Yes" {
			risk += f.extra
		}
	}
	if rec.Sex == "Male" {
		risk *= 1.4
	}
	rec.HeartDisease = "No"
	if g.rng.Float64() < risk {
		rec.HeartDisease = cardio.HeartDiseaseYes
	}
	return rec
}

func (g *SurveyDataGenerator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func (g *SurveyDataGenerator) yesNo(pYes float64) string {
	if g.rng.Float64() < pYes {
		return yesNo[0]
	}
	return yesNo[1]
}

// WriteCSV writes records with the full required header
func WriteCSV(w io.Writer, records []cardio.Record) error {
	cw := csv.NewWriter(w)
	header := make([]string, len(cardio.RequiredFields))
	for i, f := range cardio.RequiredFields {
		header[i] = string(f)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		row := make([]string, len(cardio.RequiredFields))
		for i, f := range cardio.RequiredFields {
			if f == cardio.FieldBMI {
				row[i] = strconv.FormatFloat(rec.BMI, 'f', -1, 64)
				continue
			}
			row[i] = rec.Value(f)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes records to path
func WriteCSVFile(path string, records []cardio.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
