package pipeline

import (
	"time"

	"cardiodash/domain/cardio"
)

// Options tune the KPI definitions
type Options struct {
	// RecentCheckup is the Checkup value counted as a recent checkup
	RecentCheckup string
}

// DefaultOptions returns the survey's own definition of a recent checkup
func DefaultOptions() Options {
	return Options{RecentCheckup: cardio.DefaultRecentCheckup}
}

// DatasetInfo identifies the loaded Dataset
type DatasetInfo struct {
	LoadID   string    `json:"load_id"`
	Source   string    `json:"source"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}

// SelectionInfo echoes the resolved selection
type SelectionInfo struct {
	AgeCategory    []string `json:"age_category"`
	Sex            []string `json:"sex"`
	SmokingHistory []string `json:"smoking_history"`
}

// Summary is everything the presentation layer needs for one render
type Summary struct {
	Dataset      DatasetInfo         `json:"dataset"`
	Selection    SelectionInfo       `json:"selection"`
	KPIs         cardio.KPIs         `json:"kpis"`
	BMI          cardio.BMIProfile   `json:"bmi"`
	AgeCounts    cardio.SummaryTable `json:"age_counts"`
	AgeRates     cardio.RateTable    `json:"age_rates"`
	SexCounts    cardio.SummaryTable `json:"sex_counts"`
	SexRates     cardio.RateTable    `json:"sex_rates"`
	RiskFactors  []cardio.RateTable  `json:"risk_factors"`
	Associations []cardio.ChiSquare  `json:"associations"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// Summarize filters ds by sel and derives every table from the resulting view
func Summarize(ds *cardio.Dataset, sel cardio.FilterSelection, opts Options) *Summary {
	if opts.RecentCheckup == "" {
		opts.RecentCheckup = cardio.DefaultRecentCheckup
	}
	view := Filter(ds, sel)

	ageCounts, ageRates := AgeDistribution(view)
	sexCounts, sexRates := SexDistribution(view, ds)

	return &Summary{
		Dataset: DatasetInfo{
			LoadID:   ds.LoadID,
			Source:   ds.Source,
			Rows:     ds.Len(),
			LoadedAt: ds.LoadedAt,
		},
		Selection: SelectionInfo{
			AgeCategory:    sel.AgeCategory.Values(),
			Sex:            sel.Sex.Values(),
			SmokingHistory: sel.SmokingHistory.Values(),
		},
		KPIs:         ComputeKPIs(view, opts.RecentCheckup),
		BMI:          ComputeBMIProfile(view),
		AgeCounts:    ageCounts,
		AgeRates:     ageRates,
		SexCounts:    sexCounts,
		SexRates:     sexRates,
		RiskFactors:  RiskFactorRates(view, ds),
		Associations: RiskFactorAssociations(view, ds),
		GeneratedAt:  time.Now().UTC(),
	}
}
