package pipeline

import (
	"cardiodash/domain/cardio"
	"cardiodash/internal/profiling"

	"github.com/montanaflynn/stats"
)

// ComputeKPIs summarises the whole view. Rates over an empty view are 0 and the
// BMI figures are nil, since a zero BMI would read as a real measurement.
func ComputeKPIs(view cardio.FilteredView, recentCheckup string) cardio.KPIs {
	kpis := cardio.KPIs{Total: view.Len()}
	if view.Len() == 0 {
		return kpis
	}

	positive, recent := 0, 0
	for _, rec := range view.Records {
		if rec.HasHeartDisease() {
			positive++
		}
		if rec.Checkup == recentCheckup {
			recent++
		}
	}
	kpis.HeartDiseaseRate = percent(positive, view.Len())
	kpis.RecentCheckupRate = percent(recent, view.Len())

	bmi := bmiValues(view)
	if mean, err := stats.Mean(bmi); err == nil {
		kpis.AverageBMI = pointer(mean)
	}
	if median, err := stats.Median(bmi); err == nil {
		kpis.MedianBMI = pointer(median)
	}
	return kpis
}

// ComputeBMIProfile returns the five-number summary, population standard deviation
// and shape of BMI over the view
func ComputeBMIProfile(view cardio.FilteredView) cardio.BMIProfile {
	d, err := profiling.Describe(bmiValues(view))
	if err != nil {
		return cardio.BMIProfile{}
	}
	return cardio.BMIProfile{
		Available: true,
		Min:       d.Min,
		Q1:        d.Q1,
		Median:    d.Median,
		Q3:        d.Q3,
		Max:       d.Max,
		StdDev:    d.StdDev,
		Skewness:  d.Skewness,
		Outliers:  d.Outliers,
	}
}

func bmiValues(view cardio.FilteredView) stats.Float64Data {
	data := make(stats.Float64Data, len(view.Records))
	for i, rec := range view.Records {
		data[i] = rec.BMI
	}
	return data
}

func pointer[T any](v T) *T {
	return &v
}
