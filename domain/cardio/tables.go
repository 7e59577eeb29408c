package cardio

// SummaryEntry is the participant count for one categorical value
type SummaryEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// SummaryTable maps each value of Field, in domain order, to a count
type SummaryTable struct {
	Field   Field          `json:"field"`
	Entries []SummaryEntry `json:"entries"`
}

// Get returns the entry for key
func (t SummaryTable) Get(key string) (SummaryEntry, bool) {
	for _, e := range t.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return SummaryEntry{}, false
}

// Total sums the counts of all entries
func (t SummaryTable) Total() int {
	total := 0
	for _, e := range t.Entries {
		total += e.Count
	}
	return total
}

// RateEntry is the heart disease prevalence among records sharing one value
type RateEntry struct {
	Key      string  `json:"key"`
	Count    int     `json:"count"`
	Positive int     `json:"positive"`
	Rate     float64 `json:"rate"`
}

// RateTable maps each value of Field, in domain order, to a prevalence percentage
type RateTable struct {
	Field   Field       `json:"field"`
	Label   string      `json:"label"`
	Entries []RateEntry `json:"entries"`
}

// Get returns the entry for key
func (t RateTable) Get(key string) (RateEntry, bool) {
	for _, e := range t.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return RateEntry{}, false
}

// KPIs are the scalar headline metrics over a whole FilteredView.
// AverageBMI and MedianBMI are nil when the view is empty.
type KPIs struct {
	Total             int      `json:"total"`
	HeartDiseaseRate  float64  `json:"heart_disease_rate"`
	RecentCheckupRate float64  `json:"recent_checkup_rate"`
	AverageBMI        *float64 `json:"average_bmi"`
	MedianBMI         *float64 `json:"median_bmi"`
}

// BMIProfile is the five-number summary of BMI over a view
type BMIProfile struct {
	Available bool    `json:"available"`
	Min       float64 `json:"min"`
	Q1        float64 `json:"q1"`
	Median    float64 `json:"median"`
	Q3        float64 `json:"q3"`
	Max       float64 `json:"max"`
	StdDev    float64 `json:"std_dev"`
	Skewness  float64 `json:"skewness"`
	Outliers  int     `json:"outliers"`
}

// ChiSquare is a test of independence between a categorical field and heart disease
type ChiSquare struct {
	Field     Field   `json:"field"`
	Valid     bool    `json:"valid"`
	Statistic float64 `json:"statistic"`
	DoF       int     `json:"dof"`
	PValue    float64 `json:"p_value"`
	CramersV  float64 `json:"cramers_v"`
}
