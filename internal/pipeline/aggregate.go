package pipeline

import "cardiodash/domain/cardio"

type tally struct {
	count    int
	positive int
}

// tallyBy groups view by field. Values outside domain are dropped.
func tallyBy(view cardio.FilteredView, field cardio.Field, domain []string) map[string]*tally {
	groups := make(map[string]*tally, len(domain))
	for _, key := range domain {
		groups[key] = &tally{}
	}
	for _, rec := range view.Records {
		g, ok := groups[rec.Value(field)]
		if !ok {
			continue
		}
		g.count++
		if rec.HasHeartDisease() {
			g.positive++
		}
	}
	return groups
}

// Count returns one entry per domain value, in domain order, zero-filled
func Count(view cardio.FilteredView, field cardio.Field, domain []string) cardio.SummaryTable {
	groups := tallyBy(view, field, domain)
	table := cardio.SummaryTable{Field: field, Entries: make([]cardio.SummaryEntry, 0, len(domain))}
	for _, key := range uniq(domain) {
		table.Entries = append(table.Entries, cardio.SummaryEntry{Key: key, Count: groups[key].count})
	}
	return table
}

// Rate returns the heart disease percentage per domain value. Empty groups rate 0.
func Rate(view cardio.FilteredView, field cardio.Field, domain []string) cardio.RateTable {
	groups := tallyBy(view, field, domain)
	table := cardio.RateTable{Field: field, Label: field.Label(), Entries: make([]cardio.RateEntry, 0, len(domain))}
	for _, key := range uniq(domain) {
		g := groups[key]
		table.Entries = append(table.Entries, cardio.RateEntry{
			Key:      key,
			Count:    g.count,
			Positive: g.positive,
			Rate:     percent(g.positive, g.count),
		})
	}
	return table
}

// AgeDistribution counts and rates view over the 13 fixed age bands
func AgeDistribution(view cardio.FilteredView) (cardio.SummaryTable, cardio.RateTable) {
	return Count(view, cardio.FieldAgeCategory, cardio.AgeBands), Rate(view, cardio.FieldAgeCategory, cardio.AgeBands)
}

// SexDistribution counts and rates view over every sex value present in ds
func SexDistribution(view cardio.FilteredView, ds *cardio.Dataset) (cardio.SummaryTable, cardio.RateTable) {
	domain := ds.Distinct(cardio.FieldSex)
	return Count(view, cardio.FieldSex, domain), Rate(view, cardio.FieldSex, domain)
}

// RiskFactorRates rates each risk factor independently over its values in ds
func RiskFactorRates(view cardio.FilteredView, ds *cardio.Dataset) []cardio.RateTable {
	tables := make([]cardio.RateTable, 0, len(cardio.RiskFactors))
	for _, field := range cardio.RiskFactors {
		tables = append(tables, Rate(view, field, ds.SortedDistinct(field)))
	}
	return tables
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

func uniq(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
