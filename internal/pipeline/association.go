package pipeline

import (
	"math"

	"cardiodash/domain/cardio"

	"gonum.org/v1/gonum/stat/distuv"
)

// Association runs a chi-square test of independence between field and heart disease
// over the values of domain that occur in view. The result is not Valid when fewer than
// two values occur or when every record shares one outcome.
func Association(view cardio.FilteredView, field cardio.Field, domain []string) cardio.ChiSquare {
	result := cardio.ChiSquare{Field: field}

	groups := tallyBy(view, field, domain)
	var rows []*tally
	n, positives := 0, 0
	for _, key := range uniq(domain) {
		g := groups[key]
		if g.count == 0 {
			continue
		}
		rows = append(rows, g)
		n += g.count
		positives += g.positive
	}
	negatives := n - positives
	if len(rows) < 2 || positives == 0 || negatives == 0 {
		return result
	}

	statistic := 0.0
	for _, g := range rows {
		expectedYes := float64(g.count) * float64(positives) / float64(n)
		expectedNo := float64(g.count) * float64(negatives) / float64(n)
		dYes := float64(g.positive) - expectedYes
		dNo := float64(g.count-g.positive) - expectedNo
		statistic += dYes*dYes/expectedYes + dNo*dNo/expectedNo
	}

	dof := len(rows) - 1
	result.Valid = true
	result.Statistic = statistic
	result.DoF = dof
	result.PValue = distuv.ChiSquared{K: float64(dof)}.Survival(statistic)
	// outcome has two levels, so min(r-1, c-1) is 1
	result.CramersV = math.Sqrt(statistic / float64(n))
	return result
}

// RiskFactorAssociations tests every risk factor against heart disease
func RiskFactorAssociations(view cardio.FilteredView, ds *cardio.Dataset) []cardio.ChiSquare {
	out := make([]cardio.ChiSquare, 0, len(cardio.RiskFactors))
	for _, field := range cardio.RiskFactors {
		out = append(out, Association(view, field, ds.SortedDistinct(field)))
	}
	return out
}
