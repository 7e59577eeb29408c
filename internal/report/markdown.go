package report

import (
	"fmt"
	"strconv"
	"strings"

	"cardiodash/domain/cardio"
	"cardiodash/internal/pipeline"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// NotAvailable is printed in place of a metric that has no value for the current view
const NotAvailable = "n/a"

// Markdown renders the summary as a self-contained markdown document
func Markdown(s *pipeline.Summary) string {
	var b strings.Builder

	b.WriteString("# Cardiovascular Risk Dashboard\n\n")
	fmt.Fprintf(&b, "Source: `%s` (%d records, load %s)\n\n", s.Dataset.Source, s.Dataset.Rows, s.Dataset.LoadID)

	b.WriteString("## Filters\n\n")
	writeSelection(&b, "Age Category", s.Selection.AgeCategory)
	writeSelection(&b, "Sex", s.Selection.Sex)
	writeSelection(&b, "Smoking History", s.Selection.SmokingHistory)
	b.WriteString("\n")

	b.WriteString("## Key Metrics\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total Participants | %s |\n", FormatCount(s.KPIs.Total))
	fmt.Fprintf(&b, "| Heart Disease Prevalence | %.2f%% |\n", s.KPIs.HeartDiseaseRate)
	fmt.Fprintf(&b, "| Recent Checkup Rate | %.1f%% |\n", s.KPIs.RecentCheckupRate)
	fmt.Fprintf(&b, "| Average BMI | %s |\n", FormatBMI(s.KPIs.AverageBMI))
	fmt.Fprintf(&b, "| Median BMI | %s |\n\n", FormatBMI(s.KPIs.MedianBMI))

	b.WriteString("## BMI Distribution\n\n")
	if s.BMI.Available {
		b.WriteString("| Min | Q1 | Median | Q3 | Max | Std Dev | Skewness | Outliers |\n|---:|---:|---:|---:|---:|---:|---:|---:|\n")
		fmt.Fprintf(&b, "| %.1f | %.1f | %.1f | %.1f | %.1f | %.2f | %.2f | %s |\n\n",
			s.BMI.Min, s.BMI.Q1, s.BMI.Median, s.BMI.Q3, s.BMI.Max, s.BMI.StdDev, s.BMI.Skewness, FormatCount(s.BMI.Outliers))
	} else {
		b.WriteString("No BMI values in the current selection.\n\n")
	}

	b.WriteString("## Age Group Distribution & Heart Disease Risk\n\n")
	b.WriteString("| Age Group | Participants | Heart Disease % |\n|---|---:|---:|\n")
	for i, e := range s.AgeCounts.Entries {
		fmt.Fprintf(&b, "| %s | %s | %.1f |\n", e.Key, FormatCount(e.Count), s.AgeRates.Entries[i].Rate)
	}
	b.WriteString("\n")

	b.WriteString("## Sex Distribution & Heart Disease Prevalence\n\n")
	b.WriteString("| Sex | Participants | Heart Disease % |\n|---|---:|---:|\n")
	for i, e := range s.SexCounts.Entries {
		fmt.Fprintf(&b, "| %s | %s | %.1f |\n", e.Key, FormatCount(e.Count), s.SexRates.Entries[i].Rate)
	}
	b.WriteString("\n")

	b.WriteString("## Risk Factor Impact on Heart Disease\n\n")
	for i, table := range s.RiskFactors {
		fmt.Fprintf(&b, "### %s\n\n", table.Label)
		b.WriteString("| Value | Participants | Heart Disease % |\n|---|---:|---:|\n")
		for _, e := range table.Entries {
			fmt.Fprintf(&b, "| %s | %s | %.1f |\n", e.Key, FormatCount(e.Count), e.Rate)
		}
		if i < len(s.Associations) {
			b.WriteString("\n")
			b.WriteString(FormatAssociation(s.Associations[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "_Generated %s_\n", s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

func writeSelection(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(b, "- **%s:** none selected\n", label)
		return
	}
	fmt.Fprintf(b, "- **%s:** %s\n", label, strings.Join(values, ", "))
}

// HTML renders the markdown report to an HTML fragment
func HTML(s *pipeline.Summary) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return markdown.ToHTML([]byte(Markdown(s)), p, renderer)
}

// FormatCount prints n with thousands separators
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	digits := strconv.Itoa(n)
	var out strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// FormatBMI prints a BMI to one decimal, or NotAvailable
func FormatBMI(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", *v)
}

// FormatAssociation describes a chi-square result in one line
func FormatAssociation(c cardio.ChiSquare) string {
	if !c.Valid {
		return fmt.Sprintf("Association with heart disease: %s", NotAvailable)
	}
	return fmt.Sprintf("Association with heart disease: χ²=%.2f, df=%d, p=%.4g, Cramér's V=%.3f", c.Statistic, c.DoF, c.PValue, c.CramersV)
}
