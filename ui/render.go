package ui

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"opsdiag/domain/pattern"
	"opsdiag/models"
)

// RenderReportHTML builds the report fragment for one stored diagnosis. The
// body is assembled as markdown from the pattern catalog content and the
// stored cost figures, then rendered to HTML. Pagination, typography, and
// branding stay with the downstream document generator.
func RenderReportHTML(record *models.DiagnosisRecord, submission *models.Submission) ([]byte, error) {
	catalog := pattern.Default()

	var b strings.Builder
	fmt.Fprintf(&b, "# Operational Health Check\n\n")
	if submission.ClientName != "" {
		fmt.Fprintf(&b, "Prepared for: **%s**\n\n", submission.ClientName)
	}

	fmt.Fprintf(&b, "## Your Primary Bottleneck\n\n**%s**\n\n", record.PrimaryName)
	if p, ok := catalog.Get(record.PrimaryKey); ok {
		fmt.Fprintf(&b, "%s\n\n", p.Description)
		fmt.Fprintf(&b, "### Symptoms You're Experiencing\n\n")
		for _, symptom := range p.Symptoms {
			fmt.Fprintf(&b, "- %s\n", symptom)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## What This Is Costing You\n\n")
	if record.Track == "A" {
		fmt.Fprintf(&b, "This bottleneck is consuming approximately **%.1f-%.1f hours per week** of your time.\n\n",
			record.WasteHoursMin, record.WasteHoursMax)
		fmt.Fprintf(&b, "At your effective rate of **$%d/hour**, the conservative annual cost is **$%d - $%d**.\n\n",
			record.HourlyRate, record.AnnualCostLow, record.AnnualCostHigh)
		b.WriteString("This is your opportunity cost: what you could be earning doing strategic work instead of operational firefighting.\n\n")
	} else {
		fmt.Fprintf(&b, "Annual operational cost: **$%d - $%d**\n\n", record.AnnualCostLow, record.AnnualCostHigh)
		fmt.Fprintf(&b, "- Employee turnover: $%d (estimated from retention signals)\n", record.TurnoverCost)
		fmt.Fprintf(&b, "- Team capacity wasted: $%d\n", record.TeamIdleCost)
		fmt.Fprintf(&b, "- Revenue leakage: $%d\n", record.RevenueLeakage)
		fmt.Fprintf(&b, "- Growth blocked: $%d\n\n", record.GrowthBlocked)
		b.WriteString("Note: this is NOT calculated from your billable hours. These are real operational costs.\n\n")
	}

	fmt.Fprintf(&b, "## Why This Happens\n\n%s\n\n", catalog.Why(record.PrimaryKey))

	if record.SecondaryKey != nil {
		if p, ok := catalog.Get(*record.SecondaryKey); ok {
			fmt.Fprintf(&b, "## Secondary Constraint Detected\n\n**%s** — %s\n\n", p.Name, p.Description)
		}
	}

	fmt.Fprintf(&b, "## 3 Questions to Validate This Diagnosis\n\n")
	for i, q := range catalog.Questions(record.PrimaryKey) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(b.String()), p, renderer), nil
}
