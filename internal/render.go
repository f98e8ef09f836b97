package internal

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// NotSpecified marks an eligibility field the extraction left empty. The
// summary always shows every field, it never omits one.
const NotSpecified = "Not specified"

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	greenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	goldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	redStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)
)

// ScoreStyle returns the tier style for a compliance score: >=70 green,
// >=50 gold, below red.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 70:
		return greenStyle
	case score >= 50:
		return goldStyle
	default:
		return redStyle
	}
}

// VerdictStyle maps a verdict string to its badge style. Anything naming
// INELIGIBLE is red; LIKELY, CONDITIONALLY and BORDERLINE verdicts are gold;
// everything else is treated as eligible.
func VerdictStyle(verdict string) lipgloss.Style {
	u := strings.ToUpper(verdict)
	switch {
	case strings.Contains(u, "INELIGIBLE"):
		return redStyle
	case strings.Contains(u, "LIKELY"), strings.Contains(u, "CONDITIONALLY"), strings.Contains(u, "BORDERLINE"):
		return goldStyle
	default:
		return greenStyle
	}
}

// SeverityStyle maps a gap severity to a style, keyed on the first word.
func SeverityStyle(severity string) lipgloss.Style {
	first := strings.ToLower(strings.Fields(severity + " ")[0])
	switch first {
	case "critical", "high":
		return redStyle
	case "medium", "moderate":
		return goldStyle
	default:
		return mutedStyle
	}
}

// RenderTenderSummary renders the extracted tender fields as a label/value
// table. Missing text fields render a dash; missing eligibility criteria
// render the explicit NotSpecified marker.
func RenderTenderSummary(t *Tender) string {
	info := t.ExtractedData
	if info == nil {
		info = &ExtractedData{}
	}

	title := firstNonEmpty(info.Title, t.Title, "-")
	minTurnover := NotSpecified
	if info.Eligibility.MinTurnover > 0 {
		minTurnover = fmt.Sprintf("Rs. %gL", info.Eligibility.MinTurnover)
	}
	minExperience := NotSpecified
	if info.Eligibility.YearsExperience > 0 {
		minExperience = fmt.Sprintf("%d years", info.Eligibility.YearsExperience)
	}
	msme := "No"
	if info.Eligibility.MSMEPreference {
		msme = "Yes"
	}

	rows := [][2]string{
		{"Title", title},
		{"Authority", firstNonEmpty(info.IssuingAuthority, t.IssuingAuthority, "-")},
		{"Deadline", firstNonEmpty(info.Deadline, t.Deadline, "-")},
		{"Sector", firstNonEmpty(info.Sector, t.Sector, "-")},
		{"Min Turnover", minTurnover},
		{"Min Experience", minExperience},
		{"MSME Preference", msme},
		{"Bid Security", firstNonEmpty(info.Eligibility.BidSecurity, "-")},
	}
	return renderInfoTable(rows)
}

// RenderTenderList renders the tender history, one selectable row per
// tender.
func RenderTenderList(tenders []Tender) string {
	if len(tenders) == 0 {
		return headingStyle.Render("No tenders yet") + "\n" +
			mutedStyle.Render("Upload your first tender with `jbi upload <file.pdf>`") + "\n"
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Found %d tender(s)", len(tenders))))
	b.WriteString("\n\n")

	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, labelStyle.Render("ID")+"\t"+labelStyle.Render("Title")+"\t"+labelStyle.Render("Authority")+"\t"+labelStyle.Render("Deadline")+"\t"+labelStyle.Render("Status")+"\t")
	for _, t := range tenders {
		title := firstNonEmpty(t.Title, "Untitled Tender")
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		status := t.Status
		if status == "extracted" {
			status = greenStyle.Render(status)
		} else if status != "" {
			status = redStyle.Render(status)
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			t.ID,
			valueStyle.Render(title),
			firstNonEmpty(t.IssuingAuthority, "Unknown authority"),
			firstNonEmpty(t.Deadline, "-"),
			status)
	}
	_ = w.Flush()
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Tip: `jbi tenders select <id>` makes a tender the active one"))
	b.WriteString("\n")
	return b.String()
}

// RenderComplianceReport renders everything below the score line: report
// details, recommendations, severity-tagged gaps and the free-text analysis.
func RenderComplianceReport(r *ComplianceReport) string {
	var b strings.Builder

	b.WriteString(VerdictStyle(r.Verdict).Render(firstNonEmpty(r.Verdict, "-")))
	b.WriteString("\n\n")

	b.WriteString(renderInfoTable([][2]string{
		{"Report ID", fmt.Sprintf("#%d", r.ID)},
		{"Tender ID", fmt.Sprintf("#%d", r.TenderID)},
		{"Company ID", fmt.Sprintf("#%d", r.CompanyID)},
		{"Score", fmt.Sprintf("%d/100", r.Score)},
	}))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Recommendations"))
	b.WriteString("\n")
	if len(r.Recommendations) == 0 {
		b.WriteString(mutedStyle.Render("No recommendations."))
		b.WriteString("\n")
	} else {
		for _, rec := range r.Recommendations {
			b.WriteString("  * " + rec + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(headingStyle.Render(fmt.Sprintf("Gaps identified (%d)", len(r.Gaps))))
	b.WriteString("\n")
	if len(r.Gaps) == 0 {
		b.WriteString(greenStyle.Render("No gaps found: fully eligible."))
		b.WriteString("\n")
	} else {
		for _, g := range r.Gaps {
			b.WriteString("  " + SeverityStyle(g.Severity).Render("["+g.Severity+"]") + " " + g.Field)
			if g.Note != "" {
				b.WriteString("\n      " + mutedStyle.Render(g.Note))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("AI strategic analysis"))
	b.WriteString("\n")
	b.WriteString(firstNonEmpty(r.AIAnalysis, "No analysis available."))
	b.WriteString("\n")
	return b.String()
}

// RenderCompanyForm renders the locally persisted profile, including the tag
// lists and past projects with their removal indexes.
func RenderCompanyForm(f *CompanyForm) string {
	var b strings.Builder
	b.WriteString(renderInfoTable([][2]string{
		{"Name", firstNonEmpty(f.Name, "-")},
		{"Annual Turnover", renderAmount(f.AnnualTurnover)},
		{"Years In Operation", renderCount(f.YearsInOperation)},
		{"Net Worth", renderAmount(f.NetWorth)},
		{"GST Number", firstNonEmpty(f.GSTNumber, "-")},
		{"PAN Number", firstNonEmpty(f.PANNumber, "-")},
		{"Registration Number", firstNonEmpty(f.RegistrationNumber, "-")},
		{"Udyam Number", firstNonEmpty(f.UdyamNumber, "-")},
		{"MSME Category", firstNonEmpty(f.MSMECategory, "-")},
	}))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Certifications"))
	b.WriteString("\n" + renderTags(f.Certifications) + "\n")
	b.WriteString(headingStyle.Render("Available documents"))
	b.WriteString("\n" + renderTags(f.AvailableDocuments) + "\n")

	b.WriteString(headingStyle.Render("Past projects"))
	b.WriteString("\n")
	if len(f.PastProjects) == 0 {
		b.WriteString(mutedStyle.Render("(none)"))
		b.WriteString("\n")
	} else {
		for i, p := range f.PastProjects {
			b.WriteString(fmt.Sprintf("  [%d] %s  %s  Rs.%gL  %d\n",
				i, valueStyle.Render(p.Name), labelStyle.Render(p.Client), p.Value, p.Year))
		}
	}
	return b.String()
}

// RenderChatMessage renders one transcript line.
func RenderChatMessage(exchange ChatExchange) string {
	label := "you"
	style := greenStyle
	if exchange.Speaker == "assistant" {
		label = "assistant"
		style = goldStyle
	}
	return style.Render(label+">") + " " + exchange.Text
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return mutedStyle.Render("(none)")
	}
	parts := make([]string, 0, len(tags))
	for i, tag := range tags {
		parts = append(parts, fmt.Sprintf("[%d] %s", i, tag))
	}
	return strings.Join(parts, "  ")
}

func renderInfoTable(rows [][2]string) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\t\n", labelStyle.Render(row[0]), valueStyle.Render(row[1]))
	}
	_ = w.Flush()
	return b.String()
}

func renderAmount(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("Rs. %gL", v)
}

func renderCount(v int) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
