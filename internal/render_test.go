package internal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func lipglossColor(code string) lipgloss.TerminalColor {
	return lipgloss.Color(code)
}

func TestScoreStyleTiers(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "42"},
		{70, "42"},
		{69, "214"},
		{50, "214"},
		{49, "196"},
		{0, "196"},
	}
	for _, tt := range tests {
		got := ScoreStyle(tt.score).GetForeground()
		if got != lipglossColor(tt.want) {
			t.Errorf("ScoreStyle(%d) foreground = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestVerdictStyle(t *testing.T) {
	tests := []struct {
		verdict string
		want    string
	}{
		{"ELIGIBLE", "42"},
		{"INELIGIBLE", "196"},
		{"LIKELY ELIGIBLE", "214"},
		{"CONDITIONALLY ELIGIBLE", "214"},
		{"BORDERLINE", "214"},
		{"likely eligible", "214"},
		{"", "42"},
	}
	for _, tt := range tests {
		got := VerdictStyle(tt.verdict).GetForeground()
		if got != lipglossColor(tt.want) {
			t.Errorf("VerdictStyle(%q) foreground = %v, want %v", tt.verdict, got, tt.want)
		}
	}
}

func TestSeverityStyleKeysOnFirstWord(t *testing.T) {
	tests := []struct {
		severity string
		want     string
	}{
		{"critical", "196"},
		{"High turnover shortfall", "196"},
		{"medium", "214"},
		{"Moderate gap", "214"},
		{"low", "240"},
		{"", "240"},
	}
	for _, tt := range tests {
		got := SeverityStyle(tt.severity).GetForeground()
		if got != lipglossColor(tt.want) {
			t.Errorf("SeverityStyle(%q) foreground = %v, want %v", tt.severity, got, tt.want)
		}
	}
}

func TestRenderTenderSummary_MissingFields(t *testing.T) {
	out := RenderTenderSummary(&Tender{ID: 3})

	if n := strings.Count(out, NotSpecified); n != 2 {
		t.Errorf("summary shows %d %q markers, want 2 (turnover, experience):\n%s", n, NotSpecified, out)
	}
	for _, label := range []string{"Title", "Authority", "Deadline", "Sector", "Min Turnover", "Min Experience", "MSME Preference", "Bid Security"} {
		if !strings.Contains(out, label) {
			t.Errorf("summary missing the %q row:\n%s", label, out)
		}
	}
}

func TestRenderTenderSummary_PrefersExtractedData(t *testing.T) {
	tender := &Tender{
		ID:    3,
		Title: "stale title",
		ExtractedData: &ExtractedData{
			Title: "Road Widening NH-48",
			Eligibility: Eligibility{
				MinTurnover:     120,
				YearsExperience: 5,
				MSMEPreference:  true,
			},
		},
	}
	out := RenderTenderSummary(tender)

	if !strings.Contains(out, "Road Widening NH-48") {
		t.Errorf("summary does not show the extracted title:\n%s", out)
	}
	if strings.Contains(out, "stale title") {
		t.Errorf("summary fell back past a populated extracted field:\n%s", out)
	}
	if !strings.Contains(out, "Rs. 120L") {
		t.Errorf("summary does not format the turnover in lakhs:\n%s", out)
	}
	if !strings.Contains(out, "5 years") {
		t.Errorf("summary does not show the experience requirement:\n%s", out)
	}
	if !strings.Contains(out, "Yes") {
		t.Errorf("summary does not show the MSME flag:\n%s", out)
	}
}

func TestRenderTenderList_Empty(t *testing.T) {
	out := RenderTenderList(nil)
	if !strings.Contains(out, "No tenders yet") {
		t.Errorf("empty list output = %q", out)
	}
	if !strings.Contains(out, "jbi upload") {
		t.Errorf("empty list output should point at the upload command: %q", out)
	}
}

func TestRenderTenderList_TruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("x", 80)
	out := RenderTenderList([]Tender{{ID: 1, Title: long, Status: "extracted"}})

	if strings.Contains(out, long) {
		t.Error("80-char title rendered untruncated")
	}
	if !strings.Contains(out, strings.Repeat("x", 47)+"...") {
		t.Errorf("truncated title missing ellipsis:\n%s", out)
	}
}

func TestRenderComplianceReport(t *testing.T) {
	report := &ComplianceReport{
		ID:              9,
		TenderID:        7,
		CompanyID:       12,
		Score:           72,
		Verdict:         "LIKELY ELIGIBLE",
		Recommendations: []string{"Attach the ISO9001 certificate"},
		Gaps: []Gap{
			{Field: "net_worth", Severity: "medium", Note: "below the stated floor"},
		},
		AIAnalysis: "Strong track record in the sector.",
	}
	out := RenderComplianceReport(report)

	for _, want := range []string{
		"LIKELY ELIGIBLE",
		"72/100",
		"Attach the ISO9001 certificate",
		"Gaps identified (1)",
		"net_worth",
		"below the stated floor",
		"Strong track record in the sector.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderComplianceReport_NoGaps(t *testing.T) {
	out := RenderComplianceReport(&ComplianceReport{Score: 95, Verdict: "ELIGIBLE"})
	if !strings.Contains(out, "No gaps found") {
		t.Errorf("gap-free report output = %q", out)
	}
	if !strings.Contains(out, "No analysis available.") {
		t.Errorf("report without analysis should say so:\n%s", out)
	}
}

func TestRenderCompanyForm_ShowsRemovalIndexes(t *testing.T) {
	form := NewCompanyForm()
	form.Name = "Acme Infra"
	_ = form.AddCertification("ISO9001")
	_ = form.AddCertification("ISO14001")

	out := RenderCompanyForm(form)
	if !strings.Contains(out, "[0] ISO9001") || !strings.Contains(out, "[1] ISO14001") {
		t.Errorf("tag indexes missing:\n%s", out)
	}
	if !strings.Contains(out, "(none)") {
		t.Errorf("empty lists should render (none):\n%s", out)
	}
}

func TestRenderChatMessage(t *testing.T) {
	user := RenderChatMessage(ChatExchange{Speaker: "user", Text: "is my company eligible?"})
	if !strings.Contains(user, "you>") || !strings.Contains(user, "is my company eligible?") {
		t.Errorf("user line = %q", user)
	}

	assistant := RenderChatMessage(ChatExchange{Speaker: "assistant", Text: "Yes, with conditions."})
	if !strings.Contains(assistant, "assistant>") {
		t.Errorf("assistant line = %q", assistant)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("firstNonEmpty = %q, want b", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty = %q, want empty", got)
	}
}
