package internal

// User is the authenticated account record returned by /auth/me.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// Eligibility holds the structured eligibility criteria extracted from a
// tender PDF. Zero values mean the criterion was not specified.
type Eligibility struct {
	MinTurnover     float64 `json:"min_turnover,omitempty"`
	YearsExperience int     `json:"years_experience,omitempty"`
	MSMEPreference  bool    `json:"msme_preference,omitempty"`
	BidSecurity     string  `json:"bid_security,omitempty"`
}

// ExtractedData is the AI-extracted summary attached to a tender.
type ExtractedData struct {
	Title            string      `json:"title,omitempty"`
	IssuingAuthority string      `json:"issuing_authority,omitempty"`
	Deadline         string      `json:"deadline,omitempty"`
	Sector           string      `json:"sector,omitempty"`
	Eligibility      Eligibility `json:"eligibility,omitempty"`
}

// Tender is a procurement document uploaded for analysis. The client never
// mutates a tender, it only re-fetches.
type Tender struct {
	ID               int64          `json:"id"`
	Title            string         `json:"title,omitempty"`
	IssuingAuthority string         `json:"issuing_authority,omitempty"`
	Deadline         string         `json:"deadline,omitempty"`
	Sector           string         `json:"sector,omitempty"`
	Status           string         `json:"status,omitempty"`
	ExtractedData    *ExtractedData `json:"extracted_data,omitempty"`
}

// PastProject is one row of the company's track record.
type PastProject struct {
	Name   string  `json:"name"`
	Client string  `json:"client"`
	Value  float64 `json:"value"`
	Year   int     `json:"year"`
}

// Company is the profile payload sent to POST /companies and the record the
// backend returns with an ID assigned.
type Company struct {
	ID                 int64         `json:"id,omitempty"`
	Name               string        `json:"name"`
	AnnualTurnover     float64       `json:"annual_turnover"`
	YearsInOperation   int           `json:"years_in_operation"`
	NetWorth           float64       `json:"net_worth"`
	GSTNumber          string        `json:"gst_number"`
	PANNumber          string        `json:"pan_number"`
	RegistrationNumber string        `json:"registration_number"`
	MSMECategory       string        `json:"msme_category"`
	Certifications     []string      `json:"certifications"`
	AvailableDocuments []string      `json:"available_documents"`
	PastProjects       []PastProject `json:"past_projects"`
	Sectors            []string      `json:"sectors"`
}

// Gap is one eligibility criterion the company fails or lacks evidence for.
type Gap struct {
	Field    string `json:"field"`
	Severity string `json:"severity"`
	Note     string `json:"note,omitempty"`
}

// ComplianceReport is the result of one compliance-check invocation.
// Re-running the check replaces the displayed report, it never merges.
type ComplianceReport struct {
	ID              int64    `json:"id"`
	TenderID        int64    `json:"tender_id"`
	CompanyID       int64    `json:"company_id"`
	Score           int      `json:"score"`
	Verdict         string   `json:"verdict"`
	Recommendations []string `json:"recommendations"`
	Gaps            []Gap    `json:"gaps"`
	AIAnalysis      string   `json:"ai_analysis,omitempty"`
}

// ChatExchange is one turn of the assistant conversation. The transcript
// lives only for the duration of a chat invocation.
type ChatExchange struct {
	Speaker string `json:"speaker"` // "user" or "assistant"
	Text    string `json:"text"`
}

// AskResponse is the answer envelope from POST /copilot/ask.
type AskResponse struct {
	Answer    string `json:"answer"`
	SessionID int64  `json:"session_id"`
}

// BidPackage bundles the locally cached artifacts for one tender. Exporters
// consume it.
type BidPackage struct {
	Tender *Tender           `json:"tender,omitempty" yaml:"tender,omitempty"`
	Report *ComplianceReport `json:"report,omitempty" yaml:"report,omitempty"`
	Draft  string            `json:"draft,omitempty" yaml:"draft,omitempty"`
}
