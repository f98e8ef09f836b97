package testutil

// Sample backend payloads shared across tests. Kept as raw JSON so this
// package stays free of dependencies on the packages under test.

// SampleTenderJSON is a tender record as returned by /tenders/upload.
const SampleTenderJSON = `{
  "id": 7,
  "title": "Road Resurfacing NH-48",
  "status": "extracted",
  "extracted_data": {
    "title": "Road Resurfacing NH-48",
    "issuing_authority": "National Highways Authority",
    "deadline": "2026-10-15",
    "sector": "Infrastructure",
    "eligibility": {
      "min_turnover": 250,
      "years_experience": 5,
      "msme_preference": true,
      "bid_security": "Rs. 10L bank guarantee"
    }
  }
}`

// SampleUserJSON is an account record as returned by /auth/me.
const SampleUserJSON = `{"id": 3, "email": "a@b.com", "full_name": "A"}`

// SampleCompanyJSON is a company record as returned by POST /companies.
const SampleCompanyJSON = `{
  "id": 12,
  "name": "Acme Constructions",
  "annual_turnover": 320,
  "years_in_operation": 9,
  "certifications": ["ISO9001"],
  "available_documents": [],
  "past_projects": [],
  "sectors": []
}`

// SampleReportJSON is a compliance report as returned by /compliance/score.
const SampleReportJSON = `{
  "id": 4,
  "tender_id": 7,
  "company_id": 12,
  "score": 72,
  "verdict": "ELIGIBLE",
  "recommendations": ["Attach the bank guarantee upfront"],
  "gaps": [
    {"field": "net_worth", "severity": "Medium", "note": "No net worth on record"}
  ],
  "ai_analysis": "Strong position overall."
}`
