package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// Client wraps the JustBidIt backend API. Every method builds a request
// against the base URL, attaches the bearer token from the session store
// when one is present, and normalizes non-2xx responses into an *APIError.
// No explicit timeout is set; a request runs until completion, failure or
// context cancellation.
type Client struct {
	baseURL string
	http    *http.Client
	store   *Store
}

// NewClient creates a client against the given base URL, backed by the
// session store for the bearer token and identifier side effects.
func NewClient(baseURL string, store *Store) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		store:   store,
	}
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

// Register creates a new account. No session side effect; the caller logs
// in afterwards.
func (c *Client) Register(ctx context.Context, email, fullName, password string) (*User, error) {
	payload := map[string]string{
		"email":     email,
		"full_name": fullName,
		"password":  password,
	}
	var user User
	if err := c.postJSON(ctx, "/auth/register", "", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates, then fetches the current-user record. The token and
// user are stored only after both steps succeed, so a failed login leaves
// the session untouched.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	payload := map[string]string{"email": email, "password": password}
	var lr loginResponse
	if err := c.postJSON(ctx, "/auth/login", "", payload, &lr); err != nil {
		return nil, err
	}

	var user User
	if err := c.getJSON(ctx, "/auth/me", lr.AccessToken, &user); err != nil {
		return nil, err
	}

	if err := c.store.SetToken(lr.AccessToken); err != nil {
		return nil, err
	}
	if err := c.store.SetUser(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me fetches the current-user record. Read-only, no session side effect.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/auth/me", "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadTender posts a PDF as multipart field "file" and makes the returned
// tender the active one.
func (c *Client) UploadTender(ctx context.Context, path string) (*Tender, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tender file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read tender file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}

	var tender Tender
	if err := c.do(ctx, http.MethodPost, "/tenders/upload", &buf, mw.FormDataContentType(), "", &tender); err != nil {
		return nil, err
	}
	if err := c.store.SetTenderID(strconv.FormatInt(tender.ID, 10)); err != nil {
		return nil, err
	}
	return &tender, nil
}

// GetTender fetches one tender. Read-only, no session side effect.
func (c *Client) GetTender(ctx context.Context, id string) (*Tender, error) {
	var tender Tender
	if err := c.getJSON(ctx, "/tenders/"+id, "", &tender); err != nil {
		return nil, err
	}
	return &tender, nil
}

// ListTenders fetches the authenticated user's tender history.
func (c *Client) ListTenders(ctx context.Context) ([]Tender, error) {
	var tenders []Tender
	if err := c.getJSON(ctx, "/tenders", "", &tenders); err != nil {
		return nil, err
	}
	return tenders, nil
}

// SaveCompany creates or updates the company profile and makes the returned
// company the active one.
func (c *Client) SaveCompany(ctx context.Context, payload *Company) (*Company, error) {
	var company Company
	if err := c.postJSON(ctx, "/companies", "", payload, &company); err != nil {
		return nil, err
	}
	if err := c.store.SetCompanyID(strconv.FormatInt(company.ID, 10)); err != nil {
		return nil, err
	}
	return &company, nil
}

// GetCompany fetches one company profile. Read-only, no session side effect.
func (c *Client) GetCompany(ctx context.Context, id string) (*Company, error) {
	var company Company
	if err := c.getJSON(ctx, "/companies/"+id, "", &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// CheckCompliance scores the company against the tender's eligibility
// criteria.
func (c *Client) CheckCompliance(ctx context.Context, tenderID, companyID string) (*ComplianceReport, error) {
	payload := map[string]interface{}{
		"tender_id":  atoi(tenderID),
		"company_id": atoi(companyID),
	}
	var report ComplianceReport
	if err := c.postJSON(ctx, "/compliance/score", "", payload, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GenerateDraft asks the backend to compose a bid proposal. The response may
// carry the text under either "draft_text" or "draft".
func (c *Client) GenerateDraft(ctx context.Context, tenderID, companyID, additionalContext string) (string, error) {
	payload := map[string]interface{}{
		"tender_id":  atoi(tenderID),
		"company_id": atoi(companyID),
	}
	if additionalContext != "" {
		payload["additional_context"] = additionalContext
	}
	var resp struct {
		DraftText string `json:"draft_text"`
		Draft     string `json:"draft"`
	}
	if err := c.postJSON(ctx, "/copilot/generate-draft", "", payload, &resp); err != nil {
		return "", err
	}
	if resp.DraftText != "" {
		return resp.DraftText, nil
	}
	return resp.Draft, nil
}

// Ask sends one assistant question. The session id persisted by the first
// successful exchange is passed on every subsequent one so the backend can
// maintain multi-turn context; callers pass sessionID "" on the first turn.
func (c *Client) Ask(ctx context.Context, tenderID, question, sessionID string) (*AskResponse, error) {
	payload := map[string]interface{}{
		"tender_id": atoi(tenderID),
		"question":  question,
	}
	if sessionID != "" {
		payload["session_id"] = atoi(sessionID)
	}
	var resp AskResponse
	if err := c.postJSON(ctx, "/copilot/ask", "", payload, &resp); err != nil {
		return nil, err
	}
	if err := c.store.SetChatSessionID(strconv.FormatInt(resp.SessionID, 10)); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HealthCheck reports whether the backend is reachable. It is advisory
// only: any transport failure means unhealthy, never an error.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *Client) postJSON(ctx context.Context, path, token string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json", token, out)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, "", token, out)
}

// do performs one request. token overrides the store's token when set; this
// lets Login authenticate the /auth/me follow-up before anything is
// persisted.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token == "" && c.store != nil {
		token = c.store.Token
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	LogDebug("%s %s", method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError carrying the
// server's detail message, or a synthesized one naming the status code when
// the body is not a detail envelope.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("request failed (%d)", resp.StatusCode),
	}
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Detail != "" {
		apiErr.Detail = eb.Detail
	}
	return apiErr
}

func atoi(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
