package internal

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ActivityCache is a local sqlite record of what the client has seen:
// snapshots of fetched tenders, the latest compliance report and the latest
// draft per tender. It makes history browsing and export work offline.
// Writes are best effort; flows log a warning and carry on when one fails.
type ActivityCache struct {
	db *sql.DB
}

const activitySchema = `
CREATE TABLE IF NOT EXISTS tenders (
	id        INTEGER PRIMARY KEY,
	snapshot  TEXT NOT NULL,
	cached_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS reports (
	id         TEXT PRIMARY KEY,
	tender_id  INTEGER NOT NULL,
	report     TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS drafts (
	id         TEXT PRIMARY KEY,
	tender_id  INTEGER NOT NULL,
	draft      TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// OpenActivityCache opens (creating if needed) activity.db in the state
// directory.
func OpenActivityCache(stateDir string) (*ActivityCache, error) {
	path := filepath.Join(stateDir, "activity.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &CacheError{Op: "open", Err: err}
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &CacheError{Op: "open", Err: err}
	}
	if _, err := db.Exec(activitySchema); err != nil {
		_ = db.Close()
		return nil, &CacheError{Op: "migrate", Err: err}
	}
	return &ActivityCache{db: db}, nil
}

// Close closes the underlying database.
func (c *ActivityCache) Close() error {
	return c.db.Close()
}

// PutTender stores or replaces the snapshot for a tender.
func (c *ActivityCache) PutTender(t *Tender) error {
	snapshot, err := json.Marshal(t)
	if err != nil {
		return &CacheError{Op: "put tender", Err: err}
	}
	_, err = c.db.Exec(
		`INSERT INTO tenders (id, snapshot, cached_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET snapshot = excluded.snapshot, cached_at = excluded.cached_at`,
		t.ID, string(snapshot), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return &CacheError{Op: "put tender", Err: err}
	}
	return nil
}

// GetTender loads one cached tender snapshot, or nil when absent.
func (c *ActivityCache) GetTender(id int64) (*Tender, error) {
	var snapshot string
	err := c.db.QueryRow(`SELECT snapshot FROM tenders WHERE id = ?`, id).Scan(&snapshot)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &CacheError{Op: "get tender", Err: err}
	}
	var t Tender
	if err := json.Unmarshal([]byte(snapshot), &t); err != nil {
		return nil, &CacheError{Op: "get tender", Err: err}
	}
	return &t, nil
}

// ListTenders returns every cached tender snapshot, newest first.
func (c *ActivityCache) ListTenders() ([]Tender, error) {
	rows, err := c.db.Query(`SELECT snapshot FROM tenders ORDER BY cached_at DESC`)
	if err != nil {
		return nil, &CacheError{Op: "list tenders", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var tenders []Tender
	for rows.Next() {
		var snapshot string
		if err := rows.Scan(&snapshot); err != nil {
			return nil, &CacheError{Op: "list tenders", Err: err}
		}
		var t Tender
		if err := json.Unmarshal([]byte(snapshot), &t); err != nil {
			LogWarn("skipping unparsable tender snapshot: %v", err)
			continue
		}
		tenders = append(tenders, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &CacheError{Op: "list tenders", Err: err}
	}
	return tenders, nil
}

// PutReport appends a compliance report for its tender.
func (c *ActivityCache) PutReport(r *ComplianceReport) error {
	data, err := json.Marshal(r)
	if err != nil {
		return &CacheError{Op: "put report", Err: err}
	}
	_, err = c.db.Exec(
		`INSERT INTO reports (id, tender_id, report, created_at) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), r.TenderID, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return &CacheError{Op: "put report", Err: err}
	}
	return nil
}

// LatestReport returns the most recent report for a tender, or nil when
// none has been cached.
func (c *ActivityCache) LatestReport(tenderID int64) (*ComplianceReport, error) {
	var data string
	err := c.db.QueryRow(
		`SELECT report FROM reports WHERE tender_id = ? ORDER BY created_at DESC LIMIT 1`,
		tenderID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &CacheError{Op: "latest report", Err: err}
	}
	var r ComplianceReport
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, &CacheError{Op: "latest report", Err: err}
	}
	return &r, nil
}

// PutDraft appends a generated draft for its tender.
func (c *ActivityCache) PutDraft(tenderID int64, draft string) error {
	_, err := c.db.Exec(
		`INSERT INTO drafts (id, tender_id, draft, created_at) VALUES (?, ?, ?, ?)`,
		uuid.NewString(), tenderID, draft, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return &CacheError{Op: "put draft", Err: err}
	}
	return nil
}

// LatestDraft returns the most recent draft for a tender, or "" when none
// has been cached.
func (c *ActivityCache) LatestDraft(tenderID int64) (string, error) {
	var draft string
	err := c.db.QueryRow(
		`SELECT draft FROM drafts WHERE tender_id = ? ORDER BY created_at DESC LIMIT 1`,
		tenderID).Scan(&draft)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", &CacheError{Op: "latest draft", Err: err}
	}
	return draft, nil
}

// Package assembles the exportable bundle for a tender from the cache.
func (c *ActivityCache) Package(tenderID int64) (*BidPackage, error) {
	tender, err := c.GetTender(tenderID)
	if err != nil {
		return nil, err
	}
	report, err := c.LatestReport(tenderID)
	if err != nil {
		return nil, err
	}
	draft, err := c.LatestDraft(tenderID)
	if err != nil {
		return nil, err
	}
	return &BidPackage{Tender: tender, Report: report, Draft: draft}, nil
}
