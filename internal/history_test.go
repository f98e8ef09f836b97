package internal

import (
	"testing"

	"github.com/justbidit/jbi/testutil"
)

func newTestCache(t *testing.T) *ActivityCache {
	t.Helper()
	cache, err := OpenActivityCache(testutil.CreateTempDir(t))
	if err != nil {
		t.Fatalf("OpenActivityCache() error = %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestActivityCache_TenderRoundTrip(t *testing.T) {
	cache := newTestCache(t)

	tender := &Tender{
		ID:     7,
		Title:  "Road Widening NH-48",
		Status: "extracted",
		ExtractedData: &ExtractedData{
			Eligibility: Eligibility{MinTurnover: 120},
		},
	}
	if err := cache.PutTender(tender); err != nil {
		t.Fatalf("PutTender() error = %v", err)
	}

	got, err := cache.GetTender(7)
	if err != nil {
		t.Fatalf("GetTender() error = %v", err)
	}
	if got == nil || got.Title != tender.Title || got.ExtractedData == nil ||
		got.ExtractedData.Eligibility.MinTurnover != 120 {
		t.Errorf("GetTender() = %+v, want the stored snapshot", got)
	}
}

func TestActivityCache_GetTenderMissing(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.GetTender(99)
	if err != nil {
		t.Fatalf("GetTender() error = %v", err)
	}
	if got != nil {
		t.Errorf("GetTender(99) = %+v, want nil for an uncached id", got)
	}
}

func TestActivityCache_PutTenderReplaces(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.PutTender(&Tender{ID: 7, Title: "first"}); err != nil {
		t.Fatalf("PutTender() error = %v", err)
	}
	if err := cache.PutTender(&Tender{ID: 7, Title: "second"}); err != nil {
		t.Fatalf("PutTender() error = %v", err)
	}

	got, err := cache.GetTender(7)
	if err != nil {
		t.Fatalf("GetTender() error = %v", err)
	}
	if got.Title != "second" {
		t.Errorf("Title = %q, want the replacement snapshot", got.Title)
	}

	tenders, err := cache.ListTenders()
	if err != nil {
		t.Fatalf("ListTenders() error = %v", err)
	}
	if len(tenders) != 1 {
		t.Errorf("ListTenders() returned %d rows, want 1 after upsert", len(tenders))
	}
}

func TestActivityCache_LatestReportWins(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.PutReport(&ComplianceReport{ID: 1, TenderID: 7, Score: 40, Verdict: "INELIGIBLE"}); err != nil {
		t.Fatalf("PutReport() error = %v", err)
	}
	if err := cache.PutReport(&ComplianceReport{ID: 2, TenderID: 7, Score: 72, Verdict: "LIKELY ELIGIBLE"}); err != nil {
		t.Fatalf("PutReport() error = %v", err)
	}

	got, err := cache.LatestReport(7)
	if err != nil {
		t.Fatalf("LatestReport() error = %v", err)
	}
	if got == nil || got.Score != 72 {
		t.Errorf("LatestReport() = %+v, want the re-run to replace the display", got)
	}

	none, err := cache.LatestReport(8)
	if err != nil {
		t.Fatalf("LatestReport() error = %v", err)
	}
	if none != nil {
		t.Errorf("LatestReport(8) = %+v, want nil", none)
	}
}

func TestActivityCache_LatestDraft(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.PutDraft(7, "first draft"); err != nil {
		t.Fatalf("PutDraft() error = %v", err)
	}
	if err := cache.PutDraft(7, "second draft"); err != nil {
		t.Fatalf("PutDraft() error = %v", err)
	}

	got, err := cache.LatestDraft(7)
	if err != nil {
		t.Fatalf("LatestDraft() error = %v", err)
	}
	if got != "second draft" {
		t.Errorf("LatestDraft() = %q", got)
	}

	empty, err := cache.LatestDraft(8)
	if err != nil {
		t.Fatalf("LatestDraft() error = %v", err)
	}
	if empty != "" {
		t.Errorf("LatestDraft(8) = %q, want empty", empty)
	}
}

func TestActivityCache_Package(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.PutTender(&Tender{ID: 7, Title: "Road Widening NH-48"}); err != nil {
		t.Fatalf("PutTender() error = %v", err)
	}
	if err := cache.PutReport(&ComplianceReport{ID: 9, TenderID: 7, Score: 72}); err != nil {
		t.Fatalf("PutReport() error = %v", err)
	}
	if err := cache.PutDraft(7, "Respected Sir/Madam,"); err != nil {
		t.Fatalf("PutDraft() error = %v", err)
	}

	pkg, err := cache.Package(7)
	if err != nil {
		t.Fatalf("Package() error = %v", err)
	}
	if pkg.Tender == nil || pkg.Tender.ID != 7 {
		t.Errorf("Package().Tender = %+v", pkg.Tender)
	}
	if pkg.Report == nil || pkg.Report.Score != 72 {
		t.Errorf("Package().Report = %+v", pkg.Report)
	}
	if pkg.Draft != "Respected Sir/Madam," {
		t.Errorf("Package().Draft = %q", pkg.Draft)
	}
}

func TestActivityCache_PackagePartial(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.PutDraft(7, "draft only"); err != nil {
		t.Fatalf("PutDraft() error = %v", err)
	}

	pkg, err := cache.Package(7)
	if err != nil {
		t.Fatalf("Package() error = %v", err)
	}
	if pkg.Tender != nil || pkg.Report != nil {
		t.Errorf("Package() = %+v, want only the draft populated", pkg)
	}
	if pkg.Draft != "draft only" {
		t.Errorf("Package().Draft = %q", pkg.Draft)
	}
}
