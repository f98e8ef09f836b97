package internal

import (
	"testing"
	"time"
)

func TestCompanyForm_AddCertificationRejectsDuplicates(t *testing.T) {
	form := NewCompanyForm()
	if err := form.AddCertification("ISO9001"); err != nil {
		t.Fatalf("AddCertification() error = %v", err)
	}
	if err := form.AddCertification("ISO9001"); err == nil {
		t.Fatal("AddCertification() accepted a duplicate")
	}
	if len(form.Certifications) != 1 {
		t.Errorf("Certifications = %v, want a single entry", form.Certifications)
	}
}

func TestCompanyForm_AddCertificationTrims(t *testing.T) {
	form := NewCompanyForm()
	if err := form.AddCertification("  ISO9001  "); err != nil {
		t.Fatalf("AddCertification() error = %v", err)
	}
	if form.Certifications[0] != "ISO9001" {
		t.Errorf("tag = %q, want trimmed", form.Certifications[0])
	}
	if err := form.AddCertification("   "); err == nil {
		t.Error("AddCertification() accepted a blank tag")
	}
}

func TestCompanyForm_RemoveByIndex(t *testing.T) {
	form := NewCompanyForm()
	for _, tag := range []string{"GST", "PAN", "Udyam"} {
		if err := form.AddDocument(tag); err != nil {
			t.Fatalf("AddDocument(%q) error = %v", tag, err)
		}
	}

	if err := form.RemoveDocument(1); err != nil {
		t.Fatalf("RemoveDocument(1) error = %v", err)
	}
	if len(form.AvailableDocuments) != 2 || form.AvailableDocuments[1] != "Udyam" {
		t.Errorf("AvailableDocuments = %v", form.AvailableDocuments)
	}

	if err := form.RemoveDocument(5); err == nil {
		t.Error("RemoveDocument(5) accepted an out-of-range index")
	}
	if err := form.RemoveDocument(-1); err == nil {
		t.Error("RemoveDocument(-1) accepted a negative index")
	}
}

func TestCompanyForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    CompanyForm
		wantErr bool
	}{
		{
			name:    "complete",
			form:    CompanyForm{Name: "Acme", AnnualTurnover: 120, YearsInOperation: 8},
			wantErr: false,
		},
		{
			name:    "missing name",
			form:    CompanyForm{AnnualTurnover: 120, YearsInOperation: 8},
			wantErr: true,
		},
		{
			name:    "missing turnover",
			form:    CompanyForm{Name: "Acme", YearsInOperation: 8},
			wantErr: true,
		},
		{
			name:    "missing years",
			form:    CompanyForm{Name: "Acme", AnnualTurnover: 120},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompanyForm_AddProject(t *testing.T) {
	form := NewCompanyForm()

	if err := form.AddProject(PastProject{Name: "Flyover", Client: ""}); err == nil {
		t.Error("AddProject() accepted a project without a client")
	}

	if err := form.AddProject(PastProject{Name: "Flyover", Client: "NHAI", Value: 80}); err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}
	if got := form.PastProjects[0].Year; got != time.Now().Year() {
		t.Errorf("Year = %d, want current-year default", got)
	}

	if err := form.RemoveProject(0); err != nil {
		t.Fatalf("RemoveProject(0) error = %v", err)
	}
	if len(form.PastProjects) != 0 {
		t.Errorf("PastProjects = %v, want empty", form.PastProjects)
	}
	if err := form.RemoveProject(0); err == nil {
		t.Error("RemoveProject(0) accepted an index into an empty list")
	}
}

func TestCompanyForm_PayloadAlwaysComplete(t *testing.T) {
	form := &CompanyForm{Name: "Acme", AnnualTurnover: 120, YearsInOperation: 8}
	payload := form.Payload()

	if payload.Certifications == nil || payload.AvailableDocuments == nil ||
		payload.PastProjects == nil || payload.Sectors == nil {
		t.Errorf("Payload() carries nil lists: %+v", payload)
	}
	if payload.Name != "Acme" || payload.AnnualTurnover != 120 || payload.YearsInOperation != 8 {
		t.Errorf("Payload() = %+v", payload)
	}
}
