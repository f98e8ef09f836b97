package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var formValidator = validator.New()

// CompanyForm is the locally persisted shadow copy of the company profile.
// It is always written out as a complete record: optional fields are
// normalized to explicit zero values, never left undefined.
type CompanyForm struct {
	Name               string        `json:"name" validate:"required"`
	AnnualTurnover     float64       `json:"annual_turnover" validate:"required,gt=0"`
	YearsInOperation   int           `json:"years_in_operation" validate:"required,gt=0"`
	NetWorth           float64       `json:"net_worth"`
	GSTNumber          string        `json:"gst_number"`
	PANNumber          string        `json:"pan_number"`
	RegistrationNumber string        `json:"registration_number"`
	UdyamNumber        string        `json:"udyam_number"`
	MSMECategory       string        `json:"msme_category"`
	Certifications     []string      `json:"certifications"`
	AvailableDocuments []string      `json:"available_documents"`
	PastProjects       []PastProject `json:"past_projects"`
}

// NewCompanyForm returns an empty, normalized form.
func NewCompanyForm() *CompanyForm {
	f := &CompanyForm{}
	f.Normalize()
	return f
}

// Normalize ensures list fields are non-nil so the persisted record and the
// API payload always carry complete, re-loadable values.
func (f *CompanyForm) Normalize() {
	if f.Certifications == nil {
		f.Certifications = []string{}
	}
	if f.AvailableDocuments == nil {
		f.AvailableDocuments = []string{}
	}
	if f.PastProjects == nil {
		f.PastProjects = []PastProject{}
	}
}

// Validate enforces the required fields before any network call.
func (f *CompanyForm) Validate() error {
	if err := formValidator.Struct(f); err != nil {
		return fmt.Errorf("company name, annual turnover and years in operation are required")
	}
	return nil
}

// AddCertification appends a certification tag. Duplicates (exact string
// match) and empty values are rejected.
func (f *CompanyForm) AddCertification(value string) error {
	list, err := appendTag(f.Certifications, value)
	if err != nil {
		return err
	}
	f.Certifications = list
	return nil
}

// RemoveCertification removes the certification at the given index.
func (f *CompanyForm) RemoveCertification(index int) error {
	list, err := removeAt(f.Certifications, index)
	if err != nil {
		return err
	}
	f.Certifications = list
	return nil
}

// AddDocument appends an available-document tag with the same rules as
// AddCertification.
func (f *CompanyForm) AddDocument(value string) error {
	list, err := appendTag(f.AvailableDocuments, value)
	if err != nil {
		return err
	}
	f.AvailableDocuments = list
	return nil
}

// RemoveDocument removes the document tag at the given index.
func (f *CompanyForm) RemoveDocument(index int) error {
	list, err := removeAt(f.AvailableDocuments, index)
	if err != nil {
		return err
	}
	f.AvailableDocuments = list
	return nil
}

// AddProject appends a past project. Name and client are required; a zero
// value defaults to 0 and a zero year defaults to the current year.
func (f *CompanyForm) AddProject(p PastProject) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Client = strings.TrimSpace(p.Client)
	if p.Name == "" || p.Client == "" {
		return fmt.Errorf("project name and client are required")
	}
	if p.Year == 0 {
		p.Year = time.Now().Year()
	}
	f.PastProjects = append(f.PastProjects, p)
	return nil
}

// RemoveProject removes the project at the given index.
func (f *CompanyForm) RemoveProject(index int) error {
	if index < 0 || index >= len(f.PastProjects) {
		return fmt.Errorf("no project at index %d", index)
	}
	f.PastProjects = append(f.PastProjects[:index], f.PastProjects[index+1:]...)
	return nil
}

// Payload builds the POST /companies request body from the form.
func (f *CompanyForm) Payload() *Company {
	f.Normalize()
	return &Company{
		Name:               f.Name,
		AnnualTurnover:     f.AnnualTurnover,
		YearsInOperation:   f.YearsInOperation,
		NetWorth:           f.NetWorth,
		GSTNumber:          f.GSTNumber,
		PANNumber:          f.PANNumber,
		RegistrationNumber: f.RegistrationNumber,
		MSMECategory:       f.MSMECategory,
		Certifications:     f.Certifications,
		AvailableDocuments: f.AvailableDocuments,
		PastProjects:       f.PastProjects,
		Sectors:            []string{},
	}
}

func appendTag(list []string, value string) ([]string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("empty value")
	}
	for _, existing := range list {
		if existing == value {
			return nil, fmt.Errorf("%q is already present", value)
		}
	}
	return append(list, value), nil
}

func removeAt(list []string, index int) ([]string, error) {
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("no entry at index %d", index)
	}
	return append(list[:index], list[index+1:]...), nil
}
