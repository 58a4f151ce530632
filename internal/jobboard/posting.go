// Package jobboard defines the posting records handed over by the scraping
// collaborator and the file helpers around them. Postings are validated at
// this boundary before they enter the scoring pipeline.
package jobboard

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	PostingIDField      = "ID"
	PostingCompanyField = "Company"
)

var validate = validator.New()

type Postings struct {
	Items []*Posting
}

type Posting struct {
	ID      string  `json:"id" validate:"required"`
	Title   string  `json:"title,omitempty"`
	Company string  `json:"company,omitempty"`
	Details Details `json:"details"`
}

// Details carries the scraped text fields of a posting. Error is set by the
// scraper when it failed to read the posting page; such postings are scored
// zero instead of being dropped.
type Details struct {
	JobTitle            string `json:"job_title,omitempty"`
	JobSummary          string `json:"job_summary,omitempty"`
	JobResponsibilities string `json:"job_responsibilities,omitempty"`
	JobDescription      string `json:"job_description,omitempty"`
	RequiredSkills      string `json:"required_skills,omitempty"`
	AdditionalInfo      string `json:"additional_information,omitempty"`
	Error               string `json:"error,omitempty"`
}

// Field names used by the skill extractor to address details by weight table key.
const (
	FieldJobTitle            = "job_title"
	FieldJobSummary          = "job_summary"
	FieldJobResponsibilities = "job_responsibilities"
	FieldJobDescription      = "job_description"
	FieldRequiredSkills      = "required_skills"
	FieldAdditionalInfo      = "additional_information"
)

// Text returns the named detail field, or an empty string for unknown names.
func (d Details) Text(field string) string {
	switch field {
	case FieldJobTitle:
		return d.JobTitle
	case FieldJobSummary:
		return d.JobSummary
	case FieldJobResponsibilities:
		return d.JobResponsibilities
	case FieldJobDescription:
		return d.JobDescription
	case FieldRequiredSkills:
		return d.RequiredSkills
	case FieldAdditionalInfo:
		return d.AdditionalInfo
	default:
		return ""
	}
}

// Empty reports whether no content field carries text.
func (d Details) Empty() bool {
	return d.JobTitle == "" && d.JobSummary == "" && d.JobResponsibilities == "" &&
		d.JobDescription == "" && d.RequiredSkills == "" && d.AdditionalInfo == ""
}

// CombinedText joins all content fields into one lowercased blob. Domain
// detection runs over this.
func (d Details) CombinedText() string {
	parts := []string{
		d.JobTitle, d.JobSummary, d.JobResponsibilities,
		d.JobDescription, d.RequiredSkills, d.AdditionalInfo,
	}
	joined := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			joined = append(joined, part)
		}
	}
	return strings.ToLower(strings.Join(joined, " "))
}

func (p *Posting) GetStringField(name string) string {
	switch name {
	case PostingIDField:
		return p.ID
	case PostingCompanyField:
		return p.Company
	default:
		return ""
	}
}

// FromFile loads and validates a postings array from a JSON file. A posting
// failing boundary validation makes the whole load fail: the input file is the
// scraper's contract and a record without an id cannot be reported back.
func FromFile(path string) (*Postings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var items []*Posting
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("parsing postings file %q: %w", path, err)
	}

	for i, posting := range items {
		if err := validate.Struct(posting); err != nil {
			return nil, fmt.Errorf("invalid posting at index %d: %w", i, err)
		}
	}

	return &Postings{Items: items}, nil
}

func (p *Postings) Len() int {
	return len(p.Items)
}

func (p *Postings) FindByID(id string) *Posting {
	for _, posting := range p.Items {
		if posting.ID == id {
			return posting
		}
	}
	return nil
}

// IDs returns the posting ids in input order.
func (p *Postings) IDs() []string {
	ids := make([]string, 0, len(p.Items))
	for _, posting := range p.Items {
		ids = append(ids, posting.ID)
	}
	return ids
}

// Exclude removes postings whose named field matches one of the targets,
// returning removed ids. Does not preserve order.
func (p *Postings) Exclude(name string, targets []string) []string {
	var excluded []string
	for _, target := range targets {
		for idx, posting := range p.Items {
			if posting.GetStringField(name) == target {
				p.RemoveByIndex(idx)
				excluded = append(excluded, posting.ID)
				break
			}
		}
	}
	return excluded
}

// RemoveByIndex removes a posting from the list by index. Does not preserve order.
func (p *Postings) RemoveByIndex(idx int) {
	p.Items[idx] = p.Items[len(p.Items)-1]
	p.Items = p.Items[:len(p.Items)-1]
}

func (p *Postings) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "postings_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByCompany groups brief posting summaries under their employer.
func (p *Postings) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, posting := range p.Items {
		key := posting.Company
		if key == "" {
			key = "unknown"
		}
		report[key] = append(report[key], map[string]string{
			"id":      posting.ID,
			"title":   posting.Title,
			"summary": posting.Details.JobSummary,
		})
	}
	return report
}
