package jobboard

import (
	"encoding/json"
	"os"
	"time"
)

// ExcludedPostings is the persistent list of posting ids the user has already
// handled. It round-trips through a plain JSON file so other tooling can edit it.
type ExcludedPostings struct {
	Items []*ExcludedPosting
}

type ExcludedPosting struct {
	ID         string
	Title      string
	Company    string
	ExcludedAt time.Time
}

// ToExcluded converts the current postings into exclude-file entries.
func (p *Postings) ToExcluded() *ExcludedPostings {
	excluded := &ExcludedPostings{}
	for _, posting := range p.Items {
		excluded.Items = append(excluded.Items, &ExcludedPosting{
			ID:         posting.ID,
			Title:      posting.Title,
			Company:    posting.Company,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

// ExcludedFromFile reads the exclude file. An empty file yields an empty list.
func ExcludedFromFile(path string) (*ExcludedPostings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedPostings{}, nil
	}

	var excluded ExcludedPostings
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedPostings) Append(other *ExcludedPostings) {
	e.Items = append(e.Items, other.Items...)
}

func (e *ExcludedPostings) IDs() []string {
	ids := make([]string, 0)
	for _, posting := range e.Items {
		ids = append(ids, posting.ID)
	}
	return ids
}

func (e *ExcludedPostings) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return err
	}
	return nil
}
