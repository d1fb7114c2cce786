package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Columns is the fixed catalog CSV schema. Column order matters: files are
// written and validated against this exact sequence.
var Columns = []string{
	"title", "organization", "country", "location", "type",
	"eligibility_criteria", "target_audience", "start_date", "duration",
	"application_deadline", "application_link", "mode", "stipend", "salary",
	"visa_support", "tags", "source", "scraped_timestamp", "description",
	"skills_required", "perks", "company_size", "industry",
}

const listDelimiter = ", "

// splitListHook converts comma-joined CSV cells into string slices, trimming
// entries and dropping empty ones.
func splitListHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
		return data, nil
	}

	raw, _ := data.(string)
	return SplitList(raw), nil
}

// SplitList parses a comma-joined multi-valued field. Whitespace-only entries
// are discarded so a round trip never accumulates blanks.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		values = append(values, part)
	}
	return values
}

// JoinList serializes a multi-valued field for the CSV schema.
func JoinList(values []string) string {
	return strings.Join(values, listDelimiter)
}

func decodeRow(row map[string]string) (*Posting, error) {
	input := make(map[string]any, len(row))
	for key, value := range row {
		input[key] = value
	}

	var posting Posting
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: splitListHook,
		Result:     &posting,
	})
	if err != nil {
		return nil, fmt.Errorf("building row decoder: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return nil, fmt.Errorf("decoding row: %w", err)
	}

	return &posting, nil
}

func encodeRow(p *Posting) []string {
	return []string{
		p.Title, p.Organization, p.Country, p.Location, p.Type,
		p.EligibilityCriteria, p.TargetAudience, p.StartDate, p.Duration,
		p.ApplicationDeadline, p.ApplicationLink, p.Mode, p.Stipend, p.Salary,
		p.VisaSupport, JoinList(p.Tags), p.Source, p.ScrapedTimestamp, p.Description,
		JoinList(p.SkillsRequired), JoinList(p.Perks), p.CompanySize, p.Industry,
	}
}

// ReadFile loads the catalog CSV. A missing file yields an empty collection,
// not an error: the catalog is optional until the first ingestion run.
func ReadFile(path string) (*Postings, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Postings{}, nil
		}
		return nil, fmt.Errorf("opening catalog %q: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return &Postings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}

	postings := &Postings{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading catalog row: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}

		posting, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		postings.Items = append(postings.Items, posting)
	}

	return postings, nil
}

// WriteFile writes the catalog CSV with the fixed column schema, creating
// parent directories as needed.
func WriteFile(path string, postings *Postings) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating catalog %q: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("writing catalog header: %w", err)
	}

	for _, posting := range postings.Items {
		if err := writer.Write(encodeRow(posting)); err != nil {
			return fmt.Errorf("writing catalog row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
