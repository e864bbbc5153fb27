// Package census adapts external data sources into domain datasets:
// CSV uploads on the way in, and generated sample data when no upload
// is available.
package census

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/statlab/census-api/internal/domain"
)

// ReadCSV decodes a census CSV stream into a Dataset. The first row must be
// a header; columns may appear in any order. Missing required columns yield
// domain.ErrMissingColumn, unparseable cells domain.ErrInvalidRecord with
// the offending row number.
func ReadCSV(r io.Reader) (domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file has no header row", domain.ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range domain.RequiredColumns {
		if _, ok := col[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}

	ds := domain.Dataset{}
	for row := 2; ; row++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %w", row, domain.ErrInvalidRecord, err)
		}

		person, err := decodeRow(rec, col)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		ds = append(ds, person)
	}

	return ds, nil
}

func decodeRow(rec []string, col map[string]int) (domain.PersonRecord, error) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	intField := func(name string) (int, error) {
		raw := field(name)
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: column %q: %q is not an integer", domain.ErrInvalidRecord, name, raw)
		}
		return v, nil
	}

	var person domain.PersonRecord
	var err error

	if person.Age, err = intField("age"); err != nil {
		return person, err
	}
	if person.EducationYears, err = intField("education-num"); err != nil {
		return person, err
	}
	if person.CapitalGain, err = intField("capital-gain"); err != nil {
		return person, err
	}
	if person.CapitalLoss, err = intField("capital-loss"); err != nil {
		return person, err
	}
	if person.HoursPerWeek, err = intField("hours-per-week"); err != nil {
		return person, err
	}

	person.Workclass = field("workclass")
	person.Education = field("education")
	person.MaritalStatus = field("marital-status")
	person.Occupation = field("occupation")
	person.Relationship = field("relationship")
	person.Race = field("race")
	person.Sex = field("sex")
	person.NativeCountry = field("native-country")
	person.Income = domain.IncomeBracket(field("salary"))

	if err := person.Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidRecord) {
			return person, err
		}
		return person, fmt.Errorf("%w: %w", domain.ErrInvalidRecord, err)
	}
	return person, nil
}
