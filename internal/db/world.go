package db

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	worldKindLocation = "location"
	worldKindThing    = "thing"
)

type worldRecord struct {
	Kind   string
	Name   string
	Detail string
}

// WorldCounts reports how many rows LoadWorld inserted.
type WorldCounts struct {
	Locations int
	Things    int
}

// LoadWorldFile reads a world CSV from path. See LoadWorld for the format.
func LoadWorldFile(ctx context.Context, g *Gateway, path string) (WorldCounts, error) {
	file, err := os.Open(path)
	if err != nil {
		return WorldCounts{}, err
	}
	defer file.Close()
	return LoadWorld(ctx, g, file)
}

// LoadWorld inserts locations and things from CSV rows of the form
// kind,name,detail with a header line. For locations the detail is the
// description; for things it names the location they lie in, which is
// stored as that location's id when one with the name exists. Rows already
// present are skipped, so loading the same file twice is harmless.
func LoadWorld(ctx context.Context, g *Gateway, r io.Reader) (WorldCounts, error) {
	records, err := readWorld(r)
	if err != nil {
		return WorldCounts{}, err
	}
	var counts WorldCounts
	err = g.Do(ctx, func(s *Session) error {
		counts = WorldCounts{}
		for _, record := range records {
			if record.Kind != worldKindLocation {
				continue
			}
			var existing Location
			res := s.tx.Where("name = ?", record.Name).Limit(1).Find(&existing)
			if res.Error != nil {
				return fmt.Errorf("find location %q: %w", record.Name, res.Error)
			}
			if res.RowsAffected > 0 {
				continue
			}
			if _, err := Create(s, NewLocation(record.Name, record.Detail)); err != nil {
				return err
			}
			counts.Locations++
		}
		for _, record := range records {
			if record.Kind != worldKindThing {
				continue
			}
			where, err := resolveLocation(s, record.Detail)
			if err != nil {
				return err
			}
			query := s.tx.Where("name = ?", record.Name)
			if where == nil {
				query = query.Where("location IS NULL")
			} else {
				query = query.Where("location = ?", *where)
			}
			var existing Thing
			res := query.Limit(1).Find(&existing)
			if res.Error != nil {
				return fmt.Errorf("find thing %q: %w", record.Name, res.Error)
			}
			if res.RowsAffected > 0 {
				continue
			}
			if _, err := Create(s, NewThing(record.Name, where)); err != nil {
				return err
			}
			counts.Things++
		}
		return nil
	})
	return counts, err
}

func resolveLocation(s *Session, name string) (*string, error) {
	if name == "" {
		return nil, nil
	}
	var location Location
	res := s.tx.Where("name = ?", name).Limit(1).Find(&location)
	if res.Error != nil {
		return nil, fmt.Errorf("resolve location %q: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return &name, nil
	}
	id := location.ID.String()
	return &id, nil
}

func readWorld(r io.Reader) ([]worldRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []worldRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			continue
		}
		kind := strings.ToLower(strings.TrimSpace(row[0]))
		name := strings.TrimSpace(row[1])
		detail := ""
		if len(row) >= 3 {
			detail = strings.TrimSpace(row[2])
		}
		if name == "" {
			continue
		}
		switch kind {
		case worldKindLocation, worldKindThing:
			records = append(records, worldRecord{Kind: kind, Name: name, Detail: detail})
		default:
			return nil, fmt.Errorf("line %d: unknown kind %q", i+1, row[0])
		}
	}
	return records, nil
}
