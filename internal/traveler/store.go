package traveler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a raw row from the traveler preference dataset. The delimited
// fields keep their original comma-joined, possibly quote-wrapped form until
// Match normalizes them.
type Record struct {
	Name             string
	PreferredSeasons string
	Activities       string
	Budget           string
	Visited          string
}

var (
	// ErrProfileNotFound means the dataset was read but no row matched.
	ErrProfileNotFound = errors.New("traveler: profile not found")
	// ErrStoreUnavailable means the dataset could not be opened or read.
	ErrStoreUnavailable = errors.New("traveler: profile dataset unavailable")
	// ErrMalformedDataset means the dataset was readable but its rows or
	// header could not be interpreted.
	ErrMalformedDataset = errors.New("traveler: profile dataset malformed")
)

// Store looks up traveler records by name.
type Store interface {
	Lookup(name string) (*Record, error)
}

// CSVStore reads traveler records from a CSV file. The file is re-read on
// every lookup so results always reflect the dataset at call time.
type CSVStore struct {
	path string
}

// Ensure CSVStore implements Store.
var _ Store = (*CSVStore)(nil)

// NewCSVStore creates a store backed by the CSV file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Expected header columns.
const (
	colName       = "Traveller_Name"
	colSeasons    = "Preferred_Time_of_Year"
	colActivities = "Preferred_Activities"
	colBudget     = "Max_Budget"
	colVisited    = "Countries_Visited"
)

// Lookup returns the first record whose name matches case-insensitively.
// Returns ErrProfileNotFound when no row matches, ErrStoreUnavailable when
// the file cannot be read, and ErrMalformedDataset for header or row issues.
func (s *CSVStore) Lookup(name string) (*Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformedDataset, err)
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range []string{colName, colSeasons, colActivities, colBudget, colVisited} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedDataset, col)
		}
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row: %v", ErrMalformedDataset, err)
		}
		rowName, err := field(row, idx[colName])
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(strings.TrimSpace(rowName), name) {
			continue
		}

		// First match wins on duplicate names.
		rec := &Record{Name: strings.TrimSpace(rowName)}
		if rec.PreferredSeasons, err = field(row, idx[colSeasons]); err != nil {
			return nil, err
		}
		if rec.Activities, err = field(row, idx[colActivities]); err != nil {
			return nil, err
		}
		if rec.Budget, err = field(row, idx[colBudget]); err != nil {
			return nil, err
		}
		if rec.Visited, err = field(row, idx[colVisited]); err != nil {
			return nil, err
		}
		return rec, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
}

func field(row []string, i int) (string, error) {
	if i >= len(row) {
		return "", fmt.Errorf("%w: row has %d fields, need index %d", ErrMalformedDataset, len(row), i)
	}
	return row[i], nil
}
