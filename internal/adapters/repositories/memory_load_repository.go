package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"loadboard-service/internal/domain"
	"loadboard-service/internal/ports"
)

// expectedHeader is the column layout the loads dataset must carry.
var expectedHeader = []string{
	"load_id",
	"origin",
	"destination",
	"equipment_type",
	"rate",
	"commodity",
	"pickup_date",
	"delivery_date",
}

// In-memory implementation of the LoadRepository port.
// The map is populated once (from CSV or fixture data) and read-only
// afterwards, so concurrent lookups need no locking.
type MemoryLoadRepository struct {
	loads map[int]*domain.Load
}

// NewMemoryLoadRepository builds a repository from already-parsed loads.
// Used by tests to assemble fixture datasets without touching disk.
func NewMemoryLoadRepository(loads []*domain.Load) *MemoryLoadRepository {
	m := make(map[int]*domain.Load, len(loads))
	for _, l := range loads {
		m[l.LoadID] = l
	}
	return &MemoryLoadRepository{loads: m}
}

// LoadFromCSV parses the loads dataset into a repository. Any malformed
// row is a hard failure: the dataset is the system of record, and serving
// a partial view of it would silently turn data bugs into 404s.
func LoadFromCSV(path string) (*MemoryLoadRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(expectedHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load dataset: parse %q: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("load dataset: %q is empty, header row required", path)
	}

	if err := checkHeader(records[0]); err != nil {
		return nil, fmt.Errorf("load dataset: %q: %w", path, err)
	}

	loads := make(map[int]*domain.Load, len(records)-1)
	for i, row := range records[1:] {
		load, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("load dataset: row %d: %w", i+2, err)
		}

		if _, ok := loads[load.LoadID]; ok {
			return nil, fmt.Errorf("load dataset: row %d: duplicate load_id %d", i+2, load.LoadID)
		}
		loads[load.LoadID] = load
	}

	return &MemoryLoadRepository{loads: loads}, nil
}

func checkHeader(header []string) error {
	for i, want := range expectedHeader {
		got := strings.TrimSpace(header[i])
		if got != want {
			return fmt.Errorf("header column %d is %q, want %q", i+1, got, want)
		}
	}
	return nil
}

func parseRow(row []string) (*domain.Load, error) {
	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return nil, fmt.Errorf("non-numeric load_id %q", row[0])
	}
	if id <= 0 {
		return nil, fmt.Errorf("load_id must be positive, got %d", id)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
	if err != nil {
		return nil, fmt.Errorf("load_id %d: non-numeric rate %q", id, row[4])
	}

	origin := strings.TrimSpace(row[1])
	dest := strings.TrimSpace(row[2])
	if origin == "" || dest == "" {
		return nil, fmt.Errorf("load_id %d: origin and destination cannot be empty", id)
	}

	return &domain.Load{
		LoadID:        id,
		Origin:        origin,
		Destination:   dest,
		EquipmentType: strings.TrimSpace(row[3]),
		Rate:          rate,
		Commodity:     strings.TrimSpace(row[5]),
		PickupDate:    strings.TrimSpace(row[6]),
		DeliveryDate:  strings.TrimSpace(row[7]),
	}, nil
}

// Return the load with the given ID, or ErrLoadNotFound.
func (m *MemoryLoadRepository) GetByID(ctx context.Context, loadID int) (*domain.Load, error) {
	load, ok := m.loads[loadID]
	if !ok {
		return nil, fmt.Errorf("get load %d: %w", loadID, ports.ErrLoadNotFound)
	}
	return load, nil
}

func (m *MemoryLoadRepository) Count() int { return len(m.loads) }
