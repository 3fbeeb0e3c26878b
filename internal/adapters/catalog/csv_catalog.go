package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"itinerary-service/internal/domain"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// RequiredColumns must be present in a catalog file header.
var RequiredColumns = []string{"city", "place_name", "latitude", "longitude"}

// PlaceRecord is one raw catalog row. Numeric columns are kept as text so
// that bad values can fall back to defaults instead of failing the load.
type PlaceRecord struct {
	State         string `csv:"state"`
	City          string `csv:"city"`
	PlaceName     string `csv:"place_name"`
	PlaceType     string `csv:"place_type"`
	Latitude      string `csv:"latitude"`
	Longitude     string `csv:"longitude"`
	VisitDuration string `csv:"avg_visit_duration_hr"`
	OpeningTime   string `csv:"opening_time_24h"`
	ClosingTime   string `csv:"closing_time_24h"`
	Priority      string `csv:"visit_priority"`
	Budget        string `csv:"budget_category"`
}

// CSVCatalog reads places from a CSV file on every ListPlaces call;
// callers load it once and keep the resulting domain.Catalog.
type CSVCatalog struct {
	Path string
}

func NewCSVCatalog(path string) *CSVCatalog {
	return &CSVCatalog{Path: path}
}

func (c *CSVCatalog) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("list places: open %q: %w", c.Path, err)
	}
	defer f.Close()

	places, err := ReadPlaces(f)
	if err != nil {
		return nil, fmt.Errorf("list places: %q: %w", c.Path, err)
	}
	return places, nil
}

// ReadPlaces decodes a catalog CSV. Header names are matched
// case-insensitively and a missing required column is an error.
func ReadPlaces(in io.Reader) ([]domain.Place, error) {
	var records []PlaceRecord
	if err := gocsv.UnmarshalCSV(newHeaderReader(in), &records); err != nil {
		return nil, fmt.Errorf("decode catalog csv: %w", err)
	}

	places := make([]domain.Place, 0, len(records))
	for i, rec := range records {
		p, err := rec.ToPlace()
		if err != nil {
			return nil, fmt.Errorf("decode catalog csv: row %d: %w", i+2, err)
		}
		places = append(places, p)
	}
	return places, nil
}

// ToPlace normalizes a raw row: lower-cased category, budget tier by
// substring, priority defaulting to 3 and visit duration to 2 hours.
func (r PlaceRecord) ToPlace() (domain.Place, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(r.Latitude), 64)
	if err != nil {
		return domain.Place{}, fmt.Errorf("place %q: invalid latitude %q", r.PlaceName, r.Latitude)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(r.Longitude), 64)
	if err != nil {
		return domain.Place{}, fmt.Errorf("place %q: invalid longitude %q", r.PlaceName, r.Longitude)
	}

	return domain.Place{
		Name:      strings.TrimSpace(r.PlaceName),
		State:     strings.TrimSpace(r.State),
		City:      strings.TrimSpace(r.City),
		Category:  strings.ToLower(strings.TrimSpace(r.PlaceType)),
		Location:  domain.Coordinates{Lat: lat, Lon: lon},
		VisitHrs:  parseVisitHours(r.VisitDuration),
		OpenTime:  strings.TrimSpace(r.OpeningTime),
		CloseTime: strings.TrimSpace(r.ClosingTime),
		Priority:  ParsePriority(r.Priority),
		Budget:    domain.NormalizeBudget(r.Budget),
	}, nil
}

// ParsePriority accepts integer or decimal text; anything else is the default.
func ParsePriority(s string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.DefaultPriority
	}
	return int(v)
}

func parseVisitHours(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 || math.IsNaN(v) {
		return domain.DefaultVisitHours
	}
	return v
}

// headerReader lower-cases the header row for gocsv and checks that the
// required columns exist.
type headerReader struct {
	r          *csv.Reader
	headerDone bool
}

func newHeaderReader(in io.Reader) *headerReader {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return &headerReader{r: r}
}

func (h *headerReader) Read() ([]string, error) {
	row, err := h.r.Read()
	if err != nil {
		return nil, err
	}
	if !h.headerDone {
		h.headerDone = true
		if err := normalizeHeader(row); err != nil {
			return nil, err
		}
	}
	return row, nil
}

func (h *headerReader) ReadAll() ([][]string, error) {
	rows := make([][]string, 0)
	for {
		row, err := h.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, errors.New("catalog csv is empty")
	}
	return rows, nil
}

func normalizeHeader(row []string) error {
	seen := make(map[string]bool, len(row))
	for i, col := range row {
		row[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff")))
		seen[row[i]] = true
	}

	missing := make([]string, 0)
	for _, col := range RequiredColumns {
		if !seen[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("catalog csv is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
