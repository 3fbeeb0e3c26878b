package catalog

import (
	"context"
	"itinerary-service/internal/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffState,City,Place_Name,Place_Type,Latitude,Longitude,Avg_Visit_Duration_Hr,Opening_Time_24h,Closing_Time_24h,Visit_Priority,Budget_Category\n" +
	"Rajasthan,Jaipur,Amber Fort,Sightseeing,26.9855,75.8513,3,08:00,17:30,5,Medium Budget\n" +
	"Rajasthan,Jaipur,Hawa Mahal,Sightseeing,26.9239,75.8267,,09:00,17:00,,low\n" +
	"Rajasthan,Jaipur,Bar Palladio,Bar,26.9010,75.8120,-1,18:00,23:00,n/a,Luxury\n"

func TestReadPlacesNormalizesRows(t *testing.T) {
	places, err := ReadPlaces(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, places, 3)

	amber := places[0]
	assert.Equal(t, "Amber Fort", amber.Name)
	assert.Equal(t, "Rajasthan", amber.State)
	assert.Equal(t, "Jaipur", amber.City)
	assert.Equal(t, "sightseeing", amber.Category)
	assert.Equal(t, domain.Coordinates{Lat: 26.9855, Lon: 75.8513}, amber.Location)
	assert.Equal(t, 3.0, amber.VisitHrs)
	assert.Equal(t, "08:00", amber.OpenTime)
	assert.Equal(t, "17:30", amber.CloseTime)
	assert.Equal(t, 5, amber.Priority)
	assert.Equal(t, domain.BudgetMedium, amber.Budget)

	hawa := places[1]
	assert.Equal(t, domain.DefaultPriority, hawa.Priority)
	assert.Equal(t, domain.DefaultVisitHours, hawa.VisitHrs)
	assert.Equal(t, domain.BudgetLow, hawa.Budget)

	bar := places[2]
	assert.Equal(t, domain.DefaultPriority, bar.Priority)
	assert.Equal(t, domain.DefaultVisitHours, bar.VisitHrs)
	assert.Equal(t, domain.BudgetHigh, bar.Budget)
	assert.Equal(t, "bar", bar.Category)
}

func TestReadPlacesMissingColumn(t *testing.T) {
	in := "city,place_name,latitude\nJaipur,Amber Fort,26.9\n"

	_, err := ReadPlaces(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "longitude")
}

func TestReadPlacesBadCoordinate(t *testing.T) {
	in := "city,place_name,latitude,longitude\nJaipur,Amber Fort,north,75.8\n"

	_, err := ReadPlaces(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReadPlacesEmpty(t *testing.T) {
	_, err := ReadPlaces(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, 4, ParsePriority("4"))
	assert.Equal(t, 4, ParsePriority(" 4.0 "))
	assert.Equal(t, domain.DefaultPriority, ParsePriority(""))
	assert.Equal(t, domain.DefaultPriority, ParsePriority("high"))
}

func TestCSVCatalogListPlaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o600))

	places, err := NewCSVCatalog(path).ListPlaces(context.Background())
	require.NoError(t, err)
	assert.Len(t, places, 3)

	_, err = NewCSVCatalog(filepath.Join(t.TempDir(), "missing.csv")).ListPlaces(context.Background())
	assert.Error(t, err)
}
