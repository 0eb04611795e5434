package table

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcheron/dirigeants/internal/models"
)

func sampleRecords() []models.TradeRecord {
	author := "Jean Dupont"
	opDate := "01/07/2025"
	qty := int64(1000)
	price := 12.5
	total := 12500.0
	return []models.TradeRecord{
		{
			Company:         "Foo",
			CompanyHref:     "/cotation/foo",
			DeclarationDate: "02/07/2025",
			Operation:       "Acquisition",
			Instrument:      "Actions",
			Author:          &author,
			OperationDate:   &opDate,
			Quantity:        &qty,
			PriceEUR:        &price,
			TotalValueEUR:   &total,
			ScrapedPage:     1,
			ScrapedAt:       time.Date(2025, 7, 2, 10, 30, 0, 0, time.UTC),
		},
		{
			Company:         "Bar",
			DeclarationDate: "03/07/2025",
			Operation:       "Cession",
			Instrument:      "Actions",
			ScrapedPage:     2,
			ScrapedAt:       time.Date(2025, 7, 3, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.csv")
	written, err := WriteCSV(sampleRecords(), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	records, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, "Foo", r.Company)
	assert.Equal(t, "Acquisition", r.Operation)
	require.NotNil(t, r.Author)
	assert.Equal(t, "Jean Dupont", *r.Author)
	require.NotNil(t, r.Quantity)
	assert.Equal(t, int64(1000), *r.Quantity)
	require.NotNil(t, r.TotalValueEUR)
	assert.Equal(t, 12500.0, *r.TotalValueEUR)
	assert.Equal(t, 1, r.ScrapedPage)
	assert.Equal(t, time.Date(2025, 7, 2, 10, 30, 0, 0, time.UTC), r.ScrapedAt)

	// Nullable fields come back nil, not zero.
	assert.Nil(t, records[1].Author)
	assert.Nil(t, records[1].Quantity)
	assert.Nil(t, records[1].PriceEUR)
	assert.Nil(t, records[1].TotalValueEUR)
}

func TestWriteCSVDefaultFilename(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path, err := WriteCSV(sampleRecords(), "")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^insider_trades_\d{8}_\d{6}\.csv$`), path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestReadCSVMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("company,operation\nFoo,Acquisition\n"), 0644))

	_, err := ReadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "author")
	assert.Contains(t, err.Error(), "quantity")
	assert.Contains(t, err.Error(), "price_eur")
	assert.Contains(t, err.Error(), "total_value_eur")
}

func TestSummary(t *testing.T) {
	t.Parallel()

	out := Summary(sampleRecords())
	assert.Contains(t, out, "Total trades: 2")
	assert.Contains(t, out, "Unique companies: 2")
	assert.Contains(t, out, "Unique authors: 1")
	assert.Contains(t, out, "Total transaction value: 12500.00 EUR")

	assert.Equal(t, "No data to summarize", Summary(nil))
}
