package reportfile

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ad-dashboard/internal/core/domain"
)

const reportCSV = "캠페인,월,총비용(VAT포함,원),노출수,클릭수,전환수,전환매출액(원)\n" +
	"A,2024-01,1000,10000,200,20,5000\n" +
	"A,2024-02,abc,10000,200,20,5000\n" +
	"B,2024-01,,0,0,0,0\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadCSVCoercesCells(t *testing.T) {
	src := NewSource(writeFile(t, "report.csv", reportCSV))

	tbl, err := src.Read(context.Background())
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 3)
	assert.True(t, decimal.NewFromInt(1000).Equal(tbl.Rows[0].Cost))
	assert.True(t, tbl.Rows[1].Cost.IsZero(), "non-numeric cost")
	assert.True(t, tbl.Rows[2].Cost.IsZero(), "empty cost")
	assert.Empty(t, tbl.Schema.Missing())
}

func TestReadCSVMissingNumericColumn(t *testing.T) {
	src := NewSource(writeFile(t, "report.csv", "campaign,month,cost,revenue\nA,2024-01,100,250\n"))

	tbl, err := src.Read(context.Background())
	require.NoError(t, err)

	out := domain.Derive(tbl)
	assert.InDelta(t, 250.0, out.Rows[0].ROAS, 1e-9)
	assert.Zero(t, out.Rows[0].CTR)
	assert.Zero(t, out.Rows[0].CVR)
}

func TestReadFailuresAreDataLoadErrors(t *testing.T) {
	cases := map[string]*Source{
		"missing file":   NewSource(filepath.Join(t.TempDir(), "nope.csv")),
		"empty file":     NewSource(writeFile(t, "empty.csv", "")),
		"no campaign":    NewSource(writeFile(t, "bad.csv", "month,cost\n2024-01,1\n")),
		"broken quoting": NewSource(writeFile(t, "quote.csv", "campaign,month\n\"A,2024-01\n")),
		"not a workbook": NewSource(writeFile(t, "report.xlsx", "plain text")),
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := src.Read(context.Background())
			var loadErr *domain.DataLoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, src.Name(), loadErr.Source)
		})
	}
}

func TestReadTwiceIsRowEqual(t *testing.T) {
	src := NewSource(writeFile(t, "report.csv", reportCSV))

	first, err := src.Read(context.Background())
	require.NoError(t, err)
	second, err := src.Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVersionChangesWithContents(t *testing.T) {
	path := writeFile(t, "report.csv", reportCSV)
	src := NewSource(path)

	v1, err := src.Version(context.Background())
	require.NoError(t, err)
	v2, err := src.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, v1, v2)

	require.NoError(t, os.WriteFile(path, []byte(reportCSV+"C,2024-03,1,1,1,1,1\n"), 0o600))
	v3, err := src.Version(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, v1, v3)
}

func TestReadXLSXMatchesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{domain.HeaderCampaign, domain.HeaderMonth, domain.HeaderCost, domain.HeaderImpressions, domain.HeaderClicks, domain.HeaderConversions, domain.HeaderRevenue},
		{"A", "2024-01", 1000, 10000, 200, 20, 5000},
		{"A", "2024-02", "abc", 10000, 200, 20, 5000},
		{"B", "2024-01", "", 0, 0, 0, 0},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	fromXLSX, err := NewSource(path).Read(context.Background())
	require.NoError(t, err)
	fromCSV, err := NewSource(writeFile(t, "report.csv", reportCSV)).Read(context.Background())
	require.NoError(t, err)

	require.Len(t, fromXLSX.Rows, len(fromCSV.Rows))
	for i := range fromCSV.Rows {
		x, c := fromXLSX.Rows[i], fromCSV.Rows[i]
		assert.Equal(t, c.Campaign, x.Campaign)
		assert.Equal(t, c.Month, x.Month)
		assert.True(t, c.Cost.Equal(x.Cost), "row %d cost %s != %s", i, x.Cost, c.Cost)
		assert.Equal(t, c.Impressions, x.Impressions)
		assert.Equal(t, c.Clicks, x.Clicks)
		assert.Equal(t, c.Conversions, x.Conversions)
		assert.True(t, c.Revenue.Equal(x.Revenue))
	}
}

func TestReadXLSXDateMonthUsesDisplayText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{domain.HeaderCampaign, domain.HeaderMonth, domain.HeaderCost, domain.HeaderImpressions, domain.HeaderClicks, domain.HeaderConversions, domain.HeaderRevenue}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	row := []interface{}{"A", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 1234567, 10000, 200, 20, 5000}
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row))

	monthFmt := "yyyy-mm"
	monthStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &monthFmt})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B2", monthStyle))
	// #,##0
	costStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "C2", "C2", costStyle))

	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := NewSource(path).Read(context.Background())
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "A", tbl.Rows[0].Campaign)
	assert.Equal(t, "2024-01", tbl.Rows[0].Month)
	assert.True(t, decimal.NewFromInt(1234567).Equal(tbl.Rows[0].Cost), "cost %s", tbl.Rows[0].Cost)
}

func TestPathIsAbsolute(t *testing.T) {
	src := NewSource("report.csv")
	assert.Equal(t, "report.csv", src.Name())
	assert.True(t, filepath.IsAbs(src.Path()), src.Path())
	assert.Equal(t, "report.csv", filepath.Base(src.Path()))
}

func TestWatchNotifiesOnWrite(t *testing.T) {
	path := writeFile(t, "report.csv", reportCSV)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, logger, path, func() { calls.Add(1) }) }()

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(reportCSV), 0o600)
		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
