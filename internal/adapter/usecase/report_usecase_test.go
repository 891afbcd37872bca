package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-dashboard/internal/core/domain"
	"ad-dashboard/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func rawTable() domain.Table {
	return domain.Table{Schema: domain.FullSchema(), Rows: []domain.Row{
		{Campaign: "A", Month: "2024-01", Cost: decimal.NewFromInt(1000), Impressions: 10000, Clicks: 200, Conversions: 20, Revenue: decimal.NewFromInt(5000)},
		{Campaign: "B", Month: "2024-01", Cost: decimal.Zero, Impressions: 0, Clicks: 0, Conversions: 0, Revenue: decimal.NewFromInt(10)},
	}}
}

func newSource(t *testing.T) *mocks.MockReportSource {
	src := mocks.NewMockReportSource(t)
	src.EXPECT().Name().Return("test").Maybe()
	return src
}

// TestCacheReadsOncePerVersion ensures repeated gets reuse the table.
func TestCacheReadsOncePerVersion(t *testing.T) {
	src := newSource(t)
	src.EXPECT().Version(mock.Anything).Return("v1", nil).Times(3)
	src.EXPECT().Read(mock.Anything).Return(rawTable(), nil).Once()

	cache := NewReportCache(src, discardLogger())
	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	second, err := cache.Get(context.Background())
	require.NoError(t, err)
	third, err := cache.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.InDelta(t, 500.0, first.Rows[0].ROAS, 1e-9)
}

func TestCacheReloadsOnVersionChange(t *testing.T) {
	src := newSource(t)
	src.EXPECT().Version(mock.Anything).Return("v1", nil).Once()
	src.EXPECT().Version(mock.Anything).Return("v2", nil).Once()
	src.EXPECT().Read(mock.Anything).Return(rawTable(), nil).Twice()

	cache := NewReportCache(src, discardLogger())
	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	_, err = cache.Get(context.Background())
	require.NoError(t, err)
}

func TestCacheInvalidate(t *testing.T) {
	src := newSource(t)
	src.EXPECT().Version(mock.Anything).Return("v1", nil).Twice()
	src.EXPECT().Read(mock.Anything).Return(rawTable(), nil).Twice()

	cache := NewReportCache(src, discardLogger())
	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	cache.Invalidate()
	_, err = cache.Get(context.Background())
	require.NoError(t, err)
}

func TestCacheDoesNotKeepFailures(t *testing.T) {
	loadErr := &domain.DataLoadError{Source: "test", Err: errors.New("boom")}
	src := newSource(t)
	src.EXPECT().Version(mock.Anything).Return("v1", nil).Twice()
	src.EXPECT().Read(mock.Anything).Return(domain.Table{}, loadErr).Once()
	src.EXPECT().Read(mock.Anything).Return(rawTable(), nil).Once()

	cache := NewReportCache(src, discardLogger())
	_, err := cache.Get(context.Background())
	var target *domain.DataLoadError
	require.ErrorAs(t, err, &target)

	tbl, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestCacheVersionError(t *testing.T) {
	src := newSource(t)
	src.EXPECT().Version(mock.Anything).Return("", &domain.DataLoadError{Source: "test", Err: errors.New("gone")}).Once()

	_, err := NewReportCache(src, discardLogger()).Get(context.Background())
	assert.Error(t, err)
}

// TestViewEndToEnd checks the reference scenario: one row for campaign A.
func TestViewEndToEnd(t *testing.T) {
	src := newSource(t)
	src.EXPECT().Version(mock.Anything).Return("v1", nil)
	src.EXPECT().Read(mock.Anything).Return(rawTable(), nil).Once()

	svc := NewReportUseCase(NewReportCache(src, discardLogger()))

	view, err := svc.View(context.Background(), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, view.Campaigns)
	assert.Equal(t, "A", view.Selected)
	require.Len(t, view.Table.Rows, 1)
	assert.InDelta(t, 500.0, view.Summary.ROAS, 1e-9)
	assert.InDelta(t, 2.0, view.Summary.CTR, 1e-9)
	assert.InDelta(t, 10.0, view.Summary.CVR, 1e-9)

	campaigns, err := svc.Campaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, campaigns)
}

func TestViewDefaultsToFirstCampaign(t *testing.T) {
	src := newSource(t)
	src.EXPECT().Version(mock.Anything).Return("v1", nil)
	src.EXPECT().Read(mock.Anything).Return(rawTable(), nil).Once()

	view, err := NewReportUseCase(NewReportCache(src, discardLogger())).View(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "A", view.Selected)
	assert.Len(t, view.Table.Rows, 1)
}

func TestViewUnknownCampaign(t *testing.T) {
	src := newSource(t)
	src.EXPECT().Version(mock.Anything).Return("v1", nil)
	src.EXPECT().Read(mock.Anything).Return(rawTable(), nil).Once()

	view, err := NewReportUseCase(NewReportCache(src, discardLogger())).View(context.Background(), "Z")
	require.NoError(t, err)

	assert.Equal(t, "Z", view.Selected)
	assert.Empty(t, view.Table.Rows)
	assert.Equal(t, domain.Summary{}, view.Summary)
}

func TestViewLoadFailure(t *testing.T) {
	src := newSource(t)
	src.EXPECT().Version(mock.Anything).Return("v1", nil)
	src.EXPECT().Read(mock.Anything).Return(domain.Table{}, &domain.DataLoadError{Source: "test", Err: io.ErrUnexpectedEOF})

	_, err := NewReportUseCase(NewReportCache(src, discardLogger())).View(context.Background(), "A")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
