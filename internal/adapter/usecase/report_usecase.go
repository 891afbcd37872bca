package usecase

import (
	"context"

	"ad-dashboard/internal/core/domain"
	"ad-dashboard/internal/core/port"
)

// ReportUseCase runs the report pipeline for the presentation layer:
// cached load and derive, then filter and summarize per selection.
type ReportUseCase struct {
	cache *ReportCache
}

// NewReportUseCase creates a use case reading through cache.
func NewReportUseCase(cache *ReportCache) *ReportUseCase {
	return &ReportUseCase{cache: cache}
}

var _ port.ReportUseCase = (*ReportUseCase)(nil)

// Campaigns returns the selectable campaign identifiers.
func (u *ReportUseCase) Campaigns(ctx context.Context) ([]string, error) {
	tbl, err := u.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Campaigns(tbl), nil
}

// View returns the filtered rows and summary for campaign. An empty
// campaign falls back to the first campaign of the report.
func (u *ReportUseCase) View(ctx context.Context, campaign string) (*port.CampaignView, error) {
	tbl, err := u.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	campaigns := domain.Campaigns(tbl)
	if campaign == "" && len(campaigns) > 0 {
		campaign = campaigns[0]
	}
	filtered := domain.Filter(tbl, campaign)
	return &port.CampaignView{
		Campaigns: campaigns,
		Selected:  campaign,
		Table:     filtered,
		Summary:   domain.Summarize(filtered),
	}, nil
}
