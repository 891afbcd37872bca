package port

import (
	"context"

	"ad-dashboard/internal/core/domain"
)

// ReportUseCase defines the operations the presentation layer needs. It is
// the primary port into the report pipeline. Mock implementations can be
// generated from this interface for testing.
type ReportUseCase interface {
	// Campaigns returns the distinct campaign identifiers of the report in
	// order of first appearance.
	Campaigns(ctx context.Context) ([]string, error)

	// View loads the report (from cache when unchanged), narrows it to the
	// given campaign and summarizes it. An empty campaign selects the first
	// campaign of the report. An unknown campaign yields an empty table and
	// a zero summary.
	View(ctx context.Context, campaign string) (*CampaignView, error)
}

// CampaignView is everything a page render needs for one selection.
type CampaignView struct {
	Campaigns []string       `json:"campaigns"`
	Selected  string         `json:"selected"`
	Table     domain.Table   `json:"table"`
	Summary   domain.Summary `json:"summary"`
}
