// Package domain holds DTOs for campaigns http and service contracts
package domain

// StatsInput selects one WhatsApp campaign and a reporting window
type StatsInput struct {
	CampaignID string `json:"campaign_id" validate:"required,uuid4" example:"7cfb3f2e-9c1d-4e5a-8b6f-0d2a4c8e1f33"`
	Start      string `json:"start" validate:"required,datetime=2006-01-02" example:"2025-11-01"`
	End        string `json:"end" validate:"required,datetime=2006-01-02" example:"2025-11-30"`
}

// StatusCount is one delivery-status bucket
type StatusCount struct {
	Status string `json:"status" example:"delivered"`
	Count  int64  `json:"count" example:"412"`
}

// StatsOutput summarizes message outcomes for a campaign
type StatsOutput struct {
	CampaignID string        `json:"campaign_id"`
	Total      int64         `json:"total" example:"498"`
	ByStatus   []StatusCount `json:"by_status"`
}
