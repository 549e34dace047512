// Package domain holds DTOs for liquidation http and service contracts
package domain

import (
	salesdomain "salesdesk/internal/services/api/sales/domain"
)

// CriteriaInput is the optional filter set a view applies
// Absent fields constrain nothing; empty multi-selects pass everything
type CriteriaInput struct {
	Name            string   `json:"name,omitempty" validate:"omitempty,max=120" example:"gómez"`
	CUIL            string   `json:"cuil,omitempty" validate:"omitempty,max=20" example:"20-30111222"`
	AdvisorNames    []string `json:"advisor_names,omitempty" validate:"omitempty,dive,min=1,max=120"`
	SupervisorNames []string `json:"supervisor_names,omitempty" validate:"omitempty,dive,min=1,max=120"`
	AuditorID       string   `json:"auditor_id,omitempty" validate:"omitempty,max=64"`
	AdminID         string   `json:"admin_id,omitempty" validate:"omitempty,max=64"`
	Provider        string   `json:"provider,omitempty" validate:"omitempty,oneof=Binimed Meplife TURF" example:"TURF"`
	Status          string   `json:"status,omitempty" validate:"omitempty,oneof=Cargada Aprobada 'QR hecho'" example:"QR hecho"`
	DateFrom        string   `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-11-01"`
	DateTo          string   `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-11-30"`
}

// ViewInput selects one liquidation view: a week (1 = most recent) or, when a
// date range is present, the whole history narrowed by the range
type ViewInput struct {
	WeekIndex int           `json:"week_index,omitempty" validate:"omitempty,min=1" example:"1"`
	Criteria  CriteriaInput `json:"criteria"`
	// date advisor or supervisor; anything else falls back to date
	SortKey string `json:"sort_key,omitempty" validate:"omitempty,max=32" example:"date"`
}

// CountRow is one leaderboard entry
type CountRow struct {
	Name  string `json:"name" example:"Carla Ruiz"`
	Count int    `json:"count" example:"12"`
}

// ViewOutput is the render-ready liquidation view
type ViewOutput struct {
	WeekKey   string `json:"week_key,omitempty" example:"2025-11-07"`
	WeekCount int    `json:"week_count" example:"9"`

	Records     []salesdomain.Record `json:"records"`
	Supervisors []CountRow           `json:"supervisors"`
	Providers   []CountRow           `json:"providers"`
}

// WeekInfo describes one business week bucket
type WeekInfo struct {
	Key   string `json:"key" example:"2025-11-07"`
	Count int    `json:"count" example:"37"`
}

// WeeksOutput lists week buckets most recent first
type WeeksOutput struct {
	Weeks []WeekInfo `json:"weeks"`
}
