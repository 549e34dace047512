// Package domain holds DTOs for sales http and service contracts
package domain

import "time"

// QueryInput is the input for listing sale records
type QueryInput struct {
	// liquidation statuses only; empty means the full liquidation set
	Statuses []string `json:"statuses,omitempty" validate:"omitempty,dive,oneof=Cargada Aprobada 'QR hecho'" example:"QR hecho"`
	// inclusive local calendar dates
	DateFrom     string `json:"date_from,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-11-01"`
	DateTo       string `json:"date_to,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-11-30"`
	AdvisorID    string `json:"advisor_id,omitempty" validate:"omitempty,max=64" example:"adv-102"`
	SupervisorID string `json:"supervisor_id,omitempty" validate:"omitempty,max=64" example:"sup-7"`
	Limit        int    `json:"limit,omitempty" validate:"omitempty,min=1,max=5000" example:"1000"`
}

// Record is a sale record as served over the API and across module ports
// Optional timestamps are zero when the row carries NULL
type Record struct {
	ID          string    `json:"id" example:"b3f1c9d2-4a6e-4f0b-9c3a-2d8e7f5a1b23"`
	CUIL        string    `json:"cuil" example:"20-30111222-3"`
	HolderName  string    `json:"holder_name" example:"María Gómez"`
	Status      string    `json:"status" example:"QR hecho"`
	ScheduledAt time.Time `json:"scheduled_at"`
	QRCreatedAt time.Time `json:"qr_created_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	AdvisorID   string `json:"advisor_id" example:"adv-102"`
	AdvisorName string `json:"advisor_name" example:"Lucas Pérez"`

	SupervisorSnapshotID   string `json:"supervisor_snapshot_id,omitempty"`
	SupervisorSnapshotName string `json:"supervisor_snapshot_name,omitempty"`
	FallbackSupervisorID   string `json:"fallback_supervisor_id,omitempty"`
	FallbackSupervisorName string `json:"fallback_supervisor_name,omitempty"`

	Provider  string `json:"provider" example:"Binimed"`
	AuditorID string `json:"auditor_id,omitempty"`
	AdminID   string `json:"admin_id,omitempty"`
}
