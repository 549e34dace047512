// Package liquidation implements the weekly liquidation pipeline: business-week
// bucketing, criteria filtering, and grouped aggregation over sale records
package liquidation

import (
	"strings"
	"time"
)

// Status is the sale lifecycle status as stored on the record
type Status string

const (
	// StatusCargada means the sale has been loaded and awaits audit
	StatusCargada Status = "Cargada"
	// StatusAprobada means the sale passed audit
	StatusAprobada Status = "Aprobada"
	// StatusQRHecho means the enrollment QR was generated, anchoring commission eligibility
	StatusQRHecho Status = "QR hecho"
)

// SupervisorSentinel is the grouping bucket for records with no resolvable supervisor
const SupervisorSentinel = "Sin supervisor"

// SaleRecord is the unit of bucketing, filtering, and aggregation
// Optional timestamps use the zero time; the pipeline never dereferences them blindly
type SaleRecord struct {
	ID          string
	CUIL        string
	HolderName  string
	Status      Status
	ScheduledAt time.Time
	QRCreatedAt time.Time
	CreatedAt   time.Time

	AdvisorID   string
	AdvisorName string

	// snapshot of the supervisor at sale time, authoritative when present
	SupervisorSnapshotID   string
	SupervisorSnapshotName string

	// the advisor's current supervisor, used only for legacy records without a snapshot
	FallbackSupervisorID   string
	FallbackSupervisorName string

	Provider  string
	AuditorID string
	AdminID   string
}

// EffectiveDate resolves the single timestamp that governs bucketing and
// date-range filtering: qrCreatedAt when the sale reached QR hecho, else
// scheduledAt, else createdAt. Exactly one of the three is used per record
// The zero time means no field parsed; callers treat that as unknown week
func (r SaleRecord) EffectiveDate() time.Time {
	if r.Status == StatusQRHecho && !r.QRCreatedAt.IsZero() {
		return r.QRCreatedAt
	}
	if !r.ScheduledAt.IsZero() {
		return r.ScheduledAt
	}
	return r.CreatedAt
}

// SupervisorName resolves the effective supervisor: snapshot when non-blank,
// else fallback, else the sentinel. Total, never empty
func (r SaleRecord) SupervisorName() string {
	if s := strings.TrimSpace(r.SupervisorSnapshotName); s != "" {
		return s
	}
	if s := strings.TrimSpace(r.FallbackSupervisorName); s != "" {
		return s
	}
	return SupervisorSentinel
}

// SupervisorID resolves the effective supervisor id with the same precedence
// as SupervisorName, returning "" when neither source carries one
func (r SaleRecord) SupervisorID() string {
	if strings.TrimSpace(r.SupervisorSnapshotName) != "" || r.SupervisorSnapshotID != "" {
		return r.SupervisorSnapshotID
	}
	return r.FallbackSupervisorID
}

// liquidable reports whether the record's status participates in liquidation at all
func liquidable(s Status) bool {
	return s == StatusCargada || s == StatusAprobada || s == StatusQRHecho
}
