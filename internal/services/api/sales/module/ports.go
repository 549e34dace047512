package module

import (
	"salesdesk/internal/services/api/sales/domain"
)

// Ports exposes the sales seams other modules may consume
type Ports struct {
	// Reader serves the liquidation module's record fetches
	Reader domain.ReaderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
