// Package domain holds DTOs for directory http and service contracts
package domain

// Person is one advisor or supervisor entry used to build filter option lists
type Person struct {
	ID   string `json:"id" example:"adv-102"`
	Name string `json:"name" example:"Lucas Pérez"`
	// advisors carry their current supervisor for cascading filters
	SupervisorID   string `json:"supervisor_id,omitempty" example:"sup-7"`
	SupervisorName string `json:"supervisor_name,omitempty" example:"Carla Ruiz"`
}
