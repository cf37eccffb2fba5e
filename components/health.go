package components

import "github.com/yohamta/donburi"

// HealthData is a fighter's health. Current is never clamped and can go below
// zero; a fighter is defeated once Current <= 0.
type HealthData struct {
	Current int
	Max     int
}

// Defeated reports whether health has run out.
func (h *HealthData) Defeated() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
