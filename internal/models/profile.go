package models

import "time"

// Profile holds the household identity: the ordering partner and the partner
// who cooks (the chef recorded on new orders).
type Profile struct {
	Name        string    `json:"name"`
	PartnerName string    `json:"partnerName"`
	StartDate   time.Time `json:"startDate"`
}
