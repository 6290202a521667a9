package models

// Reward is a redeemable treat in the coin store. RedeemedCount only ever
// increments, one per successful redemption.
type Reward struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Cost          int    `json:"cost"`
	Icon          string `json:"icon"`
	Description   string `json:"description"`
	RedeemedCount int    `json:"redeemedCount"`
}
