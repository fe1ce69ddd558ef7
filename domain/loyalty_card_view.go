package domain

type StampCell struct {
	Index  int    `json:"index"`
	Filled bool   `json:"filled"`
	Label  string `json:"label"`
}

// LoyaltyCardView is everything the card display needs to draw itself.
type LoyaltyCardView struct {
	Stamps         int         `json:"stamps"`
	TotalSlots     int         `json:"total_slots"`
	Loading        bool        `json:"loading"`
	Cells          []StampCell `json:"cells"`
	Progress       float64     `json:"progress"`
	Percent        int         `json:"percent"`
	Remaining      int         `json:"remaining"`
	RewardUnlocked bool        `json:"reward_unlocked"`
	Radius         float64     `json:"radius"`
	Circumference  float64     `json:"circumference"`
	DashOffset     float64     `json:"dash_offset"`
}
