package domain

// RewardThreshold is the stamp count that unlocks a reward.
const RewardThreshold = 6

// CREATE TABLE public.tarjeta_lealtad (
//     id                      UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//     cliente_id              UUID UNIQUE NOT NULL,
//     sellos_aumulados        INT NOT NULL DEFAULT 0,
//     recompensa_disponible   BOOLEAN NOT NULL DEFAULT FALSE
// );

type LoyaltyCard struct {
	ID              string `gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()" json:"id"`
	CustomerID      string `gorm:"column:cliente_id;type:uuid;uniqueIndex;not null" json:"customer_id"`
	Stamps          int    `gorm:"column:sellos_aumulados;not null" json:"stamps"`
	RewardAvailable bool   `gorm:"column:recompensa_disponible;not null" json:"reward_available"`
}

func (LoyaltyCard) TableName() string {
	return "tarjeta_lealtad"
}

// IsReward reports whether count stamps unlock the reward. Counts above the
// threshold are stored as they are.
func IsReward(count int) bool {
	return count >= RewardThreshold
}
