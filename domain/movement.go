package domain

import (
	"fmt"
	"time"
)

type MovementKind string

const (
	MovementStamp  MovementKind = "STAMP"
	MovementReward MovementKind = "REWARD"
)

// CREATE TABLE public.movimientos (
//     id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//     cliente_id   UUID NOT NULL,
//     tipo         TEXT NOT NULL,
//     descripcion  TEXT,
//     fecha        TIMESTAMPTZ DEFAULT NOW()
// );

// Movement is an append-only audit entry. Rows are never updated or deleted.
type Movement struct {
	ID          string       `gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()" json:"id"`
	CustomerID  string       `gorm:"column:cliente_id;type:uuid;not null" json:"customer_id"`
	Kind        MovementKind `gorm:"column:tipo;type:text;not null" json:"kind"`
	Description string       `gorm:"column:descripcion;type:text" json:"description"`
	Date        time.Time    `gorm:"column:fecha;default:now()" json:"date"`
}

func (Movement) TableName() string {
	return "movimientos"
}

// NewStampMovement builds the log entry for assigning count stamps.
func NewStampMovement(customerID string, count int) Movement {
	if IsReward(count) {
		return Movement{
			CustomerID:  customerID,
			Kind:        MovementReward,
			Description: "Redeemed Reward",
		}
	}

	return Movement{
		CustomerID:  customerID,
		Kind:        MovementStamp,
		Description: fmt.Sprintf("Assigned %d Stamps", count),
	}
}

// ActivityFeed is what the console shows under "recent activity".
type ActivityFeed struct {
	Entries []Movement `json:"entries"`
	Recent  []Movement `json:"recent"`
	Today   int        `json:"today"`
}
