package domain

// StampAssignment is the outcome of a successful assignment chain.
type StampAssignment struct {
	Identity    Identity     `json:"identity"`
	Phone       string       `json:"phone"`
	Count       int          `json:"count"`
	Reward      bool         `json:"reward"`
	Kind        MovementKind `json:"kind"`
	Description string       `json:"description"`
	LastAction  string       `json:"last_action"`
}
