package domain

type IdentityKind string

const (
	IdentityCustomer   IdentityKind = "CUSTOMER"
	IdentityRestaurant IdentityKind = "RESTAURANT"
)

// Identity is whoever a phone number resolved to.
type Identity struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Phone   string       `json:"phone"`
	Kind    IdentityKind `json:"kind"`
	Created bool         `json:"created"`
}

// IdentityMatch is one row of the identification search, tagged with its table.
type IdentityMatch struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Phone string       `json:"phone"`
	Kind  IdentityKind `json:"kind"`
}

func (c Customer) Match() IdentityMatch {
	return IdentityMatch{ID: c.ID, Name: c.Name, Phone: c.Phone, Kind: IdentityCustomer}
}

func (r Restaurant) Match() IdentityMatch {
	return IdentityMatch{ID: r.ID, Name: r.Name, Phone: r.Phone, Kind: IdentityRestaurant}
}
