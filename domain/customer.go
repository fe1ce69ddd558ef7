package domain

// CREATE TABLE public.clientes (
//     id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//     nombre      TEXT,
//     telefono    TEXT
// );

type Customer struct {
	ID    string `gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()" json:"id"`
	Name  string `gorm:"column:nombre;type:text" json:"name"`
	Phone string `gorm:"column:telefono;type:text" json:"phone"`
}

func (Customer) TableName() string {
	return "clientes"
}

// Restaurants share the customer shape but live in their own table.
type Restaurant struct {
	ID    string `gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()" json:"id"`
	Name  string `gorm:"column:nombre;type:text" json:"name"`
	Phone string `gorm:"column:telefono;type:text" json:"phone"`
}

func (Restaurant) TableName() string {
	return "restaurantes"
}
