package models

// Customer is a row of the Customer table
type Customer struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
