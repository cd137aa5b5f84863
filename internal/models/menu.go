package models

// MenuItem is a row of the Menu table. The name is the natural key.
type MenuItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
}
