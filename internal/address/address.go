package address

import "time"

// Address is a saved delivery address in a customer's address book.
type Address struct {
	ID         string    `json:"addressId" bson:"_id,omitempty"`
	CustomerID string    `json:"customerId" bson:"customerId"`
	Label      string    `json:"label" bson:"label"`
	Recipient  string    `json:"recipient" bson:"recipient"`
	Phone      string    `json:"phone" bson:"phone"`
	Line1      string    `json:"line1" bson:"line1"`
	Area       string    `json:"area,omitempty" bson:"area,omitempty"`
	City       string    `json:"city" bson:"city"`
	PostalCode string    `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string    `json:"country" bson:"country"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}
