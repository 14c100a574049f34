package customer

import "time"

// Customer is a registered storefront account. Orders reference customers by
// id and customers keep a denormalized set of their order ids.
type Customer struct {
	ID        string `json:"customerId" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"password,omitempty" bson:"password"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Phone     string `json:"phone" bson:"phone"`

	// OrderIDs is maintained with set semantics: an order id is never
	// inserted twice.
	OrderIDs           []string `json:"orderIds,omitempty" bson:"orderIds,omitempty"`
	FavoriteProductIDs []string `json:"favoriteProductIds,omitempty" bson:"favoriteProductIds,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FullName joins first and last name for denormalized order snapshots.
func (c Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
