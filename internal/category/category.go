package category

// Category groups products for storefront navigation. NameBN carries the
// Bengali display name shown alongside the English one.
type Category struct {
	ID       string `json:"categoryId" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	NameBN   string `json:"nameBn,omitempty" bson:"nameBn,omitempty"`
	Slug     string `json:"slug" bson:"slug"`
	ImageURL string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}
