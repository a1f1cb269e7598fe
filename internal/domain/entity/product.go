package entity

import "time"

type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Title         string    `json:"title" bson:"title"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	MinimumBudget float64   `json:"minimumBudget" bson:"minimumBudget"`
	ProductType   string    `json:"productType" bson:"productType"` // "new_product" or "old_product"
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Draft         bool      `json:"draft" bson:"draft"`
	CategoryID    string    `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	SubCategory   string    `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	UserID        string    `json:"userId" bson:"userId"`
	Image         string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// ProductSummary is the projection attached to recent chats and bid listings.
type ProductSummary struct {
	ID            string  `json:"id" bson:"_id,omitempty"`
	Title         string  `json:"title" bson:"title"`
	Quantity      int     `json:"quantity" bson:"quantity"`
	MinimumBudget float64 `json:"minimumBudget" bson:"minimumBudget"`
	Image         string  `json:"image,omitempty" bson:"image,omitempty"`
}

func (p *Product) Summary() *ProductSummary {
	return &ProductSummary{
		ID:            p.ID,
		Title:         p.Title,
		Quantity:      p.Quantity,
		MinimumBudget: p.MinimumBudget,
		Image:         p.Image,
	}
}

type Category struct {
	ID            string   `json:"id" bson:"_id,omitempty"`
	CategoryName  string   `json:"categoryName" bson:"categoryName"`
	SubCategories []string `json:"subCategories" bson:"subCategories"`
}
