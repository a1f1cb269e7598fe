package entity

import "time"

// Bid is a seller's offer on a buyer's posted product requirement.
type Bid struct {
	ID                 string    `json:"id" bson:"_id,omitempty"`
	SellerID           string    `json:"sellerId" bson:"sellerId"`
	BuyerID            string    `json:"buyerId" bson:"buyerId"`
	ProductID          string    `json:"productId" bson:"productId"`
	Budget             float64   `json:"budget" bson:"budget"`
	Status             string    `json:"status" bson:"status"` // "active" or "inactive"
	AvailableBrand     string    `json:"availableBrand,omitempty" bson:"availableBrand,omitempty"`
	EarliestDeliveryBy string    `json:"earliestDeliveryBy,omitempty" bson:"earliestDeliveryBy,omitempty"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// RequirementSeller is one seller's entry on a requirement.
type RequirementSeller struct {
	SellerID     string  `json:"sellerId" bson:"sellerId"`
	BudgetAmount float64 `json:"budgetAmount" bson:"budgetAmount"`
}

// Requirement tracks the deal state between a buyer's product posting and
// the sellers bidding on it.
type Requirement struct {
	ID                  string              `json:"id" bson:"_id,omitempty"`
	ProductID           string              `json:"productId" bson:"productId"`
	BuyerID             string              `json:"buyerId" bson:"buyerId"`
	Sellers             []RequirementSeller `json:"sellers" bson:"sellers"`
	DealStatus          string              `json:"dealStatus" bson:"dealStatus"` // "pending" or "completed"
	RequirementApproved bool                `json:"requirementApproved" bson:"requirementApproved"`
	IsDelete            bool                `json:"isDelete" bson:"isDelete"`
	CreatedAt           time.Time           `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt           time.Time           `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// ApprovedRequirement is the snapshot written when a requirement is
// approved on chat start.
type ApprovedRequirement struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	ProductID     string            `json:"productId" bson:"productId"`
	BuyerID       string            `json:"buyerId" bson:"buyerId"`
	SellerDetails RequirementSeller `json:"sellerDetails" bson:"sellerDetails"`
	MinBudget     float64           `json:"minBudget" bson:"minBudget"`
	Date          time.Time         `json:"date" bson:"date"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt,omitempty"`
}
