package repository

import (
	"context"

	"procurehub/internal/domain/entity"
)

type BidRepository interface {
	Create(ctx context.Context, bid *entity.Bid) error
	GetByID(ctx context.Context, id string) (*entity.Bid, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Bid, error)
	Delete(ctx context.Context, id string) error
}

type RequirementRepository interface {
	Create(ctx context.Context, req *entity.Requirement) error
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Requirement, error)

	// FindOpen returns the pending, undeleted requirement for the given
	// product/buyer pair carrying the given seller, if any.
	FindOpen(ctx context.Context, productID, buyerID, sellerID string) (*entity.Requirement, error)

	// MarkApproved flips requirementApproved on the given requirement.
	MarkApproved(ctx context.Context, id string) error

	CreateApproved(ctx context.Context, approved *entity.ApprovedRequirement) error
}
