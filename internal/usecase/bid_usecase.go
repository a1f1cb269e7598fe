package usecase

import (
	"context"

	"procurehub/internal/domain/entity"
	"procurehub/internal/domain/repository"
	"procurehub/pkg/errors"
	"procurehub/pkg/logger"
)

type BidUseCase struct {
	bidRepo         repository.BidRepository
	productRepo     repository.ProductRepository
	userRepo        repository.UserRepository
	requirementRepo repository.RequirementRepository
}

func NewBidUseCase(
	bidRepo repository.BidRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	requirementRepo repository.RequirementRepository,
) *BidUseCase {
	return &BidUseCase{
		bidRepo:         bidRepo,
		productRepo:     productRepo,
		userRepo:        userRepo,
		requirementRepo: requirementRepo,
	}
}

type CreateBidInput struct {
	SellerID           string
	ProductID          string
	Budget             float64
	Status             string
	AvailableBrand     string
	EarliestDeliveryBy string
}

// BidResponse joins a bid with its product and seller projections.
type BidResponse struct {
	*entity.Bid
	Product *entity.ProductSummary `json:"product,omitempty"`
	Seller  *entity.UserSummary    `json:"seller,omitempty"`
}

// CreateBid records a seller's offer and opens the matching requirement
// so the chat approval flow can find it later.
func (uc *BidUseCase) CreateBid(ctx context.Context, buyerID string, input CreateBidInput) (*entity.Bid, error) {
	if input.Budget <= 0 {
		return nil, errors.BadRequest("Budget is required", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = "active"
	}

	bid := &entity.Bid{
		SellerID:           input.SellerID,
		BuyerID:            buyerID,
		ProductID:          input.ProductID,
		Budget:             input.Budget,
		Status:             status,
		AvailableBrand:     input.AvailableBrand,
		EarliestDeliveryBy: input.EarliestDeliveryBy,
	}

	if err := uc.bidRepo.Create(ctx, bid); err != nil {
		return nil, err
	}

	// The companion requirement is bookkeeping for the deal flow; a
	// failure there does not undo the bid.
	req := &entity.Requirement{
		ProductID: input.ProductID,
		BuyerID:   buyerID,
		Sellers: []entity.RequirementSeller{
			{SellerID: input.SellerID, BudgetAmount: input.Budget},
		},
		DealStatus: "pending",
	}
	if err := uc.requirementRepo.Create(ctx, req); err != nil {
		logger.Warn("Failed to create requirement for bid %s: %v", bid.ID, err)
	}

	return bid, nil
}

func (uc *BidUseCase) ListBuyerBids(ctx context.Context, buyerID string) ([]*BidResponse, error) {
	bids, err := uc.bidRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp := &BidResponse{Bid: bid}

		if product, err := uc.productRepo.GetByID(ctx, bid.ProductID); err == nil {
			resp.Product = product.Summary()
		}
		if seller, err := uc.userRepo.GetByID(ctx, bid.SellerID); err == nil {
			resp.Seller = seller.Summary()
		}

		responses = append(responses, resp)
	}
	return responses, nil
}

func (uc *BidUseCase) DeleteBid(ctx context.Context, buyerID, bidID string) error {
	bid, err := uc.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return err
	}
	if bid.BuyerID != buyerID {
		return errors.Forbidden("Not authorized to delete this bid", nil)
	}
	return uc.bidRepo.Delete(ctx, bidID)
}
