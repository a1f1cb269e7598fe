package usecase

import (
	"context"

	"procurehub/internal/domain/entity"
	"procurehub/internal/domain/repository"
	"procurehub/pkg/errors"
)

type RequirementUseCase struct {
	requirementRepo repository.RequirementRepository
	productRepo     repository.ProductRepository
}

func NewRequirementUseCase(
	requirementRepo repository.RequirementRepository,
	productRepo repository.ProductRepository,
) *RequirementUseCase {
	return &RequirementUseCase{
		requirementRepo: requirementRepo,
		productRepo:     productRepo,
	}
}

type CreateRequirementInput struct {
	ProductID    string
	BuyerID      string
	SellerID     string
	BudgetAmount float64
}

// CreateRequirement records a seller's bid against a buyer's product
// posting.
func (uc *RequirementUseCase) CreateRequirement(ctx context.Context, input CreateRequirementInput) (*entity.Requirement, error) {
	if input.BuyerID == "" {
		return nil, errors.BadRequest("Buyer not authenticated", nil)
	}
	if input.BudgetAmount <= 0 {
		return nil, errors.BadRequest("Invalid budgetAmount", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	req := &entity.Requirement{
		ProductID: input.ProductID,
		BuyerID:   input.BuyerID,
		Sellers: []entity.RequirementSeller{
			{SellerID: input.SellerID, BudgetAmount: input.BudgetAmount},
		},
		DealStatus: "pending",
	}

	if err := uc.requirementRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (uc *RequirementUseCase) ListBuyerRequirements(ctx context.Context, buyerID string) ([]*entity.Requirement, error) {
	if buyerID == "" {
		return nil, errors.BadRequest("Buyer not authenticated", nil)
	}
	return uc.requirementRepo.ListByBuyer(ctx, buyerID)
}

// ApproveOnChatStart marks the open requirement between the pair as
// approved and records the approval snapshot. It reports updated=false
// with a reason when there is nothing to approve; that is not an error.
func (uc *RequirementUseCase) ApproveOnChatStart(ctx context.Context, productID, buyerID, sellerID string) (bool, string, error) {
	req, err := uc.requirementRepo.FindOpen(ctx, productID, buyerID, sellerID)
	if errors.Is(err, "NOT_FOUND") {
		return false, "no open requirement for this chat", nil
	}
	if err != nil {
		return false, "", err
	}

	if req.RequirementApproved {
		return false, "requirement already approved", nil
	}

	var sellerDetails entity.RequirementSeller
	for _, s := range req.Sellers {
		if s.SellerID == sellerID {
			sellerDetails = s
			break
		}
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return false, "", err
	}

	if err := uc.requirementRepo.MarkApproved(ctx, req.ID); err != nil {
		return false, "", err
	}

	approved := &entity.ApprovedRequirement{
		ProductID:     productID,
		BuyerID:       buyerID,
		SellerDetails: sellerDetails,
		MinBudget:     product.MinimumBudget,
	}
	if err := uc.requirementRepo.CreateApproved(ctx, approved); err != nil {
		return false, "", err
	}

	return true, "", nil
}
