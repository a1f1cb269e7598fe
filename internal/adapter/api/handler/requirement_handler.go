package handler

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/usecase"
	"procurehub/pkg/response"
)

type RequirementHandler struct {
	requirementUseCase *usecase.RequirementUseCase
}

func NewRequirementHandler(requirementUseCase *usecase.RequirementUseCase) *RequirementHandler {
	return &RequirementHandler{
		requirementUseCase: requirementUseCase,
	}
}

type createRequirementRequest struct {
	ProductID    string  `json:"productId" validate:"required"`
	SellerID     string  `json:"sellerId" validate:"required"`
	BudgetAmount float64 `json:"budgetAmount" validate:"required,gt=0"`
}

func (h *RequirementHandler) CreateRequirement(c echo.Context) error {
	var req createRequirementRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	requirement, err := h.requirementUseCase.CreateRequirement(c.Request().Context(), usecase.CreateRequirementInput{
		ProductID:    req.ProductID,
		BuyerID:      buyerID,
		SellerID:     req.SellerID,
		BudgetAmount: req.BudgetAmount,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, requirement)
}

func (h *RequirementHandler) ListRequirements(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	requirements, err := h.requirementUseCase.ListBuyerRequirements(c.Request().Context(), buyerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, requirements)
}
