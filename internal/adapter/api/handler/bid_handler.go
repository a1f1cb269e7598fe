package handler

import (
	"github.com/labstack/echo/v4"

	"procurehub/internal/usecase"
	"procurehub/pkg/response"
)

type BidHandler struct {
	bidUseCase *usecase.BidUseCase
}

func NewBidHandler(bidUseCase *usecase.BidUseCase) *BidHandler {
	return &BidHandler{
		bidUseCase: bidUseCase,
	}
}

type createBidRequest struct {
	Budget             float64 `json:"budget" validate:"required,gt=0"`
	Status             string  `json:"status" validate:"omitempty,oneof=active inactive"`
	AvailableBrand     string  `json:"availableBrand"`
	EarliestDeliveryBy string  `json:"earliestDeliveryBy"`
}

func (h *BidHandler) CreateBid(c echo.Context) error {
	var req createBidRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	bid, err := h.bidUseCase.CreateBid(c.Request().Context(), buyerID, usecase.CreateBidInput{
		SellerID:           c.Param("sellerId"),
		ProductID:          c.Param("productId"),
		Budget:             req.Budget,
		Status:             req.Status,
		AvailableBrand:     req.AvailableBrand,
		EarliestDeliveryBy: req.EarliestDeliveryBy,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, bid)
}

func (h *BidHandler) ListBids(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	bids, err := h.bidUseCase.ListBuyerBids(c.Request().Context(), buyerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, bids)
}

func (h *BidHandler) DeleteBid(c echo.Context) error {
	buyerID := c.Get("uid").(string)

	if err := h.bidUseCase.DeleteBid(c.Request().Context(), buyerID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Bid deleted successfully"})
}
