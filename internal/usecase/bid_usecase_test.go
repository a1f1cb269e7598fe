package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"procurehub/internal/domain/entity"
	"procurehub/pkg/errors"
)

func newBidFixture() (*BidUseCase, *memBidRepo, *memProductRepo, *memUserRepo, *memRequirementRepo) {
	bidRepo := newMemBidRepo()
	productRepo := newMemProductRepo()
	userRepo := newMemUserRepo()
	requirementRepo := newMemRequirementRepo()
	uc := NewBidUseCase(bidRepo, productRepo, userRepo, requirementRepo)
	return uc, bidRepo, productRepo, userRepo, requirementRepo
}

func TestCreateBid(t *testing.T) {
	t.Run("creates the bid and its companion requirement", func(t *testing.T) {
		req := require.New(t)
		uc, _, productRepo, _, requirementRepo := newBidFixture()
		productRepo.Create(context.Background(), &entity.Product{ID: "prod-1"})

		bid, err := uc.CreateBid(context.Background(), "buyer-1", CreateBidInput{
			SellerID:  "seller-1",
			ProductID: "prod-1",
			Budget:    1200,
		})

		req.NoError(err)
		req.Equal("active", bid.Status)

		open, err := requirementRepo.FindOpen(context.Background(), "prod-1", "buyer-1", "seller-1")
		req.NoError(err)
		req.Equal(1200.0, open.Sellers[0].BudgetAmount)
	})

	t.Run("rejects a missing budget", func(t *testing.T) {
		req := require.New(t)
		uc, _, productRepo, _, _ := newBidFixture()
		productRepo.Create(context.Background(), &entity.Product{ID: "prod-1"})

		_, err := uc.CreateBid(context.Background(), "buyer-1", CreateBidInput{
			SellerID:  "seller-1",
			ProductID: "prod-1",
		})

		req.Error(err)
		req.True(errors.Is(err, "BAD_REQUEST"))
	})

	t.Run("rejects an unknown product", func(t *testing.T) {
		req := require.New(t)
		uc, _, _, _, _ := newBidFixture()

		_, err := uc.CreateBid(context.Background(), "buyer-1", CreateBidInput{
			SellerID:  "seller-1",
			ProductID: "prod-missing",
			Budget:    500,
		})

		req.Error(err)
		req.True(errors.Is(err, "NOT_FOUND"))
	})
}

func TestListBuyerBids(t *testing.T) {
	req := require.New(t)
	uc, _, productRepo, userRepo, _ := newBidFixture()
	productRepo.Create(context.Background(), &entity.Product{ID: "prod-1", Title: "Cement bags"})
	userRepo.Create(context.Background(), &entity.User{ID: "seller-1", FirstName: "Meera"})

	_, err := uc.CreateBid(context.Background(), "buyer-1", CreateBidInput{
		SellerID:  "seller-1",
		ProductID: "prod-1",
		Budget:    800,
	})
	req.NoError(err)

	bids, err := uc.ListBuyerBids(context.Background(), "buyer-1")

	req.NoError(err)
	req.Len(bids, 1)
	req.Equal("Cement bags", bids[0].Product.Title)
	req.Equal("Meera", bids[0].Seller.FirstName)
}

func TestDeleteBid(t *testing.T) {
	t.Run("only the owning buyer may delete", func(t *testing.T) {
		req := require.New(t)
		uc, _, productRepo, _, _ := newBidFixture()
		productRepo.Create(context.Background(), &entity.Product{ID: "prod-1"})

		bid, err := uc.CreateBid(context.Background(), "buyer-1", CreateBidInput{
			SellerID:  "seller-1",
			ProductID: "prod-1",
			Budget:    500,
		})
		req.NoError(err)

		err = uc.DeleteBid(context.Background(), "buyer-2", bid.ID)
		req.True(errors.Is(err, "FORBIDDEN"))

		err = uc.DeleteBid(context.Background(), "buyer-1", bid.ID)
		req.NoError(err)
	})
}
