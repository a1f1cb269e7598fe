package usecase

import (
	"context"

	"procurehub/internal/domain/entity"
	"procurehub/internal/domain/repository"
	"procurehub/pkg/errors"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

type CreateProductInput struct {
	Title         string
	Quantity      int
	MinimumBudget float64
	ProductType   string
	Description   string
	Draft         bool
	CategoryID    string
	SubCategory   string
	Image         string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, userID string, input CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Title:         input.Title,
		Quantity:      input.Quantity,
		MinimumBudget: input.MinimumBudget,
		ProductType:   input.ProductType,
		Description:   input.Description,
		Draft:         input.Draft,
		CategoryID:    input.CategoryID,
		SubCategory:   input.SubCategory,
		UserID:        userID,
		Image:         input.Image,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.List(ctx, limit, offset)
}

func (uc *ProductUseCase) ListMyProducts(ctx context.Context, userID string) ([]*entity.Product, error) {
	return uc.productRepo.ListByUser(ctx, userID)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, userID, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.UserID != userID {
		return errors.Forbidden("Not authorized to delete this product", nil)
	}
	return uc.productRepo.Delete(ctx, id)
}

func (uc *ProductUseCase) CreateCategory(ctx context.Context, category *entity.Category) error {
	if category.CategoryName == "" {
		return errors.BadRequest("categoryName is required", nil)
	}
	return uc.categoryRepo.Create(ctx, category)
}

func (uc *ProductUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}
