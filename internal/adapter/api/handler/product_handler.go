package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"procurehub/internal/domain/entity"
	"procurehub/internal/usecase"
	"procurehub/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	Title         string  `json:"title" validate:"required"`
	Quantity      int     `json:"quantity" validate:"required,min=1"`
	MinimumBudget float64 `json:"minimumBudget" validate:"required,min=0"`
	ProductType   string  `json:"productType" validate:"required,oneof=new_product old_product"`
	Description   string  `json:"description"`
	Draft         bool    `json:"draft"`
	CategoryID    string  `json:"categoryId"`
	SubCategory   string  `json:"subCategory"`
	Image         string  `json:"image"`
}

type createCategoryRequest struct {
	CategoryName  string   `json:"categoryName" validate:"required"`
	SubCategories []string `json:"subCategories"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), userID, usecase.CreateProductInput{
		Title:         req.Title,
		Quantity:      req.Quantity,
		MinimumBudget: req.MinimumBudget,
		ProductType:   req.ProductType,
		Description:   req.Description,
		Draft:         req.Draft,
		CategoryID:    req.CategoryID,
		SubCategory:   req.SubCategory,
		Image:         req.Image,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), limit, offset)
	if err != nil {
		return response.Error(c, err)
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := offset/limit + 1
	return response.Paginated(c, products, total, page, limit)
}

func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	userID := c.Get("uid").(string)

	products, err := h.productUseCase.ListMyProducts(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Product deleted successfully"})
}

func (h *ProductHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category := &entity.Category{
		CategoryName:  req.CategoryName,
		SubCategories: req.SubCategories,
	}
	if err := h.productUseCase.CreateCategory(c.Request().Context(), category); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, category)
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.productUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}
