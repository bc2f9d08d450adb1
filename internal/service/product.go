package service

import (
	"context"
	"strings"

	"github.com/ricehouse/ricepos/internal/api/dto"
	"github.com/ricehouse/ricepos/internal/domain/product"
	ierr "github.com/ricehouse/ricepos/internal/errors"
	"github.com/ricehouse/ricepos/internal/types"
	"github.com/samber/lo"
)

// ProductService is the catalog: the product registry and stock control.
type ProductService interface {
	Add(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id string) (*dto.ProductResponse, error)
	Search(ctx context.Context, keyword string) ([]*dto.ProductResponse, error)
	HasStock(ctx context.Context, id string, qty int64) (bool, error)
	Reserve(ctx context.Context, id string, qty int64) error
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{
		ServiceParams: params,
	}
}

func (s *productService) Add(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prod := req.ToProduct(ctx, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT))
	if err := s.ProductRepo.Create(ctx, prod); err != nil {
		return nil, err
	}

	s.Logger.Debugw("added product", "product_id", prod.ID, "name", prod.Name)
	return &dto.ProductResponse{Product: prod}, nil
}

func (s *productService) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	prod, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{Product: prod}, nil
}

// Search returns products whose name contains the keyword, case
// insensitively. An empty keyword returns the whole catalog.
func (s *productService) Search(ctx context.Context, keyword string) ([]*dto.ProductResponse, error) {
	products, err := s.ProductRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword != "" {
		products = lo.Filter(products, func(p *product.Product, _ int) bool {
			return strings.Contains(strings.ToLower(p.Name), keyword)
		})
	}

	return lo.Map(products, func(p *product.Product, _ int) *dto.ProductResponse {
		return &dto.ProductResponse{Product: p}
	}), nil
}

func (s *productService) HasStock(ctx context.Context, id string, qty int64) (bool, error) {
	if qty <= 0 {
		return false, ierr.NewError("invalid quantity").
			WithHint("Quantity must be greater than zero").
			Mark(ierr.ErrValidation)
	}

	prod, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return false, err
	}

	return prod.HasStock(qty), nil
}

// Reserve atomically checks and decrements stock for an add-to-cart
// action. On insufficient stock nothing changes and the caller gets a
// distinguishable error.
func (s *productService) Reserve(ctx context.Context, id string, qty int64) error {
	if qty <= 0 {
		return ierr.NewError("invalid quantity").
			WithHint("Quantity must be greater than zero").
			Mark(ierr.ErrValidation)
	}

	if err := s.ProductRepo.DecrementStock(ctx, id, qty); err != nil {
		return err
	}

	s.Logger.Debugw("reserved stock", "product_id", id, "quantity", qty)
	return nil
}
