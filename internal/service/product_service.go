package service

import (
	"context"
	"strings"

	"go-multidb-api/internal/model"
	"go-multidb-api/pkg/apierror"
)

type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, product model.Product) (model.Product, error)
	Update(ctx context.Context, product model.Product) (model.Product, error)
	Delete(ctx context.Context, id int64) error
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (model.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req model.ProductRequest) (model.Product, error) {
	if err := validateProduct(req); err != nil {
		return model.Product{}, err
	}

	return s.products.Create(ctx, model.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Stock:       req.Stock,
	})
}

func (s *ProductService) Update(ctx context.Context, id int64, req model.ProductRequest) (model.Product, error) {
	if err := validateProduct(req); err != nil {
		return model.Product{}, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Description = strings.TrimSpace(req.Description)
	product.Price = req.Price
	product.Stock = req.Stock

	return s.products.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}

func validateProduct(req model.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apierror.BadRequest("Product name is required")
	}
	if req.Price < 0 {
		return apierror.BadRequest("Price cannot be negative")
	}
	if req.Stock < 0 {
		return apierror.BadRequest("Stock cannot be negative")
	}

	return nil
}
