package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"estoque/internal/model"
	"estoque/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create stores a new product. Name and kind are required.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if input.Name == nil {
		return nil, model.ErrMissingName
	}
	if input.Kind == nil {
		return nil, model.ErrMissingKind
	}
	if err := validateInput(input); err != nil {
		s.logger.Debug().Err(err).Msg("rejected product input")
		return nil, err
	}

	product, err := s.productRepo.Create(ctx, input)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("kind", string(product.Kind)).
		Msg("product created")

	return product, nil
}

// Update applies the supplied fields. Omitted fields keep their stored value.
func (s *productService) Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error) {
	if err := validateInput(input); err != nil {
		s.logger.Debug().Err(err).Int64("product_id", id).Msg("rejected product input")
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, input)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product permanently.
func (s *productService) Delete(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return product, nil
}

// validateInput checks the fields that are present in the input.
func validateInput(input model.ProductInput) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return model.ErrEmptyName
	}
	if input.Kind != nil && !input.Kind.Valid() {
		return model.ErrInvalidKind
	}
	if input.Quantity != nil && (*input.Quantity < 0 || *input.Quantity > math.MaxInt32) {
		return model.ErrInvalidQuantity
	}
	return nil
}

func isDomainError(err error) bool {
	var domainErr *model.DomainError
	return errors.As(err, &domainErr)
}
