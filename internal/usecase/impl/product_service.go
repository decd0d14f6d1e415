package impl

import (
	"context"
	"log/slog"

	"voltstore/internal/domain/entity"
	domainerrors "voltstore/internal/domain/errors"
	"voltstore/internal/domain/repository"
	"voltstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface. Pure field
// copy-and-save; there are no business rules beyond soft delete.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for the product service, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// List returns every active product.
func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAllActive(ctx)

	return products, errors.Wrap(err, "failed to list products")
}

// Get returns a product by ID, active or not.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("get product failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// ListByCategory returns the active products of a category.
func (srv *productService) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByCategoryActive(ctx, category)

	return products, errors.Wrap(err, "failed to list products by category")
}

// ListByBrand returns the active products of a brand.
func (srv *productService) ListByBrand(ctx context.Context, brand string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByBrandActive(ctx, brand)

	return products, errors.Wrap(err, "failed to list products by brand")
}

// Create adds a new product to the catalog. New products default to active.
func (srv *productService) Create(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		ImageURL:      input.ImageURL,
		StockQuantity: input.StockQuantity,
		Category:      input.Category,
		Brand:         input.Brand,
		Active:        true,
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// Update overwrites every mutable field of an existing product.
func (srv *productService) Update(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("update product failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product for update")
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	product.StockQuantity = input.StockQuantity
	product.Category = input.Category
	product.Brand = input.Brand
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := srv.productRepo.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	return product, nil
}

// Delete soft-deletes a product: the row stays, the Active flag is cleared.
func (srv *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound.WrapMessage("delete product failed")
	}
	if err != nil {
		return errors.Wrap(err, "failed to load product for delete")
	}

	product.Active = false
	if err := srv.productRepo.Save(ctx, product); err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	srv.logger.Info("Product deactivated", slog.Any("productID", product.ID))

	return nil
}
