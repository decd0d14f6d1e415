package postgres

import (
	"context"

	"voltstore/internal/domain/entity"
	domainerrors "voltstore/internal/domain/errors"
	"voltstore/internal/domain/repository"
	"voltstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID, active or not.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindAllActive retrieves every active product.
func (repo *productRepository) FindAllActive(ctx context.Context) ([]*entity.Product, error) {
	var productsM []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name").
		Find(&productsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	return toProductDomainList(productsM), nil
}

// FindByCategoryActive retrieves the active products of a category.
func (repo *productRepository) FindByCategoryActive(ctx context.Context, category string) ([]*entity.Product, error) {
	var productsM []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("category = ? AND active = ?", category, true).
		Order("name").
		Find(&productsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return toProductDomainList(productsM), nil
}

// FindByBrandActive retrieves the active products of a brand.
func (repo *productRepository) FindByBrandActive(ctx context.Context, brand string) ([]*entity.Product, error) {
	var productsM []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("brand = ? AND active = ?", brand, true).
		Order("name").
		Find(&productsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by brand")
	}

	return toProductDomainList(productsM), nil
}

// Create persists a new product entity.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Save writes back every field of an existing product, including the Active
// flag used for soft deletes.
func (repo *productRepository) Save(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		ImageURL:      data.ImageURL,
		StockQuantity: data.StockQuantity,
		Category:      data.Category,
		Brand:         data.Brand,
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toProductDomainList(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		ImageURL:      data.ImageURL,
		StockQuantity: data.StockQuantity,
		Category:      data.Category,
		Brand:         data.Brand,
		Active:        data.Active,
	}
}
