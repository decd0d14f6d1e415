package impl

import (
	"context"
	"testing"

	domainerrors "voltstore/internal/domain/errors"
	"voltstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductServiceForTest() (usecase.ProductUsecase, *memoryProductRepo) {
	productRepo := newMemoryProductRepo()
	svc := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      newTestLogger(),
	})

	return svc, productRepo
}

func laptopInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:          "ThinkBook 14",
		Description:   "14-inch business laptop",
		Price:         decimal.RequireFromString("899.99"),
		ImageURL:      "https://img.example.com/thinkbook.png",
		StockQuantity: 12,
		Category:      "laptops",
		Brand:         "Lenovo",
	}
}

func TestProductCreate_DefaultsToActive(t *testing.T) {
	svc, _ := newProductServiceForTest()

	product, err := svc.Create(context.Background(), laptopInput())
	require.NoError(t, err)

	assert.True(t, product.Active)
	assert.NotEmpty(t, product.ID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("899.99")))
}

func TestProductList_OmitsInactive(t *testing.T) {
	svc, _ := newProductServiceForTest()

	active, err := svc.Create(context.Background(), laptopInput())
	require.NoError(t, err)

	hidden := laptopInput()
	hidden.Name = "Discontinued"
	inactive := false
	hidden.Active = &inactive
	_, err = svc.Create(context.Background(), hidden)
	require.NoError(t, err)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, active.ID, products[0].ID)
}

func TestProductGet_ReturnsInactiveProduct(t *testing.T) {
	svc, _ := newProductServiceForTest()

	product, err := svc.Create(context.Background(), laptopInput())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), product.ID))

	// Direct lookup still works after a soft delete.
	got, err := svc.Get(context.Background(), product.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestProductGet_NotFound(t *testing.T) {
	svc, _ := newProductServiceForTest()

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductUpdate_OverwritesFields(t *testing.T) {
	svc, _ := newProductServiceForTest()

	product, err := svc.Create(context.Background(), laptopInput())
	require.NoError(t, err)

	input := laptopInput()
	input.Price = decimal.RequireFromString("799.00")
	input.StockQuantity = 3

	updated, err := svc.Update(context.Background(), product.ID, input)
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(decimal.RequireFromString("799.00")))
	assert.Equal(t, 3, updated.StockQuantity)
}

func TestProductUpdate_NotFound(t *testing.T) {
	svc, _ := newProductServiceForTest()

	_, err := svc.Update(context.Background(), uuid.New(), laptopInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductDelete_IsSoft(t *testing.T) {
	svc, productRepo := newProductServiceForTest()

	product, err := svc.Create(context.Background(), laptopInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), product.ID))

	// The row is still there, just inactive.
	stored, err := productRepo.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductDelete_NotFound(t *testing.T) {
	svc, _ := newProductServiceForTest()

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductListByCategoryAndBrand(t *testing.T) {
	svc, _ := newProductServiceForTest()

	_, err := svc.Create(context.Background(), laptopInput())
	require.NoError(t, err)

	phone := laptopInput()
	phone.Name = "Pixel 9"
	phone.Category = "phones"
	phone.Brand = "Google"
	_, err = svc.Create(context.Background(), phone)
	require.NoError(t, err)

	laptops, err := svc.ListByCategory(context.Background(), "laptops")
	require.NoError(t, err)
	require.Len(t, laptops, 1)
	assert.Equal(t, "ThinkBook 14", laptops[0].Name)

	google, err := svc.ListByBrand(context.Background(), "Google")
	require.NoError(t, err)
	require.Len(t, google, 1)
	assert.Equal(t, "Pixel 9", google[0].Name)

	none, err := svc.ListByCategory(context.Background(), "tablets")
	require.NoError(t, err)
	assert.Empty(t, none)
}
