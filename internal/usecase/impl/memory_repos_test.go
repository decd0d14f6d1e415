package impl

import (
	"context"
	"sync"

	"voltstore/internal/domain/entity"
	"voltstore/internal/domain/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests. They honor the same
// sentinel errors as the real repositories so the services cannot tell the
// difference.

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *memoryUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}

	return false, nil
}

func (r *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}

	return false, nil
}

func (r *memoryUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.users)), nil
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users[user.ID] = &copied

	return nil
}

type memoryProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newMemoryProductRepo() *memoryProductRepo {
	return &memoryProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *memoryProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *product

	return &copied, nil
}

func (r *memoryProductRepo) FindAllActive(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Product
	for _, product := range r.products {
		if product.Active {
			copied := *product
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *memoryProductRepo) FindByCategoryActive(_ context.Context, category string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Product
	for _, product := range r.products {
		if product.Active && product.Category == category {
			copied := *product
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *memoryProductRepo) FindByBrandActive(_ context.Context, brand string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Product
	for _, product := range r.products {
		if product.Active && product.Brand == brand {
			copied := *product
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *memoryProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	copied := *product
	r.products[product.ID] = &copied

	return nil
}

func (r *memoryProductRepo) Save(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *product
	r.products[product.ID] = &copied

	return nil
}

type memoryOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
}

func newMemoryOrderRepo() *memoryOrderRepo {
	return &memoryOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *memoryOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	copied := *order

	return &copied, nil
}

func (r *memoryOrderRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			copied := *order
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *memoryOrderRepo) FindByStatus(_ context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Order
	for _, order := range r.orders {
		if order.Status == status {
			copied := *order
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *memoryOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for _, item := range order.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID
	}
	copied := *order
	r.orders[order.ID] = &copied

	return nil
}

func (r *memoryOrderRepo) Save(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *order
	r.orders[order.ID] = &copied

	return nil
}

// memoryTxManager runs the callback directly against the in-memory fakes.
// Rollback is not simulated; tests assert on the returned errors instead.
type memoryTxManager struct {
	users    *memoryUserRepo
	products *memoryProductRepo
	orders   *memoryOrderRepo
}

type memoryRepoFactory struct {
	tm *memoryTxManager
}

func (f *memoryRepoFactory) UserRepo() repository.UserRepository {
	return f.tm.users
}

func (f *memoryRepoFactory) ProductRepo() repository.ProductRepository {
	return f.tm.products
}

func (f *memoryRepoFactory) OrderRepo() repository.OrderRepository {
	return f.tm.orders
}

func (tm *memoryTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&memoryRepoFactory{tm: tm})
}
