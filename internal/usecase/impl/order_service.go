package impl

import (
	"context"
	"log/slog"
	"time"

	"voltstore/internal/domain/entity"
	domainerrors "voltstore/internal/domain/errors"
	"voltstore/internal/domain/repository"
	"voltstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for the order service, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// PlaceOrder creates a PENDING order from the given items. Product lookups and
// the order insert share one transaction so the captured prices and the rows
// written cannot drift apart.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyOrder.WrapMessage("place order failed")
	}

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		items := make([]*entity.OrderItem, 0, len(input.Items))
		total := decimal.Zero
		for _, in := range input.Items {
			if in.Quantity <= 0 {
				return domainerrors.ErrInvalidQuantity.WrapMessage("place order failed")
			}

			product, err := productRepo.FindByID(ctx, in.ProductID)
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductUnavailable.WithDetails("product " + in.ProductID.String() + " does not exist")
			}
			if err != nil {
				return errors.Wrap(err, "failed to load product for order")
			}
			if !product.Active {
				return domainerrors.ErrProductUnavailable.WithDetails("product " + in.ProductID.String() + " is inactive")
			}

			item := &entity.OrderItem{
				ProductID:       product.ID,
				Quantity:        in.Quantity,
				PriceAtPurchase: product.Price,
			}
			items = append(items, item)
			total = total.Add(item.LineTotal())
		}

		order := &entity.Order{
			UserID:      input.UserID,
			Items:       items,
			OrderDate:   time.Now(),
			TotalAmount: total,
			Status:      entity.OrderStatusPending,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.WithStack(err)
		}
		placed = order

		return nil
	})

	if err != nil {
		srv.logger.Warn("Place order failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute place order transaction")
	}

	srv.logger.Info("Order placed", slog.Any("orderID", placed.ID), slog.String("total", placed.TotalAmount.String()))

	return placed, nil
}

// ListByUser returns every order placed by the given user.
func (srv *orderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)

	return orders, errors.Wrap(err, "failed to list orders by user")
}

// ListByStatus returns every order currently in the given status.
func (srv *orderService) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("list orders failed")
	}

	orders, err := srv.orderRepo.FindByStatus(ctx, status)

	return orders, errors.Wrap(err, "failed to list orders by status")
}

// UpdateStatus moves an order to a new lifecycle state.
func (srv *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("update order status failed")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("update order status failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order for status update")
	}

	order.Status = status
	if err := srv.orderRepo.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}

	srv.logger.Info("Order status updated", slog.Any("orderID", order.ID), slog.String("status", status.String()))

	return order, nil
}
