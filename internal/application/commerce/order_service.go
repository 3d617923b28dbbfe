package commerce

import (
	"context"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/commerce"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// OrderService places storefront orders from carts and manages them afterwards
type OrderService struct {
	txScope   common.TransactionScope
	sequencer shared.NumberSequencer
	cartRepo  commerce.CartRepository
	orderRepo commerce.OrderRepository
	pricing   commerce.Pricing
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	txScope common.TransactionScope,
	sequencer shared.NumberSequencer,
	cartRepo commerce.CartRepository,
	orderRepo commerce.OrderRepository,
	pricing commerce.Pricing,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		txScope:   txScope,
		sequencer: sequencer,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		pricing:   pricing,
		logger:    logger,
	}
}

// SetEventPublisher sets the publisher for order.placed
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// Checkout turns the caller's cart into a pending order. Numbering, the order,
// clearing the cart and one outbound movement per item commit together.
func (s *OrderService) Checkout(ctx context.Context, scope identity.Scope, req CheckoutRequest) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "OrderService", "Checkout")
	defer span.End()

	cart, err := s.cartRepo.FindByUser(ctx, scope.UserID)
	if err != nil {
		return nil, err
	}
	order, err := commerce.PlaceOrder(scope.UserID, cart, s.pricing, commerce.CheckoutDetails{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("order.items", len(order.Items)))

	err = s.sequencer.WithNext(ctx, shared.OrderNumbering, 0, func(ctx context.Context, number string) error {
		order.AssignNumber(number)
		return s.txScope.Execute(ctx, func(repos common.TransactionalRepositories) error {
			if err := repos.Orders().Save(ctx, order); err != nil {
				return err
			}
			if _, err := repos.Carts().DeleteByUser(ctx, scope.UserID); err != nil {
				return err
			}
			// order.Items was built from the cart before the rows went away
			for _, item := range order.Items {
				movement, err := inventory.NewDocumentMovement(scope.UserID, item.CompanyID, item.ProductID,
					inventory.MovementOut, decimal.NewFromInt(int64(item.Quantity)),
					inventory.ReferenceOrder, order.ID, order.OrderNumber)
				if err != nil {
					return err
				}
				if err := repos.StockMovements().Append(ctx, movement); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		span.RecordError(err)
		s.logger.Error("Checkout failed", zap.Int64("user_id", scope.UserID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("total", order.TotalAmount.String()),
	)
	common.PublishAfterCommit(ctx, s.publisher, s.logger, commerce.NewOrderPlacedEvent(order))
	resp := ToOrderResponse(order)
	return &resp, nil
}

// List returns a page of orders visible to the caller
func (s *OrderService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[OrderResponse], error) {
	filter = filter.Normalize()
	orders, total, err := s.orderRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(orders, ToOrderResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns an order visible to the caller
func (s *OrderService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// ChangeStatus moves an order along its lifecycle. Buyers may only cancel
// their own orders; fulfilment steps and payment status are admin actions.
func (s *OrderService) ChangeStatus(ctx context.Context, scope identity.Scope, id int64, req OrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	target := commerce.OrderStatus(req.Status)
	if !scope.IsAdmin() && (target != commerce.OrderStatusCancelled || req.PaymentStatus != "") {
		return nil, shared.NewDomainError("FORBIDDEN", "Only administrators can advance orders")
	}
	if target != order.Status {
		if err := order.ChangeStatus(target); err != nil {
			return nil, err
		}
	}
	if req.PaymentStatus != "" {
		if err := order.SetPaymentStatus(commerce.PaymentStatus(req.PaymentStatus)); err != nil {
			return nil, err
		}
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("Order status changed",
		zap.Int64("order_id", order.ID),
		zap.String("status", string(order.Status)),
		zap.String("payment_status", string(order.PaymentStatus)),
	)
	resp := ToOrderResponse(order)
	return &resp, nil
}
