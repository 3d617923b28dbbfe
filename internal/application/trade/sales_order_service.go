package trade

import (
	"context"
	"errors"

	"github.com/erp/bizhub/internal/application/common"
	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/finance"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
	"github.com/erp/bizhub/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// SalesOrderService handles sales order use cases
type SalesOrderService struct {
	txScope     common.TransactionScope
	sequencer   shared.NumberSequencer
	orderRepo   trade.SalesOrderRepository
	contactRepo partner.ContactRepository
	companyRepo partner.CompanyRepository
	productRepo catalog.ProductRepository
	publisher   shared.EventPublisher
	logger      *zap.Logger
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(
	txScope common.TransactionScope,
	sequencer shared.NumberSequencer,
	orderRepo trade.SalesOrderRepository,
	contactRepo partner.ContactRepository,
	companyRepo partner.CompanyRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *SalesOrderService {
	return &SalesOrderService{
		txScope:     txScope,
		sequencer:   sequencer,
		orderRepo:   orderRepo,
		contactRepo: contactRepo,
		companyRepo: companyRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *SalesOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// List returns a page of sales orders visible to the caller
func (s *SalesOrderService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[SalesOrderResponse], error) {
	filter = filter.Normalize()
	orders, total, err := s.orderRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[SalesOrderResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(orders, ToSalesOrderResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns a sales order visible to the caller
func (s *SalesOrderService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToSalesOrderResponse(order)
	return &resp, nil
}

// Create creates a draft sales order
func (s *SalesOrderService) Create(ctx context.Context, scope identity.Scope, req SalesOrderRequest) (*SalesOrderResponse, error) {
	order, err := trade.NewSalesOrder(scope.UserID, req.header(), lineInputs(req.Items))
	if err != nil {
		return nil, err
	}
	if err := s.checkParties(ctx, scope, order); err != nil {
		return nil, err
	}

	err = common.WithNumber(ctx, s.sequencer, shared.SalesOrderNumbering, order.CompanyID, order.SONumber,
		func(ctx context.Context, number string) error {
			order.AssignNumber(number)
			return s.txScope.Execute(ctx, func(repos common.TransactionalRepositories) error {
				return repos.SalesOrders().Save(ctx, order)
			})
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sales order created",
		zap.Int64("order_id", order.ID),
		zap.String("so_number", order.SONumber),
		zap.Int64("company_id", order.CompanyID),
	)
	resp := ToSalesOrderResponse(order)
	return &resp, nil
}

// Update replaces a draft sales order
func (s *SalesOrderService) Update(ctx context.Context, scope identity.Scope, id int64, req SalesOrderRequest) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := order.Update(req.header(), lineInputs(req.Items)); err != nil {
		return nil, err
	}
	if req.SONumber != "" {
		order.SONumber = req.SONumber
	}
	if err := s.checkParties(ctx, scope, order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	resp := ToSalesOrderResponse(order)
	return &resp, nil
}

// Confirm moves a draft order to confirmed
func (s *SalesOrderService) Confirm(ctx context.Context, scope identity.Scope, id int64) (*SalesOrderResponse, error) {
	return s.transition(ctx, scope, id, (*trade.SalesOrder).Confirm)
}

// Cancel cancels a draft or confirmed order
func (s *SalesOrderService) Cancel(ctx context.Context, scope identity.Scope, id int64) (*SalesOrderResponse, error) {
	return s.transition(ctx, scope, id, (*trade.SalesOrder).Cancel)
}

func (s *SalesOrderService) transition(ctx context.Context, scope identity.Scope, id int64, apply func(*trade.SalesOrder) error) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := apply(order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("Sales order status changed",
		zap.Int64("order_id", order.ID),
		zap.String("status", string(order.Status)),
	)
	resp := ToSalesOrderResponse(order)
	return &resp, nil
}

// Delete removes a sales order visible to the caller
func (s *SalesOrderService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	if err := s.orderRepo.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.logger.Info("Sales order deleted", zap.Int64("order_id", id))
	return nil
}

// ConvertToInvoice creates a customer invoice from a confirmed sales order and
// books one outbound stock movement per line in the same transaction
func (s *SalesOrderService) ConvertToInvoice(ctx context.Context, scope identity.Scope, id int64) (*ConversionResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "SalesOrderService", "ConvertToInvoice")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", id))

	order, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	invoice, err := finance.NewCustomerInvoiceFromSalesOrder(order, scope.UserID)
	if err != nil {
		return nil, err
	}

	err = s.sequencer.WithNext(ctx, shared.CustomerInvoiceNumbering, order.CompanyID, func(ctx context.Context, number string) error {
		invoice.AssignNumber(number)
		return s.txScope.Execute(ctx, func(repos common.TransactionalRepositories) error {
			if err := repos.CustomerInvoices().Save(ctx, invoice); err != nil {
				return err
			}
			if err := order.MarkDelivered(); err != nil {
				return err
			}
			if err := repos.SalesOrders().Save(ctx, order); err != nil {
				return err
			}
			for _, item := range order.Items {
				movement, err := inventory.NewDocumentMovement(scope.UserID, order.CompanyID, item.ProductID,
					inventory.MovementOut, item.Quantity, inventory.ReferenceSalesOrder, order.ID, order.SONumber)
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
		s.logger.Error("Sales order conversion failed", zap.Int64("order_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Sales order converted to invoice",
		zap.Int64("order_id", order.ID),
		zap.Int64("invoice_id", invoice.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.Int("lines", len(order.Items)),
	)
	common.PublishAfterCommit(ctx, s.publisher, s.logger,
		trade.NewSalesOrderConvertedEvent(order, invoice.ID, invoice.InvoiceNumber, scope.UserID))
	return &ConversionResult{ID: invoice.ID, Number: invoice.InvoiceNumber}, nil
}

func (s *SalesOrderService) checkParties(ctx context.Context, scope identity.Scope, order *trade.SalesOrder) error {
	if _, err := s.companyRepo.FindByID(ctx, scope, order.CompanyID); err != nil {
		return err
	}
	customer, err := s.contactRepo.FindByID(ctx, scope, order.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("customer %d not found", order.CustomerID)
		}
		return err
	}
	if err := customer.RequireCustomer(); err != nil {
		return err
	}
	order.CustomerName = customer.Name
	return checkLineProducts(ctx, s.productRepo, scope, order.CompanyID, order.Items)
}
