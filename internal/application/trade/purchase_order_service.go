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

// ConversionResult reports the document created by a conversion
type ConversionResult struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
}

// PurchaseOrderService handles purchase order use cases
type PurchaseOrderService struct {
	txScope     common.TransactionScope
	sequencer   shared.NumberSequencer
	orderRepo   trade.PurchaseOrderRepository
	contactRepo partner.ContactRepository
	companyRepo partner.CompanyRepository
	productRepo catalog.ProductRepository
	publisher   shared.EventPublisher
	logger      *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	txScope common.TransactionScope,
	sequencer shared.NumberSequencer,
	orderRepo trade.PurchaseOrderRepository,
	contactRepo partner.ContactRepository,
	companyRepo partner.CompanyRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		txScope:     txScope,
		sequencer:   sequencer,
		orderRepo:   orderRepo,
		contactRepo: contactRepo,
		companyRepo: companyRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the publisher used after conversions commit
func (s *PurchaseOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// List returns a page of purchase orders visible to the caller
func (s *PurchaseOrderService) List(ctx context.Context, scope identity.Scope, filter shared.Filter) (shared.Paginated[PurchaseOrderResponse], error) {
	filter = filter.Normalize()
	orders, total, err := s.orderRepo.FindAll(ctx, scope, filter)
	if err != nil {
		return shared.Paginated[PurchaseOrderResponse]{}, err
	}
	return shared.NewPaginated(mapSlice(orders, ToPurchaseOrderResponse), total, filter.Page, filter.PageSize), nil
}

// GetByID returns a purchase order visible to the caller
func (s *PurchaseOrderService) GetByID(ctx context.Context, scope identity.Scope, id int64) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// Create creates a draft purchase order, numbering it when no number was supplied
func (s *PurchaseOrderService) Create(ctx context.Context, scope identity.Scope, req PurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := trade.NewPurchaseOrder(scope.UserID, req.header(), lineInputs(req.Items))
	if err != nil {
		return nil, err
	}
	if err := s.checkParties(ctx, scope, order); err != nil {
		return nil, err
	}

	err = common.WithNumber(ctx, s.sequencer, shared.PurchaseOrderNumbering, order.CompanyID, order.PONumber,
		func(ctx context.Context, number string) error {
			order.AssignNumber(number)
			return s.txScope.Execute(ctx, func(repos common.TransactionalRepositories) error {
				return repos.PurchaseOrders().Save(ctx, order)
			})
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Purchase order created",
		zap.Int64("order_id", order.ID),
		zap.String("po_number", order.PONumber),
		zap.Int64("company_id", order.CompanyID),
	)
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// Update replaces a draft purchase order
func (s *PurchaseOrderService) Update(ctx context.Context, scope identity.Scope, id int64, req PurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := order.Update(req.header(), lineInputs(req.Items)); err != nil {
		return nil, err
	}
	if req.PONumber != "" {
		order.PONumber = req.PONumber
	}
	if err := s.checkParties(ctx, scope, order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// Confirm moves a draft order to confirmed
func (s *PurchaseOrderService) Confirm(ctx context.Context, scope identity.Scope, id int64) (*PurchaseOrderResponse, error) {
	return s.transition(ctx, scope, id, (*trade.PurchaseOrder).Confirm)
}

// Cancel cancels a draft or confirmed order
func (s *PurchaseOrderService) Cancel(ctx context.Context, scope identity.Scope, id int64) (*PurchaseOrderResponse, error) {
	return s.transition(ctx, scope, id, (*trade.PurchaseOrder).Cancel)
}

func (s *PurchaseOrderService) transition(ctx context.Context, scope identity.Scope, id int64, apply func(*trade.PurchaseOrder) error) (*PurchaseOrderResponse, error) {
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
	s.logger.Info("Purchase order status changed",
		zap.Int64("order_id", order.ID),
		zap.String("status", string(order.Status)),
	)
	resp := ToPurchaseOrderResponse(order)
	return &resp, nil
}

// Delete removes a purchase order visible to the caller
func (s *PurchaseOrderService) Delete(ctx context.Context, scope identity.Scope, id int64) error {
	if err := s.orderRepo.Delete(ctx, scope, id); err != nil {
		return err
	}
	s.logger.Info("Purchase order deleted", zap.Int64("order_id", id))
	return nil
}

// ConvertToBill creates a vendor bill from a confirmed purchase order. The bill,
// the status change and one inbound stock movement per line commit together.
func (s *PurchaseOrderService) ConvertToBill(ctx context.Context, scope identity.Scope, id int64) (*ConversionResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "PurchaseOrderService", "ConvertToBill")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", id))

	order, err := s.orderRepo.FindByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	bill, err := finance.NewVendorBillFromPurchaseOrder(order, scope.UserID)
	if err != nil {
		return nil, err
	}

	err = s.sequencer.WithNext(ctx, shared.VendorBillNumbering, order.CompanyID, func(ctx context.Context, number string) error {
		bill.AssignNumber(number)
		return s.txScope.Execute(ctx, func(repos common.TransactionalRepositories) error {
			if err := repos.VendorBills().Save(ctx, bill); err != nil {
				return err
			}
			if err := order.MarkReceived(); err != nil {
				return err
			}
			if err := repos.PurchaseOrders().Save(ctx, order); err != nil {
				return err
			}
			for _, item := range order.Items {
				movement, err := inventory.NewDocumentMovement(scope.UserID, order.CompanyID, item.ProductID,
					inventory.MovementIn, item.Quantity, inventory.ReferencePurchaseOrder, order.ID, order.PONumber)
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
		s.logger.Error("Purchase order conversion failed", zap.Int64("order_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Purchase order converted to bill",
		zap.Int64("order_id", order.ID),
		zap.Int64("bill_id", bill.ID),
		zap.String("bill_number", bill.BillNumber),
		zap.Int("lines", len(order.Items)),
	)
	common.PublishAfterCommit(ctx, s.publisher, s.logger,
		trade.NewPurchaseOrderConvertedEvent(order, bill.ID, bill.BillNumber, scope.UserID))
	return &ConversionResult{ID: bill.ID, Number: bill.BillNumber}, nil
}

func (s *PurchaseOrderService) checkParties(ctx context.Context, scope identity.Scope, order *trade.PurchaseOrder) error {
	if _, err := s.companyRepo.FindByID(ctx, scope, order.CompanyID); err != nil {
		return err
	}
	supplier, err := s.contactRepo.FindByID(ctx, scope, order.SupplierID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("supplier %d not found", order.SupplierID)
		}
		return err
	}
	if err := supplier.RequireSupplier(); err != nil {
		return err
	}
	order.SupplierName = supplier.Name
	return checkLineProducts(ctx, s.productRepo, scope, order.CompanyID, order.Items)
}
