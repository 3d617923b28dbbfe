package trade

import (
	"context"
	"errors"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/domain/trade"
)

// checkLineProducts requires every line's product to be visible to the caller
// and to belong to the order's company, and fills in the product names
func checkLineProducts(ctx context.Context, products catalog.ProductRepository, scope identity.Scope, companyID int64, items []trade.LineItem) error {
	loaded := make(map[int64]*catalog.Product, len(items))
	for i := range items {
		id := items[i].ProductID
		p, ok := loaded[id]
		if !ok {
			var err error
			p, err = products.FindByID(ctx, scope, id)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewValidationError("line %d: product %d not found", i+1, id)
				}
				return err
			}
			loaded[id] = p
		}
		if p.CompanyID != companyID {
			return shared.NewValidationError("line %d: product %d does not belong to company %d", i+1, id, companyID)
		}
		items[i].ProductName = p.Name
	}
	return nil
}
