package main

import (
	"context"
	"errors"
	"fmt"

	inventoryapp "github.com/erp/bizhub/internal/application/inventory"
	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/inventory"
	"github.com/erp/bizhub/internal/domain/manufacturing"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/erp/bizhub/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const demoUsername = "demo"

type demoProduct struct {
	sku, name      string
	price, opening int64
}

var demoProducts = []demoProduct{
	{"DEMO-001", "Steel bracket", 12, 150},
	{"DEMO-002", "Hex bolt M8", 1, 2000},
	{"DEMO-003", "Mounting plate", 35, 40},
}

// demoSummary reports what seedDemo created
type demoSummary struct {
	UserID    int64
	CompanyID int64
	Products  int
	Existing  bool
}

func (s demoSummary) String() string {
	if s.Existing {
		return fmt.Sprintf("demo data already present (user %d)", s.UserID)
	}
	return fmt.Sprintf("demo user %d, company %d, %d products", s.UserID, s.CompanyID, s.Products)
}

// seedDemo creates the demo owner and its master data. Everything hangs off
// the demo user, so an existing user means the data is already loaded.
func seedDemo(ctx context.Context, db *gorm.DB, password string, log *zap.Logger) (demoSummary, error) {
	users := persistence.NewGormUserRepository(db)
	if existing, err := users.FindByUsername(ctx, demoUsername); err == nil {
		return demoSummary{UserID: existing.ID, Existing: true}, nil
	} else if !errors.Is(err, shared.ErrNotFound) {
		return demoSummary{}, err
	}

	owner, err := identity.NewUser(demoUsername, "demo@bizhub.local", password, identity.RoleBusinessOwner, identity.UserTypeSeller)
	if err != nil {
		return demoSummary{}, err
	}
	if err := users.Save(ctx, owner); err != nil {
		return demoSummary{}, err
	}
	scope := identity.NewScope(owner.ID, owner.Role)

	companies := persistence.NewGormCompanyRepository(db)
	company, err := partner.NewCompany(owner.ID, partner.CompanyDetails{
		Name:  "Demo Manufacturing",
		Email: "office@bizhub.local",
		TaxID: "DEMO-TAX-1",
	})
	if err != nil {
		return demoSummary{}, err
	}
	if err := companies.Save(ctx, company); err != nil {
		return demoSummary{}, err
	}

	contacts := persistence.NewGormContactRepository(db)
	for _, d := range []partner.ContactDetails{
		{CompanyID: company.ID, ContactType: partner.ContactTypeSupplier, Name: "Northwind Metals"},
		{CompanyID: company.ID, ContactType: partner.ContactTypeCustomer, Name: "Contoso Retail"},
	} {
		contact, err := partner.NewContact(owner.ID, d)
		if err != nil {
			return demoSummary{}, err
		}
		if err := contacts.Save(ctx, contact); err != nil {
			return demoSummary{}, err
		}
	}

	category, err := catalog.NewCategory("Demo hardware", nil, "Products created by bizhubctl seed demo")
	if err != nil {
		return demoSummary{}, err
	}
	if err := persistence.NewGormCategoryRepository(db).Save(ctx, category); err != nil {
		return demoSummary{}, err
	}

	tax, err := catalog.NewTax(owner.ID, company.ID, "VAT 18%", decimal.NewFromInt(18), catalog.TaxTypePercentage)
	if err != nil {
		return demoSummary{}, err
	}
	if err := persistence.NewGormTaxRepository(db).Save(ctx, tax); err != nil {
		return demoSummary{}, err
	}

	products := persistence.NewGormProductRepository(db)
	stock := inventoryapp.NewInventoryService(
		persistence.NewGormTransactionScope(db),
		persistence.NewGormStockMovementRepository(db),
		products,
		companies,
		log,
	)
	for _, d := range demoProducts {
		product, err := catalog.NewProduct(owner.ID, catalog.ProductDetails{
			CompanyID:  company.ID,
			CategoryID: &category.ID,
			TaxID:      &tax.ID,
			Name:       d.name,
			SKU:        d.sku,
			UnitPrice:  decimal.NewFromInt(d.price),
		})
		if err != nil {
			return demoSummary{}, err
		}
		if err := products.Save(ctx, product); err != nil {
			return demoSummary{}, err
		}
		_, err = stock.Create(ctx, scope, inventoryapp.CreateMovementRequest{
			CompanyID:     company.ID,
			ProductID:     product.ID,
			MovementType:  string(inventory.MovementIn),
			Quantity:      decimal.NewFromInt(d.opening),
			ReferenceType: string(inventory.ReferenceManual),
			Notes:         "Opening stock",
		})
		if err != nil {
			return demoSummary{}, err
		}
	}

	wc, err := manufacturing.NewWorkCenter(owner.ID, manufacturing.WorkCenterDetails{
		Name:     "Assembly line 1",
		Capacity: 8,
	})
	if err != nil {
		return demoSummary{}, err
	}
	if err := persistence.NewGormWorkCenterRepository(db).Save(ctx, wc); err != nil {
		return demoSummary{}, err
	}

	log.Info("Demo data created",
		zap.Int64("user_id", owner.ID),
		zap.Int64("company_id", company.ID),
		zap.Int("products", len(demoProducts)),
	)
	return demoSummary{UserID: owner.ID, CompanyID: company.ID, Products: len(demoProducts)}, nil
}
