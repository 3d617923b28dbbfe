package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"github.com/erp/bizhub/internal/domain/partner"
	"github.com/erp/bizhub/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	adminScope = identity.NewScope(1, identity.RoleAdmin)
	day        = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
)

// setupTestDB opens a migrated in-memory sqlite database on a single connection
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDatabaseFromDialector(sqlite.Open(":memory:"), Options{})
	require.NoError(t, err)

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.DB.AutoMigrate(models.All()...))
	return db.DB
}

func seedCompany(t *testing.T, db *gorm.DB, ownerID int64, name string) *partner.Company {
	t.Helper()
	c, err := partner.NewCompany(ownerID, partner.CompanyDetails{Name: name, TaxID: "TAX-" + name})
	require.NoError(t, err)
	require.NoError(t, NewGormCompanyRepository(db).Save(context.Background(), c))
	return c
}

func seedContact(t *testing.T, db *gorm.DB, ownerID, companyID int64, ct partner.ContactType) *partner.Contact {
	t.Helper()
	c, err := partner.NewContact(ownerID, partner.ContactDetails{
		CompanyID:   companyID,
		ContactType: ct,
		Name:        fmt.Sprintf("%s of %d", ct, companyID),
	})
	require.NoError(t, err)
	require.NoError(t, NewGormContactRepository(db).Save(context.Background(), c))
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, ownerID, companyID int64, sku string, price string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(ownerID, catalog.ProductDetails{
		CompanyID: companyID,
		Name:      "Product " + sku,
		SKU:       sku,
		UnitPrice: decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	require.NoError(t, NewGormProductRepository(db).Save(context.Background(), p))
	return p
}
