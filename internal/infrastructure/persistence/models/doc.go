// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities are free of GORM tags
// 2. Persistence models carry the GORM annotations and table mappings
// 3. ToDomain / FromDomain convert between the two
// 4. Fields tagged "->;-:migration" are read-only names resolved through joins
//
// Structure:
// - base.go: BaseModel and OwnedModel
// - identity.go: users
// - partner.go: companies, contacts, seller profiles
// - catalog.go: categories, taxes, products, product images
// - trade.go: purchase and sales orders with their items
// - finance.go: vendor bills and customer invoices with their lines
// - inventory.go: stock movements
// - commerce.go: cart items, orders, seller products
// - manufacturing.go: work centers, manufacturing orders, work orders
package models
