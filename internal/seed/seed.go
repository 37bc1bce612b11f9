// Package seed populates a fresh store with sample rows through the
// ordinary repository operations, in entity dependency order. It is a
// bootstrap collaborator, not part of the store itself.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ecommerce-store/internal/model"
	"ecommerce-store/internal/repository"
)

type Repositories struct {
	Customers  repository.CustomerRepository
	Addresses  repository.AddressRepository
	Suppliers  repository.SupplierRepository
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	Payments   repository.PaymentRepository
	Reviews    repository.ReviewRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Customers:  repository.NewCustomerRepository(db),
		Addresses:  repository.NewAddressRepository(db),
		Suppliers:  repository.NewSupplierRepository(db),
		Categories: repository.NewCategoryRepository(db),
		Products:   repository.NewProductRepository(db),
		Orders:     repository.NewOrderRepository(db),
		Payments:   repository.NewPaymentRepository(db),
		Reviews:    repository.NewReviewRepository(db),
	}
}

func strPtr(s string) *string { return &s }

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Run seeds two rows per entity. It is a no-op when customers already
// exist, so re-running the bootstrap is safe.
func Run(ctx context.Context, repos Repositories) error {
	existing, err := repos.Customers.List(ctx, repository.CustomerFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	aliceHash, err := hashPassword("alice-secret")
	if err != nil {
		return err
	}
	bobHash, err := hashPassword("bob-secret")
	if err != nil {
		return err
	}

	alice := &model.Customer{Email: "alice@example.com", PasswordHash: aliceHash, Name: "Alice Johnson", Phone: strPtr("+1-555-0100")}
	bob := &model.Customer{Email: "bob@example.com", PasswordHash: bobHash, Name: "Bob Smith"}
	for _, c := range []*model.Customer{alice, bob} {
		if err := repos.Customers.Create(ctx, c); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.Email, err)
		}
	}

	acme := &model.Supplier{Name: "Acme Wholesale", ContactEmail: strPtr("sales@acme.example")}
	globex := &model.Supplier{Name: "Globex Trading", ContactPhone: strPtr("+1-555-0199")}
	for _, s := range []*model.Supplier{acme, globex} {
		if err := repos.Suppliers.Create(ctx, s); err != nil {
			return fmt.Errorf("seed supplier %s: %w", s.Name, err)
		}
	}

	electronics := &model.Category{Name: "Electronics", Description: strPtr("Gadgets and devices")}
	books := &model.Category{Name: "Books"}
	for _, c := range []*model.Category{electronics, books} {
		if err := repos.Categories.Create(ctx, c); err != nil {
			return fmt.Errorf("seed category %s: %w", c.Name, err)
		}
	}

	female := model.GenderFemale
	male := model.GenderMale
	birthDate := time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC)
	profiles := []*model.CustomerProfile{
		{CustomerID: alice.ID, BirthDate: &birthDate, Gender: &female, Newsletter: true, Bio: strPtr("Avid reader.")},
		{CustomerID: bob.ID, Gender: &male},
	}
	for _, p := range profiles {
		if err := repos.Customers.UpsertProfile(ctx, p); err != nil {
			return fmt.Errorf("seed profile for customer %d: %w", p.CustomerID, err)
		}
	}

	aliceHome := &model.Address{CustomerID: alice.ID, Type: model.AddressShipping, Line1: "12 Elm Street", City: "Springfield", PostalCode: "49007", Country: "US"}
	bobOffice := &model.Address{CustomerID: bob.ID, Type: model.AddressBilling, Line1: "88 Market Road", Line2: strPtr("Suite 5"), City: "Riverton", State: strPtr("CO"), PostalCode: "81501", Country: "US"}
	for _, a := range []*model.Address{aliceHome, bobOffice} {
		if err := repos.Addresses.Create(ctx, a); err != nil {
			return fmt.Errorf("seed address for customer %d: %w", a.CustomerID, err)
		}
	}

	headphones := &model.Product{SKU: "ELEC-HP-001", Name: "Wireless Headphones", Description: strPtr("Over-ear, 30h battery"), Price: decimal.RequireFromString("89.90"), SupplierID: &acme.ID}
	novel := &model.Product{SKU: "BOOK-NV-042", Name: "The Long Orbit", Price: decimal.RequireFromString("5.99"), SupplierID: &globex.ID}
	for _, p := range []*model.Product{headphones, novel} {
		if err := repos.Products.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
	}

	if err := repos.Products.AddCategory(ctx, headphones.ID, electronics.ID); err != nil {
		return err
	}
	if err := repos.Products.AddCategory(ctx, novel.ID, books.ID); err != nil {
		return err
	}

	inventories := []*model.Inventory{
		{ProductID: headphones.ID, QuantityInStock: 25, ReservedQuantity: 2},
		{ProductID: novel.ID, QuantityInStock: 140},
	}
	for _, inv := range inventories {
		if err := repos.Products.SetInventory(ctx, inv); err != nil {
			return fmt.Errorf("seed inventory for product %d: %w", inv.ProductID, err)
		}
	}

	aliceOrder := &model.Order{CustomerID: alice.ID, TotalAmount: decimal.RequireFromString("89.90"), ShippingAddressID: &aliceHome.ID}
	bobOrder := &model.Order{CustomerID: bob.ID, Status: model.OrderShipped, TotalAmount: decimal.RequireFromString("11.98"), BillingAddressID: &bobOffice.ID}
	for _, o := range []*model.Order{aliceOrder, bobOrder} {
		if err := repos.Orders.Create(ctx, o); err != nil {
			return fmt.Errorf("seed order for customer %d: %w", o.CustomerID, err)
		}
	}

	items := []*model.OrderItem{
		{OrderID: aliceOrder.ID, ProductID: headphones.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("89.90")},
		{OrderID: bobOrder.ID, ProductID: novel.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("5.99")},
	}
	for _, item := range items {
		if err := repos.Orders.AddItem(ctx, item); err != nil {
			return fmt.Errorf("seed order item %d/%d: %w", item.OrderID, item.ProductID, err)
		}
	}

	payments := []*model.Payment{
		{OrderID: aliceOrder.ID, Method: model.PaymentCard, Amount: decimal.RequireFromString("89.90")},
		{OrderID: bobOrder.ID, Method: model.PaymentPaypal, Amount: decimal.RequireFromString("11.98"), Status: model.PaymentCompleted, ProviderTxnID: strPtr(uuid.NewString())},
	}
	for _, p := range payments {
		if err := repos.Payments.Create(ctx, p); err != nil {
			return fmt.Errorf("seed payment for order %d: %w", p.OrderID, err)
		}
	}

	reviews := []*model.Review{
		{ProductID: headphones.ID, CustomerID: &alice.ID, Rating: 5, Title: strPtr("Great sound")},
		{ProductID: novel.ID, CustomerID: &bob.ID, Rating: 4, Body: strPtr("Slow start, strong finish.")},
	}
	for _, rv := range reviews {
		if err := repos.Reviews.Create(ctx, rv); err != nil {
			return fmt.Errorf("seed review for product %d: %w", rv.ProductID, err)
		}
	}

	return nil
}
