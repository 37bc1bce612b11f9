// Package validation holds the pure per-entity constraint checks: required
// fields, enum membership and numeric ranges. Uniqueness and foreign-key
// resolution need storage access and live in the repositories.
package validation

import (
	"fmt"

	"ecommerce-store/internal/model"
)

func required(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s: required", field)
	}
	return nil
}

func Customer(c *model.Customer) error {
	if err := required("email", c.Email); err != nil {
		return err
	}
	if err := required("password_hash", c.PasswordHash); err != nil {
		return err
	}
	return required("name", c.Name)
}

func CustomerProfile(p *model.CustomerProfile) error {
	if p.Gender != nil && !p.Gender.Valid() {
		return fmt.Errorf("gender: invalid value %q", *p.Gender)
	}
	return nil
}

func Address(a *model.Address) error {
	if !a.Type.Valid() {
		return fmt.Errorf("type: invalid value %q", a.Type)
	}
	if err := required("line1", a.Line1); err != nil {
		return err
	}
	if err := required("city", a.City); err != nil {
		return err
	}
	if err := required("postal_code", a.PostalCode); err != nil {
		return err
	}
	return required("country", a.Country)
}

func Supplier(s *model.Supplier) error {
	return required("name", s.Name)
}

func Category(c *model.Category) error {
	return required("name", c.Name)
}

func Product(p *model.Product) error {
	if err := required("sku", p.SKU); err != nil {
		return err
	}
	if err := required("name", p.Name); err != nil {
		return err
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("price: must be >= 0, got %s", p.Price)
	}
	return nil
}

func Inventory(inv *model.Inventory) error {
	if inv.QuantityInStock < 0 {
		return fmt.Errorf("quantity_in_stock: must be >= 0, got %d", inv.QuantityInStock)
	}
	if inv.ReservedQuantity < 0 {
		return fmt.Errorf("reserved_quantity: must be >= 0, got %d", inv.ReservedQuantity)
	}
	return nil
}

func Order(o *model.Order) error {
	if !o.Status.Valid() {
		return fmt.Errorf("status: invalid value %q", o.Status)
	}
	if o.TotalAmount.IsNegative() {
		return fmt.Errorf("total_amount: must be >= 0, got %s", o.TotalAmount)
	}
	return nil
}

func OrderItem(item *model.OrderItem) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("quantity: must be > 0, got %d", item.Quantity)
	}
	if item.UnitPrice.IsNegative() {
		return fmt.Errorf("unit_price: must be >= 0, got %s", item.UnitPrice)
	}
	if item.Discount.IsNegative() {
		return fmt.Errorf("discount: must be >= 0, got %s", item.Discount)
	}
	return nil
}

func Payment(p *model.Payment) error {
	if !p.Method.Valid() {
		return fmt.Errorf("payment_method: invalid value %q", p.Method)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("status: invalid value %q", p.Status)
	}
	if p.Amount.IsNegative() {
		return fmt.Errorf("amount: must be >= 0, got %s", p.Amount)
	}
	return nil
}

func Review(r *model.Review) error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating: must be between 1 and 5, got %d", r.Rating)
	}
	return nil
}
