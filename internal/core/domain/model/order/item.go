package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one line of an order: a snapshot of a catalog product taken at
// order creation time.
//
// Invariants:
//   - quantity is at least 1
//   - unit price is non-negative
//   - line total equals unit price times quantity, computed exactly once at
//     creation and never recomputed, even if the catalog price changes later
//
// Items are owned exclusively by their Order and carry no back-reference in
// the domain model; the persistence layer maintains the foreign key.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	sku       string
	name      string
	unitPrice kernel.Money
	quantity  int
	lineTotal kernel.Money

	isConstructed bool
}

// NewItem creates a line item and computes its line total.
//
// Parameters:
//   - id: unique identifier of the line
//   - productID: catalog reference (not re-validated against the catalog)
//   - sku, name: denormalized catalog snapshot fields
//   - unitPrice: price per unit at creation time
//   - quantity: must be at least 1
//
// Returns a validation error if any snapshot field is missing, the quantity
// is below 1, or the unit price is negative.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	sku string,
	name string,
	unitPrice kernel.Money,
	quantity int,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setSKU(sku),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.lineTotal = unitPrice.MulQuantity(quantity)
	return item, nil
}

// RestoreItem reconstructs a line item from persistence.
// The stored line total is kept as-is: it is a snapshot, not a derived value.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	sku string,
	name string,
	unitPrice kernel.Money,
	quantity int,
	lineTotal kernel.Money,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setSKU(sku),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
		lineTotal.Validate(),
	); err != nil {
		return nil, err
	}

	item.lineTotal = lineTotal
	return item, nil
}

// Validate ensures the Item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog product reference.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// SKU returns the product SKU captured at creation.
func (i *Item) SKU() string {
	return i.sku
}

// Name returns the product name captured at creation.
func (i *Item) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price captured at creation.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// LineTotal returns the snapshot line total (unit price times quantity).
func (i *Item) LineTotal() kernel.Money {
	return i.lineTotal
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}
