package order

import (
	"restaurant/internal/pkg/errs"
)

// Type is the order type variant: dine-in, takeout, or delivery.
//
// Instead of one subtype per variant overriding behavior, the variants share a
// capability table: each declares whether accepting dispatches a courier,
// whether the delivering leg exists, and which status completion requires.
// Invoking an unsupported operation is a single uniform capability error path,
// distinct from a wrong-state transition error.
type Type int

const (
	// UnknownType represents an invalid or undefined order type.
	UnknownType Type = iota

	// DineIn orders are eaten at a referenced order table, which is released
	// when the order completes.
	DineIn

	// Takeout orders are picked up at the counter.
	Takeout

	// Delivery orders carry a delivery address and go through the courier leg
	// (Delivering, Delivered) before completion.
	Delivery
)

// capabilities declares what an order type variant supports.
type capabilities struct {
	dispatchOnAccept   bool
	supportsDelivering bool
	completesFrom      Status
}

func getTypeCapabilities() map[Type]capabilities {
	return map[Type]capabilities{
		DineIn:   {dispatchOnAccept: false, supportsDelivering: false, completesFrom: Served},
		Takeout:  {dispatchOnAccept: false, supportsDelivering: false, completesFrom: Served},
		Delivery: {dispatchOnAccept: true, supportsDelivering: true, completesFrom: Delivered},
	}
}

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		DineIn:      "DineIn",
		Takeout:     "Takeout",
		Delivery:    "Delivery",
	}
}

// Validate checks if the Type value is one of the defined order types.
func (t Type) Validate() error {
	if _, ok := getTypeCapabilities()[t]; !ok {
		return errs.NewValueIsInvalidError("order type")
	}
	return nil
}

// String returns the name of the order type.
// Implements fmt.Stringer; safe to call on any value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// DispatchesOnAccept reports whether accepting an order of this type must
// notify the external courier service.
func (t Type) DispatchesOnAccept() bool {
	return getTypeCapabilities()[t].dispatchOnAccept
}

// SupportsDelivering reports whether this type has the Delivering/Delivered leg.
func (t Type) SupportsDelivering() bool {
	return getTypeCapabilities()[t].supportsDelivering
}

// CompletesFrom returns the status completion requires for this type.
func (t Type) CompletesFrom() Status {
	return getTypeCapabilities()[t].completesFrom
}
