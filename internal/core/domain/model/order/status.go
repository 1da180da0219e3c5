package order

import (
	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Waiting ──> Accepted ──> Served ──┬──> Delivering ──> Delivered ──> Completed
//	                                  │         (delivery orders)
//	                                  └──────────────────────────────> Completed
//	                                       (dine-in and takeout orders)
//
// Every transition is validated against the single current value; Completed is
// terminal and rejects every further transition. Which path an order takes
// from Served is decided by its Type, not by Status itself.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Waiting is the initial status of a freshly created order.
	Waiting

	// Accepted indicates the restaurant has taken the order. For delivery
	// orders the courier service has been notified at this point.
	Accepted

	// Served indicates the food is ready and handed over (to the table, the
	// pickup counter, or the courier).
	Served

	// Delivering indicates a courier is on the way. Delivery orders only.
	Delivering

	// Delivered indicates the courier has handed the order over. Delivery orders only.
	Delivered

	// Completed is the terminal status. No further transitions are allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Waiting:       "Waiting",
		Accepted:      "Accepted",
		Served:        "Served",
		Delivering:    "Delivering",
		Delivered:     "Delivered",
		Completed:     "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:    "Waiting",
		Accepted:   "Accepted",
		Served:     "Served",
		Delivering: "Delivering",
		Delivered:  "Delivered",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is one of the defined statuses.
// Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted. Legal only from Waiting.
func (s Status) Accept() (Status, error) {
	if s != Waiting {
		return 0, errs.NewInvalidTransitionError("accept", s.String())
	}
	return Accepted, nil
}

// Serve transitions the status to Served. Legal only from Accepted.
func (s Status) Serve() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidTransitionError("serve", s.String())
	}
	return Served, nil
}

// StartDelivering transitions the status to Delivering. Legal only from Served.
// The caller must have already checked that the order type supports delivery.
func (s Status) StartDelivering() (Status, error) {
	if s != Served {
		return 0, errs.NewInvalidTransitionError("start delivering", s.String())
	}
	return Delivering, nil
}

// MarkDelivered transitions the status to Delivered. Legal only from Delivering.
func (s Status) MarkDelivered() (Status, error) {
	if s != Delivering {
		return 0, errs.NewInvalidTransitionError("mark delivered", s.String())
	}
	return Delivered, nil
}

// Complete transitions the status to Completed. The required prior status
// depends on the order type: Served for dine-in and takeout, Delivered for
// delivery orders.
func (s Status) Complete(requiredPrior Status) (Status, error) {
	if s != requiredPrior {
		return 0, errs.NewInvalidTransitionError("complete", s.String())
	}
	return Completed, nil
}
