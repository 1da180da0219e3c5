// Package menu contains the menu aggregate and its price-consistency rules.
//
// The central invariant is the display invariant: a menu may be shown only
// while its price does not exceed the sum of its product line prices. The
// invariant is checked at creation, on every price change, on display, and by
// the product price-change cascade, which force-hides menus that become
// overpriced.
package menu
