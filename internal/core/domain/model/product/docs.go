// Package product contains the product catalog aggregate and the PriceChanged
// domain event that triggers the menu price-consistency cascade.
package product
