// Package models defines the core domain models for the TechMart
// storefront session.
//
// # Models
//
//   - LineItem: one distinct product in the cart with its quantity
//   - Cart: ordered collection of line items with derived count and total
//   - FavoriteSet: duplicate-free set of favorited product names
//
// Products are identified by display name: the storefront has no SKUs, so
// two cards with the same name are the same product.
//
// # Design Principles
//
//  1. **Exact money**: prices are int64 đồng. The currency has no minor
//     units, so integer arithmetic keeps totals exact.
//  2. **Derived, not cached**: count and total are recomputed on demand.
//     Carts hold a few dozen items at most; caching would only add
//     invalidation bugs.
//  3. **Stable persisted layout**: JSON field names (name, price, img,
//     quantity) match the profiles already written by earlier releases and
//     must not change.
//
// Collections here are plain data with no I/O. Persistence, validation, and
// projection live in the service layer.
package models
