// Package services provides the two in-memory indexes the order desk serves
// from: OrderManager for e-commerce orders and InTransitOrderManager for
// shipment-tracking records.
//
// Both managers:
//   - key records by their numeric id and overwrite on add (last write wins)
//   - report absence with a boolean, never with an error
//   - hand out copies, so callers cannot mutate indexed state
//   - are safe for concurrent use and apply a sync batch in one step:
//     OrderManager upserts it (orders are never evicted), while
//     InTransitOrderManager swaps its whole content
//   - expose the same add / get / remove / cancel surface
//
// Cancellation returns a CancelResult instead of free text, so callers branch
// on the outcome and still have the message the dashboard shows.
package services
