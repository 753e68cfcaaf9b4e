// Package shipment models in-transit orders: the shipment-tracking records
// the backend keeps for a purchase once it leaves the store.
//
// An InTransitOrder has its own five-state lifecycle, independent of the
// order package. Its product list arrives as an embedded JSON string and is
// parsed on demand by ParseProductDetails.
package shipment
