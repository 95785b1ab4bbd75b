// Package delivery tracks the execution of route stops: one Delivery per
// stop, its evidence and its incidents.
package delivery
