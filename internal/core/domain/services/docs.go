// Package services provides the domain services of the dispatch workflow:
// rules that do not belong to a single aggregate.
//
// The package includes:
//   - ValidationEngine: turns warehouse line dispositions into resolutions,
//     rejecting a submission as a whole with every offending line listed
//   - RouteCoordinator: the cross-entity rules binding orders, routes,
//     deliveries and vehicles (attachment, publish, start, completion,
//     cancellation and delivery outcomes)
//
// Both services are pure: callers load and persist the aggregates.
package services
