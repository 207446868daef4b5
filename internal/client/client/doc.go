// Package client contains client-side building blocks for HouseConnect.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface and its
//     parts AuthAPI, AccommodationAPI, ApplicationAPI, BookingAPI and
//     ProfileAPI) describing the HouseConnect REST backend.
//  2. A concrete HTTP implementation (see HTTPClient) that stamps every
//     request with a bearer token and an X-Request-ID, bounds it with a
//     timeout and routes it through a circuit breaker.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Non-2xx answers surface as *StatusError. 401 and 403 match ErrUnauthorized,
// 404 matches common.ErrNotFound. Requests that got no answer at all match
// ErrUnavailable and common.ErrNetwork.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
