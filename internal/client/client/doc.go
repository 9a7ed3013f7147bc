// Package client contains the transport side of the Brainly client.
//
// # Overview
//
// The package provides:
//  1. The Client contract for the remote REST API (signup, signin, me,
//     content CRUD, share) plus the oEmbed lookup used to render posts.
//  2. HTTPClient, a net/http implementation that attaches the raw session
//     token, bounds every call with a timeout and maps failures onto the
//     sentinel errors below.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite file backing the session and applies embedded goose
//     migrations.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors matched with
// errors.Is: ErrUnauthenticated, ErrUnauthorized, ErrUnavailable,
// ErrTimeout. Any other non-2xx answer is an *APIError carrying the
// server-provided message.
package client
