// Package middleware groups the HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation. Requests must carry X-API-Key or a Bearer token.
//   - rayid: assigns every request a ray id, stored in the context locals
//     and echoed in the X-Ray-ID response header for log correlation.
package middleware
