// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the catalog and preference endpoints.
//   - rayid: assigns a RayID to every incoming request, stores it in the Fiber locals and
//     mirrors it into the X-Ray-ID response header for tracing.
//
// Both are registered globally in the start command.
package middleware
