// Package preferences persists per-client UI preferences (theme and table sort) with gorm.
//
// It is the only persisted state of the application and is enabled only when a database is
// configured. The catalog feature uses Service.SavedSort to start new view sessions from a client's
// saved sort.
//
//   - GET /preferences/:client
//   - PUT /preferences/:client
package preferences
