// Package catalog implements the item catalog query engine.
//
// The pipeline is
//
//	Source -> Load -> Normalize -> Store -> Filter -> Sort -> Revealer -> View
//
// Load reads manifest.json and then each listed chunk in order; a failing chunk is skipped and
// counted in the LoadReport, a failing manifest aborts the load (ErrManifest). Normalize turns the
// loosely typed records into models.Item. The Store keeps the immutable item set and swaps it
// wholesale on reload.
//
// # Filtering and sorting
//
// Filter is fail-open per dimension: an empty accepted set accepts everything. Items without path
// tags skip the path clause, items of the exempt category ("item") skip the level clause, and the
// numeric tier tag ("1-99") accepts every 1 to 3 digit level.
//
// Sort is stable. Stat sorts order by a numeric stat with a sentinel for missing values (9999 for
// AC, -9999 otherwise); AC always sorts ascending.
//
// # Sessions
//
// A Controller owns one CatalogState and applies UI events (filter changes, header and stat clicks,
// scroll signals). The Service keeps one Controller per view session and exposes them over HTTP:
//
//   - GET    /catalog/status
//   - POST   /catalog/reload
//   - POST   /catalog/sessions
//   - GET    /catalog/sessions/:id
//   - PUT    /catalog/sessions/:id/filters
//   - POST   /catalog/sessions/:id/sort/column
//   - POST   /catalog/sessions/:id/sort/stat
//   - POST   /catalog/sessions/:id/reveal
//   - POST   /catalog/sessions/:id/reset
//   - GET    /catalog/sessions/:id/debug (POST toggles the debug surface)
//   - GET    /catalog/sessions/:id/export.json, export.csv
package catalog
