// Package models holds the catalog data types: raw and normalized items, the ordered stat mapping,
// filter criteria, sort specs and the load report.
package models
