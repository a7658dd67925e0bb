// Package utils provides small conversion helpers shared by the catalog packages: numeric coercion of
// loosely typed stat values and their display form.
package utils
