// Package scraper builds catalog chunk files from the game site's item pages.
//
// Each page is fetched with resty and parsed with goquery. Pages using the old table layout (a
// red name cell followed by a details row) go through ExtractLegacy; anything else, or a legacy page
// that yields nothing, through ExtractGeneric. Records are merged by case-insensitive name, sorted,
// split into chunks and written with a manifest to a directory or a storage bucket.
package scraper
