// Package config provides configuration management for the catalog browser.
//
// Settings come from environment variables, optionally loaded from a .env file. Defaults are
// declared on the section structs with `default` tags and registered with Viper by reflection.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and read timeout
//   - Storage: S3/MinIO credentials and the bucket holding the catalog files
//   - Log: logging level and format
//   - Database: preferences database (sqlite or mysql, empty driver disables it)
//   - Catalog: source (storage, http or dir), page size, level-filter taxonomy, session TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.PageSize)
package config
