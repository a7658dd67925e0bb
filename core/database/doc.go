// Package database opens the optional GORM connection used for persisted user preferences.
//
// Supported drivers are mysql (go-sql-driver through gorm.io/driver/mysql) and sqlite
// (gorm.io/driver/sqlite). An empty driver disables the database; Connect then returns
// ErrDisabled and features depending on it report themselves as disabled.
//
// The catalog itself is never stored here: items live in manifest/chunk files and in memory.
package database
