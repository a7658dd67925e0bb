package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		db, err := Connect(Config{})
		assert.ErrorIs(t, err, ErrDisabled)
		assert.Nil(t, db)
	})

	t.Run("UnsupportedDriver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLiteInMemory", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("InvalidMySQLConnection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "catalog",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
