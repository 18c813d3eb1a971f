package client

import (
	"testing"

	"bakery-storefront/internal/config"
	"bakery-storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTestDB_Migrates(t *testing.T) {
	db, err := InitTestDB()
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&model.Item{}))
	assert.True(t, db.Migrator().HasTable(&model.Order{}))
	assert.True(t, db.Migrator().HasTable(&model.Setting{}))
}

func TestInitDBClient_UnknownDriver(t *testing.T) {
	_, err := InitDBClient(config.Database{Driver: "oracle"})
	assert.Error(t, err)
}
