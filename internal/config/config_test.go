package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("MEMBERSHIP_CAP", "5000")
	t.Setenv("CATALOG_SOURCE", "yaml")

	cfg := Load()

	assert.Equal(t, "W Convenience Store", cfg.Store.Name)
	assert.Equal(t, int64(30), cfg.Membership.RatePercent)
	assert.Equal(t, int64(5000), cfg.Membership.Cap)
	assert.Equal(t, "yaml", cfg.Catalog.Source)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 32, cfg.Printer.Width)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", Name: "kiosk", User: "u", Password: "p", SSLMode: "disable", Timezone: "Asia/Seoul"}
	assert.Equal(t, "host=db user=u password=p dbname=kiosk port=5432 sslmode=disable TimeZone=Asia/Seoul", cfg.DSN())
}

func TestStoreConfig_Location(t *testing.T) {
	loc, err := (&StoreConfig{Timezone: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = (&StoreConfig{}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = (&StoreConfig{Timezone: "Mars/Olympus"}).Location()
	assert.Error(t, err)
}

func TestStoreConfig_Clock(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)

	clock, err := (&StoreConfig{ClockOverride: "2026-11-05"}).Clock(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 5, 0, 0, 0, 0, loc), clock())

	clock, err = (&StoreConfig{ClockOverride: "2026-11-05T13:30:00+09:00"}).Clock(loc)
	require.NoError(t, err)
	assert.True(t, clock().Equal(time.Date(2026, 11, 5, 13, 30, 0, 0, loc)))

	_, err = (&StoreConfig{ClockOverride: "next tuesday"}).Clock(loc)
	assert.Error(t, err)

	clock, err = (&StoreConfig{}).Clock(loc)
	require.NoError(t, err)
	assert.Equal(t, loc, clock().Location())
}
