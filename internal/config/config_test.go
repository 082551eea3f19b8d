package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-table/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_BIG_BLIND", "500")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(1000, cfg.StartingChips)
	a.Equal(50, cfg.SmallBlind)
	a.Equal(500, cfg.BigBlind)
	a.Equal([]string{"Alice", "Bob"}, cfg.Players)
	a.Equal("debug", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_BIG_BLIND", "600")
	// ensure we aren't using a pointer
	cfg.BigBlind = -1
	cfg = Instance()
	a.Equal(500, cfg.BigBlind)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 20000, cfg.StartingChips)
	assert.Equal(t, 100, cfg.SmallBlind)
	assert.Equal(t, 200, cfg.BigBlind)
	assert.Equal(t, int64(0), cfg.Seed)
}
