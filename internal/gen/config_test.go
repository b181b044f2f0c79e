package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Real(t *testing.T) {
	assert.Equal(t, "plot", Command{Name: "plot"}.Real())
	assert.Equal(t, "set_title", Command{Name: "title", RealName: "set_title"}.Real())
}

func TestDefaultConfig_TableSizes(t *testing.T) {
	cfg := DefaultConfig()

	assert.Len(t, cfg.Commands, 74)
	assert.Len(t, cfg.Mappable, 15)
	assert.Len(t, cfg.Cmaps, 19)
}

func TestDefaultConfig_MappableKeysAreCommands(t *testing.T) {
	cfg := DefaultConfig()

	names := make(map[string]bool, len(cfg.Commands))
	for _, c := range cfg.Commands {
		names[c.Name] = true
	}

	for name := range cfg.Mappable {
		assert.True(t, names[name], "mappable entry %q has no command", name)
	}
}

func TestDefaultConfig_NoDuplicateCommands(t *testing.T) {
	cfg := DefaultConfig()

	seen := make(map[string]bool, len(cfg.Commands))
	for _, c := range cfg.Commands {
		assert.False(t, seen[c.Name], "duplicate command %q", c.Name)
		seen[c.Name] = true
	}
}

func TestDefaultConfig_Reserved(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"gca", "gci", "__ret"}, cfg.Reserved)
}

func TestDefaultConfig_SentinelAliases(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, map[string]string{
		"detrend_none":   "mlab.detrend_none",
		"window_hanning": "mlab.window_hanning",
		"mean":           "np.mean",
	}, cfg.SentinelAliases)
}
