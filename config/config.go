// Package config loads shell settings from command-line flags and
// CHESSKIT_* environment variables.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/blunderdome/chesskit/backrank"
)

// Config wraps a viper instance holding the resolved settings.
type Config struct {
	v *viper.Viper
}

// Load parses flags and binds environment overrides. Environment keys
// use underscores, e.g. CHESSKIT_BACK_RANK.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("chesskit", pflag.ContinueOnError)
	fs.Bool("debug", false, "log at debug level")
	fs.Uint16("back-rank", backrank.StandardId, "starting arrangement for new games (0-959)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.v = viper.New()
	c.v.SetEnvPrefix("chesskit")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

// Debug reports whether debug logging was requested.
func (c *Config) Debug() bool {
	return c.v.GetBool("debug")
}

// BackRankID returns the arrangement new games start from.
func (c *Config) BackRankID() uint16 {
	return c.v.GetUint16("back-rank")
}

// AllSettings dumps the resolved settings for logging.
func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
