package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"neontanks/game"
)

const (
	configName = "neontanks"
	envPrefix  = "NEONTANKS"
)

// AudioConfig holds sound cue settings
type AudioConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// ProfilingConfig holds frame-stall diagnostics settings
type ProfilingConfig struct {
	Enabled        bool          `json:"enabled" mapstructure:"enabled"`
	Dir            string        `json:"dir" mapstructure:"dir"`
	StallThreshold time.Duration `json:"stallThreshold" mapstructure:"stallThreshold"`
	CaptureFor     time.Duration `json:"captureFor" mapstructure:"captureFor"`
}

// Settings is everything a host reads from configuration
type Settings struct {
	LogLevel  string
	Audio     AudioConfig
	Profiling ProfilingConfig
	Game      game.Config
}

func setDefaults(v *viper.Viper) {
	def := game.DefaultConfig()

	v.SetDefault("logLevel", "info")

	v.SetDefault("audio.enabled", true)

	v.SetDefault("profiling.enabled", false)
	v.SetDefault("profiling.dir", "./profiles")
	v.SetDefault("profiling.stallThreshold", "100ms")
	v.SetDefault("profiling.captureFor", "2s")

	v.SetDefault("game.width", def.Width)
	v.SetDefault("game.height", def.Height)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.spawn.enemy", def.EnemySpawnInterval.String())
	v.SetDefault("game.spawn.bulletPackage", def.BulletPackageSpawnInterval.String())
	v.SetDefault("game.spawn.firstAidKit", def.FirstAidKitSpawnInterval.String())
	v.SetDefault("game.pickup.lifespan", def.PickupLifespan.String())
	v.SetDefault("game.pickup.heal", def.FirstAidHeal)
	v.SetDefault("game.pickup.margin", def.PickupMargin)
	v.SetDefault("game.standoff", def.StandoffDistance)
	v.SetDefault("game.contactDamage", def.ContactDamage)
	v.SetDefault("game.killScore", def.KillScore)
	v.SetDefault("game.explosionParticles", def.ExplosionParticles)

	for kind, cfg := range def.Bullets {
		prefix := "bullets." + kind.String() + "."
		v.SetDefault(prefix+"speed", cfg.Speed)
		v.SetDefault(prefix+"width", cfg.Width)
		v.SetDefault(prefix+"damage", cfg.Damage)
		v.SetDefault(prefix+"color", HexColor(cfg.Color))
	}
}

// Load reads neontanks.{json,yaml,toml} from configDir on top of the
// defaults. A missing file is not an error. Every key can be overridden
// from the environment, e.g. NEONTANKS_GAME_SEED or NEONTANKS_LOGLEVEL.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	if configDir == "" {
		configDir = "."
	}
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Settings, error) {
	s := Settings{
		LogLevel: v.GetString("logLevel"),
		Audio:    AudioConfig{Enabled: v.GetBool("audio.enabled")},
		Profiling: ProfilingConfig{
			Enabled:        v.GetBool("profiling.enabled"),
			Dir:            v.GetString("profiling.dir"),
			StallThreshold: v.GetDuration("profiling.stallThreshold"),
			CaptureFor:     v.GetDuration("profiling.captureFor"),
		},
	}

	bullets, err := decodeBullets(v)
	if err != nil {
		return Settings{}, err
	}

	s.Game = game.Config{
		Width:                      v.GetFloat64("game.width"),
		Height:                     v.GetFloat64("game.height"),
		Seed:                       v.GetInt64("game.seed"),
		EnemySpawnInterval:         v.GetDuration("game.spawn.enemy"),
		BulletPackageSpawnInterval: v.GetDuration("game.spawn.bulletPackage"),
		FirstAidKitSpawnInterval:   v.GetDuration("game.spawn.firstAidKit"),
		PickupLifespan:             v.GetDuration("game.pickup.lifespan"),
		PickupMargin:               v.GetFloat64("game.pickup.margin"),
		FirstAidHeal:               v.GetInt("game.pickup.heal"),
		StandoffDistance:           v.GetFloat64("game.standoff"),
		ContactDamage:              v.GetInt("game.contactDamage"),
		KillScore:                  v.GetInt("game.killScore"),
		ExplosionParticles:         v.GetInt("game.explosionParticles"),
		Bullets:                    bullets,
	}
	if err := s.Game.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// decodeBullets builds the bullet table. Every key under bullets must name a
// known kind.
func decodeBullets(v *viper.Viper) (game.BulletTable, error) {
	table := game.DefaultBulletTable()
	for name := range v.GetStringMap("bullets") {
		kind, err := game.ParseBulletKind(name)
		if err != nil {
			return nil, fmt.Errorf("bullets.%s: %w", name, err)
		}
		prefix := "bullets." + name + "."

		cfg := table[kind]
		cfg.Speed = v.GetFloat64(prefix + "speed")
		cfg.Width = v.GetFloat64(prefix + "width")
		cfg.Damage = v.GetInt(prefix + "damage")
		clr, err := ParseColor(v.GetString(prefix + "color"))
		if err != nil {
			return nil, fmt.Errorf("bullets.%s.color: %w", name, err)
		}
		cfg.Color = clr
		table[kind] = cfg
	}
	return table, nil
}

// ParseColor parses a #rrggbb hex string.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// HexColor formats c as #rrggbb, ignoring alpha.
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
