package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvalidTransition is returned by Start and Restart when the current
// phase does not allow the requested transition.
var ErrInvalidTransition = errors.New("invalid phase transition")

// Phase is the lifecycle state of a game
type Phase int

const (
	// PhaseIdle has no entities and does not tick
	PhaseIdle Phase = iota
	// PhaseActive advances the world every tick
	PhaseActive
	// PhaseGameOver is frozen on the final frame until a restart
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Input is the per-tick snapshot polled from the input source.
type Input struct {
	Keys MovementKeys

	// Aim target in playfield coordinates
	AimX, AimY float64

	// Fire requests a shot this tick
	Fire bool

	// Start requests a new game; only honoured outside PhaseActive
	Start bool
}

// Game represents the main game state
type Game struct {
	config Config
	rng    *rand.Rand
	log    zerolog.Logger

	phase   Phase
	session uuid.UUID

	world   *World
	spawner *Spawner
	combat  *CombatSystem

	renderer  Renderer
	hud       HUD
	listeners []Listener
}

// Option configures a Game
type Option func(*Game)

// WithRenderer sets the renderer called after every tick.
func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithHUD sets the HUD called after every tick.
func WithHUD(h HUD) Option {
	return func(g *Game) { g.hud = h }
}

// WithListener adds event listeners.
func WithListener(l ...Listener) Option {
	return func(g *Game) { g.listeners = append(g.listeners, l...) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.log = log }
}

// WithRand replaces the RNG seeded from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// NewGame creates an idle game. An invalid config is a construction error.
func NewGame(config Config, opts ...Option) (*Game, error) {
	if config.Bullets == nil {
		config.Bullets = DefaultBulletTable()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
		log:    zerolog.Nop(),
		phase:  PhaseIdle,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Phase returns the current lifecycle phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Session returns the ID of the current run, uuid.Nil while idle.
func (g *Game) Session() uuid.UUID {
	return g.session
}

// Score returns the score of the current or last run.
func (g *Game) Score() int {
	if g.combat == nil {
		return 0
	}
	return g.combat.Score
}

// EntityCount returns the number of live entities, 0 while idle.
func (g *Game) EntityCount() int {
	if g.world == nil {
		return 0
	}
	return g.world.EntityCount()
}

// Config returns the game configuration
func (g *Game) Config() Config {
	return g.config
}

// Start begins the first run. Only valid while idle.
func (g *Game) Start() error {
	if g.phase != PhaseIdle {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, g.phase)
	}
	g.reset()
	return nil
}

// Restart throws away all state and begins a fresh run. Valid while idle or
// after game over.
func (g *Game) Restart() error {
	if g.phase == PhaseActive {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, g.phase)
	}
	g.reset()
	return nil
}

// reset rebuilds the whole game state; nothing survives from the last run
func (g *Game) reset() {
	b := g.config.Bounds()
	player := NewPlayer(b.Width/2, b.Height/2, g.config.Bullets)

	g.session = uuid.New()
	g.world = NewWorld(b, player)
	g.spawner = NewSpawner(g.config, g.rng, g.log.With().Str("session", g.session.String()).Logger())
	g.combat = NewCombatSystem(g.world, g.config, g.rng, g.emit)
	g.phase = PhaseActive

	g.log.Info().Str("session", g.session.String()).Msg("game started")
	g.emit(Event{Kind: EventGameStarted, X: player.X, Y: player.Y})
	g.publish()
}

// Tick advances the game by one frame. Outside PhaseActive the only thing
// it does is honour a Start request.
func (g *Game) Tick(in Input, f Frame) {
	if g.phase != PhaseActive {
		if in.Start {
			// Restart is valid from both idle and game over
			_ = g.Restart()
		}
		return
	}

	w := g.world
	player := w.Player

	player.Keys = in.Keys
	player.AimAt(in.AimX, in.AimY)
	player.Update(w.Bounds)
	if in.Fire && player.Shoot(f.Now, w) {
		x, y := player.Muzzle()
		g.emit(Event{Kind: EventShot, X: x, Y: y, Owner: OwnerPlayer})
	}

	g.spawner.Update(w, f.Now, f.Delta)

	c := g.combat
	c.AdvanceProjectiles()
	c.AdvancePickups(f.Now)
	c.AdvanceEnemies(f.Now)
	c.ResolveContact()
	c.ResolvePlayerHits()
	c.ResolveEnemyHits()

	if player.IsDead() {
		c.DestroyPlayer()
		w.Compact()
		g.finish()
		g.publish()
		return
	}

	c.AdvanceParticles()
	w.Compact()
	g.publish()
}

// finish freezes the run
func (g *Game) finish() {
	g.phase = PhaseGameOver
	p := g.world.Player
	g.log.Info().
		Str("session", g.session.String()).
		Int("score", g.combat.Score).
		Msg("game over")
	g.emit(Event{Kind: EventGameOver, X: p.X, Y: p.Y})
}

func (g *Game) emit(ev Event) {
	ev.Session = g.session
	if g.combat != nil {
		ev.Score = g.combat.Score
	}
	for _, l := range g.listeners {
		l.HandleEvent(ev)
	}
}

// publish hands the settled state to the renderer and HUD
func (g *Game) publish() {
	if g.renderer != nil {
		g.renderer.Render(g.Snapshot())
	}
	if g.hud != nil {
		g.hud.Update(g.Status())
	}
}

// Status returns what the HUD should display.
func (g *Game) Status() HUDStatus {
	s := HUDStatus{
		Phase:  g.phase,
		Score:  g.Score(),
		Bullet: BulletDefault,
		Ammo:   UnlimitedAmmo,
	}
	if g.world == nil {
		return s
	}
	p := g.world.Player
	s.HealthPercent = p.HealthPercent()
	if p.Bullet != BulletDefault {
		s.Bullet = p.Bullet
		s.Ammo = p.Ammo
	}
	return s
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:   g.phase,
		Session: g.session,
		Bounds:  g.config.Bounds(),
		Score:   g.Score(),
	}
	w := g.world
	if w == nil {
		return s
	}

	s.HasPlayer = true
	s.Player = w.Player.View()

	s.Enemies = make([]TankView, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		s.Enemies = append(s.Enemies, e.View())
	}
	s.Projectiles = make([]ProjectileView, 0, len(w.Projectiles))
	for _, p := range w.Projectiles {
		s.Projectiles = append(s.Projectiles, p.View())
	}
	s.Particles = make([]ParticleView, 0, len(w.Particles))
	for _, p := range w.Particles {
		s.Particles = append(s.Particles, p.View())
	}
	s.Pickups = make([]PickupView, 0, len(w.BulletPackages)+len(w.FirstAidKits))
	for _, p := range w.BulletPackages {
		s.Pickups = append(s.Pickups, p.View())
	}
	for _, k := range w.FirstAidKits {
		s.Pickups = append(s.Pickups, k.View())
	}
	return s
}
