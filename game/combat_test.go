package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type combatFixture struct {
	world  *World
	combat *CombatSystem
	events []Event
}

func newCombatFixture(t *testing.T) *combatFixture {
	t.Helper()
	cfg := DefaultConfig()
	f := &combatFixture{
		world: NewWorld(cfg.Bounds(), NewPlayer(400, 300, cfg.Bullets)),
	}
	f.combat = NewCombatSystem(f.world, cfg, rand.New(rand.NewSource(1)), func(ev Event) {
		f.events = append(f.events, ev)
	})
	return f
}

func (f *combatFixture) addEnemy(x, y float64) *Enemy {
	e := NewEnemy(x, y, f.world.Player, 150, GetBulletKindConfig(BulletDefault))
	f.world.Enemies = append(f.world.Enemies, e)
	return e
}

func (f *combatFixture) eventKinds() []EventKind {
	kinds := make([]EventKind, 0, len(f.events))
	for _, ev := range f.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func TestCombat_PlayerProjectileKillsEnemy(t *testing.T) {
	f := newCombatFixture(t)
	enemy := f.addEnemy(100, 100)
	shot := NewProjectile(100, 100, 0, OwnerPlayer, GetBulletKindConfig(BulletDefault), GetBulletKindConfig(BulletDefault).Color)
	f.world.AddProjectile(shot)

	f.combat.ResolvePlayerHits()

	assert.True(t, enemy.MarkedForDeletion())
	assert.True(t, shot.MarkedForDeletion())
	assert.Equal(t, 100, f.combat.Score)
	require.Len(t, f.world.Particles, 10)
	for _, p := range f.world.Particles {
		assert.Equal(t, 100.0, p.X)
		assert.Equal(t, enemy.Color, p.Color)
		assert.GreaterOrEqual(t, p.Radius, 0.0)
		assert.Less(t, p.Radius, 3.0)
	}
	assert.Equal(t, []EventKind{EventEnemyKilled}, f.eventKinds())
}

func TestCombat_OneProjectileKillsOneEnemy(t *testing.T) {
	f := newCombatFixture(t)
	a := f.addEnemy(100, 100)
	b := f.addEnemy(105, 100)
	f.world.AddProjectile(NewProjectile(102, 100, 0, OwnerPlayer, GetBulletKindConfig(BulletDefault), GetBulletKindConfig(BulletDefault).Color))

	f.combat.ResolvePlayerHits()

	assert.True(t, a.MarkedForDeletion())
	assert.False(t, b.MarkedForDeletion())
	assert.Equal(t, 100, f.combat.Score)
}

func TestCombat_EnemyProjectilesIgnoreEnemies(t *testing.T) {
	f := newCombatFixture(t)
	enemy := f.addEnemy(100, 100)
	f.world.AddProjectile(NewProjectile(100, 100, 0, OwnerEnemy, GetBulletKindConfig(BulletDefault), enemy.Color))

	f.combat.ResolvePlayerHits()

	assert.False(t, enemy.MarkedForDeletion())
	assert.Zero(t, f.combat.Score)
}

func TestCombat_EnemyProjectileHitsPlayer(t *testing.T) {
	f := newCombatFixture(t)
	player := f.world.Player
	shot := NewProjectile(player.X, player.Y, 0, OwnerEnemy, GetBulletKindConfig(BulletDefault), GetTankProfile(TankEnemy).Color)
	f.world.AddProjectile(shot)

	f.combat.ResolveEnemyHits()

	assert.Equal(t, 90, player.Health)
	assert.True(t, shot.MarkedForDeletion())
	require.Len(t, f.world.Particles, 10)
	assert.Equal(t, hitEffectColor, f.world.Particles[0].Color)
	assert.Equal(t, []EventKind{EventPlayerHit}, f.eventKinds())
}

func TestCombat_PlayerProjectilesDoNotHurtPlayer(t *testing.T) {
	f := newCombatFixture(t)
	player := f.world.Player
	f.world.AddProjectile(NewProjectile(player.X, player.Y, 0, OwnerPlayer, GetBulletKindConfig(BulletHeart), GetBulletKindConfig(BulletHeart).Color))

	f.combat.ResolveEnemyHits()

	assert.Equal(t, 100, player.Health)
}

func TestCombat_ContactDamagePerEnemy(t *testing.T) {
	f := newCombatFixture(t)
	f.addEnemy(410, 300)
	f.addEnemy(390, 300)
	f.addEnemy(700, 300)

	f.combat.ResolveContact()
	assert.Equal(t, 98, f.world.Player.Health)

	f.combat.ResolveContact()
	assert.Equal(t, 96, f.world.Player.Health)
}

func TestCombat_PickupExpiresUntouched(t *testing.T) {
	f := newCombatFixture(t)
	player := f.world.Player
	pkg := NewBulletPackage(150, 150, BulletStar, 30, GetBulletKindConfig(BulletStar).Color, 0, 15000*time.Millisecond)
	f.world.BulletPackages = append(f.world.BulletPackages, pkg)

	f.combat.AdvancePickups(15000 * time.Millisecond)
	assert.False(t, pkg.MarkedForDeletion())

	f.combat.AdvancePickups(15016 * time.Millisecond)
	assert.True(t, pkg.MarkedForDeletion())
	assert.Equal(t, BulletDefault, player.Bullet)
	assert.Equal(t, 100, player.Health)
	assert.Equal(t, []EventKind{EventPickupExpired}, f.eventKinds())

	f.world.Compact()
	assert.Empty(t, f.world.BulletPackages)
}

func TestCombat_PickupCollected(t *testing.T) {
	f := newCombatFixture(t)
	player := f.world.Player
	player.Health = 90
	pkg := NewBulletPackage(player.X+30, player.Y, BulletHeart, 20, GetBulletKindConfig(BulletHeart).Color, 0, time.Minute)
	kit := NewFirstAidKit(player.X, player.Y+30, 30, 0, time.Minute)
	f.world.BulletPackages = append(f.world.BulletPackages, pkg)
	f.world.FirstAidKits = append(f.world.FirstAidKits, kit)

	f.combat.AdvancePickups(time.Second)

	assert.True(t, pkg.MarkedForDeletion())
	assert.True(t, kit.MarkedForDeletion())
	assert.Equal(t, BulletHeart, player.Bullet)
	assert.Equal(t, 20, player.Ammo)
	assert.Equal(t, 100, player.Health)
	require.Len(t, f.events, 2)
	assert.Equal(t, PickupBullets, f.events[0].Pickup)
	assert.Equal(t, PickupFirstAid, f.events[1].Pickup)
}

func TestCombat_AdvanceEnemiesShoots(t *testing.T) {
	f := newCombatFixture(t)
	f.addEnemy(100, 300)

	f.combat.AdvanceEnemies(0)
	f.combat.AdvanceEnemies(time.Second)

	require.Len(t, f.world.Projectiles, 1)
	assert.Equal(t, OwnerEnemy, f.world.Projectiles[0].Owner)
	assert.Equal(t, []EventKind{EventShot}, f.eventKinds())
	assert.Equal(t, OwnerEnemy, f.events[0].Owner)
}

func TestCombat_ProjectilesLeavingBoundsAreMarked(t *testing.T) {
	f := newCombatFixture(t)
	cfg := GetBulletKindConfig(BulletLaser)
	out := NewProjectile(f.world.Bounds.Width-10, 100, 0, OwnerPlayer, cfg, cfg.Color)
	in := NewProjectile(100, 100, 0, OwnerPlayer, cfg, cfg.Color)
	f.world.AddProjectile(out)
	f.world.AddProjectile(in)

	f.combat.AdvanceProjectiles()

	assert.True(t, out.MarkedForDeletion())
	assert.False(t, in.MarkedForDeletion())
	assert.Equal(t, 125.0, in.X)
}

func TestCombat_ParticlesFadeOut(t *testing.T) {
	f := newCombatFixture(t)
	f.combat.SpawnExplosion(10, 10, hitEffectColor)
	require.Len(t, f.world.Particles, 10)

	for i := 0; i < 60; i++ {
		f.combat.AdvanceParticles()
		f.world.Compact()
	}
	assert.Empty(t, f.world.Particles)
}
