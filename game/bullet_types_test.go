package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBulletKind(t *testing.T) {
	for _, kind := range []BulletKind{BulletDefault, BulletStar, BulletHeart, BulletLaser} {
		got, err := ParseBulletKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	got, err := ParseBulletKind("  LASER ")
	require.NoError(t, err)
	assert.Equal(t, BulletLaser, got)

	_, err = ParseBulletKind("plasma")
	assert.ErrorIs(t, err, ErrUnknownBulletKind)
}

func TestGetBulletKindConfig(t *testing.T) {
	star := GetBulletKindConfig(BulletStar)
	assert.Equal(t, 15.0, star.Speed)
	assert.Equal(t, 12.0, star.Width)
	assert.Equal(t, 15, star.Damage)
	assert.Equal(t, ShapeStar, star.Shape)

	assert.Equal(t, GetBulletKindConfig(BulletDefault), GetBulletKindConfig(BulletKind(42)))
}

func TestBulletTable_Validate(t *testing.T) {
	table := DefaultBulletTable()
	require.NoError(t, table.Validate())
	assert.Len(t, table, 4)

	broken := DefaultBulletTable()
	cfg := broken[BulletHeart]
	cfg.Speed = 0
	broken[BulletHeart] = cfg
	assert.Error(t, broken.Validate())

	unknown := DefaultBulletTable()
	unknown[BulletKind(9)] = GetBulletKindConfig(BulletDefault)
	assert.ErrorIs(t, unknown.Validate(), ErrUnknownBulletKind)
}

func TestBulletTable_GetFallsBack(t *testing.T) {
	table := BulletTable{}
	assert.Equal(t, GetBulletKindConfig(BulletLaser), table.Get(BulletLaser))
}
