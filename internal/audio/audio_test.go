package audio

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neontanks/game"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return out
}

func TestOscillator_StopsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSquare, rate, rand.New(rand.NewSource(1)))

	samples := drain(t, osc)
	assert.Len(t, samples, rate.N(100*time.Millisecond))
	for _, s := range samples {
		assert.Contains(t, []float64{-1, 1}, s[0])
	}
}

func TestEnvelope_FadesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate, nil)
	samples := drain(t, NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate))

	require.Len(t, samples, 1000)
	assert.Zero(t, samples[0][0])
	assert.InDelta(t, 0.5, samples[50][0], 1e-9)
	assert.Equal(t, 1.0, samples[500][0])
	assert.InDelta(t, 0.01, samples[999][0], 1e-9)
}

func TestCueFor(t *testing.T) {
	c, ok := cueFor(game.Event{Kind: game.EventShot, Owner: game.OwnerEnemy})
	require.True(t, ok)
	assert.Equal(t, enemyShotCue, c)

	c, ok = cueFor(game.Event{Kind: game.EventShot, Owner: game.OwnerPlayer})
	require.True(t, ok)
	assert.Equal(t, playerShotCue, c)

	_, ok = cueFor(game.Event{Kind: game.EventPickupExpired})
	assert.False(t, ok)
}

func TestCues_SynthesizeFullLength(t *testing.T) {
	rate := beep.SampleRate(22050)
	rng := rand.New(rand.NewSource(3))
	for _, c := range []cue{playerShotCue, enemyShotCue, killCue, hitCue, pickupCue, startCue, gameOverCue} {
		s, err := c.streamer(rate, rng)
		require.NoError(t, err)

		want := 0
		for _, n := range c.notes {
			want += rate.N(n.length)
		}
		samples := drain(t, s)
		assert.Len(t, samples, want)
		for _, v := range samples {
			assert.LessOrEqual(t, v[0], 1.0)
			assert.GreaterOrEqual(t, v[0], -1.0)
		}
	}
}

func TestPlayer_Disabled(t *testing.T) {
	p, err := New(false, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	p.HandleEvent(game.Event{Kind: game.EventGameOver})
	p.Close()
}

func TestPlayer_PlaysCue(t *testing.T) {
	var played []beep.Streamer
	p := &Player{
		log:  zerolog.Nop(),
		rate: beep.SampleRate(8000),
		rng:  rand.New(rand.NewSource(1)),
		play: func(s ...beep.Streamer) { played = append(played, s...) },
	}

	p.HandleEvent(game.Event{Kind: game.EventEnemyKilled})
	p.HandleEvent(game.Event{Kind: game.EventPickupExpired})

	require.Len(t, played, 1)
	assert.Len(t, drain(t, played[0]), beep.SampleRate(8000).N(killCue.length()))
}
