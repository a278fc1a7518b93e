package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"neontanks/game"
)

// note is one segment of a cue
type note struct {
	freq   float64
	length time.Duration
	wave   WaveType
}

// cue is a short sequence of notes played for one event kind
type cue struct {
	notes  []note
	volume float64
}

const noteEdge = 5 * time.Millisecond

var (
	playerShotCue = cue{notes: []note{{freq: 880, length: 60 * time.Millisecond, wave: WaveSquare}}, volume: 0.15}
	enemyShotCue  = cue{notes: []note{{freq: 330, length: 80 * time.Millisecond, wave: WaveSquare}}, volume: 0.08}
	killCue       = cue{notes: []note{{length: 250 * time.Millisecond, wave: WaveNoise}}, volume: 0.35}
	hitCue        = cue{notes: []note{{freq: 120, length: 150 * time.Millisecond, wave: WaveSquare}}, volume: 0.25}
	pickupCue     = cue{notes: []note{{freq: 660, length: 70 * time.Millisecond}, {freq: 990, length: 90 * time.Millisecond}}, volume: 0.3}
	startCue      = cue{notes: []note{{freq: 440, length: 90 * time.Millisecond}, {freq: 660, length: 90 * time.Millisecond}, {freq: 880, length: 140 * time.Millisecond}}, volume: 0.3}
	gameOverCue   = cue{notes: []note{{freq: 440, length: 180 * time.Millisecond}, {freq: 330, length: 180 * time.Millisecond}, {freq: 220, length: 400 * time.Millisecond}}, volume: 0.35}
)

// cueFor picks the cue for an event. Expired pickups are silent.
func cueFor(ev game.Event) (cue, bool) {
	switch ev.Kind {
	case game.EventShot:
		if ev.Owner == game.OwnerEnemy {
			return enemyShotCue, true
		}
		return playerShotCue, true
	case game.EventEnemyKilled:
		return killCue, true
	case game.EventPlayerHit:
		return hitCue, true
	case game.EventPickupCollected:
		return pickupCue, true
	case game.EventGameStarted:
		return startCue, true
	case game.EventGameOver:
		return gameOverCue, true
	default:
		return cue{}, false
	}
}

// length is the total play time of the cue
func (c cue) length() time.Duration {
	var d time.Duration
	for _, n := range c.notes {
		d += n.length
	}
	return d
}

// streamer synthesizes the cue at rate
func (c cue) streamer(rate beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(c.notes))
	for _, n := range c.notes {
		var osc beep.Streamer
		if n.wave == WaveSine {
			tone, err := generators.SineTone(rate, n.freq)
			if err != nil {
				return nil, err
			}
			osc = beep.Take(rate.N(n.length), tone)
		} else {
			osc = NewOscillator(n.freq, n.length, n.wave, rate, rng)
		}
		parts = append(parts, NewEnvelope(osc, n.length, noteEdge, noteEdge, rate))
	}
	return newVolume(beep.Seq(parts...), c.volume), nil
}
