package audio

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"neontanks/game"
)

const sampleRate = beep.SampleRate(44100)

// Player plays a short synthesized cue for each game event. It implements
// game.Listener.
type Player struct {
	log  zerolog.Logger
	rate beep.SampleRate

	mu   sync.Mutex
	rng  *rand.Rand
	play func(s ...beep.Streamer)
}

// New initializes the speaker and returns a cue player. A disabled player
// accepts events and stays silent.
func New(enabled bool, log zerolog.Logger) (*Player, error) {
	p := &Player{
		log:  log,
		rate: sampleRate,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p.play = speaker.Play
	log.Debug().Int("sampleRate", int(sampleRate)).Msg("audio initialized")
	return p, nil
}

// Enabled reports whether cues reach a speaker
func (p *Player) Enabled() bool {
	return p.play != nil
}

// HandleEvent implements game.Listener.
func (p *Player) HandleEvent(ev game.Event) {
	if p.play == nil {
		return
	}
	c, ok := cueFor(ev)
	if !ok {
		return
	}

	p.mu.Lock()
	s, err := c.streamer(p.rate, p.rng)
	p.mu.Unlock()
	if err != nil {
		p.log.Warn().Err(err).Stringer("event", ev.Kind).Msg("cue synthesis failed")
		return
	}
	p.play(s)
}

// Close stops all sounds and releases the audio device
func (p *Player) Close() {
	if p.play == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.play = nil
}
