// Package pulse plays a short tone every time a wave ring restarts.
package pulse

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iburimskiy/wavelayout/internal/config"
)

// SampleRate is the rate the cue is synthesised at.
const SampleRate = beep.SampleRate(44100)

type locker interface {
	Lock()
	Unlock()
}

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Cue mixes blips into a single long-running stream. Trigger may be called from
// the frame goroutine while the speaker goroutine streams.
type Cue struct {
	settings config.Pulse
	rate     beep.SampleRate
	mixer    *beep.Mixer
	tap      *Tap
	lock     locker
	log      *zap.Logger

	mu    sync.Mutex
	muted bool
}

func NewCue(settings config.Pulse, log *zap.Logger) *Cue {
	if log == nil {
		log = zap.NewNop()
	}
	mixer := &beep.Mixer{}
	return &Cue{
		settings: settings,
		rate:     SampleRate,
		mixer:    mixer,
		tap:      NewTap(mixer, config.LevelRingSize),
		lock:     &sync.Mutex{},
		log:      log,
	}
}

// Start opens the speaker and plays the cue stream.
func (c *Cue) Start() error {
	bufferSize := c.rate.N(time.Second / 20)
	if err := speaker.Init(c.rate, bufferSize); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	c.lock = speakerLock{}
	speaker.Play(c.tap)
	c.log.Info("audio cue started", zap.Int("sample_rate", int(c.rate)))
	return nil
}

// Stream exposes the tapped cue stream.
func (c *Cue) Stream() beep.Streamer { return c.tap }

func (c *Cue) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

func (c *Cue) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// SetSettings replaces the tone used by later blips.
func (c *Cue) SetSettings(settings config.Pulse) {
	c.mu.Lock()
	c.settings = settings
	c.mu.Unlock()
}

// Trigger queues one blip unless the cue is muted or disabled.
func (c *Cue) Trigger() {
	c.mu.Lock()
	s, muted := c.settings, c.muted
	c.mu.Unlock()
	if !s.Enabled || muted {
		return
	}
	blip := Blip(c.rate, s.Frequency, s.Length, s.Volume)
	c.lock.Lock()
	c.mixer.Add(blip)
	c.lock.Unlock()
}

// Level is the current output level in 0..1.
func (c *Cue) Level() float64 {
	c.mu.Lock()
	length := c.settings.Length
	c.mu.Unlock()
	return c.tap.Level(c.rate.N(length))
}

// Blip is a sine tone whose amplitude falls linearly to zero over length.
func Blip(rate beep.SampleRate, freq float64, length time.Duration, volume float64) beep.Streamer {
	total := rate.N(length)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := volume * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(rate))
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
