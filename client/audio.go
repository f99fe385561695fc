package client

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"

	"github.com/LucidFrost/asteroids-sub000/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var bufferFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// SoundManager plays game sounds through a beep mixer. Voices finish on the
// speaker goroutine, so their state is atomic.
type SoundManager struct {
	log    *zap.Logger
	master float64
	mixer  *beep.Mixer
	sounds map[game.Sound]*beep.Buffer
}

// NewSoundManager opens the speaker and loads <dir>/<sound>.wav for every
// sound. Missing files are logged once and replaced with a synthesized tone.
// If the speaker cannot be opened the game runs silent.
func NewSoundManager(dir string, master float64, log *zap.Logger) game.Audio {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		log.Warn("audio unavailable, running silent", zap.Error(err))
		return game.SilentAudio{}
	}

	sm := &SoundManager{
		log:    log,
		master: master,
		mixer:  &beep.Mixer{},
		sounds: make(map[game.Sound]*beep.Buffer),
	}
	for _, s := range game.Sounds() {
		buf, err := loadSound(filepath.Join(dir, s.String()+".wav"))
		if err != nil {
			log.Warn("sound unavailable, using synthesized tone", zap.Stringer("sound", s), zap.Error(err))
			buf = synthesize(s)
		}
		sm.sounds[s] = buf
	}
	speaker.Play(sm.mixer)
	return sm
}

// Close stops every voice
func (sm *SoundManager) Close() {
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// Play implements game.Audio
func (sm *SoundManager) Play(s game.Sound, loop bool, volume float64) game.Voice {
	buf, ok := sm.sounds[s]
	if !ok || buf.Len() == 0 {
		return &voice{}
	}

	v := &voice{master: sm.master}
	var src beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		src = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	v.volume = &effects.Volume{Streamer: beep.Seq(src, beep.Callback(v.finish)), Base: 2}
	v.ctrl = &beep.Ctrl{Streamer: v.volume}
	v.apply(volume)
	v.playing.Store(true)

	speaker.Lock()
	sm.mixer.Add(v.ctrl)
	speaker.Unlock()
	return v
}

// voice is one playing sound
type voice struct {
	master  float64
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	playing atomic.Bool
}

func (v *voice) finish() { v.playing.Store(false) }

// apply sets the gain; callers hold the speaker lock once the voice is mixed
func (v *voice) apply(volume float64) {
	gain := volume * v.master
	if gain <= 0 {
		v.volume.Silent = true
		return
	}
	v.volume.Silent = false
	v.volume.Volume = math.Log2(gain)
}

func (v *voice) SetVolume(volume float64) {
	if v.ctrl == nil || !v.playing.Load() {
		return
	}
	speaker.Lock()
	v.apply(volume)
	speaker.Unlock()
}

func (v *voice) Playing() bool { return v.playing.Load() }

func (v *voice) Stop() {
	if v.ctrl == nil {
		return
	}
	speaker.Lock()
	v.ctrl.Streamer = nil
	speaker.Unlock()
	v.playing.Store(false)
}

func loadSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(bufferFormat)
	if format.SampleRate != sampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	return buf, nil
}

// synthesize renders a short stand-in for a missing sound file
func synthesize(s game.Sound) *beep.Buffer {
	buf := beep.NewBuffer(bufferFormat)
	switch s {
	case game.SoundLaserA:
		buf.Append(sweep(1400, 500, 90*time.Millisecond, 0.25))
	case game.SoundLaserB:
		buf.Append(sweep(1200, 400, 90*time.Millisecond, 0.25))
	case game.SoundThrust:
		buf.Append(noise(500*time.Millisecond, 0.15, false))
	case game.SoundExplosionSmall:
		buf.Append(noise(200*time.Millisecond, 0.4, true))
	case game.SoundExplosionMedium:
		buf.Append(noise(350*time.Millisecond, 0.5, true))
	case game.SoundExplosionLarge:
		buf.Append(noise(550*time.Millisecond, 0.6, true))
	case game.SoundEnemySpawn:
		buf.Append(tone(660, 250*time.Millisecond, 0.2))
	case game.SoundPlayerDeath:
		buf.Append(sweep(400, 60, 700*time.Millisecond, 0.4))
	case game.SoundBonusLife:
		buf.Append(beep.Seq(tone(880, 80*time.Millisecond, 0.25), tone(1320, 120*time.Millisecond, 0.25)))
	}
	return buf
}

func tone(freq float64, d time.Duration, gain float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return &effects.Gain{Streamer: beep.Take(sampleRate.N(d), sine), Gain: gain - 1}
}

// sweep is a sine gliding from one frequency to another with a linear fade
func sweep(from, to float64, d time.Duration, gain float64) beep.Streamer {
	total := sampleRate.N(d)
	pos, phase := 0, 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(total)
			phase += (from + (to-from)*t) / float64(sampleRate)
			v := math.Sin(2*math.Pi*phase) * gain * (1 - t)
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}

// noise is white noise, optionally decaying to silence
func noise(d time.Duration, gain float64, decay bool) beep.Streamer {
	total := sampleRate.N(d)
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
			env := 1.0
			if decay {
				env = 1 - float64(pos)/float64(total)
			}
			v := (rand.Float64()*2 - 1) * gain * env
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
