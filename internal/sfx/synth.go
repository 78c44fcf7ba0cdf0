package sfx

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator 生成原始波形，固定时长
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator 创建振荡器；噪声使用固定种子，同样的参数渲染结果相同
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(freq), uint64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope 给流加上起音和释音
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性音量转换成 beep 的对数音量，0 表示静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone 指定频率与时长的正弦音，带包络
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// 频率超过奈奎斯特频率，退化为自己的振荡器
		sine = NewOscillator(freq, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, 5*time.Millisecond, d/2, rate)
}

// shaped 指定波形的音符，带包络
func shaped(rate beep.SampleRate, wave WaveType, freq float64, d, attack, release time.Duration) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// Create 合成音效，返回的流已经乘上音效音量与主音量
func Create(s Sound, rate beep.SampleRate, master float64) beep.Streamer {
	var stream beep.Streamer
	switch s {
	case SoundBombPlace:
		// 短促的方波
		stream = shaped(rate, WaveSquare, 330, 80*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond)

	case SoundExplosion:
		// 噪声 + 低频正弦
		noise := shaped(rate, WaveNoise, 0, 450*time.Millisecond, 5*time.Millisecond, 350*time.Millisecond)
		rumble := tone(rate, 55, 450*time.Millisecond)
		stream = beep.Mix(newVolume(noise, 0.7), newVolume(rumble, 0.5))

	case SoundEnemyDeath:
		stream = beep.Seq(
			shaped(rate, WaveSaw, 440, 60*time.Millisecond, 2*time.Millisecond, 20*time.Millisecond),
			shaped(rate, WaveSaw, 220, 120*time.Millisecond, 2*time.Millisecond, 80*time.Millisecond),
		)

	case SoundPlayerDeath:
		stream = beep.Seq(
			tone(rate, 440, 150*time.Millisecond),
			tone(rate, 330, 150*time.Millisecond),
			tone(rate, 220, 300*time.Millisecond),
		)

	case SoundVictory:
		// C5 E5 G5 C6 琶音
		notes := []float64{523.25, 659.25, 783.99, 1046.50}
		parts := make([]beep.Streamer, 0, len(notes))
		for i, f := range notes {
			d := 120 * time.Millisecond
			if i == len(notes)-1 {
				d = 400 * time.Millisecond
			}
			parts = append(parts, shaped(rate, WaveSquare, f, d, 3*time.Millisecond, d/2))
		}
		stream = beep.Seq(parts...)

	case SoundGameOver:
		// G3 E3 C3 下行
		stream = beep.Seq(
			shaped(rate, WaveSaw, 196.00, 250*time.Millisecond, 5*time.Millisecond, 100*time.Millisecond),
			shaped(rate, WaveSaw, 164.81, 250*time.Millisecond, 5*time.Millisecond, 100*time.Millisecond),
			shaped(rate, WaveSaw, 130.81, 600*time.Millisecond, 5*time.Millisecond, 400*time.Millisecond),
		)

	default:
		return nil
	}
	return newVolume(stream, s.Volume()*master)
}
