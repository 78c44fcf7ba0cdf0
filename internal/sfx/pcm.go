package sfx

import (
	"encoding/binary"
	"fmt"

	"github.com/gopxl/beep"
)

// bytesPerFrame 每帧字节数：双声道 × int16
const bytesPerFrame = 4

// Render 把流完整渲染成 16 位小端双声道 PCM
func Render(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		out = appendFrames(out, buf[:n])
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("render stream: %w", err)
	}
	return out, nil
}

// appendFrames 软限幅、硬削波后编码
func appendFrames(out []byte, frames [][2]float64) []byte {
	var b [bytesPerFrame]byte
	for _, f := range frames {
		binary.LittleEndian.PutUint16(b[0:], uint16(toInt16(f[0])))
		binary.LittleEndian.PutUint16(b[2:], uint16(toInt16(f[1])))
		out = append(out, b[:]...)
	}
	return out
}

func toInt16(v float64) int16 {
	// 0.8 以上压缩
	if v > 0.8 {
		v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
	} else if v < -0.8 {
		v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
	}
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return int16(v * 32767)
}

// Bank 预先渲染好的全部音效
type Bank struct {
	rate beep.SampleRate
	pcm  [soundCount][]byte
}

// NewBank 按采样率和主音量渲染全部音效
func NewBank(sampleRate int, master float64) (*Bank, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	b := &Bank{rate: beep.SampleRate(sampleRate)}
	for _, s := range Sounds() {
		pcm, err := Render(Create(s, b.rate, master))
		if err != nil {
			return nil, fmt.Errorf("sound %s: %w", s, err)
		}
		b.pcm[s] = pcm
	}
	return b, nil
}

// PCM 音效的 PCM 数据
func (b *Bank) PCM(s Sound) []byte {
	if s < 0 || s >= soundCount {
		return nil
	}
	return b.pcm[s]
}

// SampleRate 渲染使用的采样率
func (b *Bank) SampleRate() int {
	return int(b.rate)
}
