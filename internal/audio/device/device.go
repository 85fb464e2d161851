// Package device streams a mixer to the system audio output through oto.
package device

import (
	"fmt"
	"io"
	"sync"

	"github.com/hajimehoshi/oto/v2"

	"pong/internal/audio"
)

// bufferFrames keeps effect latency near two video frames.
const bufferFrames = audio.SampleRate / 30

// Device owns the oto context and the single long-lived player that pulls
// from the mixer.
type Device struct {
	mu     sync.Mutex
	ctx    *oto.Context
	player oto.Player
	closed bool
}

// Open creates the output context and starts playing src as soon as the
// context reports ready. oto allows one context per process.
func Open(src io.Reader) (*Device, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, audio.BitDepthInBytes)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	d := &Device{ctx: ctx, player: ctx.NewPlayer(src)}
	if s, ok := d.player.(interface{ SetBufferSize(int) }); ok {
		s.SetBufferSize(bufferFrames * audio.ChannelCount * audio.BitDepthInBytes)
	}

	go func() {
		<-ready
		d.mu.Lock()
		defer d.mu.Unlock()
		if !d.closed {
			d.player.Play()
		}
	}()
	return d, nil
}

// Err reports an asynchronous playback failure, if any.
func (d *Device) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	return d.player.Err()
}

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if err := d.player.Close(); err != nil {
		return fmt.Errorf("close player: %w", err)
	}
	return nil
}
