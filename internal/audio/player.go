package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/abenezerd/bingocaller/internal/domain"
	"github.com/abenezerd/bingocaller/internal/logger"
)

// Audio parameters of the recorded clip set.
const (
	SampleRate   = 24000
	ChannelCount = 1
)

// Compile-time interface check.
var _ domain.ClipPlayer = (*Player)(nil)

// Player plays catalog clips via oto. One Player owns the audio device;
// the announcement queue guarantees Play is never called concurrently.
type Player struct {
	ctx     *oto.Context
	catalog *Catalog
	log     *logger.Logger
	mu      sync.Mutex
	active  *oto.Player // currently playing, nil when idle
}

// NewPlayer creates a clip player. Initializes the system audio context.
// Returns an error if the audio device is unavailable.
func NewPlayer(catalog *Catalog, log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("clip player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{ctx: ctx, catalog: catalog, log: log}, nil
}

// Play plays one clip synchronously. Blocks until playback finishes, Stop
// is called, or the context is cancelled.
func (p *Player) Play(ctx context.Context, clipID string) error {
	wav, err := p.catalog.Get(clipID)
	if err != nil {
		return fmt.Errorf("loading clip %q: %w", clipID, err)
	}

	pcm, err := extractPCM(wav)
	if err != nil {
		return fmt.Errorf("decoding clip %q: %w", clipID, err)
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))

	p.mu.Lock()
	p.active = player
	p.mu.Unlock()

	player.Play()
	p.log.Debug("clip player: playing %q (%d bytes of PCM)", clipID, len(pcm))

	// Wait for playback to complete or be interrupted.
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
		case <-time.After(10 * time.Millisecond):
		}
	}

	p.mu.Lock()
	p.active = nil
	p.mu.Unlock()

	return player.Close()
}

// Stop interrupts the currently playing clip, if any. Safe to call
// concurrently and when nothing is playing.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.mu.Unlock()

	if active != nil {
		active.Pause()
		p.log.Debug("clip player: interrupted")
	}
}

// extractPCM strips the WAV/RIFF header and returns raw PCM data.
func extractPCM(wav []byte) ([]byte, error) {
	if len(wav) < 44 {
		return nil, errors.New("wav data too short")
	}

	// Verify RIFF header.
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, errors.New("not a valid WAV file")
	}

	// Walk chunks to find the "data" chunk.
	pos := 12
	for pos < len(wav)-8 {
		chunkID := string(wav[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))

		if chunkID == "data" {
			start := pos + 8
			end := start + chunkSize
			if end > len(wav) {
				end = len(wav)
			}
			return wav[start:end], nil
		}

		pos += 8 + chunkSize
		// Chunks are word-aligned.
		if chunkSize%2 != 0 {
			pos++
		}
	}

	return nil, errors.New("data chunk not found in WAV")
}
