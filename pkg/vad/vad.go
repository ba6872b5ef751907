package vad

import (
	"context"
	"io"
	"time"

	"github.com/xaionaro-go/audio/pkg/audio"
)

type VAD interface {
	io.Closer

	Encoding(context.Context) (audio.Encoding, error)
	Channels(context.Context) (audio.Channel, error)

	// FindNextVoice returns the voice probability and the offset of the first
	// voiced frame once at least minDuration of voice was found. If the samples
	// end earlier, the returned probability is zero.
	FindNextVoice(
		_ context.Context,
		samples []byte,
		confidenceThreshold float64,
		minDuration time.Duration,
	) (float64, time.Duration, error)
}
