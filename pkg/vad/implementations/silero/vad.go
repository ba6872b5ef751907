package silero

import (
	"context"
	"time"

	"github.com/xaionaro-go/audio/pkg/audio"
	"github.com/xaionaro-go/silerovad/pkg/vad"
)

var _ vad.VAD = (*Session)(nil)

func (s *Session) Encoding(context.Context) (audio.Encoding, error) {
	return s.EncodingNoErr(), nil
}

func (*Session) EncodingNoErr() audio.EncodingPCM {
	return audio.EncodingPCM{
		PCMFormat:  audio.PCMFormatFloat32LE,
		SampleRate: SampleRate,
	}
}

func (s *Session) Channels(context.Context) (audio.Channel, error) {
	return s.ChannelsNoErr(), nil
}

func (*Session) ChannelsNoErr() audio.Channel {
	return 1
}

// FindNextVoice feeds samples (PCM float32LE) to Detect window by window.
// A trailing piece shorter than a window is ignored.
func (s *Session) FindNextVoice(
	ctx context.Context,
	samples []byte,
	confidenceThreshold float64,
	minDuration time.Duration,
) (float64, time.Duration, error) {
	windowSize := s.WindowSize
	if windowSize == 0 {
		windowSize = DefaultWindowSize
	}
	frameSize := windowSize * 4
	frameDuration := time.Duration(windowSize) * time.Second / SampleRate

	return vad.FindNextVoice(
		ctx,
		samples,
		confidenceThreshold,
		minDuration,
		func(samples []byte) (int, time.Duration) {
			if len(samples) < frameSize {
				return 0, 0
			}
			return frameSize, frameDuration
		},
		func(ctx context.Context, frame []byte) (float64, error) {
			probability, err := s.Detect(ctx, convertBytesToFloat32Slice(frame))
			return float64(probability), err
		},
	)
}
