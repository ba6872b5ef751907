package libfvad

import (
	"context"
	"fmt"
	"time"

	"github.com/josharian/fvad"
	"github.com/xaionaro-go/audio/pkg/audio"
	"github.com/xaionaro-go/silerovad/pkg/vad"
)

// VAD is the WebRTC voice activity detector. It is not neural, so it
// only reports probabilities 0 and 1.
type VAD struct {
	*fvad.Detector
	SampleRate audio.SampleRate
	Mode       int
}

var _ vad.VAD = (*VAD)(nil)

// NewVAD creates a detector for S16LE mono audio; sampleRate must be one of
// 8000, 16000, 32000 or 48000, and mode is the aggressiveness in range [0, 3].
func NewVAD(
	sampleRate audio.SampleRate,
	mode int,
) (*VAD, error) {
	detector := fvad.NewDetector()
	if err := detector.SetSampleRate(int(sampleRate)); err != nil {
		detector.Close()
		return nil, fmt.Errorf("unable to set the sample rate to %d: %w", sampleRate, err)
	}
	if err := detector.SetMode(mode); err != nil {
		detector.Close()
		return nil, fmt.Errorf("unable to set the mode to %d: %w", mode, err)
	}
	return &VAD{
		Detector:   detector,
		SampleRate: sampleRate,
		Mode:       mode,
	}, nil
}

func (v *VAD) Close() error {
	v.Detector.Close()
	return nil
}

func (v *VAD) Encoding(context.Context) (audio.Encoding, error) {
	return v.EncodingNoErr(), nil
}

func (v *VAD) EncodingNoErr() audio.EncodingPCM {
	return audio.EncodingPCM{
		PCMFormat:  audio.PCMFormatS16LE,
		SampleRate: v.SampleRate,
	}
}

func (v *VAD) Channels(context.Context) (audio.Channel, error) {
	return v.ChannelsNoErr(), nil
}

func (*VAD) ChannelsNoErr() audio.Channel {
	return 1
}

// VoiceProbability returns 1 if the frame (S16LE, 10, 20 or 30ms long) contains voice, and 0 otherwise.
func (v *VAD) VoiceProbability(
	_ context.Context,
	frame []byte,
) (float64, error) {
	isVoice, err := v.Detector.Process(convertBytesToInt16Slice(frame))
	if err != nil {
		return 0, fmt.Errorf("unable to process a frame of %d bytes: %w", len(frame), err)
	}
	if isVoice {
		return 1, nil
	}
	return 0, nil
}

func (v *VAD) FindNextVoice(
	ctx context.Context,
	samples []byte,
	confidenceThreshold float64,
	minDuration time.Duration,
) (float64, time.Duration, error) {
	return vad.FindNextVoice(
		ctx,
		samples,
		confidenceThreshold,
		minDuration,
		v.nextFrameSize,
		v.VoiceProbability,
	)
}

// nextFrameSize picks the longest frame supported by (*fvad.Detector).Process.
func (v *VAD) nextFrameSize(samples []byte) (int, time.Duration) {
	piece := v.pieceSize10Ms()
	switch {
	case len(samples) >= piece*3:
		return piece * 3, 30 * time.Millisecond
	case len(samples) >= piece*2:
		return piece * 2, 20 * time.Millisecond
	case len(samples) >= piece:
		return piece, 10 * time.Millisecond
	default:
		return 0, 0
	}
}

func (v *VAD) pieceSize10Ms() int {
	return int(2 * 80 * uint64(v.SampleRate) / 8000)
}
