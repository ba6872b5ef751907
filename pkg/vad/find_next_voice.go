package vad

import (
	"context"
	"time"
)

// FrameSizeFunc returns the size (in bytes) and the duration of the next frame
// to be cut from the beginning of samples. A non-positive size means there is
// not enough samples for a frame.
type FrameSizeFunc func(samples []byte) (int, time.Duration)

// VoiceProbabilityFunc returns the probability of voice in a single frame.
type VoiceProbabilityFunc func(ctx context.Context, frame []byte) (float64, error)

// FindNextVoice implements VAD.FindNextVoice on top of a frame-level detector.
func FindNextVoice(
	ctx context.Context,
	samples []byte,
	confidenceThreshold float64,
	minDuration time.Duration,
	nextFrameSize FrameSizeFunc,
	voiceProbability VoiceProbabilityFunc,
) (float64, time.Duration, error) {
	if len(samples) == 0 {
		return 0, -1, nil
	}

	var (
		pos           time.Duration
		foundVoiceFor time.Duration
	)
	firstVoiceDetection := time.Duration(-1)
	for {
		size, duration := nextFrameSize(samples)
		if size <= 0 || size > len(samples) {
			return 0, firstVoiceDetection, nil
		}
		frame := samples[:size]
		samples = samples[size:]

		probability, err := voiceProbability(ctx, frame)
		if err != nil {
			return 0, firstVoiceDetection, err
		}

		if probability >= confidenceThreshold {
			foundVoiceFor += duration
			if firstVoiceDetection < 0 {
				firstVoiceDetection = pos
			}
			if foundVoiceFor >= minDuration {
				return probability, firstVoiceDetection, nil
			}
		}
		pos += duration
	}
}
