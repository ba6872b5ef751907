package libfvad

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/audio/pkg/audio"
)

func TestNewVADInvalid(t *testing.T) {
	_, err := NewVAD(44100, 0)
	require.Error(t, err)
	_, err = NewVAD(16000, 4)
	require.Error(t, err)
}

func TestNextFrameSize(t *testing.T) {
	v, err := NewVAD(16000, 1)
	require.NoError(t, err)
	defer v.Close()

	for _, tc := range []struct {
		length   int
		size     int
		duration time.Duration
	}{
		{length: 2000, size: 960, duration: 30 * time.Millisecond},
		{length: 959, size: 640, duration: 20 * time.Millisecond},
		{length: 320, size: 320, duration: 10 * time.Millisecond},
		{length: 319, size: 0, duration: 0},
	} {
		size, duration := v.nextFrameSize(make([]byte, tc.length))
		require.Equal(t, tc.size, size, tc.length)
		require.Equal(t, tc.duration, duration, tc.length)
	}
}

func TestFindNextVoiceSilence(t *testing.T) {
	ctx := context.Background()
	v, err := NewVAD(16000, 3)
	require.NoError(t, err)
	defer v.Close()

	require.Equal(t, audio.EncodingPCM{PCMFormat: audio.PCMFormatS16LE, SampleRate: 16000}, v.EncodingNoErr())

	// one second of silence
	prob, pos, err := v.FindNextVoice(ctx, make([]byte, 32000), 0.5, 0)
	require.NoError(t, err)
	require.Zero(t, prob)
	require.Equal(t, time.Duration(-1), pos)
}

func TestVoiceProbabilityInvalidFrame(t *testing.T) {
	v, err := NewVAD(16000, 0)
	require.NoError(t, err)
	defer v.Close()

	_, err = v.VoiceProbability(context.Background(), make([]byte, 100))
	require.Error(t, err)
}
