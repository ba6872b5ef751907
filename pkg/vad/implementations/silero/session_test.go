package silero

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend/fake"
)

func newTestSession(
	t *testing.T,
	factory *fake.Factory,
	opts ...Option,
) *Session {
	t.Helper()
	opts = append(Options{OptionBackendFactory(factory.New)}, opts...)
	s, err := New(context.Background(), "silero_vad.onnx", logger.LevelWarning, 1, 1, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sine(n int, amplitude float32) []float32 {
	result := make([]float32, n)
	for i := range result {
		result[i] = amplitude * float32(math.Sin(2*math.Pi*440*float64(i)/SampleRate))
	}
	return result
}

func ramp(n int) []float32 {
	result := make([]float32, n)
	for i := range result {
		result[i] = float32(i) / float32(n)
	}
	return result
}

func TestNewZeroState(t *testing.T) {
	for _, protocol := range Protocols() {
		t.Run(protocol.Name, func(t *testing.T) {
			factory := &fake.Factory{}
			s := newTestSession(t, factory, OptionProtocol(protocol))

			require.Len(t, s.State, len(protocol.States))
			for idx, st := range protocol.States {
				require.Len(t, s.State[idx], int(st.Shape.NumElements()))
				for _, v := range s.State[idx] {
					require.Zero(t, v)
				}
			}
			require.Nil(t, s.TrailingContext)

			b := factory.Last()
			require.Equal(t, protocol.InputNames(), b.Config.InputNames)
			require.Equal(t, protocol.OutputNames(), b.Config.OutputNames)
			require.Equal(t, 1, b.Config.IntraThreads)
			require.Equal(t, 1, b.Config.InterThreads)
		})
	}
}

func TestNewStateShapes(t *testing.T) {
	s := newTestSession(t, &fake.Factory{}, OptionProtocol(ProtocolHC64))
	require.Len(t, s.State, 2)
	require.Len(t, s.State[0], 2*1*64)
	require.Len(t, s.State[1], 2*1*64)
	require.Equal(t, backend.Shape{1, DefaultWindowSize}, s.InputWindowShape)

	s = newTestSession(t, &fake.Factory{}, OptionProtocol(ProtocolState128Context))
	require.Len(t, s.State, 1)
	require.Len(t, s.State[0], 2*1*128)
	require.Zero(t, s.WindowSize)
}

func TestNewInitErrors(t *testing.T) {
	ctx := context.Background()
	errBroken := errors.New("no such model")

	_, err := New(ctx, "missing.onnx", logger.LevelWarning, 1, 1, OptionBackendFactory((&fake.Factory{InitError: errBroken}).New))
	var errInit ErrInit
	require.ErrorAs(t, err, &errInit)
	require.Equal(t, "missing.onnx", errInit.Path)
	require.ErrorIs(t, err, errBroken)

	_, err = New(ctx, "m.onnx", logger.LevelWarning, 1, 1,
		OptionBackendFactory((&fake.Factory{}).New),
		OptionProtocol(ProtocolHC64),
		OptionWindowSize(0),
	)
	require.ErrorAs(t, err, &errInit)

	_, err = New(ctx, "m.onnx", logger.LevelWarning, 1, 1,
		OptionBackendFactory((&fake.Factory{}).New),
		OptionWindowSize(32),
	)
	require.ErrorAs(t, err, &errInit)

	_, err = New(ctx, "m.onnx", logger.LevelWarning, -1, 1, OptionBackendFactory((&fake.Factory{}).New))
	require.ErrorAs(t, err, &errInit)
}

func TestDetectDeterministic(t *testing.T) {
	windows := [][]float32{sine(512, 0.5), make([]float32, 512), ramp(512), sine(512, 0.1)}
	for _, protocol := range Protocols() {
		t.Run(protocol.Name, func(t *testing.T) {
			ctx := context.Background()
			factory := &fake.Factory{}
			a := newTestSession(t, factory, OptionProtocol(protocol))
			b := newTestSession(t, factory, OptionProtocol(protocol))

			for _, w := range windows {
				pa, err := a.Detect(ctx, w)
				require.NoError(t, err)
				pb, err := b.Detect(ctx, w)
				require.NoError(t, err)
				require.Equal(t, math.Float32bits(pa), math.Float32bits(pb))
			}
		})
	}
}

func TestDetectDependsOnHistory(t *testing.T) {
	ctx := context.Background()
	factory := &fake.Factory{}
	fresh := newTestSession(t, factory, OptionProtocol(ProtocolHC64))
	warmed := newTestSession(t, factory, OptionProtocol(ProtocolHC64))

	_, err := warmed.Detect(ctx, sine(512, 0.5))
	require.NoError(t, err)

	silence := make([]float32, 512)
	pFresh, err := fresh.Detect(ctx, silence)
	require.NoError(t, err)
	pWarmed, err := warmed.Detect(ctx, silence)
	require.NoError(t, err)
	require.NotEqual(t, pFresh, pWarmed)
}

func TestDetectProbabilityRange(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, &fake.Factory{})
	for _, w := range [][]float32{make([]float32, 512), sine(512, 1), sine(1024, 0.3), ramp(700)} {
		p, err := s.Detect(ctx, w)
		require.NoError(t, err)
		require.GreaterOrEqual(t, p, float32(0))
		require.LessOrEqual(t, p, float32(1))
	}
}

func TestDetectTrailingContext(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, &fake.Factory{})

	for _, w := range [][]float32{ramp(512), sine(512, 0.5), ramp(100)} {
		_, err := s.Detect(ctx, w)
		require.NoError(t, err)
		require.Equal(t, w[len(w)-64:], s.TrailingContext)
	}
}

func TestDetectSilenceScenario(t *testing.T) {
	ctx := context.Background()
	factory := &fake.Factory{}
	s := newTestSession(t, factory, OptionWindowSize(512))

	silence := make([]float32, 512)
	p, err := s.Detect(ctx, silence)
	require.NoError(t, err)
	require.Less(t, p, float32(0.1))
	require.Equal(t, make([]float32, 64), s.TrailingContext)

	_, err = s.Detect(ctx, silence)
	require.NoError(t, err)

	runs := factory.Last().RunRecords()
	require.Len(t, runs, 2)
	require.Equal(t, backend.Shape{1, 512}, runs[0].AudioShape)
	require.Equal(t, backend.Shape{1, 576}, runs[1].AudioShape)
	require.Equal(t, int64(SampleRate), runs[1].SampleRate)
}

func TestDetectFixedWindowShapeMismatch(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, &fake.Factory{}, OptionProtocol(ProtocolHC64))

	_, err := s.Detect(ctx, sine(512, 0.5))
	require.NoError(t, err)
	before := s.StateSnapshot()

	_, err = s.Detect(ctx, sine(511, 0.5))
	var errShape ErrShapeMismatch
	require.ErrorAs(t, err, &errShape)
	require.Equal(t, 511, errShape.Actual)
	require.Equal(t, before, s.StateSnapshot())
}

func TestDetectTooShortForContext(t *testing.T) {
	s := newTestSession(t, &fake.Factory{})
	_, err := s.Detect(context.Background(), make([]float32, 10))
	require.ErrorAs(t, err, &ErrShapeMismatch{})
	require.Nil(t, s.TrailingContext)
}

func TestDetectInferenceErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	factory := &fake.Factory{}
	s := newTestSession(t, factory)

	_, err := s.Detect(ctx, sine(512, 0.5))
	require.NoError(t, err)
	before := s.StateSnapshot()

	errBroken := errors.New("broken")
	factory.Last().SetRunError(errBroken)
	w := ramp(512)
	_, err = s.Detect(ctx, w)
	var errInference ErrInference
	require.ErrorAs(t, err, &errInference)
	require.ErrorIs(t, err, errBroken)

	require.Equal(t, before, s.StateSnapshot())
	require.Equal(t, w[len(w)-64:], s.TrailingContext)

	allocated, released := factory.Last().Stats()
	require.Equal(t, allocated, released)
}

func TestResourceDiscipline(t *testing.T) {
	ctx := context.Background()
	for _, protocol := range Protocols() {
		t.Run(protocol.Name, func(t *testing.T) {
			factory := &fake.Factory{}
			s, err := New(ctx, "silero_vad.onnx", logger.LevelWarning, 0, 0,
				OptionBackendFactory(factory.New),
				OptionProtocol(protocol),
			)
			require.NoError(t, err)

			for i := 0; i < 10; i++ {
				_, err := s.Detect(ctx, sine(512, float32(i)/10))
				require.NoError(t, err)
			}
			b := factory.Last()
			allocated, released := b.Stats()
			// audio, sample rate and the states in; probability and the states out
			require.Equal(t, uint64(10*(3+2*len(protocol.States))), allocated)
			require.Equal(t, allocated, released)

			require.NoError(t, s.Close())
			require.True(t, b.Closed())
			require.NoError(t, s.Close())

			_, err = s.Detect(ctx, sine(512, 0.5))
			require.ErrorAs(t, err, &ErrClosed{})
		})
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	factory := &fake.Factory{}
	s := newTestSession(t, factory)
	fresh := newTestSession(t, factory)

	_, err := s.Detect(ctx, sine(512, 0.5))
	require.NoError(t, err)
	require.NotNil(t, s.TrailingContext)

	s.Reset()
	require.Nil(t, s.TrailingContext)
	for _, v := range s.State[0] {
		require.Zero(t, v)
	}

	w := ramp(512)
	p0, err := s.Detect(ctx, w)
	require.NoError(t, err)
	p1, err := fresh.Detect(ctx, w)
	require.NoError(t, err)
	assert.Equal(t, p1, p0)
}

func TestClampProbability(t *testing.T) {
	require.Equal(t, float32(0), clampProbability(-0.5))
	require.Equal(t, float32(1), clampProbability(1.5))
	require.Equal(t, float32(0.25), clampProbability(0.25))
}

func TestDetectNonFiniteOutput(t *testing.T) {
	ctx := context.Background()
	factory := &fake.Factory{}
	s := newTestSession(t, factory)

	_, err := s.Detect(ctx, sine(512, 0.5))
	require.NoError(t, err)
	before := s.StateSnapshot()

	w := sine(512, 0.3)
	w[100] = float32(math.NaN())
	_, err = s.Detect(ctx, w)
	require.ErrorAs(t, err, &ErrInference{})
	require.Equal(t, before, s.StateSnapshot())

	b := factory.Last()
	b.SetOutputFilter(func(outputIdx int, data []float32) {
		if outputIdx == 1 {
			data[3] = float32(math.Inf(1))
		}
	})
	_, err = s.Detect(ctx, sine(512, 0.3))
	require.ErrorAs(t, err, &ErrInference{})
	require.Equal(t, before, s.StateSnapshot())

	b.SetOutputFilter(nil)
	_, err = s.Detect(ctx, sine(512, 0.3))
	require.NoError(t, err)
	require.NotEqual(t, before, s.StateSnapshot())

	allocated, released := b.Stats()
	require.Equal(t, allocated, released)
}

func TestDetectTensorCreationError(t *testing.T) {
	ctx := context.Background()
	errNoMemory := errors.New("not enough memory")
	// audio, sample rate, state; then the probability and the state outputs
	for after := uint64(0); after < 5; after++ {
		factory := &fake.Factory{}
		s := newTestSession(t, factory)

		_, err := s.Detect(ctx, sine(512, 0.5))
		require.NoError(t, err)
		before := s.StateSnapshot()

		b := factory.Last()
		b.SetNewTensorError(errNoMemory, after)
		_, err = s.Detect(ctx, ramp(512))
		require.ErrorAs(t, err, &ErrInference{}, "after %d", after)
		require.ErrorIs(t, err, errNoMemory, "after %d", after)
		require.Equal(t, before, s.StateSnapshot(), "after %d", after)

		allocated, released := b.Stats()
		require.Equal(t, allocated, released, "after %d", after)
		require.Equal(t, uint64(5+after), allocated, "after %d", after)
	}
}

func TestNewPassesLogLevelToBackend(t *testing.T) {
	factory := &fake.Factory{}
	s, err := New(context.Background(), "silero_vad.onnx", logger.LevelDebug, 0, 0, OptionBackendFactory(factory.New))
	require.NoError(t, err)
	defer s.Close()
	require.Equal(t, logger.LevelDebug, factory.Last().Config.LogLevel)
}
