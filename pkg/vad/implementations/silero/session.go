package silero

import (
	"context"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend"
)

const (
	SampleRate        = 16000
	DefaultWindowSize = 512
)

// Detector returns the speech probability of consecutive windows of
// 16kHz mono float32 samples.
type Detector interface {
	io.Closer
	Detect(ctx context.Context, samples []float32) (float32, error)
}

// Session is a streaming Silero VAD inference session.
//
// Calls to Detect must be serialized by the caller: the recurrent state
// produced by a call is the input of the next one.
type Session struct {
	Logger   logger.Logger
	Protocol ModelProtocol
	Backend  backend.Backend

	// WindowSize is the amount of samples every Detect call expects; zero means any amount.
	WindowSize int

	// State contains one buffer per Protocol.States entry.
	State [][]float32

	// TrailingContext is the tail of the previously submitted window,
	// nil until the first Detect call.
	TrailingContext []float32

	InputWindowShape backend.Shape
	SampleRateValue  []int64
}

var _ Detector = (*Session)(nil)

func New(
	ctx context.Context,
	modelPath string,
	logLevel logger.Level,
	intraThreads int,
	interThreads int,
	opts ...Option,
) (_ *Session, _err error) {
	cfg := Options(opts).config()
	l := logger.FromCtx(ctx).WithLevel(logLevel)
	ctx = logger.CtxWithLogger(ctx, l)
	logger.Tracef(ctx, "New(ctx, '%s', %v, %d, %d, %#+v)", modelPath, logLevel, intraThreads, interThreads, cfg)
	defer func() { logger.Tracef(ctx, "/New(ctx, '%s', ...): %v", modelPath, _err) }()

	protocol := cfg.Protocol
	if err := protocol.validate(); err != nil {
		return nil, ErrInit{Path: modelPath, Err: err}
	}
	if intraThreads < 0 || interThreads < 0 {
		return nil, ErrInit{Path: modelPath, Err: fmt.Errorf("negative amount of threads: intra:%d, inter:%d", intraThreads, interThreads)}
	}

	windowSize := 0
	if !protocol.HasContext() {
		windowSize = DefaultWindowSize
	}
	if cfg.WindowSize != nil {
		windowSize = *cfg.WindowSize
	}
	switch {
	case windowSize < 0:
		return nil, ErrInit{Path: modelPath, Err: fmt.Errorf("negative window size %d", windowSize)}
	case windowSize == 0 && !protocol.HasContext():
		return nil, ErrInit{Path: modelPath, Err: fmt.Errorf("protocol '%s' requires a fixed window size", protocol.Name)}
	case windowSize > 0 && windowSize < protocol.ContextSize:
		return nil, ErrInit{Path: modelPath, Err: fmt.Errorf("window size %d is smaller than the context size %d", windowSize, protocol.ContextSize)}
	}

	if cfg.BackendFactory == nil {
		return nil, ErrInit{Path: modelPath, Err: fmt.Errorf("no inference backend is configured")}
	}
	b, err := cfg.BackendFactory(ctx, modelPath, backend.Config{
		IntraThreads:      intraThreads,
		InterThreads:      interThreads,
		InputNames:        protocol.InputNames(),
		OutputNames:       protocol.OutputNames(),
		SharedLibraryPath: cfg.SharedLibraryPath,
		LogLevel:          logLevel,
	})
	if err != nil {
		return nil, ErrInit{Path: modelPath, Err: err}
	}

	s := &Session{
		Logger:          l,
		Protocol:        protocol,
		Backend:         b,
		WindowSize:      windowSize,
		State:           make([][]float32, 0, len(protocol.States)),
		SampleRateValue: []int64{SampleRate},
	}
	for _, st := range protocol.States {
		s.State = append(s.State, make([]float32, st.Shape.NumElements()))
	}
	if !protocol.HasContext() {
		s.InputWindowShape = backend.Shape{1, int64(windowSize)}
	}
	logger.Debugf(ctx, "initialized a session with protocol '%s', window size %d", protocol.Name, windowSize)
	return s, nil
}

func (s *Session) ctx(ctx context.Context) context.Context {
	return logger.CtxWithLogger(ctx, s.Logger)
}

// Detect runs the inference over samples (16kHz mono) and returns the speech probability.
func (s *Session) Detect(
	ctx context.Context,
	samples []float32,
) (_ret float32, _err error) {
	ctx = s.ctx(ctx)
	logger.Tracef(ctx, "Detect(ctx, samples[len:%d])", len(samples))
	defer func() { logger.Tracef(ctx, "/Detect(ctx, samples[len:%d]): %v %v", len(samples), _ret, _err) }()

	if s.Backend == nil {
		return 0, ErrClosed{}
	}
	if err := s.checkWindowSize(len(samples)); err != nil {
		return 0, err
	}

	window := s.assembleWindow(samples)
	windowShape := s.InputWindowShape
	if s.Protocol.HasContext() {
		windowShape = backend.Shape{1, int64(len(window))}
	}

	var transient []backend.Tensor
	defer func() {
		s.release(ctx, transient...)
	}()

	audioTensor, err := s.Backend.NewFloat32Tensor(windowShape, window)
	if err != nil {
		return 0, ErrInference{Err: fmt.Errorf("unable to create the audio tensor: %w", err)}
	}
	transient = append(transient, audioTensor)

	sampleRateTensor, err := s.Backend.NewInt64Tensor(backend.Shape{1}, s.SampleRateValue)
	if err != nil {
		return 0, ErrInference{Err: fmt.Errorf("unable to create the sample rate tensor: %w", err)}
	}
	transient = append(transient, sampleRateTensor)

	inputs := []backend.NamedTensor{
		{Name: s.Protocol.AudioInputName, Tensor: audioTensor},
		{Name: s.Protocol.SampleRateInputName, Tensor: sampleRateTensor},
	}
	for idx, st := range s.Protocol.States {
		t, err := s.Backend.NewFloat32Tensor(st.Shape, s.State[idx])
		if err != nil {
			return 0, ErrInference{Err: fmt.Errorf("unable to create the tensor of state '%s': %w", st.InputName, err)}
		}
		transient = append(transient, t)
		inputs = append(inputs, backend.NamedTensor{Name: st.InputName, Tensor: t})
	}

	outputSpecs := s.Protocol.outputSpecs()
	outputs, err := s.Backend.Run(ctx, inputs, outputSpecs)
	if err != nil {
		return 0, ErrInference{Err: err}
	}
	transient = append(transient, outputs...)
	if len(outputs) != len(outputSpecs) {
		return 0, ErrInference{Err: fmt.Errorf("expected %d outputs, received %d", len(outputSpecs), len(outputs))}
	}

	probabilities, err := outputs[0].Float32Data()
	if err != nil {
		return 0, ErrInference{Err: fmt.Errorf("unable to read output '%s': %w", s.Protocol.ProbabilityOutputName, err)}
	}
	if len(probabilities) == 0 {
		return 0, ErrInference{Err: fmt.Errorf("output '%s' is empty", s.Protocol.ProbabilityOutputName)}
	}
	if !isFinite(probabilities[0]) {
		return 0, ErrInference{Err: fmt.Errorf("output '%s' is not finite: %v", s.Protocol.ProbabilityOutputName, probabilities[0])}
	}

	newStates := make([][]float32, 0, len(s.Protocol.States))
	for idx, st := range s.Protocol.States {
		data, err := outputs[idx+1].Float32Data()
		if err != nil {
			return 0, ErrInference{Err: fmt.Errorf("unable to read output '%s': %w", st.OutputName, err)}
		}
		if len(data) != len(s.State[idx]) {
			return 0, ErrInference{Err: fmt.Errorf("output '%s' has %d values, expected %d", st.OutputName, len(data), len(s.State[idx]))}
		}
		if i := slices.IndexFunc(data, func(v float32) bool { return !isFinite(v) }); i >= 0 {
			return 0, ErrInference{Err: fmt.Errorf("output '%s' has a non-finite value %v at %d", st.OutputName, data[i], i)}
		}
		newStates = append(newStates, data)
	}

	// the outputs are released on return, so copying
	for idx, data := range newStates {
		copy(s.State[idx], data)
	}

	return clampProbability(probabilities[0]), nil
}

func (s *Session) checkWindowSize(sampleCount int) error {
	if s.WindowSize > 0 && sampleCount != s.WindowSize {
		return ErrShapeMismatch{Expected: strconv.Itoa(s.WindowSize), Actual: sampleCount}
	}
	if sampleCount == 0 || sampleCount < s.Protocol.ContextSize {
		return ErrShapeMismatch{Expected: fmt.Sprintf("at least %d", max(1, s.Protocol.ContextSize)), Actual: sampleCount}
	}
	return nil
}

// assembleWindow returns the window to be fed to the network and updates
// the trailing context with the tail of samples.
//
// The very first window of a session is used as is, without a context prefix.
func (s *Session) assembleWindow(samples []float32) []float32 {
	contextSize := s.Protocol.ContextSize
	if contextSize == 0 {
		return samples
	}

	var window []float32
	if s.TrailingContext == nil {
		s.TrailingContext = make([]float32, contextSize)
		window = samples
	} else {
		window = make([]float32, 0, contextSize+len(samples))
		window = append(window, s.TrailingContext...)
		window = append(window, samples...)
	}
	copy(s.TrailingContext, samples[len(samples)-contextSize:])
	return window
}

func (s *Session) release(
	ctx context.Context,
	tensors ...backend.Tensor,
) {
	var mErr *multierror.Error
	for _, t := range tensors {
		if err := t.Release(); err != nil {
			mErr = multierror.Append(mErr, err)
		}
	}
	if err := mErr.ErrorOrNil(); err != nil {
		logger.Errorf(ctx, "unable to release transient tensors: %v", err)
	}
}

func isFinite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

func clampProbability(p float32) float32 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Reset returns the session to the state it had right after New.
func (s *Session) Reset() {
	for _, buf := range s.State {
		clear(buf)
	}
	s.TrailingContext = nil
}

// StateSnapshot returns a copy of the recurrent state.
func (s *Session) StateSnapshot() [][]float32 {
	result := make([][]float32, 0, len(s.State))
	for _, buf := range s.State {
		result = append(result, slices.Clone(buf))
	}
	return result
}

func (s *Session) Close() error {
	if s.Backend == nil {
		return nil
	}
	ctx := s.ctx(context.TODO())
	logger.Debugf(ctx, "closing the session")
	err := s.Backend.Close()
	s.Backend = nil
	s.State = nil
	s.TrailingContext = nil
	if err != nil {
		return fmt.Errorf("unable to close the inference backend: %w", err)
	}
	return nil
}
