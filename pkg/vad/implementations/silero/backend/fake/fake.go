// Package fake provides a deterministic in-memory backend.Backend.
//
// It does not execute any real network: the "graph" is a toy recurrence
// over the energy of the audio window, which is enough to observe how
// the recurrent state and the trailing context flow between calls.
package fake

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend"
)

var ErrDoubleRelease = errors.New("the tensor is already released")

// RunRecord describes the inputs of a single Run call.
type RunRecord struct {
	AudioShape backend.Shape
	SampleRate int64
}

type Backend struct {
	Locker    sync.Mutex
	ModelPath string
	Config    backend.Config

	// RunError, if set, is returned by Run.
	RunError error

	// NewTensorError, if set, is returned by every tensor allocation
	// once NewTensorErrorAfter tensors are allocated.
	NewTensorError      error
	NewTensorErrorAfter uint64

	// OutputFilter, if set, may modify the output values of Run
	// (0 is the probability, the rest are the states).
	OutputFilter func(outputIdx int, data []float32)

	Allocated uint64
	Released  uint64
	Runs      []RunRecord
	IsClosed  bool
}

var _ backend.Backend = (*Backend)(nil)

// Factory creates fake backends and keeps track of them.
type Factory struct {
	Locker    sync.Mutex
	InitError error
	Backends  []*Backend
}

func (f *Factory) New(
	_ context.Context,
	modelPath string,
	cfg backend.Config,
) (backend.Backend, error) {
	f.Locker.Lock()
	defer f.Locker.Unlock()
	if f.InitError != nil {
		return nil, f.InitError
	}
	if len(cfg.InputNames) < 2 || len(cfg.OutputNames) != len(cfg.InputNames)-1 {
		return nil, fmt.Errorf("unexpected input/output names: %v -> %v", cfg.InputNames, cfg.OutputNames)
	}
	b := &Backend{
		ModelPath: modelPath,
		Config:    cfg,
	}
	f.Backends = append(f.Backends, b)
	return b, nil
}

func (f *Factory) Last() *Backend {
	f.Locker.Lock()
	defer f.Locker.Unlock()
	if len(f.Backends) == 0 {
		return nil
	}
	return f.Backends[len(f.Backends)-1]
}

func (f *Factory) Count() int {
	f.Locker.Lock()
	defer f.Locker.Unlock()
	return len(f.Backends)
}

func (b *Backend) SetRunError(err error) {
	b.Locker.Lock()
	defer b.Locker.Unlock()
	b.RunError = err
}

// SetNewTensorError makes the tensor allocations fail with err after
// the given amount of further successful allocations.
func (b *Backend) SetNewTensorError(err error, after uint64) {
	b.Locker.Lock()
	defer b.Locker.Unlock()
	b.NewTensorError = err
	b.NewTensorErrorAfter = b.Allocated + after
}

func (b *Backend) SetOutputFilter(fn func(outputIdx int, data []float32)) {
	b.Locker.Lock()
	defer b.Locker.Unlock()
	b.OutputFilter = fn
}

// Stats returns the amount of allocated and released tensors.
func (b *Backend) Stats() (allocated, released uint64) {
	b.Locker.Lock()
	defer b.Locker.Unlock()
	return b.Allocated, b.Released
}

func (b *Backend) RunRecords() []RunRecord {
	b.Locker.Lock()
	defer b.Locker.Unlock()
	return slices.Clone(b.Runs)
}

func (b *Backend) Closed() bool {
	b.Locker.Lock()
	defer b.Locker.Unlock()
	return b.IsClosed
}

type Tensor struct {
	Backend    *Backend
	ShapeValue backend.Shape
	Float32    []float32
	Int64      []int64
	IsReleased bool
}

var _ backend.Tensor = (*Tensor)(nil)

func (t *Tensor) Shape() backend.Shape {
	return slices.Clone(t.ShapeValue)
}

func (t *Tensor) Float32Data() ([]float32, error) {
	if t.Float32 == nil {
		return nil, fmt.Errorf("not a float32 tensor")
	}
	return t.Float32, nil
}

func (t *Tensor) Release() error {
	t.Backend.Locker.Lock()
	defer t.Backend.Locker.Unlock()
	if t.IsReleased {
		return ErrDoubleRelease
	}
	t.IsReleased = true
	t.Backend.Released++
	return nil
}

func (b *Backend) newTensor(shape backend.Shape, f32 []float32, i64 []int64) (*Tensor, error) {
	length := len(f32) + len(i64)
	if int64(length) != shape.NumElements() {
		return nil, fmt.Errorf("shape %v does not match data length %d", shape, length)
	}
	b.Locker.Lock()
	defer b.Locker.Unlock()
	if b.IsClosed {
		return nil, fmt.Errorf("the backend is closed")
	}
	if b.NewTensorError != nil && b.Allocated >= b.NewTensorErrorAfter {
		return nil, b.NewTensorError
	}
	b.Allocated++
	return &Tensor{
		Backend:    b,
		ShapeValue: slices.Clone(shape),
		Float32:    f32,
		Int64:      i64,
	}, nil
}

func (b *Backend) NewFloat32Tensor(shape backend.Shape, data []float32) (backend.Tensor, error) {
	return b.newTensor(shape, data, nil)
}

func (b *Backend) NewInt64Tensor(shape backend.Shape, data []int64) (backend.Tensor, error) {
	return b.newTensor(shape, nil, data)
}

func (b *Backend) input(inputs []backend.NamedTensor, name string) (*Tensor, error) {
	i := slices.IndexFunc(inputs, func(in backend.NamedTensor) bool { return in.Name == name })
	if i < 0 {
		return nil, fmt.Errorf("input '%s' is not provided", name)
	}
	t, ok := inputs[i].Tensor.(*Tensor)
	if !ok {
		return nil, fmt.Errorf("input '%s' is of a foreign type %T", name, inputs[i].Tensor)
	}
	if t.IsReleased {
		return nil, fmt.Errorf("input '%s' is already released", name)
	}
	return t, nil
}

// Run expects the inputs to be named as [audio, sample rate, states...] and
// the outputs as [probability, states...] in the backend.Config.
func (b *Backend) Run(
	_ context.Context,
	inputs []backend.NamedTensor,
	outputs []backend.OutputSpec,
) ([]backend.Tensor, error) {
	b.Locker.Lock()
	runErr := b.RunError
	b.Locker.Unlock()
	if runErr != nil {
		return nil, runErr
	}

	inputNames, outputNames := b.Config.InputNames, b.Config.OutputNames
	if len(outputs) != len(outputNames) {
		return nil, fmt.Errorf("expected %d outputs, got %d", len(outputNames), len(outputs))
	}
	for idx, out := range outputs {
		if out.Name != outputNames[idx] {
			return nil, fmt.Errorf("expected output #%d to be '%s', got '%s'", idx, outputNames[idx], out.Name)
		}
	}

	audio, err := b.input(inputs, inputNames[0])
	if err != nil {
		return nil, err
	}
	sampleRate, err := b.input(inputs, inputNames[1])
	if err != nil {
		return nil, err
	}
	if len(sampleRate.Int64) != 1 {
		return nil, fmt.Errorf("the sample rate is expected to be a single int64 value")
	}

	var energy float64
	for _, v := range audio.Float32 {
		energy += float64(v) * float64(v)
	}
	if len(audio.Float32) > 0 {
		energy /= float64(len(audio.Float32))
	}

	var (
		newStates [][]float32
		stateSum  float64
		stateLen  int
	)
	for idx, name := range inputNames[2:] {
		state, err := b.input(inputs, name)
		if err != nil {
			return nil, err
		}
		if state.Float32 == nil {
			return nil, fmt.Errorf("state '%s' is not float32", name)
		}
		if state.ShapeValue.NumElements() != outputs[idx+1].Shape.NumElements() {
			return nil, fmt.Errorf("state '%s' has shape %v, but the output is requested with %v", name, state.ShapeValue, outputs[idx+1].Shape)
		}
		next := make([]float32, len(state.Float32))
		for j, prev := range state.Float32 {
			v := math.Tanh(0.9*float64(prev) + energy + 0.01*float64(j%7))
			next[j] = float32(v)
			stateSum += v
		}
		stateLen += len(next)
		newStates = append(newStates, next)
	}
	var stateMean float64
	if stateLen > 0 {
		stateMean = stateSum / float64(stateLen)
	}
	probability := 1 / (1 + math.Exp(-(40*energy + stateMean - 4)))

	probabilities := make([]float32, outputs[0].Shape.NumElements())
	probabilities[0] = float32(probability)

	b.Locker.Lock()
	b.Runs = append(b.Runs, RunRecord{
		AudioShape: slices.Clone(audio.ShapeValue),
		SampleRate: sampleRate.Int64[0],
	})
	outputFilter := b.OutputFilter
	b.Locker.Unlock()
	if outputFilter != nil {
		outputFilter(0, probabilities)
		for idx, state := range newStates {
			outputFilter(idx+1, state)
		}
	}

	result := make([]backend.Tensor, 0, len(outputs))
	probabilityTensor, err := b.newTensor(outputs[0].Shape, probabilities, nil)
	if err != nil {
		return nil, err
	}
	result = append(result, probabilityTensor)
	for idx, state := range newStates {
		t, err := b.newTensor(outputs[idx+1].Shape, state, nil)
		if err != nil {
			for _, t := range result {
				t.Release()
			}
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

func (b *Backend) Close() error {
	b.Locker.Lock()
	defer b.Locker.Unlock()
	if b.IsClosed {
		return fmt.Errorf("the backend is already closed")
	}
	b.IsClosed = true
	return nil
}
