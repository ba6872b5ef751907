// Package backend defines the contract of an inference engine able to execute
// a neural network graph on named input tensors and to return named output tensors.
package backend

import (
	"context"
	"io"

	"github.com/facebookincubator/go-belt/tool/logger"
)

type Shape []int64

func (s Shape) NumElements() int64 {
	if len(s) == 0 {
		return 0
	}
	result := int64(1)
	for _, dim := range s {
		result *= dim
	}
	return result
}

// Tensor is a value owned by a Backend. Every Tensor must be released exactly once.
type Tensor interface {
	Shape() Shape
	Float32Data() ([]float32, error)
	Release() error
}

type NamedTensor struct {
	Name   string
	Tensor Tensor
}

type OutputSpec struct {
	Name  string
	Shape Shape
}

// Backend is a loaded inference graph.
//
// Tensors passed to the New*Tensor functions may use the provided slices
// as their storage, so the slices must not be modified until the tensor is released.
type Backend interface {
	io.Closer

	NewFloat32Tensor(shape Shape, data []float32) (Tensor, error)
	NewInt64Tensor(shape Shape, data []int64) (Tensor, error)

	// Run executes the graph. On success it returns one tensor per requested output
	// (in the same order), which the caller has to release. On failure no
	// output tensor is left allocated.
	Run(ctx context.Context, inputs []NamedTensor, outputs []OutputSpec) ([]Tensor, error)
}

type Config struct {
	IntraThreads int
	InterThreads int
	InputNames   []string
	OutputNames  []string

	// SharedLibraryPath is the path to the inference engine library,
	// empty means the platform default.
	SharedLibraryPath string

	// LogLevel is the verbosity of the inference engine itself.
	LogLevel logger.Level
}

type Factory func(ctx context.Context, modelPath string, cfg Config) (Backend, error)
