package onnx

import (
	"fmt"

	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend"
	ort "github.com/yalue/onnxruntime_go"
)

type value interface {
	backend.Tensor
	ortValue() ort.Value
}

type float32Tensor struct {
	*ort.Tensor[float32]
}

var _ value = (*float32Tensor)(nil)

func (t *float32Tensor) Shape() backend.Shape {
	return backend.Shape(t.GetShape())
}

func (t *float32Tensor) Float32Data() ([]float32, error) {
	return t.GetData(), nil
}

func (t *float32Tensor) Release() error {
	return t.Destroy()
}

func (t *float32Tensor) ortValue() ort.Value {
	return t.Tensor
}

type int64Tensor struct {
	*ort.Tensor[int64]
}

var _ value = (*int64Tensor)(nil)

func (t *int64Tensor) Shape() backend.Shape {
	return backend.Shape(t.GetShape())
}

func (t *int64Tensor) Float32Data() ([]float32, error) {
	return nil, fmt.Errorf("the tensor contains int64 values, not float32")
}

func (t *int64Tensor) Release() error {
	return t.Destroy()
}

func (t *int64Tensor) ortValue() ort.Value {
	return t.Tensor
}
