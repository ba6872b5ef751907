// Package onnx implements backend.Backend on top of ONNX Runtime.
package onnx

import (
	"context"
	"fmt"
	"slices"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend"
	ort "github.com/yalue/onnxruntime_go"
)

type Backend struct {
	Session        *ort.DynamicAdvancedSession
	SessionOptions *ort.SessionOptions
	InputNames     []string
	OutputNames    []string
}

var _ backend.Backend = (*Backend)(nil)

// Factory is the backend.Factory of ONNX Runtime backends.
func Factory(
	ctx context.Context,
	modelPath string,
	cfg backend.Config,
) (backend.Backend, error) {
	b, err := New(ctx, modelPath, cfg)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func New(
	ctx context.Context,
	modelPath string,
	cfg backend.Config,
) (_ *Backend, _err error) {
	logger.Tracef(ctx, "New(ctx, '%s', %#+v)", modelPath, cfg)
	defer func() { logger.Tracef(ctx, "/New(ctx, '%s', %#+v): %v", modelPath, cfg, _err) }()

	if err := acquireEnvironment(ctx, cfg.SharedLibraryPath, cfg.LogLevel); err != nil {
		return nil, err
	}
	defer func() {
		if _err != nil {
			if err := releaseEnvironment(ctx); err != nil {
				logger.Errorf(ctx, "%v", err)
			}
		}
	}()

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("unable to create session options: %w", err)
	}
	defer func() {
		if _err != nil {
			opts.Destroy()
		}
	}()

	if cfg.IntraThreads > 0 {
		if err := opts.SetIntraOpNumThreads(cfg.IntraThreads); err != nil {
			return nil, fmt.Errorf("unable to set the amount of intra-op threads to %d: %w", cfg.IntraThreads, err)
		}
	}
	if cfg.InterThreads > 0 {
		if err := opts.SetInterOpNumThreads(cfg.InterThreads); err != nil {
			return nil, fmt.Errorf("unable to set the amount of inter-op threads to %d: %w", cfg.InterThreads, err)
		}
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath, cfg.InputNames, cfg.OutputNames, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to create a session for model '%s': %w", modelPath, err)
	}

	return &Backend{
		Session:        session,
		SessionOptions: opts,
		InputNames:     slices.Clone(cfg.InputNames),
		OutputNames:    slices.Clone(cfg.OutputNames),
	}, nil
}

func (b *Backend) NewFloat32Tensor(
	shape backend.Shape,
	data []float32,
) (backend.Tensor, error) {
	t, err := ort.NewTensor(ort.NewShape(shape...), data)
	if err != nil {
		return nil, fmt.Errorf("unable to create a float32 tensor of shape %v: %w", shape, err)
	}
	return &float32Tensor{Tensor: t}, nil
}

func (b *Backend) NewInt64Tensor(
	shape backend.Shape,
	data []int64,
) (backend.Tensor, error) {
	t, err := ort.NewTensor(ort.NewShape(shape...), data)
	if err != nil {
		return nil, fmt.Errorf("unable to create an int64 tensor of shape %v: %w", shape, err)
	}
	return &int64Tensor{Tensor: t}, nil
}

func (b *Backend) Run(
	ctx context.Context,
	inputs []backend.NamedTensor,
	outputs []backend.OutputSpec,
) (_ []backend.Tensor, _err error) {
	inputValues := make([]ort.Value, len(b.InputNames))
	for idx, name := range b.InputNames {
		i := slices.IndexFunc(inputs, func(in backend.NamedTensor) bool { return in.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("input '%s' is not provided", name)
		}
		v, ok := inputs[i].Tensor.(value)
		if !ok {
			return nil, fmt.Errorf("input '%s' is of type %T, which was not created by this backend", name, inputs[i].Tensor)
		}
		inputValues[idx] = v.ortValue()
	}

	outputTensors := make([]*float32Tensor, len(b.OutputNames))
	defer func() {
		if _err == nil {
			return
		}
		for _, t := range outputTensors {
			if t == nil {
				continue
			}
			if err := t.Release(); err != nil {
				logger.Errorf(ctx, "unable to release an output tensor: %v", err)
			}
		}
	}()

	outputValues := make([]ort.Value, len(b.OutputNames))
	for idx, name := range b.OutputNames {
		i := slices.IndexFunc(outputs, func(out backend.OutputSpec) bool { return out.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("output '%s' is not requested", name)
		}
		t, err := ort.NewEmptyTensor[float32](ort.NewShape(outputs[i].Shape...))
		if err != nil {
			return nil, fmt.Errorf("unable to allocate output '%s': %w", name, err)
		}
		outputTensors[idx] = &float32Tensor{Tensor: t}
		outputValues[idx] = t
	}

	if err := b.Session.Run(inputValues, outputValues); err != nil {
		return nil, fmt.Errorf("unable to run the inference: %w", err)
	}

	result := make([]backend.Tensor, 0, len(outputs))
	for _, out := range outputs {
		idx := slices.Index(b.OutputNames, out.Name)
		if idx < 0 {
			return nil, fmt.Errorf("output '%s' is not declared", out.Name)
		}
		result = append(result, outputTensors[idx])
	}
	return result, nil
}

func (b *Backend) Close() error {
	ctx := context.TODO()
	var mErr *multierror.Error
	if err := b.Session.Destroy(); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf("unable to destroy the session: %w", err))
	}
	if err := b.SessionOptions.Destroy(); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf("unable to destroy the session options: %w", err))
	}
	if err := releaseEnvironment(ctx); err != nil {
		mErr = multierror.Append(mErr, err)
	}
	return mErr.ErrorOrNil()
}
