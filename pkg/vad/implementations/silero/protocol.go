package silero

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-version"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend"
)

// StateTensor is a recurrent state carried between inference calls:
// it is fed to the input InputName and read back from the output OutputName.
type StateTensor struct {
	InputName  string
	OutputName string
	Shape      backend.Shape
}

// ModelProtocol describes the input/output contract of a revision of the Silero VAD model.
type ModelProtocol struct {
	Name                  string
	AudioInputName        string
	SampleRateInputName   string
	ProbabilityOutputName string
	States                []StateTensor

	// ContextSize is the amount of trailing samples of the previous window
	// prepended to the next one. Zero means the model takes fixed windows
	// without any context.
	ContextSize int
}

var (
	// ProtocolHC64 is the LSTM revision with separate hidden and cell states (v3, v4).
	ProtocolHC64 = ModelProtocol{
		Name:                  "hc64",
		AudioInputName:        "input",
		SampleRateInputName:   "sr",
		ProbabilityOutputName: "output",
		States: []StateTensor{
			{InputName: "h", OutputName: "hn", Shape: backend.Shape{2, 1, 64}},
			{InputName: "c", OutputName: "cn", Shape: backend.Shape{2, 1, 64}},
		},
	}

	// ProtocolState128 is the revision with a single combined state and fixed windows.
	ProtocolState128 = ModelProtocol{
		Name:                  "state128",
		AudioInputName:        "input",
		SampleRateInputName:   "sr",
		ProbabilityOutputName: "output",
		States: []StateTensor{
			{InputName: "state", OutputName: "stateN", Shape: backend.Shape{2, 1, 128}},
		},
	}

	// ProtocolState128Context is ProtocolState128 with the 64-sample trailing context (v5).
	ProtocolState128Context = ModelProtocol{
		Name:                  "state128context",
		AudioInputName:        "input",
		SampleRateInputName:   "sr",
		ProbabilityOutputName: "output",
		States: []StateTensor{
			{InputName: "state", OutputName: "stateN", Shape: backend.Shape{2, 1, 128}},
		},
		ContextSize: 64,
	}
)

func Protocols() []ModelProtocol {
	return []ModelProtocol{
		ProtocolHC64,
		ProtocolState128,
		ProtocolState128Context,
	}
}

func ProtocolByName(name string) (ModelProtocol, error) {
	for _, p := range Protocols() {
		if p.Name == name {
			return p, nil
		}
	}
	return ModelProtocol{}, fmt.Errorf("unknown model protocol '%s'", name)
}

var (
	constraintHC64 = version.MustConstraints(version.NewConstraint("< 5"))
)

// ProtocolForModelVersion returns the protocol of the given Silero VAD release (e.g. "v4.0", "5.1.2").
func ProtocolForModelVersion(modelVersion string) (ModelProtocol, error) {
	v, err := version.NewVersion(modelVersion)
	if err != nil {
		return ModelProtocol{}, fmt.Errorf("unable to parse model version '%s': %w", modelVersion, err)
	}
	if constraintHC64.Check(v) {
		return ProtocolHC64, nil
	}
	return ProtocolState128Context, nil
}

func (p ModelProtocol) HasContext() bool {
	return p.ContextSize > 0
}

func (p ModelProtocol) InputNames() []string {
	result := []string{p.AudioInputName, p.SampleRateInputName}
	for _, s := range p.States {
		result = append(result, s.InputName)
	}
	return result
}

func (p ModelProtocol) OutputNames() []string {
	result := []string{p.ProbabilityOutputName}
	for _, s := range p.States {
		result = append(result, s.OutputName)
	}
	return result
}

func (p ModelProtocol) outputSpecs() []backend.OutputSpec {
	result := []backend.OutputSpec{{Name: p.ProbabilityOutputName, Shape: backend.Shape{1, 1}}}
	for _, s := range p.States {
		result = append(result, backend.OutputSpec{Name: s.OutputName, Shape: slices.Clone(s.Shape)})
	}
	return result
}

func (p ModelProtocol) validate() error {
	if p.AudioInputName == "" || p.SampleRateInputName == "" || p.ProbabilityOutputName == "" {
		return fmt.Errorf("the protocol '%s' does not define the audio/sample-rate/probability names", p.Name)
	}
	if len(p.States) == 0 {
		return fmt.Errorf("the protocol '%s' does not define any recurrent state", p.Name)
	}
	for _, s := range p.States {
		if s.Shape.NumElements() <= 0 {
			return fmt.Errorf("the state '%s' of protocol '%s' has an invalid shape %v", s.InputName, p.Name, s.Shape)
		}
	}
	if p.ContextSize < 0 {
		return fmt.Errorf("the protocol '%s' has a negative context size", p.Name)
	}
	return nil
}
