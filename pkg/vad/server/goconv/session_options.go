package goconv

import (
	"fmt"
	"math"

	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/proto/go/vad_grpc"
)

// ProtocolFromGRPC returns the protocol requested either explicitly by name
// or implicitly by the model version. It returns false if neither is set.
func ProtocolFromGRPC(
	req *vad_grpc.NewSessionRequest,
) (silero.ModelProtocol, bool, error) {
	switch {
	case req.GetProtocol() != "":
		p, err := silero.ProtocolByName(req.GetProtocol())
		if err != nil {
			return silero.ModelProtocol{}, false, err
		}
		return p, true, nil
	case req.GetModelVersion() != "":
		p, err := silero.ProtocolForModelVersion(req.GetModelVersion())
		if err != nil {
			return silero.ModelProtocol{}, false, err
		}
		return p, true, nil
	}
	return silero.ModelProtocol{}, false, nil
}

func intFromGRPC(name string, v uint64) (int, error) {
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%s is out of range: %d > %d", name, v, math.MaxInt32)
	}
	return int(v), nil
}

// ThreadsFromGRPC returns the intra-op and inter-op thread counts of the request.
func ThreadsFromGRPC(
	req *vad_grpc.NewSessionRequest,
) (int, int, error) {
	intraThreads, err := intFromGRPC("intraThreads", req.GetIntraThreads())
	if err != nil {
		return 0, 0, err
	}
	interThreads, err := intFromGRPC("interThreads", req.GetInterThreads())
	if err != nil {
		return 0, 0, err
	}
	return intraThreads, interThreads, nil
}

// SessionOptionsFromGRPC converts the per-request session parameters to silero options.
func SessionOptionsFromGRPC(
	req *vad_grpc.NewSessionRequest,
) (silero.Options, error) {
	var opts silero.Options
	protocol, ok, err := ProtocolFromGRPC(req)
	if err != nil {
		return nil, fmt.Errorf("unable to determine the model protocol: %w", err)
	}
	if ok {
		opts = append(opts, silero.OptionProtocol(protocol))
	}
	windowSize, err := intFromGRPC("windowSize", req.GetWindowSize())
	if err != nil {
		return nil, err
	}
	if windowSize > 0 {
		opts = append(opts, silero.OptionWindowSize(windowSize))
	}
	return opts, nil
}
