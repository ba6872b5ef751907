package goconv

import (
	"github.com/xaionaro-go/silerovad/pkg/vad/server/proto/go/vad_grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DetectErrorToGRPC fills the error fields of a reply, so that a rejected
// window is reported without ending the Detect stream.
func DetectErrorToGRPC(reply *vad_grpc.DetectReply, err error) {
	if err == nil {
		return
	}
	st := status.Convert(err)
	reply.ErrorCode = uint32(st.Code())
	reply.ErrorMessage = st.Message()
}

func DetectErrorFromGRPC(reply *vad_grpc.DetectReply) error {
	if reply.GetErrorCode() == uint32(codes.OK) {
		return nil
	}
	return status.Error(codes.Code(reply.GetErrorCode()), reply.GetErrorMessage())
}
