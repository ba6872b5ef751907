package client

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/consts"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/goconv"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/proto/go/vad_grpc"
	"github.com/xaionaro-go/xsync"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client is a Silero VAD session hosted by a remote vadd.
type Client struct {
	RemoteAddr    string
	VADClient     vad_grpc.VoiceActivityDetectorClient
	Connection    *grpc.ClientConn
	SessionID     uint64
	SessionHolder vad_grpc.VoiceActivityDetector_NewSessionClient
	Detector      vad_grpc.VoiceActivityDetector_DetectClient

	Locker        xsync.Mutex
	SessionCtx    context.Context
	CancelSession context.CancelFunc
}

var _ silero.Detector = (*Client)(nil)

// New connects to addr and opens a session. The session lives until Close is called.
func New(
	ctx context.Context,
	addr string,
	sessionParams *vad_grpc.NewSessionRequest,
	dialOpts ...grpc.DialOption,
) (_ *Client, _err error) {
	logger.Tracef(ctx, "New(ctx, '%s', %#+v)", addr, sessionParams)
	defer func() { logger.Tracef(ctx, "/New(ctx, '%s', %#+v): %v", addr, sessionParams, _err) }()

	c := &Client{
		RemoteAddr: addr,
	}
	vadClient, conn, err := c.grpcClient(dialOpts...)
	if err != nil {
		return nil, err
	}
	c.VADClient = vadClient
	c.Connection = conn

	// the session is held open by the stream, so it must not depend on ctx
	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.SessionCtx = sessionCtx
	c.CancelSession = cancel

	sessionClient, err := c.VADClient.NewSession(sessionCtx, sessionParams)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("unable to get a new session: %w", err)
	}
	sessionReply, err := sessionClient.Recv()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("unable to receive the session ID: %w", err)
	}
	c.SessionID = sessionReply.GetSessionID()
	c.SessionHolder = sessionClient

	if err := c.openDetector(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) openDetector() error {
	detector, err := c.VADClient.Detect(c.SessionCtx)
	if err != nil {
		return fmt.Errorf("unable to initialize the detection stream: %w", err)
	}
	c.Detector = detector
	return nil
}

func (c *Client) grpcClient(
	dialOpts ...grpc.DialOption,
) (vad_grpc.VoiceActivityDetectorClient, *grpc.ClientConn, error) {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallSendMsgSize(consts.MaxMessageSize), grpc.MaxCallRecvMsgSize(consts.MaxMessageSize)),
	}, dialOpts...)
	conn, err := grpc.NewClient(c.RemoteAddr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to initialize a gRPC client: %w", err)
	}

	client := vad_grpc.NewVoiceActivityDetectorClient(conn)
	return client, conn, nil
}

func (c *Client) Close() error {
	if c.CancelSession != nil {
		c.CancelSession()
	}
	return c.Connection.Close()
}

// Detect sends the window to the server and waits for its probability.
//
// A window rejected by the server is reported as a gRPC status error and
// does not affect the following calls. If the detection stream itself
// breaks, it is reopened on the next call.
func (c *Client) Detect(
	ctx context.Context,
	samples []float32,
) (float32, error) {
	var (
		probability float32
		err         error
	)
	c.Locker.Do(xsync.WithNoLogging(ctx, true), func() {
		if c.Detector == nil {
			if err = c.openDetector(); err != nil {
				return
			}
		}
		err = c.Detector.Send(&vad_grpc.DetectRequest{
			SessionID: c.SessionID,
			Audio:     convertFloat32SliceToBytes(samples),
		})
		if err != nil {
			c.Detector = nil
			err = fmt.Errorf("unable to send the window: %w", err)
			return
		}
		var reply *vad_grpc.DetectReply
		reply, err = c.Detector.Recv()
		if err != nil {
			c.Detector = nil
			err = fmt.Errorf("unable to receive the probability: %w", err)
			return
		}
		if err = goconv.DetectErrorFromGRPC(reply); err != nil {
			return
		}
		probability = reply.GetProbability()
	})
	return probability, err
}

// Reset returns the remote session to its initial state.
func (c *Client) Reset(ctx context.Context) error {
	_, err := c.VADClient.Reset(ctx, &vad_grpc.ResetRequest{SessionID: c.SessionID})
	if err != nil {
		return fmt.Errorf("unable to reset session %d: %w", c.SessionID, err)
	}
	return nil
}

func convertFloat32SliceToBytes(s []float32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*4)
}
