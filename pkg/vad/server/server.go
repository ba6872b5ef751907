package server

import (
	"bytes"
	"context"
	"crypto/sha1"
	"crypto/sha512"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/xaionaro-go/object"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/consts"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/goconv"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/proto/go/vad_grpc"
	"github.com/xaionaro-go/xcontext"
	"github.com/xaionaro-go/xsync"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type SessionID uint64

type sessionHolder struct {
	Locker  xsync.Mutex
	Session *silero.Session

	// IsReleased is set when the session is closed or moved to the cache.
	IsReleased bool
}

type Server struct {
	vad_grpc.UnimplementedVoiceActivityDetectorServer

	GRPCServer *grpc.Server
	IsStarted  bool
	IsClosing  atomic.Bool

	BeltLocker xsync.Mutex
	Belt       *belt.Belt

	NextSessionID atomic.Uint64
	SessionMap    sync.Map

	SessionsLocker xsync.Mutex
	SessionsCount  uint
	SessionsLimit  uint

	Options       Options

	SessionCacheSize   uint
	SessionCacheLocker xsync.Mutex
	SessionCache       *lru.Cache[objectHash, *silero.Session]

	DefaultModelPath string
}

type objectHash [64 + sha512.Size]byte

func NewServer(
	defaultModelPath string,
	sessionsLimit uint,
	cacheSize uint,
	opts ...Option,
) *Server {
	srv := &Server{
		GRPCServer: grpc.NewServer(
			grpc.MaxRecvMsgSize(consts.MaxMessageSize),
			grpc.WaitForHandlers(true),
		),
		SessionsLimit: sessionsLimit,
		Options:       opts,

		DefaultModelPath: defaultModelPath,

		SessionCacheSize: cacheSize,
	}
	vad_grpc.RegisterVoiceActivityDetectorServer(srv.GRPCServer, srv)
	if cacheSize > 0 {
		cache, err := lru.New[objectHash, *silero.Session](int(cacheSize))
		if err != nil {
			panic(err)
		}
		srv.SessionCache = cache
	}
	return srv
}

func (srv *Server) Serve(
	ctx context.Context,
	listener net.Listener,
) error {
	if srv.IsStarted {
		panic("this GRPC server was already started at least once")
	}
	srv.IsStarted = true
	srv.BeltLocker.Do(xsync.WithNoLogging(ctx, true), func() {
		srv.Belt = belt.CtxBelt(ctx)
	})
	return srv.GRPCServer.Serve(listener)
}

// Close stops the gRPC server, waits for the running handlers to release
// their sessions and closes all the cached sessions.
func (srv *Server) Close() error {
	ctx := srv.ctx(context.TODO())
	srv.IsClosing.Store(true)
	srv.GRPCServer.Stop()
	if srv.SessionCacheSize == 0 {
		return nil
	}
	srv.SessionCacheLocker.Do(ctx, func() {
		for _, session := range srv.SessionCache.Values() {
			if err := session.Close(); err != nil {
				logger.Errorf(ctx, "unable to close a cached session: %v", err)
			}
		}
		srv.SessionCache.Purge()
	})
	return nil
}

func (srv *Server) belt() *belt.Belt {
	ctx := context.TODO()
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &srv.BeltLocker, func() *belt.Belt {
		return srv.Belt
	})
}

func (srv *Server) ctx(ctx context.Context) context.Context {
	b := srv.belt()
	if b == nil {
		return ctx
	}
	return belt.CtxWithBelt(ctx, b)
}

func (srv *Server) Ping(
	ctx context.Context,
	req *vad_grpc.PingRequest,
) (*vad_grpc.PingReply, error) {
	ctx = srv.ctx(ctx)
	var payload strings.Builder
	extraSize := req.GetRequestExtraPayloadSize()
	totalSize := len(req.GetPayloadToReturn()) + int(extraSize)
	if totalSize > 65535 {
		return nil, status.Errorf(codes.InvalidArgument, "requested a too big payload: %d", totalSize)
	}
	logger.Tracef(ctx, "Ping: %d bytes", totalSize)
	payload.WriteString(req.GetPayloadToReturn())
	payload.WriteString(strings.Repeat("0", int(extraSize)))
	return &vad_grpc.PingReply{
		Payload: payload.String(),
	}, nil
}

func (srv *Server) reserveSessionSlot(ctx context.Context) bool {
	return xsync.DoR1(ctx, &srv.SessionsLocker, func() bool {
		if srv.SessionsCount >= srv.SessionsLimit {
			return false
		}
		srv.SessionsCount++
		return true
	})
}

func (srv *Server) releaseSessionSlot(ctx context.Context) {
	srv.SessionsLocker.Do(ctx, func() {
		srv.SessionsCount--
	})
}

func modelFileHash(modelPath string) (_ret [sha1.Size]byte, _err error) {
	f, err := os.Open(modelPath)
	if err != nil {
		return _ret, fmt.Errorf("unable to open the model: %w", err)
	}
	defer f.Close()
	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return _ret, fmt.Errorf("unable to read the model: %w", err)
	}
	copy(_ret[:], h.Sum(nil))
	return _ret, nil
}

func (srv *Server) requestHash(
	ctx context.Context,
	req *vad_grpc.NewSessionRequest,
) objectHash {
	var result objectHash
	if srv.SessionCacheSize == 0 {
		return result
	}

	logger.Debugf(ctx, "calculating the hash of the request")
	modelHash, err := modelFileHash(req.GetModelPath())
	if err != nil {
		logger.Errorf(ctx, "unable to calculate the hash of the model: %v", err)
		return result
	}
	requestHashValue, err := object.CalcCryptoHash(req, modelHash)
	if err != nil {
		logger.Errorf(ctx, "unable to calculate the hash of the request: %v", err)
		return result
	}
	copy(result[:], requestHashValue)
	logger.Debugf(ctx, "request hash is %X", result)
	return result
}

func (srv *Server) takeCachedSession(
	ctx context.Context,
	requestHash objectHash,
) *silero.Session {
	if srv.SessionCacheSize == 0 {
		return nil
	}
	var zeroHash objectHash
	if bytes.Equal(requestHash[:], zeroHash[:]) {
		return nil
	}
	return xsync.DoR1(ctx, &srv.SessionCacheLocker, func() *silero.Session {
		v, ok := srv.SessionCache.Peek(requestHash)
		if !ok {
			return nil
		}
		srv.SessionCache.Remove(requestHash)
		return v
	})
}

func (srv *Server) newSession(
	ctx context.Context,
	req *vad_grpc.NewSessionRequest,
) (*silero.Session, error) {
	sessionOpts, err := goconv.SessionOptionsFromGRPC(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	intraThreads, interThreads, err := goconv.ThreadsFromGRPC(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	logLevel := goconv.LogLevelFromGRPC(req.GetLogLevel())
	if logLevel == logger.LevelUndefined {
		logLevel = logger.FromCtx(ctx).Level()
	}

	cfg := srv.Options.config()
	opts := append(append(silero.Options{}, cfg.SileroOptions...), sessionOpts...)
	session, err := silero.New(
		xcontext.DetachDone(ctx),
		req.GetModelPath(),
		logLevel,
		intraThreads,
		interThreads,
		opts...,
	)
	if err != nil {
		return nil, status.Errorf(codes.Unknown, "unable to initialize a Silero VAD session: %v", err)
	}
	return session, nil
}

func (srv *Server) releaseSession(
	ctx context.Context,
	holder *sessionHolder,
	requestHash objectHash,
) {
	holder.Locker.Do(ctx, func() {
		holder.IsReleased = true
	})

	closeSession := func() {
		logger.Debugf(ctx, "closing the session")
		if err := holder.Session.Close(); err != nil {
			logger.Errorf(ctx, "unable to close the session: %v", err)
		}
	}

	var zeroHash objectHash
	if srv.SessionCacheSize == 0 || bytes.Equal(requestHash[:], zeroHash[:]) {
		closeSession()
		return
	}

	srv.SessionCacheLocker.Do(ctx, func() {
		if srv.IsClosing.Load() {
			closeSession()
			return
		}
		if prev, ok := srv.SessionCache.Peek(requestHash); ok {
			if err := prev.Close(); err != nil {
				logger.Errorf(ctx, "unable to close a cached session: %v", err)
			}
			srv.SessionCache.Remove(requestHash)
		}
		if srv.SessionCache.Len() >= int(srv.SessionCacheSize) {
			key, oldSession, ok := srv.SessionCache.GetOldest()
			if !ok {
				panic("impossible happened")
			}
			logger.Debugf(ctx, "closing an old cached session")
			if err := oldSession.Close(); err != nil {
				logger.Errorf(ctx, "unable to close an old cached session: %v", err)
			}
			srv.SessionCache.Remove(key)
		}

		srv.SessionCache.Add(requestHash, holder.Session)
	})
}

func (srv *Server) NewSession(
	req *vad_grpc.NewSessionRequest,
	respSrv vad_grpc.VoiceActivityDetector_NewSessionServer,
) error {
	ctx := srv.ctx(respSrv.Context())

	if !srv.reserveSessionSlot(ctx) {
		return status.Errorf(codes.ResourceExhausted, "too many sessions already created, please close previous sessions first")
	}
	isSlotTaken := true
	defer func() {
		if isSlotTaken {
			srv.releaseSessionSlot(ctx)
		}
	}()

	req = &vad_grpc.NewSessionRequest{
		ModelPath:    req.GetModelPath(),
		ModelVersion: req.GetModelVersion(),
		Protocol:     req.GetProtocol(),
		WindowSize:   req.GetWindowSize(),
		IntraThreads: req.GetIntraThreads(),
		InterThreads: req.GetInterThreads(),
		LogLevel:     req.GetLogLevel(),
	}
	if req.ModelPath == "" {
		req.ModelPath = srv.DefaultModelPath
	}
	if req.ModelPath == "" {
		return status.Errorf(codes.InvalidArgument, "the model path is not set and there is no default model")
	}

	requestHash := srv.requestHash(ctx, req)
	session := srv.takeCachedSession(ctx, requestHash)
	if session != nil {
		logger.Debugf(ctx, "reuse a previously already initialized session")
		session.Reset()
	} else {
		logger.Debugf(ctx, "initializing a session from scratch")
		var err error
		session, err = srv.newSession(ctx, req)
		if err != nil {
			return err
		}
	}

	holder := &sessionHolder{Session: session}
	sessionID := SessionID(srv.NextSessionID.Add(1))
	srv.SessionMap.Store(sessionID, holder)
	isSlotTaken = false
	defer func() {
		logger.Debugf(ctx, "closing session %d", sessionID)
		srv.SessionMap.Delete(sessionID)
		srv.releaseSession(ctx, holder, requestHash)
		srv.releaseSessionSlot(ctx)
	}()

	err := respSrv.Send(&vad_grpc.NewSessionReply{
		SessionID: uint64(sessionID),
	})
	if err != nil {
		return status.Errorf(codes.Aborted, "unable to send the session ID back to the client: %v", err)
	}

	logger.Debugf(ctx, "initialized session %d", sessionID)
	<-ctx.Done()
	return ctx.Err()
}

func (srv *Server) getSession(sessionID SessionID) (*sessionHolder, error) {
	holderI, ok := srv.SessionMap.Load(sessionID)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "there is no open session with ID %d", sessionID)
	}
	return holderI.(*sessionHolder), nil
}

func (srv *Server) Detect(
	reqSrv vad_grpc.VoiceActivityDetector_DetectServer,
) error {
	ctx := srv.ctx(reqSrv.Context())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		req, err := reqSrv.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return status.Errorf(codes.Aborted, "unable to receive the audio window from the client: %v", err)
		}

		reply := &vad_grpc.DetectReply{}
		reply.Probability, err = srv.detect(ctx, SessionID(req.GetSessionID()), req.GetAudio())
		if err != nil {
			logger.Debugf(ctx, "unable to process the window of session %d: %v", req.GetSessionID(), err)
			goconv.DetectErrorToGRPC(reply, err)
		}

		err = reqSrv.Send(reply)
		if err != nil {
			return status.Errorf(codes.Aborted, "unable to send the probability to the client: %v", err)
		}
	}
}

func (srv *Server) detect(
	ctx context.Context,
	sessionID SessionID,
	audio []byte,
) (float32, error) {
	holder, err := srv.getSession(sessionID)
	if err != nil {
		return 0, err
	}
	if len(audio)%4 != 0 {
		return 0, status.Errorf(codes.InvalidArgument, "the audio length %d is not a multiple of a float32 sample size", len(audio))
	}
	samples := convertBytesToFloat32Slice(audio)

	var probability float32
	holder.Locker.Do(ctx, func() {
		if holder.IsReleased {
			err = status.Errorf(codes.NotFound, "session %d is already closed", sessionID)
			return
		}
		probability, err = holder.Session.Detect(ctx, samples)
	})
	if err == nil {
		return probability, nil
	}
	if _, ok := status.FromError(err); ok {
		return 0, err
	}

	var errShape silero.ErrShapeMismatch
	var errClosed silero.ErrClosed
	switch {
	case errors.As(err, &errShape):
		return 0, status.Errorf(codes.InvalidArgument, "%v", err)
	case errors.As(err, &errClosed):
		return 0, status.Errorf(codes.NotFound, "%v", err)
	}
	return 0, status.Errorf(codes.Unknown, "unable to detect voice in %d samples: %v", len(samples), err)
}

func (srv *Server) Reset(
	ctx context.Context,
	req *vad_grpc.ResetRequest,
) (*vad_grpc.ResetReply, error) {
	ctx = srv.ctx(ctx)
	sessionID := SessionID(req.GetSessionID())
	holder, err := srv.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	holder.Locker.Do(ctx, func() {
		if holder.IsReleased {
			err = status.Errorf(codes.NotFound, "session %d is already closed", sessionID)
			return
		}
		logger.Debugf(ctx, "resetting session %d", sessionID)
		holder.Session.Reset()
	})
	if err != nil {
		return nil, err
	}
	return &vad_grpc.ResetReply{}, nil
}
