package server

import (
	"context"
	"encoding/binary"
	"math"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend/fake"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/goconv"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/proto/go/vad_grpc"
	"github.com/xaionaro-go/xsync"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type testEnv struct {
	Server  *Server
	Factory *fake.Factory
	Client  vad_grpc.VoiceActivityDetectorClient
}

func newTestEnv(
	t *testing.T,
	sessionsLimit uint,
	cacheSize uint,
) *testEnv {
	t.Helper()
	modelPath := filepath.Join(t.TempDir(), "silero_vad.onnx")
	require.NoError(t, os.WriteFile(modelPath, []byte("some model"), 0o644))

	factory := &fake.Factory{}
	srv := NewServer(modelPath, sessionsLimit, cacheSize, OptionSileroOptions{
		silero.OptionBackendFactory(factory.New),
	})

	listener := bufconn.Listen(1 << 20)
	go srv.Serve(context.Background(), listener)
	t.Cleanup(func() { srv.Close() })

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &testEnv{
		Server:  srv,
		Factory: factory,
		Client:  vad_grpc.NewVoiceActivityDetectorClient(conn),
	}
}

func (env *testEnv) openSession(
	t *testing.T,
	ctx context.Context,
	req *vad_grpc.NewSessionRequest,
) uint64 {
	t.Helper()
	stream, err := env.Client.NewSession(ctx, req)
	require.NoError(t, err)
	reply, err := stream.Recv()
	require.NoError(t, err)
	return reply.GetSessionID()
}

func (env *testEnv) detect(
	ctx context.Context,
	sessionID uint64,
	audio []byte,
) (float32, error) {
	stream, err := env.Client.Detect(ctx)
	if err != nil {
		return 0, err
	}
	defer stream.CloseSend()
	if err := stream.Send(&vad_grpc.DetectRequest{SessionID: sessionID, Audio: audio}); err != nil {
		return 0, err
	}
	reply, err := stream.Recv()
	if err != nil {
		return 0, err
	}
	if err := goconv.DetectErrorFromGRPC(reply); err != nil {
		return 0, err
	}
	return reply.GetProbability(), nil
}

func float32Bytes(samples []float32) []byte {
	result := make([]byte, 0, len(samples)*4)
	for _, v := range samples {
		result = binary.LittleEndian.AppendUint32(result, math.Float32bits(v))
	}
	return result
}

func testWindows() [][]float32 {
	var result [][]float32
	for _, amplitude := range []float32{0, 0.5, 0.1} {
		w := make([]float32, 512)
		for i := range w {
			w[i] = amplitude * float32(math.Sin(float64(i)/5))
		}
		result = append(result, w)
	}
	return result
}

func localProbabilities(t *testing.T, windows [][]float32) []float32 {
	t.Helper()
	ctx := context.Background()
	s, err := silero.New(ctx, "local", logger.LevelWarning, 0, 0, silero.OptionBackendFactory((&fake.Factory{}).New))
	require.NoError(t, err)
	defer s.Close()
	var result []float32
	for _, w := range windows {
		p, err := s.Detect(ctx, w)
		require.NoError(t, err)
		result = append(result, p)
	}
	return result
}

func (srv *Server) sessionsCount() uint {
	return xsync.DoR1(context.Background(), &srv.SessionsLocker, func() uint {
		return srv.SessionsCount
	})
}

func TestPing(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx := context.Background()

	reply, err := env.Client.Ping(ctx, &vad_grpc.PingRequest{PayloadToReturn: "abc", RequestExtraPayloadSize: 3})
	require.NoError(t, err)
	require.Equal(t, "abc000", reply.GetPayload())

	_, err = env.Client.Ping(ctx, &vad_grpc.PingRequest{RequestExtraPayloadSize: 65536})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDetectMatchesLocalSession(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	windows := testWindows()
	expected := localProbabilities(t, windows)

	sessionID := env.openSession(t, ctx, &vad_grpc.NewSessionRequest{})
	var actual []float32
	for _, w := range windows {
		p, err := env.detect(ctx, sessionID, float32Bytes(w))
		require.NoError(t, err)
		actual = append(actual, p)
	}
	require.Equal(t, expected, actual)
}

func TestDetectErrors(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := env.detect(ctx, 1234, float32Bytes(make([]float32, 512)))
	require.Equal(t, codes.NotFound, status.Code(err))

	sessionID := env.openSession(t, ctx, &vad_grpc.NewSessionRequest{WindowSize: 512})

	_, err = env.detect(ctx, sessionID, float32Bytes(make([]float32, 100)))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.detect(ctx, sessionID, make([]byte, 2047))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.Client.Reset(ctx, &vad_grpc.ResetRequest{SessionID: 1234})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestNewSessionErrors(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := env.Client.NewSession(ctx, &vad_grpc.NewSessionRequest{Protocol: "unknown"})
	require.NoError(t, err)
	_, err = stream.Recv()
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	env.openSession(t, ctx, &vad_grpc.NewSessionRequest{})

	stream, err = env.Client.NewSession(ctx, &vad_grpc.NewSessionRequest{})
	require.NoError(t, err)
	_, err = stream.Recv()
	require.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestReset(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	windows := testWindows()
	sessionID := env.openSession(t, ctx, &vad_grpc.NewSessionRequest{ModelVersion: "4.0"})

	p0, err := env.detect(ctx, sessionID, float32Bytes(windows[1]))
	require.NoError(t, err)
	_, err = env.detect(ctx, sessionID, float32Bytes(windows[2]))
	require.NoError(t, err)

	_, err = env.Client.Reset(ctx, &vad_grpc.ResetRequest{SessionID: sessionID})
	require.NoError(t, err)

	p1, err := env.detect(ctx, sessionID, float32Bytes(windows[1]))
	require.NoError(t, err)
	require.Equal(t, p0, p1)
}

func TestSessionIsClosedWithoutCache(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())

	env.openSession(t, ctx, &vad_grpc.NewSessionRequest{})
	b := env.Factory.Last()
	require.NotNil(t, b)
	cancel()

	require.Eventually(t, b.Closed, time.Second, 10*time.Millisecond)
}

func TestSessionCacheReuse(t *testing.T) {
	env := newTestEnv(t, 1, 1)
	windows := testWindows()
	expected := localProbabilities(t, windows)
	req := &vad_grpc.NewSessionRequest{IntraThreads: 1}

	ctx, cancel := context.WithCancel(context.Background())
	sessionID := env.openSession(t, ctx, req)
	for _, w := range windows {
		_, err := env.detect(ctx, sessionID, float32Bytes(w))
		require.NoError(t, err)
	}
	cancel()

	require.Eventually(t, func() bool {
		return xsync.DoR1(context.Background(), &env.Server.SessionCacheLocker, func() int {
			return env.Server.SessionCache.Len()
		}) == 1 && env.Server.sessionsCount() == 0
	}, time.Second, 10*time.Millisecond)

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	sessionID = env.openSession(t, ctx, req)
	require.Equal(t, 1, env.Factory.Count())
	require.False(t, env.Factory.Last().Closed())

	p, err := env.detect(ctx, sessionID, float32Bytes(windows[0]))
	require.NoError(t, err)
	require.Equal(t, expected[0], p)
}

func TestDetectStreamSurvivesRejectedWindow(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	windows := testWindows()
	expected := localProbabilities(t, windows[:1])
	sessionID := env.openSession(t, ctx, &vad_grpc.NewSessionRequest{WindowSize: 512})

	stream, err := env.Client.Detect(ctx)
	require.NoError(t, err)
	defer stream.CloseSend()

	require.NoError(t, stream.Send(&vad_grpc.DetectRequest{SessionID: sessionID, Audio: float32Bytes(make([]float32, 100))}))
	reply, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(goconv.DetectErrorFromGRPC(reply)))

	require.NoError(t, stream.Send(&vad_grpc.DetectRequest{SessionID: 1234, Audio: float32Bytes(windows[0])}))
	reply, err = stream.Recv()
	require.NoError(t, err)
	require.Equal(t, codes.NotFound, status.Code(goconv.DetectErrorFromGRPC(reply)))

	require.NoError(t, stream.Send(&vad_grpc.DetectRequest{SessionID: sessionID, Audio: float32Bytes(windows[0])}))
	reply, err = stream.Recv()
	require.NoError(t, err)
	require.NoError(t, goconv.DetectErrorFromGRPC(reply))
	require.Equal(t, expected[0], reply.GetProbability())
}

func TestNewSessionOutOfRange(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, req := range []*vad_grpc.NewSessionRequest{
		{WindowSize: 1<<32 + 512},
		{IntraThreads: 1 << 32},
		{InterThreads: math.MaxUint64},
	} {
		stream, err := env.Client.NewSession(ctx, req)
		require.NoError(t, err)
		_, err = stream.Recv()
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	}
	require.Zero(t, env.Factory.Count())
	require.Eventually(t, func() bool {
		return env.Server.sessionsCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNewSessionConcurrentLimit(t *testing.T) {
	env := newTestEnv(t, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const attempts = 8
	results := make(chan codes.Code, attempts)
	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stream, err := env.Client.NewSession(ctx, &vad_grpc.NewSessionRequest{})
			if err != nil {
				results <- status.Code(err)
				return
			}
			_, err = stream.Recv()
			results <- status.Code(err)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, exhausted int
	for code := range results {
		switch code {
		case codes.OK:
			succeeded++
		case codes.ResourceExhausted:
			exhausted++
		}
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, attempts-1, exhausted)
	require.Equal(t, 1, env.Factory.Count())
}

func TestCloseReleasesOpenSessions(t *testing.T) {
	env := newTestEnv(t, 2, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	env.openSession(t, ctx, &vad_grpc.NewSessionRequest{IntraThreads: 1})
	env.openSession(t, ctx, &vad_grpc.NewSessionRequest{IntraThreads: 2})
	require.Equal(t, 2, env.Factory.Count())

	require.NoError(t, env.Server.Close())
	for _, b := range env.Factory.Backends {
		require.True(t, b.Closed())
	}
	require.Zero(t, env.Server.SessionCache.Len())
}
