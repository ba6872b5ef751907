package client

import (
	"context"
	"math"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero"
	"github.com/xaionaro-go/silerovad/pkg/vad/implementations/silero/backend/fake"
	"github.com/xaionaro-go/silerovad/pkg/vad/server"
	"github.com/xaionaro-go/silerovad/pkg/vad/server/proto/go/vad_grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(
	t *testing.T,
	req *vad_grpc.NewSessionRequest,
) (*Client, *fake.Factory, *silero.Session) {
	t.Helper()
	ctx := context.Background()
	modelPath := filepath.Join(t.TempDir(), "silero_vad.onnx")
	require.NoError(t, os.WriteFile(modelPath, []byte("some model"), 0o644))

	factory := &fake.Factory{}
	srv := server.NewServer(modelPath, 2, 0, server.OptionSileroOptions{
		silero.OptionBackendFactory(factory.New),
	})
	listener := bufconn.Listen(1 << 20)
	go srv.Serve(ctx, listener)
	t.Cleanup(func() { srv.Close() })

	c, err := New(ctx, "passthrough:///bufnet", req,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	local, err := silero.New(ctx, modelPath, logger.LevelWarning, 0, 0, silero.OptionBackendFactory((&fake.Factory{}).New))
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })
	return c, factory, local
}

func testWindow() []float32 {
	window := make([]float32, 512)
	for i := range window {
		window[i] = 0.3 * float32(math.Sin(float64(i)/3))
	}
	return window
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	c, factory, local := newTestClient(t, &vad_grpc.NewSessionRequest{ModelVersion: "5.0"})
	window := testWindow()

	for range 3 {
		expected, err := local.Detect(ctx, window)
		require.NoError(t, err)
		actual, err := c.Detect(ctx, window)
		require.NoError(t, err)
		require.Equal(t, expected, actual)
	}

	require.NoError(t, c.Reset(ctx))
	local.Reset()
	expected, err := local.Detect(ctx, window)
	require.NoError(t, err)
	actual, err := c.Detect(ctx, window)
	require.NoError(t, err)
	require.Equal(t, expected, actual)

	backend := factory.Last()
	require.NotNil(t, backend)
	require.NoError(t, c.Close())
	require.Eventually(t, backend.Closed, time.Second, 10*time.Millisecond)
}

func TestClientDetectAfterRejectedWindow(t *testing.T) {
	ctx := context.Background()
	c, _, local := newTestClient(t, &vad_grpc.NewSessionRequest{ModelVersion: "5.0", WindowSize: 512})
	defer c.Close()
	window := testWindow()

	_, err := c.Detect(ctx, make([]float32, 100))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	for range 2 {
		expected, err := local.Detect(ctx, window)
		require.NoError(t, err)
		actual, err := c.Detect(ctx, window)
		require.NoError(t, err)
		require.Equal(t, expected, actual)
	}
}

func TestClientReopensBrokenDetectStream(t *testing.T) {
	ctx := context.Background()
	c, _, local := newTestClient(t, &vad_grpc.NewSessionRequest{ModelVersion: "5.0"})
	defer c.Close()
	window := testWindow()

	require.NoError(t, c.Detector.CloseSend())
	_, err := c.Detect(ctx, window)
	require.Error(t, err)
	require.Nil(t, c.Detector)

	expected, err := local.Detect(ctx, window)
	require.NoError(t, err)
	actual, err := c.Detect(ctx, window)
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}
