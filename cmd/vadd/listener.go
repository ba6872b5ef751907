package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// getListener listens on "unix:<path>" or on a TCP address.
func getListener(
	ctx context.Context,
	addr string,
) (net.Listener, error) {
	network, address := "tcp", addr
	if path, ok := strings.CutPrefix(addr, "unix:"); ok {
		network, address = "unix", path
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("unable to remove the stale socket '%s': %w", path, err)
		}
	}
	logger.Debugf(ctx, "listening on %s:%s", network, address)
	listener, err := net.Listen(network, address)
	if err != nil {
		return nil, fmt.Errorf("unable to listen on %s:%s: %w", network, address, err)
	}
	return listener, nil
}
