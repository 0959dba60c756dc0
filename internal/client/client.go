// Package client talks to a clip server over the text protocol: a one-shot
// client, an interactive prompt for entering polygons, and a replay driver
// that sends the same request repeatedly.
package client

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/Kolyrub/polygon-alg/pkg/protocol"
)

// Client sends clip requests to a server.
type Client struct {
	Addr    string
	Timeout time.Duration
}

// New returns a client for addr. A zero timeout means no deadline beyond
// the context's.
func New(addr string, timeout time.Duration) *Client {
	return &Client{Addr: addr, Timeout: timeout}
}

// Clip sends req on a fresh connection and reads the server's response.
func (c *Client) Clip(ctx context.Context, req protocol.Request) (protocol.Response, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return protocol.Response{}, fmt.Errorf("connecting to %s: %w", c.Addr, err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	var buf bytes.Buffer
	if err := protocol.WriteRequest(&buf, req); err != nil {
		return protocol.Response{}, err
	}
	if _, err := conn.Write(buf.Bytes()); err != nil {
		return protocol.Response{}, fmt.Errorf("sending request: %w", err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		tc.CloseWrite()
	}

	resp, err := protocol.ReadResponse(conn)
	if err != nil {
		return protocol.Response{}, fmt.Errorf("reading response: %w", err)
	}
	return resp, nil
}
