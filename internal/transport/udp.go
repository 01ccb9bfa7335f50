// Package transport performs the single UDP exchange with a resolver.
//
// One send, one receive, no retries and no TCP fallback. A resolver that
// never answers blocks the receive until the deadline fires; callers that
// need bounded latency set Timeout or a context deadline.
package transport

import (
	"context"
	"fmt"
	"net"
	"time"
)

// DefaultRecvSize is the receive buffer size used when RecvSize is zero.
// DNS over UDP responses are bounded well below this in practice.
const DefaultRecvSize = 4096

// UDP exchanges one request buffer for one response buffer over a
// connectionless datagram socket. The zero value dials from an ephemeral
// local port with no deadline.
type UDP struct {
	LocalAddr string        // Optional local "host:port" to bind
	Timeout   time.Duration // Deadline for the whole exchange; 0 means none
	RecvSize  int           // Receive buffer size; 0 means DefaultRecvSize
}

// Exchange sends req to the resolver at server ("host:port") and returns the
// first datagram received back, truncated to its actual length.
//
// The request bytes are opaque here: framing is entirely the codec's
// business. Errors identify the failing stage (resolve, bind, send, receive)
// and wrap the underlying network error.
func (t UDP) Exchange(ctx context.Context, server string, req []byte) ([]byte, error) {
	raddr, err := net.ResolveUDPAddr("udp", server)
	if err != nil {
		return nil, fmt.Errorf("transport: resolve %q: %w", server, err)
	}

	var laddr *net.UDPAddr
	if t.LocalAddr != "" {
		laddr, err = net.ResolveUDPAddr("udp", t.LocalAddr)
		if err != nil {
			return nil, fmt.Errorf("transport: resolve local address %q: %w", t.LocalAddr, err)
		}
	}

	conn, err := net.DialUDP("udp", laddr, raddr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", raddr, err)
	}
	defer conn.Close()

	if deadline, ok := exchangeDeadline(ctx, t.Timeout); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(req); err != nil {
		return nil, fmt.Errorf("transport: send: %w", err)
	}

	size := t.RecvSize
	if size <= 0 {
		size = DefaultRecvSize
	}
	buf := make([]byte, size)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("transport: receive: %w", err)
	}
	return buf[:n], nil
}

// exchangeDeadline picks the earlier of the context deadline and now+timeout.
func exchangeDeadline(ctx context.Context, timeout time.Duration) (time.Time, bool) {
	deadline, ok := ctx.Deadline()
	if timeout > 0 {
		d := time.Now().Add(timeout)
		if !ok || d.Before(deadline) {
			deadline = d
			ok = true
		}
	}
	return deadline, ok
}
