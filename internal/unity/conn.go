// Package unity owns the TCP connection to the Unity editor plugin and
// exposes the single SendCommand operation every tool is built on.
package unity

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/config"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/logging"
	"github.com/yujijaao116/unity-mcp-hy3d/internal/wire"
)

// Seams for tests.
var (
	dialTimeoutFn = net.DialTimeout
	sleepFn       = time.Sleep
)

// Connection is the one live link to the editor. It is safe for
// concurrent use: a mutex serializes SendCommand, so at most one
// request is in flight at a time (the editor plugin reads one frame,
// answers, then reads the next; there is no multiplexing).
type Connection struct {
	host       string
	port       int
	timeout    time.Duration
	bufferSize int
	maxRetries int
	retryDelay time.Duration

	mu        sync.Mutex
	conn      net.Conn
	connected bool
}

// NewConnection builds a disconnected Connection from config.
func NewConnection(cfg *config.Config) *Connection {
	return &Connection{
		host:       cfg.UnityHost,
		port:       cfg.UnityPort,
		timeout:    cfg.Timeout(),
		bufferSize: cfg.BufferSize,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.Delay(),
	}
}

// Addr returns the editor endpoint this connection targets.
func (c *Connection) Addr() string {
	return net.JoinHostPort(c.host, strconv.Itoa(c.port))
}

// Connected reports whether the connection believes it has a live socket.
func (c *Connection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Connect dials the editor, retrying up to max_retries times with a
// fixed delay between attempts. Already-connected calls are no-ops.
func (c *Connection) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectLocked()
}

func (c *Connection) connectLocked() error {
	if c.connected {
		return nil
	}

	addr := c.Addr()
	log := logging.WithComponent("unity")

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		conn, err := dialTimeoutFn("tcp", addr, c.timeout)
		if err == nil {
			c.conn = conn
			c.connected = true
			log.Info("connected to unity editor", "addr", addr, "attempt", attempt)
			return nil
		}
		lastErr = err
		log.Warn("unity dial failed", "addr", addr, "attempt", attempt, "err", err)
		if attempt < c.maxRetries {
			sleepFn(c.retryDelay)
		}
	}

	return fmt.Errorf("%w: dialing %s failed after %d attempts: %v", ErrConnection, addr, c.maxRetries, lastErr)
}

// Disconnect closes the socket and clears the connected flag. Safe to
// call when already disconnected.
func (c *Connection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		c.connected = false
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.connected = false
	return err
}

// dropLocked abandons the socket without reporting close errors. Used
// when the framing state is unknown (failed write, timeout, torn read).
func (c *Connection) dropLocked() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.connected = false
}

// SendCommand delivers one command to the editor and returns its decoded
// result. It connects transparently when needed. A send/receive failure
// triggers exactly one reconnect-and-retry of the whole operation; a
// second failure propagates, so a persistently down editor surfaces as
// ErrConnection rather than an infinite retry loop.
//
// Remote failures are not Go errors: they arrive in the Result and the
// caller renders them per command. keepNull names params sent as
// explicit JSON null instead of being dropped.
func (c *Connection) SendCommand(cmdType string, params map[string]any, keepNull ...string) (wire.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.NewString()
	log := logging.WithComponent("unity")
	log.Debug("sending command", "id", id, "type", cmdType)

	if err := c.connectLocked(); err != nil {
		return wire.Result{}, err
	}

	res, err := c.roundTrip(cmdType, params, keepNull)
	var transient *transientError
	if errors.As(err, &transient) {
		log.Warn("transport failure, reconnecting once", "id", id, "type", cmdType, "err", transient.err)
		if cerr := c.connectLocked(); cerr != nil {
			return wire.Result{}, cerr
		}
		res, err = c.roundTrip(cmdType, params, keepNull)
		if errors.As(err, &transient) {
			c.dropLocked()
			return wire.Result{}, fmt.Errorf("%w: %v", ErrConnection, transient.err)
		}
	}
	if err != nil {
		log.Warn("command failed", "id", id, "type", cmdType, "err", err)
		return wire.Result{}, err
	}

	log.Debug("command completed", "id", id, "type", cmdType, "ok", res.Ok())
	return res, nil
}

// roundTrip performs one framed write and one framed read on the live
// socket. Failures that merit a reconnect come back as *transientError;
// everything else is final. Caller holds the mutex.
func (c *Connection) roundTrip(cmdType string, params map[string]any, keepNull []string) (wire.Result, error) {
	data, err := wire.Encode(cmdType, params, keepNull...)
	if err != nil {
		return wire.Result{}, err // caller error, no point retrying
	}
	frame := append(data, wire.FrameDelim)

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		c.dropLocked()
		return wire.Result{}, &transientError{fmt.Errorf("setting write deadline: %w", err)}
	}
	if _, err := c.conn.Write(frame); err != nil {
		c.dropLocked()
		return wire.Result{}, &transientError{fmt.Errorf("sending %s: %w", cmdType, err)}
	}

	raw, err := c.readFrame()
	if err != nil {
		return wire.Result{}, err
	}

	res, err := wire.Decode(raw)
	if err != nil {
		// Malformed bytes leave the stream position unknowable.
		c.dropLocked()
		return wire.Result{}, err
	}
	return res, nil
}

// readFrame accumulates buffer_size chunks until the frame delimiter
// arrives. Partial reads keep looping; only the deadline or a broken
// socket ends the wait.
func (c *Connection) readFrame() ([]byte, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		c.dropLocked()
		return nil, &transientError{fmt.Errorf("setting read deadline: %w", err)}
	}

	buf := make([]byte, c.bufferSize)
	var acc []byte
	for {
		n, err := c.conn.Read(buf)
		if n > 0 {
			acc = append(acc, buf[:n]...)
			if i := bytes.IndexByte(acc, wire.FrameDelim); i >= 0 {
				return acc[:i], nil
			}
		}
		if err != nil {
			c.dropLocked()
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				return nil, fmt.Errorf("%w: no complete response within %s", ErrTimeout, c.timeout)
			}
			if errors.Is(err, io.EOF) && len(acc) > 0 {
				return nil, fmt.Errorf("%w: connection closed mid-frame after %d bytes", wire.ErrProtocol, len(acc))
			}
			return nil, &transientError{fmt.Errorf("reading response: %w", err)}
		}
	}
}

// Ping sends the editor plugin's ping command and checks for a pong.
func (c *Connection) Ping() error {
	res, err := c.SendCommand("ping", nil)
	if err != nil {
		return err
	}
	if !res.Ok() {
		return fmt.Errorf("ping rejected: %s", res.RemoteErr())
	}
	return nil
}
