package unity

import "sync"

// Provider hands out the process-wide Connection. There is exactly one
// logical peer (the single running editor), so there is no pooling:
// callers share one Connection, and the Provider replaces it when it
// has gone stale. The bridge owns the Provider and closes it on
// shutdown.
type Provider struct {
	mu      sync.Mutex
	newConn func() *Connection
	conn    *Connection
}

// NewProvider builds a Provider that constructs connections with
// newConn. The constructor indirection keeps tests free of real
// sockets.
func NewProvider(newConn func() *Connection) *Provider {
	return &Provider{newConn: newConn}
}

// Get returns the live connection, creating and connecting one when
// none exists or the previous one reports itself disconnected. It
// returns an error wrapping ErrConnection when the editor is
// unreachable.
func (p *Provider) Get() (*Connection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil && p.conn.Connected() {
		return p.conn, nil
	}

	conn := p.conn
	if conn == nil {
		conn = p.newConn()
	}
	if err := conn.Connect(); err != nil {
		return nil, err
	}
	p.conn = conn
	return conn, nil
}

// Close disconnects the held connection, if any. Idempotent.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil {
		_ = p.conn.Disconnect()
		p.conn = nil
	}
}
