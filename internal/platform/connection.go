package platform

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

// ErrNotConnected is returned when a connection is used before Connect
var ErrNotConnected = errors.New("not connected to input helper")

// Connection manages one Unix domain socket connection to the input helper.
// Requests on a connection are serialized.
type Connection struct {
	socketPath string
	timeout    time.Duration

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
}

// NewConnection creates a new connection instance
func NewConnection(socketPath string, timeout time.Duration) *Connection {
	return &Connection{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// Connect establishes the Unix domain socket connection
func (c *Connection) Connect() error {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to socket %s: %w", c.socketPath, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.reader = bufio.NewReader(conn)
	c.mu.Unlock()
	return nil
}

// Close closes the connection
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	return err
}

// dropLocked closes the socket, which also unblocks a pending read.
// mu must be held.
func (c *Connection) dropLocked() {
	if c.conn != nil {
		c.conn.Close()
	}
	c.conn = nil
	c.reader = nil
}

// IsConnected returns true if the connection is established
func (c *Connection) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// SendRequest sends a request and waits for the matching response
func (c *Connection) SendRequest(ctx context.Context, req *MessageEnvelope) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrNotConnected
	}

	// Apply timeout if not already set
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.write(req); err != nil {
		return nil, err
	}

	// Read response with context cancellation support
	respChan := make(chan *Response, 1)
	errChan := make(chan error, 1)
	conn, reader := c.conn, c.reader

	go func() {
		if deadline, ok := ctx.Deadline(); ok {
			if err := conn.SetReadDeadline(deadline); err != nil {
				errChan <- fmt.Errorf("failed to set read deadline: %w", err)
				return
			}
		}

		envelope, err := readEnvelope(reader)
		if err != nil {
			errChan <- fmt.Errorf("failed to read response: %w", err)
			return
		}

		if envelope.Type != TypeResponse {
			errChan <- fmt.Errorf("expected response, got %s", envelope.Type)
			return
		}

		if envelope.Response == nil {
			errChan <- fmt.Errorf("response envelope has nil response")
			return
		}

		if envelope.Response.ID != req.Request.ID {
			errChan <- fmt.Errorf("response id %s does not match request %s", envelope.Response.ID, req.Request.ID)
			return
		}

		respChan <- envelope.Response
	}()

	select {
	case <-ctx.Done():
		// The stream position is unknown now; the next request reconnects
		c.dropLocked()
		return nil, fmt.Errorf("request cancelled or timed out: %w", ctx.Err())
	case err := <-errChan:
		c.dropLocked()
		return nil, err
	case resp := <-respChan:
		conn.SetReadDeadline(time.Time{})
		return resp, nil
	}
}

// Send writes an envelope without waiting for a reply
func (c *Connection) Send(env *MessageEnvelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}
	return c.write(env)
}

// ReadEnvelope blocks until the next envelope arrives.
// It must not be called concurrently with SendRequest on the same connection.
func (c *Connection) ReadEnvelope() (*MessageEnvelope, error) {
	c.mu.Lock()
	reader := c.reader
	c.mu.Unlock()

	if reader == nil {
		return nil, ErrNotConnected
	}
	return readEnvelope(reader)
}

// write must be called with mu held
func (c *Connection) write(env *MessageEnvelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", env.Type, err)
	}

	// Send with newline delimiter
	data = append(data, '\n')
	if c.timeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}
	}

	if _, err := c.conn.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", env.Type, err)
	}
	return nil
}

func readEnvelope(r *bufio.Reader) (*MessageEnvelope, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		return nil, err
	}

	var envelope MessageEnvelope
	if err := json.Unmarshal(line, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal envelope: %w", err)
	}
	return &envelope, nil
}
