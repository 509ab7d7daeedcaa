// Package platform talks to the native input helper: newline-delimited JSON
// envelopes over a Unix domain socket.
package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yourusername/edgejump/internal/engine"
	"github.com/yourusername/edgejump/internal/relocate"
	"github.com/yourusername/edgejump/internal/screen"
	"github.com/yourusername/edgejump/internal/types"
)

const (
	DefaultSocketPath = "/tmp/edgejump-helper.sock"
	DefaultTimeout    = 5 * time.Second
)

// Handler receives the samples and screen changes delivered by Serve.
// *engine.Engine implements it.
type Handler interface {
	Seed(p types.Point)
	Evaluate(sample engine.Sample) relocate.Decision
	Reconfigure(screens []screen.Screen) *screen.Topology
}

// Client is the input helper client
type Client struct {
	socketPath string
	timeout    time.Duration
	conn       *Connection
	log        zerolog.Logger
}

// NewClient creates a new input helper client
func NewClient(socketPath string, timeout time.Duration, log zerolog.Logger) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		socketPath: socketPath,
		timeout:    timeout,
		conn:       NewConnection(socketPath, timeout),
		log:        log,
	}
}

// Connect establishes the request connection
func (c *Client) Connect() error {
	return c.conn.Connect()
}

// Close closes the request connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// request is a helper to send a request and get the result
func (c *Client) request(ctx context.Context, method string, params map[string]interface{}) (map[string]interface{}, error) {
	if !c.conn.IsConnected() {
		if err := c.Connect(); err != nil {
			return nil, err
		}
	}

	req := NewRequest(uuid.New().String(), method, params)
	resp, err := c.conn.SendRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%s: helper error: %s", method, resp.GetError())
	}

	return resp.Result, nil
}

// Ping sends a ping request to test connectivity
func (c *Client) Ping(ctx context.Context) (map[string]interface{}, error) {
	return c.request(ctx, MethodPing, nil)
}

// Screens lists the physical screens known to the helper
func (c *Client) Screens(ctx context.Context) ([]screen.Screen, error) {
	raw, err := c.request(ctx, MethodDisplaysList, nil)
	if err != nil {
		return nil, err
	}
	screens, err := parseDisplays(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodDisplaysList, err)
	}
	return screens, nil
}

// CursorPos returns the OS cursor position
func (c *Client) CursorPos(ctx context.Context) (types.Point, error) {
	raw, err := c.request(ctx, MethodCursorGet, nil)
	if err != nil {
		return types.Point{}, err
	}
	p, ok := parsePoint(raw, "x", "y")
	if !ok {
		return types.Point{}, fmt.Errorf("%s: missing x/y in result", MethodCursorGet)
	}
	return p, nil
}

// SetCursorPos moves the OS cursor
func (c *Client) SetCursorPos(ctx context.Context, p types.Point) error {
	_, err := c.request(ctx, MethodCursorSet, map[string]interface{}{
		"x": p.X,
		"y": p.Y,
	})
	return err
}

// Serve subscribes to the helper's input hook and feeds h until ctx is
// cancelled or the helper goes away.
//
// The initial topology is fetched and installed before the subscription, and
// the handler is seeded with the current cursor position. Both event kinds
// are dispatched from this goroutine, so Evaluate and Reconfigure never run
// concurrently.
func (c *Client) Serve(ctx context.Context, h Handler) error {
	screens, err := c.Screens(ctx)
	if err != nil {
		return err
	}
	h.Reconfigure(screens)

	cursor, err := c.CursorPos(ctx)
	if err != nil {
		return err
	}
	h.Seed(cursor)

	sub := NewConnection(c.socketPath, c.timeout)
	if err := sub.Connect(); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer sub.Close()

	req := NewRequest(uuid.New().String(), MethodHookSubscribe, nil)
	resp, err := sub.SendRequest(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", MethodHookSubscribe, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s: helper error: %s", MethodHookSubscribe, resp.GetError())
	}
	c.log.Info().Str("socket", c.socketPath).Msg("hook subscribed")

	// Closing the connection unblocks ReadEnvelope on cancellation
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			sub.Close()
		case <-stop:
		}
	}()

	for {
		env, err := sub.ReadEnvelope()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return fmt.Errorf("helper closed the connection: %w", err)
			}
			return fmt.Errorf("read event: %w", err)
		}

		if env.Type != TypeEvent || env.Event == nil {
			c.log.Debug().Str("type", env.Type).Msg("ignoring non-event envelope")
			continue
		}

		if err := c.dispatch(ctx, sub, h, env.Event); err != nil {
			return err
		}
	}
}

func (c *Client) dispatch(ctx context.Context, sub *Connection, h Handler, ev *Event) error {
	switch ev.EventType {
	case EventInputMouse:
		seq, sample, err := parseMouseEvent(ev.Data)
		if err != nil {
			// Unparseable events still get a pass-through answer
			c.log.Warn().Err(err).Msg("bad mouse event")
			return c.resolve(sub, uint64(toInt(ev.Data["seq"])), relocate.Decision{})
		}
		return c.resolve(sub, seq, h.Evaluate(sample))

	case EventDisplaysChanged:
		screens, err := c.Screens(ctx)
		if err != nil {
			return fmt.Errorf("refresh after %s: %w", EventDisplaysChanged, err)
		}
		h.Reconfigure(screens)
		return nil

	default:
		c.log.Debug().Str("event", ev.EventType).Msg("ignoring event")
		return nil
	}
}

// resolve answers an input.mouse event. handled=true tells the helper to put
// the cursor at (x, y) and swallow the event.
func (c *Client) resolve(sub *Connection, seq uint64, dec relocate.Decision) error {
	params := map[string]interface{}{
		"seq":     seq,
		"handled": dec.Moved,
	}
	if dec.Moved {
		params["x"] = dec.Position.X
		params["y"] = dec.Position.Y
	}

	if err := sub.Send(NewRequest(uuid.New().String(), MethodHookResolve, params)); err != nil {
		return fmt.Errorf("%s: %w", MethodHookResolve, err)
	}
	return nil
}
