// Package transport connects the client to the relay over a websocket and
// reconnects with exponential backoff when the connection drops.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/gorilla/websocket"

	"github.com/iudanet/gophcollab/pkg/api"
)

var (
	// ErrNotConnected is returned by Send while there is no live connection.
	ErrNotConnected = errors.New("not connected")
	// ErrSendBufferFull is returned when the writer cannot keep up.
	ErrSendBufferFull = errors.New("send buffer full")
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 256
)

// Config настройки подключения к серверу
type Config struct {
	ServerURL       string        // http(s):// или ws(s):// адрес сервера
	Workspace       string        // рабочее пространство при подключении
	MaxElapsed      time.Duration // 0 - переподключаться бесконечно
	InitialInterval time.Duration // 0 - значение по умолчанию backoff
}

// Client is a reconnecting websocket client. Every received frame is handed
// to the handler from the reader goroutine.
type Client struct {
	dialer  *websocket.Dialer
	handler func(api.Envelope)
	logger  *slog.Logger
	out     chan []byte
	cfg     Config
	mu      sync.Mutex
}

// New creates a client. Nothing is dialed until Run.
func New(cfg Config, handler func(api.Envelope), logger *slog.Logger) *Client {
	return &Client{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		dialer:  websocket.DefaultDialer,
	}
}

// WebSocketURL builds the relay endpoint for server and workspace.
func WebSocketURL(server, workspace string) (string, error) {
	u, err := url.Parse(server)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	q := u.Query()
	if workspace != "" {
		q.Set("workspace", workspace)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Send encodes and queues an outbound event. It never blocks.
func (c *Client) Send(event string, payload any) error {
	env, err := api.NewEnvelope(event, payload)
	if err != nil {
		return err
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	c.mu.Lock()
	out := c.out
	c.mu.Unlock()

	if out == nil {
		return ErrNotConnected
	}

	select {
	case out <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Run keeps a connection open until ctx is done or the backoff policy gives
// up. Every new connection starts with an init frame from the relay.
func (c *Client) Run(ctx context.Context) error {
	endpoint, err := WebSocketURL(c.cfg.ServerURL, c.cfg.Workspace)
	if err != nil {
		return err
	}

	expo := backoff.NewExponentialBackOff()
	expo.MaxElapsedTime = c.cfg.MaxElapsed
	if c.cfg.InitialInterval > 0 {
		expo.InitialInterval = c.cfg.InitialInterval
	}
	policy := backoff.WithContext(expo, ctx)

	for {
		connected, err := c.session(ctx, endpoint)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			policy.Reset()
		}

		wait := policy.NextBackOff()
		if wait == backoff.Stop {
			return fmt.Errorf("giving up reconnecting: %w", err)
		}

		c.logger.Warn("Connection lost, reconnecting", "error", err, "retry_in", wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// session dials once and pumps frames until the connection drops.
func (c *Client) session(ctx context.Context, endpoint string) (bool, error) {
	conn, _, err := c.dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}
	c.logger.Info("Connected", "url", endpoint)

	out := make(chan []byte, sendBufferSize)
	done := make(chan struct{})
	c.mu.Lock()
	c.out = out
	c.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.writePump(conn, out, done)
	}()
	go func() {
		// закрываем соединение при отмене контекста, чтобы разблокировать чтение
		defer wg.Done()
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	err = c.readPump(conn)

	c.mu.Lock()
	c.out = nil
	c.mu.Unlock()
	close(done)
	conn.Close()
	wg.Wait()

	return true, err
}

func (c *Client) readPump(conn *websocket.Conn) error {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read failed: %w", err)
		}

		var env api.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.logger.Warn("Skipping malformed frame", "error", err)
			continue
		}
		c.handler(env)
	}
}

func (c *Client) writePump(conn *websocket.Conn, out <-chan []byte, done <-chan struct{}) {
	for {
		select {
		case data := <-out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.logger.Warn("Write failed", "error", err)
				conn.Close()
				return
			}
		case <-done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}
