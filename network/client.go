package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

const eventBuffer = 32

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	networkID  esync.NetworkId
	sessionID  string
	pilot      bool
	serverName string
	tickRate   int
	mode       config.GameMode
	conn       *websocket.Conn

	history InputHistory

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	hitCh     chan messages.HitEvent
	spawnCh   chan messages.SpawnEvent
	despawnCh chan messages.DespawnEvent
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		mode:       config.ModePlaying,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		hitCh:      make(chan messages.HitEvent, eventBuffer),
		spawnCh:    make(chan messages.SpawnEvent, eventBuffer),
		despawnCh:  make(chan messages.DespawnEvent, eventBuffer),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		logger.Log.WithField("address", address).Info("connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{Version: version, PlayerName: playerName}); err != nil {
			c.setError(fmt.Errorf("send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		c.onJoinAccepted(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		logger.Log.WithField("reason", msg.Reason).Warn("join rejected")
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, evt messages.HitEvent) {
		push(c.hitCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.SpawnEvent) {
		push(c.spawnCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.DespawnEvent) {
		push(c.despawnCh, evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.ModeChangeEvent) {
		c.onModeChange(evt)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		logger.Log.WithError(err).Info("disconnected")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		logger.Log.WithError(err).Warn("client error")
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) onJoinAccepted(msg messages.JoinAccepted) {
	logger.Log.WithFields(logrus.Fields{
		"network_id": msg.NetworkID,
		"session":    msg.SessionID,
		"server":     msg.ServerName,
		"tick_rate":  msg.TickRate,
		"pilot":      msg.Pilot,
	}).Info("join accepted")

	c.mu.Lock()
	c.networkID = msg.NetworkID
	c.sessionID = msg.SessionID
	c.pilot = msg.Pilot
	c.serverName = msg.ServerName
	c.tickRate = msg.TickRate
	c.state = StateJoinedGame
	c.mu.Unlock()
}

func (c *Client) onModeChange(evt messages.ModeChangeEvent) {
	c.mu.Lock()
	c.mode = evt.Mode
	c.mu.Unlock()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

// Pilot reports whether this client controls the player.
func (c *Client) Pilot() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pilot
}

func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// Mode is the last session mode the server announced.
func (c *Client) Mode() config.GameMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// SendInput numbers and sends the pilot's controls. The input is kept until
// the server acknowledges its sequence.
func (c *Client) SendInput(actions map[config.ActionID]bool, yaw float64) error {
	c.mu.Lock()
	input := messages.NewPlayerInput(c.history.NextSeq())
	for id, pressed := range actions {
		input.Actions[id] = pressed
	}
	input.Yaw = yaw
	c.history.Store(input)
	c.mu.Unlock()

	return c.SendMessage(input)
}

// Acknowledge returns how many sent inputs the server has not applied yet.
func (c *Client) Acknowledge(lastSequence uint32) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history.Unacknowledged(lastSequence))
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainHitEvents returns all pending hit events, non-blocking.
func (c *Client) DrainHitEvents() []messages.HitEvent {
	return drainChan(c.hitCh)
}

func (c *Client) DrainSpawnEvents() []messages.SpawnEvent {
	return drainChan(c.spawnCh)
}

func (c *Client) DrainDespawnEvents() []messages.DespawnEvent {
	return drainChan(c.despawnCh)
}

// push drops the event when nobody is draining.
func push[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
	}
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
