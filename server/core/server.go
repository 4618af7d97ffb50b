package core

import (
	"fmt"
	"sync"

	cfg "github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/shared/gamemath"
	"github.com/automoto/ashgrave/shared/leveldata"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/shared/messages"
	"github.com/automoto/ashgrave/shared/netcomponents"
	"github.com/automoto/ashgrave/shared/progress"
	"github.com/automoto/ashgrave/sim"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

const commandQueueSize = 256

// peer is a connected client. *router.NetworkClient satisfies it.
type peer interface {
	Id() string
	SendMessage(msg any) error
}

type Options struct {
	TickRate int
	Name     string
	Version  string // Required client version, empty accepts any

	// Encounter to populate. Nil uses DefaultEncounter.
	Encounter *leveldata.Encounter
	// Store persists souls between runs. Nil disables saving.
	Store *progress.Store
	// Watcher delivers tuning file changes. Nil disables hot reload.
	Watcher *cfg.Watcher
}

// Server runs one simulation and streams it to connected clients. The first
// client to join pilots the player; later ones spectate. All simulation
// access happens on the loop goroutine; network callbacks enqueue commands.
type Server struct {
	opts      Options
	sessionID string
	sim       *sim.Simulation
	world     donburi.World
	mirror    *mirror
	loop      *GameLoop
	transport *transports.WsServerTransport
	commands  chan func()
	watcher   *cfg.Watcher // loop goroutine only; nil once closed

	mu    sync.RWMutex
	peers map[peer]struct{}
	pilot peer

	lastSequence  uint32
	lastMode      cfg.GameMode
	pausedNoPilot bool
	saved         progress.Saved
}

// NewServer creates a server with necs sync wired to its network world.
func NewServer(opts Options) (*Server, error) {
	world := donburi.NewWorld()
	srvsync.UseEsync(world)

	s, err := newServer(opts, world, esyncReplicator{world: world})
	if err != nil {
		return nil, err
	}
	s.setupRouterCallbacks()
	return s, nil
}

func newServer(opts Options, world donburi.World, rep replicator) (*Server, error) {
	if opts.TickRate <= 0 {
		return nil, fmt.Errorf("server: tick rate %d", opts.TickRate)
	}
	if opts.Encounter == nil {
		opts.Encounter = DefaultEncounter()
	}

	s := &Server{
		opts:      opts,
		sessionID: ulid.Make().String(),
		sim:       sim.New(sim.Options{IntegrateMotion: true}),
		world:     world,
		mirror:    newMirror(world, rep),
		commands:  make(chan func(), commandQueueSize),
		peers:     make(map[peer]struct{}),
		watcher:   opts.Watcher,
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	if err := s.sim.Populate(opts.Encounter); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if err := s.restoreProgress(); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	s.lastMode = s.sim.Mode()

	logger.Log.WithFields(logrus.Fields{
		"session":   s.sessionID,
		"encounter": opts.Encounter.Name,
	}).Info("session created")
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
	if s.opts.Watcher != nil {
		_ = s.opts.Watcher.Close()
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		logger.Log.WithField("client", client.Id()).Info("client connected")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.enqueue(func() { s.onDisconnect(client, err) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(func() { s.onJoin(client, req) })
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.enqueue(func() { s.onPlayerInput(client, input) })
	})

	router.On(func(client *router.NetworkClient, _ messages.RespawnRequest) {
		s.enqueue(func() { s.onRespawn(client) })
	})

	router.On(func(client *router.NetworkClient, req messages.PauseRequest) {
		s.enqueue(func() { s.onPause(client, req) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		logger.Log.WithField("client", client.Id()).WithError(err).Warn("client error")
	})
}

func (s *Server) enqueue(cmd func()) {
	select {
	case s.commands <- cmd:
	default:
		logger.Log.Warn("command queue full, dropping command")
	}
}

// ProcessCommands runs queued client commands and pending tuning reloads.
// It must be called from the loop goroutine.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			cmd()
		default:
			s.processReloads()
			return
		}
	}
}

func (s *Server) processReloads() {
	w := s.watcher
	if w == nil {
		return
	}
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				s.watcher = nil
				return
			}
			if err := cfg.ReloadFile(path); err != nil {
				logger.Log.WithError(err).Warn("tuning reload failed")
				continue
			}
			logger.Log.WithField("path", path).Info("tuning reloaded; applies to new spawns and shared rules")
		case err, ok := <-w.Errors:
			if !ok {
				s.watcher = nil
				return
			}
			logger.Log.WithError(err).Warn("tuning watcher error")
		default:
			return
		}
	}
}

// Step advances the simulation and publishes the result.
func (s *Server) Step(dt float64) {
	frame := s.sim.Tick(dt)
	removed := s.mirror.apply(frame, s.gameState(frame), s.lastSequence)
	s.broadcastFrame(frame, removed)
	s.persist()
}

func (s *Server) gameState(f *sim.Frame) netcomponents.NetGameStateData {
	state := netcomponents.NetGameStateData{
		SessionID: s.sessionID,
		Mode:      f.Mode,
		Tick:      f.Tick,
		Souls:     f.HUD.Souls,
	}
	if pos, souls, ok := s.sim.Marker(); ok {
		state.HasMarker = true
		state.MarkerX = pos.X
		state.MarkerZ = pos.Z
		state.MarkerSouls = souls
	}
	return state
}

func (s *Server) broadcastFrame(f *sim.Frame, removed map[donburi.Entity]uint) {
	if f.Mode != s.lastMode {
		s.broadcast(messages.ModeChangeEvent{Mode: f.Mode})
		s.lastMode = f.Mode
	}

	for _, sp := range f.Spawns {
		s.broadcast(messages.SpawnEvent{
			NetworkID:  s.mirror.networkID(sp.Entity),
			EntityType: string(sp.Kind),
			X:          sp.Position.X,
			Y:          sp.Position.Y,
			Z:          sp.Position.Z,
		})
	}
	for _, d := range f.Despawns {
		s.broadcast(messages.DespawnEvent{
			NetworkID:  removed[d.Entity],
			EntityType: string(d.Kind),
		})
	}
	for _, h := range f.Hits {
		target := s.mirror.networkID(h.Target)
		if target == 0 {
			// The target despawned in the same tick it was killed.
			target = removed[h.Target]
		}
		s.broadcast(messages.HitEvent{
			AttackerID: s.mirror.networkID(h.Attacker),
			TargetID:   target,
			Damage:     h.Damage,
			Killed:     h.Killed,
		})
	}
}

func (s *Server) broadcast(msg any) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for p := range s.peers {
		if err := p.SendMessage(msg); err != nil {
			logger.Log.WithField("client", p.Id()).WithError(err).Warn("send failed")
		}
	}
}

func (s *Server) onJoin(p peer, req messages.JoinRequest) {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		reason := fmt.Sprintf("version mismatch: server requires %s", s.opts.Version)
		if err := p.SendMessage(messages.JoinRejected{Reason: reason}); err != nil {
			logger.Log.WithError(err).Warn("send failed")
		}
		logger.Log.WithFields(logrus.Fields{
			"client":  p.Id(),
			"version": req.Version,
		}).Info("join rejected")
		return
	}

	s.mu.Lock()
	s.peers[p] = struct{}{}
	isPilot := s.pilot == nil
	if isPilot {
		s.pilot = p
	}
	s.mu.Unlock()

	if isPilot && s.pausedNoPilot {
		s.pausedNoPilot = false
		if err := s.sim.Resume(); err != nil {
			logger.Log.WithError(err).Debug("resume skipped")
		}
	}

	reply := messages.JoinAccepted{
		SessionID:  s.sessionID,
		Pilot:      isPilot,
		ServerName: s.opts.Name,
		TickRate:   s.opts.TickRate,
	}
	if player, ok := s.sim.Player(); ok {
		reply.NetworkID = esync.NetworkId(s.mirror.networkID(player))
	}
	if err := p.SendMessage(reply); err != nil {
		logger.Log.WithError(err).Warn("send failed")
	}

	logger.Log.WithFields(logrus.Fields{
		"client": p.Id(),
		"name":   req.PlayerName,
		"pilot":  isPilot,
	}).Info("client joined")
}

func (s *Server) onDisconnect(p peer, err error) {
	fields := logrus.Fields{"client": p.Id()}
	if err != nil {
		logger.Log.WithFields(fields).WithError(err).Info("client disconnected")
	} else {
		logger.Log.WithFields(fields).Info("client disconnected")
	}

	s.mu.Lock()
	delete(s.peers, p)
	wasPilot := s.pilot == p
	if wasPilot {
		s.pilot = nil
	}
	s.mu.Unlock()

	if !wasPilot {
		return
	}
	if err := s.sim.SetInput([cfg.ActionCount]bool{}, 0); err != nil {
		logger.Log.WithError(err).Debug("input reset skipped")
	}
	s.lastSequence = 0
	if s.sim.Mode() == cfg.ModePlaying {
		if err := s.sim.Pause(); err == nil {
			s.pausedNoPilot = true
		}
	}
}

func (s *Server) isPilot(p peer) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pilot != nil && s.pilot == p
}

func (s *Server) onPlayerInput(p peer, input messages.PlayerInput) {
	if !s.isPilot(p) {
		logger.Log.WithField("client", p.Id()).Debug("input from spectator ignored")
		return
	}
	if input.Sequence < s.lastSequence {
		return
	}
	if err := s.sim.SetInput(input.ActionSet(), input.Yaw); err != nil {
		logger.Log.WithError(err).Debug("input dropped")
		return
	}
	s.lastSequence = input.Sequence
}

func (s *Server) onRespawn(p peer) {
	if !s.isPilot(p) {
		return
	}
	if err := s.sim.Respawn(respawnPoint(s.opts.Encounter)); err != nil {
		logger.Log.WithError(err).Debug("respawn refused")
	}
}

func (s *Server) onPause(p peer, req messages.PauseRequest) {
	if !s.isPilot(p) {
		return
	}
	var err error
	if req.Paused {
		err = s.sim.Pause()
	} else {
		err = s.sim.Resume()
	}
	if err != nil {
		logger.Log.WithError(err).Debug("pause request refused")
	}
}

// World returns the network ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// SessionID identifies this run in logs and join replies.
func (s *Server) SessionID() string {
	return s.sessionID
}

// PlayerCount returns the number of joined clients
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

func (s *Server) restoreProgress() error {
	if s.opts.Store == nil {
		return nil
	}
	saved, err := s.opts.Store.Load()
	if err != nil {
		return err
	}
	if err := s.sim.SetSouls(saved.Souls); err != nil {
		return err
	}
	if saved.Marker != nil {
		s.sim.RestoreMarker(gamemath.Vec3{X: saved.Marker.X, Z: saved.Marker.Z}, saved.Marker.Souls)
	}
	s.saved = saved
	return nil
}

// persist saves souls and the soul drop whenever either changes.
func (s *Server) persist() {
	if s.opts.Store == nil {
		return
	}
	current := progress.Saved{Souls: s.sim.Souls()}
	if pos, souls, ok := s.sim.Marker(); ok {
		current.Marker = &progress.SavedMarker{Souls: souls, X: pos.X, Z: pos.Z}
	}
	if sameSave(current, s.saved) {
		return
	}
	if err := s.opts.Store.Save(current); err != nil {
		logger.Log.WithError(err).Warn("progress save failed")
		return
	}
	s.saved = current
}

func sameSave(a, b progress.Saved) bool {
	if a.Souls != b.Souls || (a.Marker == nil) != (b.Marker == nil) {
		return false
	}
	return a.Marker == nil || *a.Marker == *b.Marker
}
