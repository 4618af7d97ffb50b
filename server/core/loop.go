package core

import (
	"time"

	"github.com/automoto/ashgrave/shared/logger"
	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	logger.Log.WithField("tick_rate", g.tickRate).Info("game loop started")

	for {
		select {
		case <-g.stopChan:
			logger.Log.Info("game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.server.ProcessCommands()
	g.server.Step(1 / float64(g.tickRate))

	if err := srvsync.DoSync(); err != nil {
		logger.Log.WithError(err).Warn("sync failed")
	}
}
