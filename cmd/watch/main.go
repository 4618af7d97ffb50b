// Command watch joins an ashgrave server and logs what happens in the
// session. As pilot it can respawn the player automatically.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/network"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/shared/messages"
	"github.com/automoto/ashgrave/shared/protocol"
	"github.com/sirupsen/logrus"
)

func main() {
	address := flag.String("addr", "localhost:7373", "Server address")
	name := flag.String("name", "watcher", "Player name")
	version := flag.String("version", "", "Client version sent on join")
	respawn := flag.Bool("respawn", false, "Respawn automatically after death (pilot only)")
	flag.Parse()

	logger.Init()

	if err := protocol.RegisterComponents(); err != nil {
		logger.Log.WithError(err).Fatal("failed to register components")
	}

	client := network.NewClient()
	client.Connect(*address, *version, *name)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	mode := client.Mode()
	for {
		select {
		case <-sigChan:
			client.Disconnect()
			return
		case <-ticker.C:
		}

		if client.State() == network.StateError {
			logger.Log.WithError(client.LastError()).Fatal("connection lost")
		}

		for _, hit := range client.DrainHitEvents() {
			logger.Log.WithFields(logrus.Fields{
				"attacker": hit.AttackerID,
				"target":   hit.TargetID,
				"damage":   hit.Damage,
				"killed":   hit.Killed,
			}).Info("hit")
		}
		for _, sp := range client.DrainSpawnEvents() {
			logger.Log.WithFields(logrus.Fields{
				"id":   sp.NetworkID,
				"type": sp.EntityType,
			}).Debug("spawn")
		}
		for _, d := range client.DrainDespawnEvents() {
			logger.Log.WithFields(logrus.Fields{
				"id":   d.NetworkID,
				"type": d.EntityType,
			}).Debug("despawn")
		}

		if m := client.Mode(); m != mode {
			logger.Log.WithField("mode", m).Info("mode changed")
			mode = m
			if m == config.ModeDeath && *respawn && client.Pilot() {
				if err := client.SendMessage(messages.RespawnRequest{}); err != nil {
					logger.Log.WithError(err).Warn("respawn request failed")
				}
			}
		}
	}
}
