package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/ashgrave/config"
	"github.com/automoto/ashgrave/server/core"
	"github.com/automoto/ashgrave/shared/logger"
	"github.com/automoto/ashgrave/shared/progress"
	"github.com/automoto/ashgrave/shared/protocol"
	"github.com/sirupsen/logrus"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", 30, "Server tick rate (updates per second)")
	name := flag.String("name", "Ashgrave Server", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	mapPath := flag.String("map", "", "TMX encounter to load (empty = built-in arena)")
	tuning := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	save := flag.String("save", "ashgrave", "Save slot app name (empty = no saving)")
	flag.Parse()

	logger.Init()

	if err := protocol.RegisterComponents(); err != nil {
		logger.Log.WithError(err).Fatal("failed to register components")
	}

	opts := core.Options{
		TickRate: *tickRate,
		Name:     *name,
		Version:  *version,
	}

	if *tuning != "" {
		if err := config.LoadFile(*tuning); err != nil {
			logger.Log.WithError(err).Fatal("failed to load tuning")
		}
		w, err := config.NewWatcher(*tuning)
		if err != nil {
			logger.Log.WithError(err).Warn("tuning hot reload disabled")
		} else {
			opts.Watcher = w
		}
	}

	if *mapPath != "" {
		enc, err := core.LoadEncounter(*mapPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to load map")
		}
		opts.Encounter = enc
	}

	if *save != "" {
		store, err := progress.Open(*save)
		if err != nil {
			logger.Log.WithError(err).Warn("progress saving disabled")
		} else {
			opts.Store = store
		}
	}

	server, err := core.NewServer(opts)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to create server")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Log.Info("shutting down server")
		server.Stop()
		os.Exit(0)
	}()

	logger.Log.WithFields(logrus.Fields{
		"name":      *name,
		"port":      *port,
		"tick_rate": *tickRate,
		"version":   *version,
		"session":   server.SessionID(),
	}).Info("starting ashgrave server")
	if err := server.Start(*port); err != nil {
		logger.Log.WithError(err).Fatal("server error")
	}
}
