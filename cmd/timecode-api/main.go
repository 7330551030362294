package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cbsinteractive/timecode/config"
	"github.com/cbsinteractive/timecode/service"
	"github.com/google/gops/agent"
)

func main() {
	agent.Listen(agent.Options{})
	defer agent.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}

	srv, err := service.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("unable to initialize service: ", err)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.WithField("addr", addr).Info("listening")
	if err := http.ListenAndServe(addr, srv); err != nil {
		logger.Fatal("server encountered a fatal error: ", err)
	}
}
