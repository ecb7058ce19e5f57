package main

import (
	"fmt"
	"os"

	"github.com/feel-easy/uno-arena/network"
	"github.com/feel-easy/uno-arena/service"
	"github.com/joho/godotenv"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	_ = godotenv.Load()
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":9999"
	}

	registry := service.NewRegistry()
	srv := service.New(registry)

	hub := network.NewHub()
	hub.Register()

	if url := os.Getenv("NATS_URL"); url != "" {
		publisher, err := network.NewNatsPublisher(url)
		if err != nil {
			log.Error(err)
		} else {
			publisher.Register()
			log.Infof("publishing game events to %s\n", url)
		}
	}

	server := network.NewHttpServer(addr, srv, hub)
	log.Error(server.Serve())
}
