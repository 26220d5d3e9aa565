package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"nmea-hub/internal/config"
	"nmea-hub/internal/gps"
	"nmea-hub/internal/pps"
	"nmea-hub/internal/udp"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./dev.yaml", "Path to YAML config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("nmea-hub starting")

	gpsSvc := gps.New(gps.Config{
		Enable:   cfg.GPS.Enable,
		Source:   cfg.GPS.Source,
		Device:   cfg.GPS.Device,
		Baud:     cfg.GPS.Baud,
		Addr:     cfg.GPS.Addr,
		Required: cfg.GPS.RequiredTypes(),
	})
	if err := gpsSvc.Start(ctx); err != nil {
		// Bring-up failures are reported in the snapshot; keep running so
		// a replugged receiver can be picked up on restart.
		log.Printf("gps start failed: %v", err)
	}
	defer gpsSvc.Close()

	ppsSvc := pps.New(pps.Config{Enable: cfg.PPS.Enable, Pin: cfg.PPS.Pin})
	if err := ppsSvc.Start(ctx); err != nil {
		log.Printf("pps start failed: %v", err)
	}
	defer ppsSvc.Close()

	if cfg.UDP.Enable {
		broadcaster, err := udp.NewBroadcaster(cfg.UDP.Dest)
		if err != nil {
			log.Fatalf("udp broadcaster init failed: %v", err)
		}
		defer broadcaster.Close()

		log.Printf("udp dest=%s interval=%s", cfg.UDP.Dest, cfg.UDP.Interval)

		go func() {
			err := broadcaster.Run(ctx, cfg.UDP.Interval, func(seq uint64) []byte {
				report := struct {
					Seq uint64       `json:"seq"`
					GPS gps.Snapshot `json:"gps"`
					PPS pps.Snapshot `json:"pps"`
				}{seq, gpsSvc.Snapshot(), ppsSvc.Snapshot()}
				b, err := json.Marshal(report)
				if err != nil {
					log.Printf("report marshal failed: %v", err)
					return nil
				}
				return b
			})
			if err != nil && ctx.Err() == nil {
				log.Printf("udp broadcaster stopped: %v", err)
				cancel()
			}
		}()
	}

	<-ctx.Done()
	log.Printf("nmea-hub stopping")
}
