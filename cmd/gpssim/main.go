// Command gpssim feeds the position ingestion endpoint with synthetic GPS
// pings, standing in for a real tracking unit during development.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

type ping struct {
	DeviceID  string    `json:"deviceId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Speed     float64   `json:"speed"`
	Timestamp time.Time `json:"timestamp"`
}

type simulator struct {
	endpoint string
	apiKey   string
	deviceID string
	client   *http.Client

	lat float64
	lon float64
}

func newSimulator(endpoint, apiKey, deviceID string) *simulator {
	return &simulator{
		endpoint: endpoint,
		apiKey:   apiKey,
		deviceID: deviceID,
		client:   &http.Client{Timeout: 10 * time.Second},
		// downtown Kigali
		lat: -1.95088,
		lon: 30.05885,
	}
}

// step nudges the position so consecutive pings trace a plausible drive.
func (s *simulator) step() ping {
	s.lat += (rand.Float64() - 0.5) * 0.002
	s.lon += (rand.Float64() - 0.5) * 0.002
	return ping{
		DeviceID:  s.deviceID,
		Latitude:  s.lat,
		Longitude: s.lon,
		Speed:     rand.Float64() * 80,
		Timestamp: time.Now().UTC(),
	}
}

func (s *simulator) send(ctx context.Context, p ping) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/api/gps-data", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}

func main() {
	endpoint := flag.String("e", "http://localhost:5000", "server endpoint")
	apiKey := flag.String("k", "", "device API key")
	deviceID := flag.String("i", "", "device id")
	interval := flag.Duration("t", 10*time.Second, "ping interval")
	flag.Parse()

	if *apiKey == "" || *deviceID == "" {
		log.Fatal("both -k (API key) and -i (device id) are required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sim := newSimulator(*endpoint, *apiKey, *deviceID)

	log.Printf("sending pings to %s every %s", *endpoint, *interval)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		if err := sim.send(ctx, sim.step()); err != nil {
			log.Printf("ping failed: %v", err)
		}

		select {
		case <-ctx.Done():
			log.Print("stopping")
			return
		case <-ticker.C:
		}
	}
}
