// Package server runs the long-lived digest mode: a periodic refetch loop
// plus HTTP endpoints serving the latest rendering.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"olysched/calendar"
	"olysched/config"
	"olysched/digest"
	"olysched/olympics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server refetches the current day's schedule on an interval, keeps the
// latest digest and calendar renderings, and pushes digest changes to
// websocket subscribers.
type Server struct {
	cfg         *config.Config
	client      *olympics.Client
	builder     *digest.Builder
	loc         *time.Location
	broadcaster *Broadcaster

	mu         sync.RWMutex
	currentMD  string
	currentICS string

	stopChan chan struct{}
	wg       sync.WaitGroup
}

func New(cfg *config.Config, client *olympics.Client, builder *digest.Builder, loc *time.Location) *Server {
	return &Server{
		cfg:         cfg,
		client:      client,
		builder:     builder,
		loc:         loc,
		broadcaster: NewBroadcaster(),
		stopChan:    make(chan struct{}),
	}
}

// Run refreshes once, starts the refetch loop, and serves HTTP on the
// configured address. It blocks until the listener fails.
func (s *Server) Run() error {
	s.refresh()

	s.wg.Add(1)
	go s.refreshLoop()

	fmt.Printf("Serving digest on %s\n", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

// Stop halts the refetch loop.
func (s *Server) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}

// Handler exposes the route set; split out from Run for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/digest", s.handleDigest)
	mux.HandleFunc("/schedule.ics", s.handleCalendar)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return mux
}

func (s *Server) refreshLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Duration(s.cfg.RefreshSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh()
		case <-s.stopChan:
			return
		}
	}
}

func (s *Server) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.HTTPTimeoutSeconds)*time.Second)
	defer cancel()

	today := time.Now().In(s.loc)
	schedule, err := s.client.FetchDay(ctx, today.Format("2006-01-02"))
	if err != nil {
		fetchErrors.Inc()
		log.Printf("Schedule refresh failed: %v", err)
		return
	}
	fetchTotal.Inc()
	lastRefreshUnix.Set(float64(time.Now().Unix()))

	relevant := digest.RelevantUnits(schedule.Units, s.cfg.NOC)
	relevantUnits.Set(float64(len(relevant)))

	md := s.builder.Build(schedule.Units, today)
	ics := calendar.Build(relevant, s.loc)

	s.mu.Lock()
	changed := md != s.currentMD
	s.currentMD = md
	s.currentICS = ics
	s.mu.Unlock()

	if changed {
		s.broadcaster.Broadcast([]byte(md))
		fmt.Printf("Digest refreshed: %d relevant units, %d subscribers\n", len(relevant), s.broadcaster.ClientCount())
	}
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	md := s.currentMD
	s.mu.RUnlock()

	if md == "" {
		http.Error(w, "Digest not yet available", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprint(w, md)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	ics := s.currentICS
	s.mu.RUnlock()

	if ics == "" {
		http.Error(w, "Calendar not yet available", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	fmt.Fprint(w, ics)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	current := s.currentMD
	s.mu.RUnlock()

	// No initial message before the first successful refresh.
	var initial []byte
	if current != "" {
		initial = []byte(current)
	}

	if err := s.broadcaster.HandleConnection(w, r, initial); err != nil {
		log.Printf("Websocket subscriber error: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}
