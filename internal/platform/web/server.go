// Package web serves a live browser view of the environment: an embedded
// canvas page plus a websocket that pushes one observation per simulation
// tick. Server-side push keeps the page in sync without polling; episodes
// auto-reset on termination so the stream never stalls.
package web

import (
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/ndmitriev/pixelpole/internal/config"
	"github.com/ndmitriev/pixelpole/internal/env"
	"github.com/ndmitriev/pixelpole/internal/physics"
	"github.com/ndmitriev/pixelpole/internal/render"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Delay between episodes so the terminal frame stays visible.
	resetPause = 500 * time.Millisecond
)

//go:embed index.html
var indexHTML string

var upgrader = websocket.Upgrader{}

// FrameUpdate is one pushed observation.
type FrameUpdate struct {
	Seed   int32   `json:"seed"`
	Step   int     `json:"step"`
	Reward float64 `json:"reward"`
	Done   int32   `json:"done"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Pixels string  `json:"pixels"` // base64 RGB bytes, row major
}

// Server streams environment frames to browser clients. Each websocket
// connection runs its own environment instance, so clients never share
// mutable state.
type Server struct {
	cfg      config.Config
	addr     string
	tickRate int
	logger   *log.Logger
}

// NewServer creates a frame-streaming server for the given environment
// configuration.
func NewServer(cfg config.Config, addr string, tickRate int, logger *log.Logger) *Server {
	if tickRate <= 0 {
		tickRate = 50
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, addr: addr, tickRate: tickRate, logger: logger}
}

// ListenAndServe blocks serving the page and websocket endpoints.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWS)

	s.logger.Info("serving live viewer", "addr", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data := struct {
		Width, Height int
	}{render.Width, render.Height}
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("template execute failed", "err", err)
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "err", err)
		return
	}
	defer ws.Close()

	s.logger.Info("viewer connected", "remote", r.RemoteAddr)
	if err := s.stream(ws); err != nil {
		s.logger.Info("viewer disconnected", "remote", r.RemoteAddr, "err", err)
	}
}

// stream drives one environment under a random policy and pushes every
// frame until the client goes away.
func (s *Server) stream(ws *websocket.Conn) error {
	e := env.New(s.cfg)
	defer e.Close()

	if _, err := e.Reset(); err != nil {
		return err
	}

	interval := time.Second / time.Duration(s.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	step := 0
	for range ticker.C {
		action := physics.Action(rand.IntN(2))
		res, err := e.Step(action)
		if err != nil {
			return fmt.Errorf("step: %w", err)
		}
		step++

		if err := s.push(ws, res, step); err != nil {
			return err
		}

		if res.Done == 1 {
			time.Sleep(resetPause)
			if _, err := e.Reset(); err != nil {
				return err
			}
			step = 0
		}
	}
	return nil
}

func (s *Server) push(ws *websocket.Conn, res env.StepResult, step int) error {
	update := FrameUpdate{
		Seed:   res.Info.LevelSeed,
		Step:   step,
		Reward: res.Reward,
		Done:   res.Done,
		Width:  render.Width,
		Height: render.Height,
		Pixels: base64.StdEncoding.EncodeToString(res.Obs.Bytes()),
	}
	if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ws.WriteJSON(update)
}
