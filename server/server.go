package server

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"rankine/cycle"
	"rankine/model"
	"rankine/steam"
)

// Server owns the shared property table and the UI-facing HTTP surface.
// Each websocket connection gets its own solver; the table itself is
// read-only and shared.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	table    *steam.Table
	handler  http.Handler

	// reference solver for the /state endpoint, computed once from the
	// configured defaults
	ref *cycle.Solver
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	s := &Server{
		addr:     addr,
		upgrader: upgrader,
		table:    steam.NewTable(),
	}

	s.ref = cycle.NewSolver(s.table)
	s.ref.SetUnitSystem(cycle.DefaultUnits())
	if err := s.ref.SetBoundary(cycle.DefaultBoundary()); err != nil {
		log.Warn("default boundary rejected: ", err)
	} else if _, err := s.ref.Recompute(); err != nil {
		log.Warn("default cycle recompute failed: ", err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/ws", s.serveWs)
	r.HandleFunc("/healthz", s.serveHealth).Methods(http.MethodGet)
	r.HandleFunc("/state", s.serveState).Methods(http.MethodGet)
	s.handler = handlers.RecoveryHandler()(handlers.CombinedLoggingHandler(os.Stdout, r))
	return s
}

// serveWs upgrades the connection and drives one hub per peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade failed: ", err)
		return
	}
	defer conn.Close()

	hub := NewHub(s.table)
	hub.conn = conn
	log.WithFields(log.Fields{"session": hub.id, "remote": r.RemoteAddr}).Info("client connected")

	go hub.handleResponse()
	defer close(hub.reply)
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithFields(log.Fields{"session": hub.id}).Info("client gone: ", err)
			return
		}
		hub.dispatch(msg)
	}
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// serveState reports the default-boundary cycle as JSON.
func (s *Server) serveState(w http.ResponseWriter, _ *http.Request) {
	res := s.ref.Result()
	if res == nil {
		http.Error(w, "no result", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Warn("state encode: ", err)
	}
}

func (s *Server) Serve() {
	log.WithFields(log.Fields{"addr": s.addr}).Info("rankine server listening")
	if err := http.ListenAndServe(s.addr, s.handler); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
