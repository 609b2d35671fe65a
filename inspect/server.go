// Package inspect serves a live view of the scene over HTTP: a JSON
// tree, a spew dump and a websocket feed of frame stats. The scene
// graph itself is never shared across goroutines, the frame loop
// installs an immutable snapshot function instead.
package inspect

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/rowan3d/rowan/engine"
)

var dumper = func() *spew.ConfigState {
	cfg := spew.NewDefaultConfig()
	cfg.DisableCapacities = true
	cfg.DisablePointerAddresses = true
	return cfg
}()

// NodeInfo is one scene node in a snapshot.
type NodeInfo struct {
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Position [3]float64 `json:"position"`
	Children []NodeInfo `json:"children,omitempty"`
}

// Describe captures an object subtree. Call it from the thread that
// owns the scene, the result is a plain value safe to hand off.
func Describe(obj engine.Object) NodeInfo {
	p := obj.WorldPosition()

	info := NodeInfo{
		Name:     obj.Name(),
		Type:     typeName(obj),
		Position: [3]float64{p[0], p[1], p[2]},
	}

	for _, child := range obj.Children() {
		info.Children = append(info.Children, Describe(child))
	}

	return info
}

func typeName(obj engine.Object) string {
	switch obj.(type) {
	case *engine.Scene:
		return "scene"
	case *engine.Group:
		return "group"
	case *engine.Camera:
		return "camera"
	case *engine.Mesh:
		return "mesh"
	}

	return "node"
}

type Server struct {
	snapshot func() NodeInfo
	stats    <-chan engine.Stats

	router   *mux.Router
	upgrader websocket.Upgrader
}

// NewServer wires the routes. snapshot must be safe to call from the
// serving goroutines, stats feeds the /live websocket.
func NewServer(snapshot func() NodeInfo, stats <-chan engine.Stats) *Server {
	s := &Server{
		snapshot: snapshot,
		stats:    stats,
		router:   mux.NewRouter(),
	}

	s.router.HandleFunc("/json/scene", s.handleJSON).Methods("GET")
	s.router.HandleFunc("/dump/scene", s.handleDump).Methods("GET")
	s.router.HandleFunc("/live", s.handleLive)

	return s
}

func (s *Server) Handler() http.Handler {
	h := handlers.LoggingHandler(os.Stdout, s.router)
	return handlers.RecoveryHandler()(h)
}

func (s *Server) ListenAndServe(addr string) error {
	log.Printf("[web] scene inspector listening on %v", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.snapshot()); err != nil {
		log.Printf("[web] encode scene: %v", err)
	}
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	dumper.Fdump(w, s.snapshot())
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[web] websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for stat := range s.stats {
		if err := conn.WriteJSON(stat); err != nil {
			log.Printf("[web] websocket write: %v", err)
			return
		}
	}
}
