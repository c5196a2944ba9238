package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/ljanyst/ray-tracer/pkg/renderer"
	"github.com/ljanyst/ray-tracer/pkg/scene"
	"github.com/ljanyst/ray-tracer/pkg/world"
)

// Request limits shared by parsing and /api/scene-config
const (
	minImageSize = 16
	maxImageSize = 2000
	maxDepth     = 20
	maxWorkers   = 256
	minTileSize  = 8
	maxTileSize  = 256
	minFOV       = 0.1
	maxFOV       = 3.0

	// DefaultTileSize is the tile edge used when the client does not ask
	// for one
	DefaultTileSize = 32
)

// Server handles web requests for the ray tracer
type Server struct {
	port      int
	scenesDir string
	staticDir string
	upgrader  websocket.Upgrader
}

// NewServer creates a new web server. JSON scenes are discovered in
// scenesDir.
func NewServer(port int, scenesDir string) *Server {
	return &Server{
		port:      port,
		scenesDir: scenesDir,
		staticDir: "static/",
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			// The UI may be served from a different port during development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string  `json:"scene"`       // Scene ID (e.g., "room" or "json:glass")
	Width       int     `json:"width"`       // Image width
	Height      int     `json:"height"`      // Image height
	FieldOfView float64 `json:"fieldOfView"` // 0 keeps the scene's field of view
	MaxDepth    int     `json:"maxDepth"`    // -1 keeps the scene's recursion budget
	Workers     int     `json:"workers"`     // 0 = use CPU count
	TileSize    int     `json:"tileSize"`    // Tile edge in pixels
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and JSON scenes grouped by category
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// parseCommonSceneParams parses the parameters shared by rendering and
// inspection: scene, size and field of view
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minImageSize, maxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 225, minImageSize, maxImageSize); err != nil {
		return err
	}
	if req.FieldOfView, err = parseFloatParam(query, "fov", 0, minFOV, maxFOV); err != nil {
		return err
	}
	return nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	query := r.URL.Query()
	var err error
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", -1, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 1, maxWorkers); err != nil {
		return nil, err
	}
	if req.TileSize, err = parseIntParam(query, "tileSize", DefaultTileSize, minTileSize, maxTileSize); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 1600*1200 && (req.MaxDepth < 0 || req.MaxDepth > world.DefaultMaxDepth) {
		log.Printf("Render warning: Large image with deep recursion may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(parsed) {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene at the requested size
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	return scene.Load(req.Scene, s.scenesDir, scene.CameraConfig{
		Width:       req.Width,
		Height:      req.Height,
		FieldOfView: req.FieldOfView,
	})
}

// renderConfig combines the scene defaults with the request overrides
func (s *Server) renderConfig(sceneObj *scene.Scene, req *RenderRequest) renderer.RenderConfig {
	config := renderer.RenderConfig{
		TileSize:   req.TileSize,
		NumWorkers: req.Workers,
		MaxDepth:   sceneObj.MaxDepth,
	}
	if req.MaxDepth >= 0 {
		config.MaxDepth = req.MaxDepth
	}
	return config
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default" // Default scene
	}

	sceneObj, err := scene.Load(sceneName, s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// Return the scene's camera and recursion defaults with validation limits
	config := sceneObj.CameraConfig
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":       config.Width,
			"height":      config.Height,
			"fieldOfView": config.FieldOfView,
			"maxDepth":    sceneObj.MaxDepth,
			"tileSize":    DefaultTileSize,
			"shapes":      sceneObj.GetShapeCount(),
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"maxDepth": map[string]int{"min": 0, "max": maxDepth},
			"workers":  map[string]int{"min": 1, "max": maxWorkers},
			"tileSize": map[string]int{"min": minTileSize, "max": maxTileSize},
			"fov":      map[string]float64{"min": minFOV, "max": maxFOV},
		},
	}

	writeJSON(w, http.StatusOK, response)
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
