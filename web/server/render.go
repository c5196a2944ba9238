package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ljanyst/ray-tracer/pkg/renderer"
)

const writeTimeout = 10 * time.Second

// Event is a single message sent to the client over the websocket
type Event struct {
	Type     string      `json:"type"` // "start", "console", "tile", "complete", "error"
	RenderID string      `json:"renderId"`
	Data     interface{} `json:"data,omitempty"`
}

// StartInfo describes a render that is about to begin
type StartInfo struct {
	Scene      string `json:"scene"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	MaxDepth   int    `json:"maxDepth"`
	TileSize   int    `json:"tileSize"`
	ShapeCount int    `json:"shapeCount"`
}

// TileUpdate represents a single finished tile
type TileUpdate struct {
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	X          int    `json:"x"` // Pixel position of the tile's top-left corner
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Tiles finished so far (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// ErrorInfo explains why a render stopped before completing
type ErrorInfo struct {
	Message   string `json:"message"`
	Level     Level  `json:"level"` // warning for a cancelled render, error otherwise
	Cancelled bool   `json:"cancelled"`
}

// CompleteInfo carries the statistics of a finished render
type CompleteInfo struct {
	TotalPixels     int     `json:"totalPixels"`
	TotalTiles      int     `json:"totalTiles"`
	NumWorkers      int     `json:"numWorkers"`
	MaxDepth        int     `json:"maxDepth"`
	ElapsedMs       int64   `json:"elapsedMs"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

// clientMessage is what the client may send while a render runs
type clientMessage struct {
	Type string `json:"type"` // "cancel"
}

// handleRender upgrades to a websocket and streams tiles as they finish.
// Closing the socket or sending {"type": "cancel"} stops the render.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Parse before upgrading so bad requests get a plain HTTP error
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	renderID := uuid.NewString()

	// One goroutine owns all writes to the connection
	events := make(chan Event, 100)
	console := newRenderConsole(renderID, 50)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeEvents(conn, events, console.Messages())
	}()

	go s.readClientMessages(conn, cancel)

	s.runRender(ctx, req, renderID, console, events)

	close(events)
	<-writerDone
	if n := console.Dropped(); n > 0 {
		log.Printf("Render %s: %d console messages did not reach the client", renderID, n)
	}

	deadline := time.Now().Add(time.Second)
	conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "render finished"), deadline)
}

// runRender builds the scene, renders it and reports every step on events
func (s *Server) runRender(ctx context.Context, req *RenderRequest, renderID string, console *renderConsole, events chan<- Event) {
	sceneObj, err := s.createScene(req)
	if err != nil {
		console.Errorf("Scene %s could not be loaded: %v", req.Scene, err)
		events <- Event{Type: "error", RenderID: renderID, Data: ErrorInfo{Message: err.Error(), Level: LevelError}}
		return
	}

	config := s.renderConfig(sceneObj, req)
	events <- Event{Type: "start", RenderID: renderID, Data: StartInfo{
		Scene:      sceneObj.Name,
		Width:      sceneObj.Camera.HSize(),
		Height:     sceneObj.Camera.VSize(),
		MaxDepth:   config.MaxDepth,
		TileSize:   config.TileSize,
		ShapeCount: sceneObj.GetShapeCount(),
	}}

	raytracer := renderer.NewRaytracer(sceneObj.World, sceneObj.Camera, config, console)
	_, stats, err := raytracer.Render(ctx, func(tile renderer.TileCompletionResult) {
		s.handleTileUpdate(ctx, renderID, tile, events)
	})

	switch {
	case errors.Is(err, context.Canceled):
		console.Warnf("Render cancelled after %d pixels", stats.TotalPixels)
		events <- Event{Type: "error", RenderID: renderID, Data: ErrorInfo{Message: "Rendering cancelled", Level: LevelWarning, Cancelled: true}}
	case err != nil:
		console.Errorf("Render failed: %v", err)
		events <- Event{Type: "error", RenderID: renderID, Data: ErrorInfo{Message: fmt.Sprintf("Rendering failed: %v", err), Level: LevelError}}
	default:
		events <- Event{Type: "complete", RenderID: renderID, Data: CompleteInfo{
			TotalPixels:     stats.TotalPixels,
			TotalTiles:      stats.TotalTiles,
			NumWorkers:      stats.NumWorkers,
			MaxDepth:        stats.MaxDepth,
			ElapsedMs:       stats.Elapsed.Milliseconds(),
			PixelsPerSecond: stats.PixelsPerSecond(),
		}}
	}
}

// handleTileUpdate encodes a finished tile and queues it for the client
func (s *Server) handleTileUpdate(ctx context.Context, renderID string, tile renderer.TileCompletionResult, events chan<- Event) {
	// Check if client is still connected
	if ctx.Err() != nil {
		return
	}

	tileData, err := s.imageToBase64PNG(tile.TileImage)
	if err != nil {
		log.Printf("Error encoding tile image (%d, %d): %v", tile.TileX, tile.TileY, err)
		return
	}

	events <- Event{Type: "tile", RenderID: renderID, Data: TileUpdate{
		TileX:      tile.TileX,
		TileY:      tile.TileY,
		X:          tile.Bounds.Min.X,
		Y:          tile.Bounds.Min.Y,
		Width:      tile.Bounds.Dx(),
		Height:     tile.Bounds.Dy(),
		ImageData:  tileData,
		TileNumber: tile.TileNumber,
		TotalTiles: tile.TotalTiles,
	}}
}

// writeEvents writes events and console messages until events is closed.
// Write errors mean the client went away; the loop keeps draining so
// producers never block.
func (s *Server) writeEvents(conn *websocket.Conn, events <-chan Event, consoleChan <-chan ConsoleMessage) {
	broken := false
	write := func(event Event) {
		if broken {
			return
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("Websocket write failed: %v", err)
			broken = true
		}
	}

	for {
		select {
		case event, ok := <-events:
			if !ok {
				// Flush console messages logged before the last event
				for {
					select {
					case msg := <-consoleChan:
						write(Event{Type: "console", RenderID: msg.RenderID, Data: msg})
					default:
						return
					}
				}
			}
			write(event)

		case msg := <-consoleChan:
			write(Event{Type: "console", RenderID: msg.RenderID, Data: msg})
		}
	}
}

// readClientMessages cancels the render when the client asks for it or
// the connection drops
func (s *Server) readClientMessages(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Websocket read failed: %v", err)
			}
			return
		}
		if msg.Type == "cancel" {
			return
		}
	}
}
