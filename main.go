package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/ljanyst/ray-tracer/pkg/core"
	"github.com/ljanyst/ray-tracer/pkg/renderer"
	"github.com/ljanyst/ray-tracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	maxDepth := flag.Int("depth", -1, "Recursion budget for reflection and refraction (-1 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	tileSize := flag.Int("tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	output := flag.String("output", "", "Output file, .ppm or .png (default output/<scene>/render_<timestamp>.png)")
	list := flag.Bool("list", false, "List the built-in scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Ray Tracer")
		fmt.Println("Usage: ray-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		return
	}
	if *list {
		printScenes()
		return
	}

	logger := core.NewDefaultLogger()

	selectedScene, err := createScene(*sceneType, scene.CameraConfig{Width: *width, Height: *height})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Using %s scene (%d shapes)...\n", selectedScene.Name, selectedScene.GetShapeCount())

	config := renderer.RenderConfig{
		TileSize:   *tileSize,
		NumWorkers: *workers,
		MaxDepth:   selectedScene.MaxDepth,
	}
	if *maxDepth >= 0 {
		config.MaxDepth = *maxDepth
	}

	filename := *output
	if filename == "" {
		outputDir := createOutputDir(*sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}
	if _, err := outputFormat(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raytracer := renderer.NewRaytracer(selectedScene.World, selectedScene.Camera, config, logger)
	canvas, _, err := raytracer.Render(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveCanvas(canvas, filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving render: %v\n", err)
		os.Exit(1)
	}
	logger.Printf("Render saved as %s\n", filename)
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-12s %s\n", info.ID, info.Description)
	}
	fmt.Println("  <file>.json  Scene description file")
}

// createScene resolves a built-in scene name or a path to a JSON scene file
func createScene(sceneType string, cameraOverride scene.CameraConfig) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}

	if strings.HasSuffix(strings.ToLower(sceneType), ".json") {
		return scene.NewJSONScene(sceneType, cameraOverride)
	}

	s, ok := scene.Lookup(sceneType, cameraOverride)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q; available: %s", sceneType, strings.Join(scene.Names(), ", "))
	}
	return s, nil
}

// createOutputDir returns output/<name>, where name is the scene name or
// the base name of the scene file
func createOutputDir(sceneType string) string {
	name := filepath.Base(sceneType)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "scene"
	}
	return filepath.Join("output", name)
}

// outputFormat returns the lower-case extension of filename if it names a
// format saveCanvas can write
func outputFormat(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".ppm" && ext != ".png" {
		return "", fmt.Errorf("unsupported output format %q (use .ppm or .png)", ext)
	}
	return ext, nil
}

// saveCanvas writes a PPM or a PNG depending on the file extension
func saveCanvas(canvas *renderer.Canvas, filename string) error {
	ext, err := outputFormat(filename)
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	if ext == ".ppm" {
		err = canvas.WritePPM(file)
	} else {
		err = png.Encode(file, canvas.Image())
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}
