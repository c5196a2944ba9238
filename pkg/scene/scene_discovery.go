package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// Builder creates a built-in scene, applying the first camera override if
// one is given
type Builder func(cameraOverrides ...CameraConfig) *Scene

const builtinGroup = "Built-in Scenes"

var builtins = []struct {
	info  SceneInfo
	build Builder
}{
	{SceneInfo{ID: "default", Name: "Default Scene", Description: "Three spheres resting on a floor"}, NewDefaultScene},
	{SceneInfo{ID: "patterns", Name: "Patterns", Description: "The default spheres with noisy, blended and gradient patterns"}, NewPatternsScene},
	{SceneInfo{ID: "reflection", Name: "Reflection", Description: "A sphere between reflective walls and a checkered floor"}, NewReflectionScene},
	{SceneInfo{ID: "refraction", Name: "Refraction", Description: "A tinted glass sphere in front of three spheres"}, NewRefractionScene},
	{SceneInfo{ID: "room", Name: "Room", Description: "A furnished room built from cubes, with a mirror"}, NewRoomScene},
	{SceneInfo{ID: "shapes", Name: "Cylinders and Cones", Description: "Capped and open cylinders and cones"}, NewShapesScene},
}

// Names returns the IDs of the built-in scenes in display order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for _, b := range builtins {
		names = append(names, b.info.ID)
	}
	return names
}

// Lookup creates the built-in scene with the given ID
func Lookup(name string, cameraOverrides ...CameraConfig) (*Scene, bool) {
	for _, b := range builtins {
		if b.info.ID == name {
			return b.build(cameraOverrides...), true
		}
	}
	return nil, false
}

// Load creates a scene by ID. IDs of the form "json:<name>" load
// <scenesDir>/<name>.json; all others name built-in scenes.
func Load(id, scenesDir string, cameraOverrides ...CameraConfig) (*Scene, error) {
	if name, ok := strings.CutPrefix(id, "json:"); ok {
		if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("invalid scene name %q", name)
		}
		return NewJSONScene(filepath.Join(scenesDir, name+".json"), cameraOverrides...)
	}

	s, ok := Lookup(id, cameraOverrides...)
	if !ok {
		return nil, fmt.Errorf("unknown scene: %s", id)
	}
	return s, nil
}

// BuiltinScenes returns the metadata of the built-in scenes
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtinGroup
		info.Type = "builtin"
		infos = append(infos, info)
	}
	return infos
}

// ListJSONScenes scans scenesDir and returns the JSON scenes it holds. A
// missing directory yields an empty list.
func ListJSONScenes(scenesDir string) ([]SceneInfo, error) {
	if _, err := os.Stat(scenesDir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(scenesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseJSONMetadata(filePath)
		if err != nil {
			// Skip unreadable files and keep listing the rest
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseJSONMetadata extracts the name, description and group of a JSON
// scene file without building it
func ParseJSONMetadata(filePath string) (SceneInfo, error) {
	// Extract filename without extension for fallback values
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          "json:" + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "JSON Scenes",
		Type:        "json",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	if !gjson.ValidBytes(data) {
		return sceneInfo, fmt.Errorf("%s is not valid JSON", filePath)
	}

	fields := gjson.GetManyBytes(data, "name", "description", "group")
	if fields[0].String() != "" {
		sceneInfo.Name = fields[0].String()
		sceneInfo.DisplayName = sceneInfo.Name
	}
	sceneInfo.Description = fields[1].String()
	if fields[2].String() != "" {
		sceneInfo.Group = fields[2].String()
	}

	return sceneInfo, nil
}

// ListAllScenes returns both built-in and JSON scenes, grouped by category
func ListAllScenes(scenesDir string) (ScenesResponse, error) {
	var response ScenesResponse

	jsonScenes, err := ListJSONScenes(scenesDir)
	if err != nil {
		return response, fmt.Errorf("failed to list JSON scenes: %w", err)
	}

	// Combine all scenes
	allScenes := append(BuiltinScenes(), jsonScenes...)

	// Group scenes by their Group field
	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Create ordered groups (Built-in first, then alphabetical)
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtInGroup, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   builtinGroup,
			Scenes: builtInGroup,
		})
	}

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-spheres" -> "Glass Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
