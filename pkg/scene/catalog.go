package scene

import (
	"fmt"
	"sort"
)

// builders maps scene names to their constructors. Scenes that load an OBJ
// asset take the asset path; the rest ignore it.
var builders = map[string]func(assetPath string) (*Scene, error){
	"two-spheres":   func(string) (*Scene, error) { return NewTwoSpheresScene(), nil },
	"spheres-lit":   func(string) (*Scene, error) { return NewSpheresLitScene(), nil },
	"cook-torrance": func(string) (*Scene, error) { return NewCookTorranceScene(), nil },
	"triangle":      func(string) (*Scene, error) { return NewTriangleTestScene(), nil },
	"reference":     func(string) (*Scene, error) { return NewReferenceScene(), nil },
	"soft-shadows":  func(string) (*Scene, error) { return NewSoftShadowScene(), nil },
	"mesh":          NewMeshScene,
	"bunny":         NewBunnyScene,
}

// Names returns the catalog's scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named scene. assetPath points to the OBJ file for scenes
// that load one.
func ByName(name, assetPath string) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return builder(assetPath)
}
