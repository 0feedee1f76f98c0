package main

import (
	"os"
	"testing"
)

func TestBuildSceneBuiltins(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"cornell scene", "cornell", false},
		{"unknown scene", "nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := buildScene(config{Width: 16, Height: 12, SceneName: tt.sceneName, VFov: 50})

			if tt.expectError {
				if err == nil {
					t.Errorf("expected an error for scene %q, got none", tt.sceneName)
				}
				if sc != nil {
					t.Errorf("expected nil scene for invalid scene %q", tt.sceneName)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error for scene %q: %v", tt.sceneName, err)
			}
			if sc.Camera.PixelWidth() != 16 || sc.Camera.PixelHeight() != 12 {
				t.Errorf("camera resolution = %dx%d, want 16x12", sc.Camera.PixelWidth(), sc.Camera.PixelHeight())
			}
		})
	}
}

func TestRunRejectsNonPositiveDimensions(t *testing.T) {
	if err := run(config{Width: 0, Height: 12, SceneName: "default"}); err == nil {
		t.Error("expected an error for zero width")
	}
}

func TestBuildSceneFromFile(t *testing.T) {
	yaml := `
camera:
  look_from: {x: 0, y: 1, z: 5}
  look_at: {x: 0, y: 0, z: 0}
  up: {x: 0, y: 1, z: 0}
  vfov: 40
materials:
  - name: ground
    type: diffuse
    albedo: {x: 0.5, y: 0.5, z: 0.5}
spheres:
  - center: {x: 0, y: -1000, z: 0}
    radius: 1000
    material: ground
lights:
  point:
    - point: {x: 5, y: 5, z: 5}
      color: {x: 50, y: 50, z: 50}
`
	dir := t.TempDir()
	path := dir + "/scene.yaml"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	sc, err := buildScene(config{Width: 8, Height: 6, SceneFile: path})
	if err != nil {
		t.Fatalf("buildScene() error: %v", err)
	}
	if sc.Camera.PixelWidth() != 8 || sc.Camera.PixelHeight() != 6 {
		t.Errorf("camera resolution = %dx%d, want 8x6", sc.Camera.PixelWidth(), sc.Camera.PixelHeight())
	}
}
