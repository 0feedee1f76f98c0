package scenefile

import "testing"

const sampleYAML = `
camera:
  look_from: {x: 0, y: 1, z: 5}
  look_at: {x: 0, y: 0, z: 0}
  up: {x: 0, y: 1, z: 0}
  vfov: 40

materials:
  - name: ground
    type: diffuse
    albedo: {x: 0.5, y: 0.5, z: 0.5}
  - name: glass
    type: dielectric
    ior: 1.5
  - name: red_diffuse
    type: diffuse
    albedo: {x: 0.8, y: 0.1, z: 0.1}
  - name: coated_red
    type: coated
    coat: glass
    base: red_diffuse

spheres:
  - center: {x: 0, y: -1000, z: 0}
    radius: 1000
    material: ground
  - center: {x: 0, y: 1, z: 0}
    radius: 1
    material: coated_red

lights:
  point:
    - point: {x: 5, y: 5, z: 5}
      color: {x: 50, y: 50, z: 50}
  sphere:
    - center: {x: 0, y: 5, z: -3}
      radius: 1
      radiance: {x: 10, y: 10, z: 10}
`

func TestLoadBuildsScene(t *testing.T) {
	sc, err := Load([]byte(sampleYAML), 32, 24)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if sc.Camera.PixelWidth() != 32 || sc.Camera.PixelHeight() != 24 {
		t.Errorf("camera resolution = %dx%d, want 32x24", sc.Camera.PixelWidth(), sc.Camera.PixelHeight())
	}
	if len(sc.Lights) != 2 {
		t.Errorf("len(Lights) = %d, want 2", len(sc.Lights))
	}
}

func TestLoadUnsupportedMaterialType(t *testing.T) {
	bad := `
materials:
  - name: x
    type: plasma
spheres:
  - center: {x: 0, y: 0, z: 0}
    radius: 1
    material: x
camera:
  look_from: {x: 0, y: 0, z: 5}
  look_at: {x: 0, y: 0, z: 0}
  up: {x: 0, y: 1, z: 0}
  vfov: 40
`
	if _, err := Load([]byte(bad), 10, 10); err == nil {
		t.Error("expected an error for an unsupported material type")
	}
}

func TestLoadUnknownMaterialReference(t *testing.T) {
	bad := `
spheres:
  - center: {x: 0, y: 0, z: 0}
    radius: 1
    material: does_not_exist
camera:
  look_from: {x: 0, y: 0, z: 5}
  look_at: {x: 0, y: 0, z: 0}
  up: {x: 0, y: 1, z: 0}
  vfov: 40
`
	if _, err := Load([]byte(bad), 10, 10); err == nil {
		t.Error("expected an error for an unknown material reference")
	}
}
