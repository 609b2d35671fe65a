package engine

import (
	"errors"
	"testing"

	"github.com/rowan3d/rowan/backend/backendtest"
	"github.com/rowan3d/rowan/math"
)

// basicProgram registers a fake program declaring everything the
// basic material and the test geometries use.
func basicProgram(api *backendtest.API) {
	api.NewProgram(
		[]string{"modelMatrix", "viewMatrix", "projectionMatrix", "baseColor"},
		[]string{"vertexPosition", "vertexColor"},
	)
}

func testScene(t *testing.T, api *backendtest.API) (*Scene, *Mesh) {
	t.Helper()
	basicProgram(api)

	geometry, err := NewBoxGeometry(1)
	if err != nil {
		t.Fatalf("NewBoxGeometry failed: %v", err)
	}

	scene := NewScene()
	mesh := NewMesh(geometry, NewBasicMaterial())
	if err := scene.Add(mesh); err != nil {
		t.Fatalf("scene.Add failed: %v", err)
	}

	return scene, mesh
}

func TestRenderer_Render(t *testing.T) {
	api := backendtest.New()
	scene, mesh := testScene(t, api)
	mesh.Translate(0, 0, -5, true)

	camera := NewCamera(60, 1, 0.1, 100)

	renderer := NewRenderer(api)
	if err := renderer.Render(scene, camera); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if api.ClearCalls != 1 {
		t.Errorf("Clear calls = %d, want 1", api.ClearCalls)
	}
	if api.DrawCalls != 1 {
		t.Errorf("draw calls = %d, want 1", api.DrawCalls)
	}
	if api.DrawnVerts != 36 {
		t.Errorf("drawn vertices = %d, want 36", api.DrawnVerts)
	}

	// model, view, projection in declaration order
	mats := api.CallsOf("UniformMat4")
	if len(mats) != 3 {
		t.Fatalf("UniformMat4 calls = %d, want 3", len(mats))
	}
	if mats[0].Value != mesh.WorldMatrix().Float32() {
		t.Errorf("modelMatrix upload mismatch")
	}

	view, err := camera.ViewMatrix()
	if err != nil {
		t.Fatalf("ViewMatrix failed: %v", err)
	}
	if mats[1].Value != view.Float32() {
		t.Errorf("viewMatrix upload mismatch")
	}
	if mats[2].Value != camera.ProjectionMatrix().Float32() {
		t.Errorf("projectionMatrix upload mismatch")
	}

	stats := renderer.Stats()
	if stats.Frames != 1 || stats.Meshes != 1 {
		t.Errorf("Stats() = %+v, want 1 frame with 1 mesh", stats)
	}
}

func TestRenderer_AttributesUploadedOnce(t *testing.T) {
	api := backendtest.New()
	scene, _ := testScene(t, api)
	camera := NewCamera(60, 1, 0.1, 100)
	renderer := NewRenderer(api)

	for i := 0; i < 3; i++ {
		if err := renderer.Render(scene, camera); err != nil {
			t.Fatalf("Render #%d failed: %v", i, err)
		}
	}

	// two channels, each buffered exactly once across all frames
	if uploads := api.CallsOf("BufferData"); len(uploads) != 2 {
		t.Errorf("BufferData calls = %d, want 2", len(uploads))
	}

	// uniforms re-uploaded every frame
	if mats := api.CallsOf("UniformMat4"); len(mats) != 9 {
		t.Errorf("UniformMat4 calls = %d, want 9", len(mats))
	}
}

func TestRenderer_SkipsInvisible(t *testing.T) {
	api := backendtest.New()
	scene, mesh := testScene(t, api)
	mesh.SetVisible(false)

	renderer := NewRenderer(api)
	if err := renderer.Render(scene, NewCamera(60, 1, 0.1, 100)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if api.DrawCalls != 0 {
		t.Errorf("invisible mesh was drawn")
	}
}

func TestRenderer_SingularCamera(t *testing.T) {
	api := backendtest.New()
	scene, _ := testScene(t, api)

	camera := NewCamera(60, 1, 0.1, 100)
	camera.SetTransform(math.Scale(0, 0, 0))

	renderer := NewRenderer(api)
	if err := renderer.Render(scene, camera); !errors.Is(err, math.ErrSingular) {
		t.Errorf("singular camera: expected ErrSingular (got %v)", err)
	}
	if api.DrawCalls != 0 {
		t.Errorf("frame was drawn despite the failed view matrix")
	}
}

func TestRenderer_MissingShaderVariable(t *testing.T) {
	api := backendtest.New()
	// program lacks vertexColor
	api.NewProgram(
		[]string{"modelMatrix", "viewMatrix", "projectionMatrix", "baseColor"},
		[]string{"vertexPosition"},
	)

	geometry, err := NewBoxGeometry(1)
	if err != nil {
		t.Fatalf("NewBoxGeometry failed: %v", err)
	}

	scene := NewScene()
	if err := scene.Add(NewMesh(geometry, NewBasicMaterial())); err != nil {
		t.Fatalf("scene.Add failed: %v", err)
	}

	renderer := NewRenderer(api)
	if err := renderer.Render(scene, NewCamera(60, 1, 0.1, 100)); !errors.Is(err, ErrVariableNotFound) {
		t.Errorf("missing attribute variable: expected ErrVariableNotFound (got %v)", err)
	}
}

func TestMesh_RenderUploadsMaterialUniforms(t *testing.T) {
	api := backendtest.New()
	scene, mesh := testScene(t, api)

	if err := mesh.Material().SetUniform("baseColor", math.Vector{1, 0.5, 0.25, 0}); err != nil {
		t.Fatalf("SetUniform failed: %v", err)
	}

	renderer := NewRenderer(api)
	if err := renderer.Render(scene, NewCamera(60, 1, 0.1, 100)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	vecs := api.CallsOf("UniformVec3")
	if len(vecs) != 1 {
		t.Fatalf("UniformVec3 calls = %d, want 1", len(vecs))
	}
	if vecs[0].Value != [3]float32{1, 0.5, 0.25} {
		t.Errorf("baseColor upload = %v", vecs[0].Value)
	}
}

func TestMaterial_SetUniform_Unknown(t *testing.T) {
	m := NewBasicMaterial()

	if err := m.SetUniform("fogDensity", 1.0); err == nil {
		t.Errorf("setting an undeclared uniform must fail")
	}
}
