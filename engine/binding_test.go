package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/rowan3d/rowan/backend/backendtest"
	"github.com/rowan3d/rowan/math"
)

func TestNewAttribute_InvalidKind(t *testing.T) {
	tests := []Kind{KindInt, KindMat4, Kind(42)}

	for _, k := range tests {
		if _, err := NewAttribute(k, []float32{1, 2, 3}); !errors.Is(err, ErrInvalidKind) {
			t.Errorf("NewAttribute(%v): expected ErrInvalidKind (got %v)", k, err)
		}
	}
}

func TestNewAttribute_LengthMismatch(t *testing.T) {
	if _, err := NewAttribute(KindVec3, []float32{1, 2, 3, 4}); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("4 floats as vec3: expected ErrKindMismatch (got %v)", err)
	}
}

func TestAttribute_UploadBeforeLocate(t *testing.T) {
	api := backendtest.New()

	a, err := NewAttribute(KindVec3, []float32{0, 0, 0})
	if err != nil {
		t.Fatalf("NewAttribute failed: %v", err)
	}

	if err := a.Upload(api); !errors.Is(err, ErrNotLocated) {
		t.Errorf("upload before locate: expected ErrNotLocated (got %v)", err)
	}
}

func TestAttribute_Locate_VariableNotFound(t *testing.T) {
	api := backendtest.New()
	p := api.NewProgram(nil, []string{"vertexPosition"})

	a, err := NewAttribute(KindVec3, []float32{0, 0, 0})
	if err != nil {
		t.Fatalf("NewAttribute failed: %v", err)
	}

	err = a.Locate(api, p, "vertexNormal")
	if !errors.Is(err, ErrVariableNotFound) {
		t.Fatalf("expected ErrVariableNotFound (got %v)", err)
	}

	// the variable name and program identity must appear in the error
	if !strings.Contains(err.Error(), "vertexNormal") || !strings.Contains(err.Error(), "1") {
		t.Errorf("error lacks variable name or program id: %v", err)
	}

	if a.Located() {
		t.Errorf("failed locate left the attribute located")
	}
}

func TestAttribute_Upload(t *testing.T) {
	api := backendtest.New()
	p := api.NewProgram(nil, []string{"vertexPosition"})

	a, err := NewAttribute(KindVec3, []float32{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewAttribute failed: %v", err)
	}
	if a.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", a.Count())
	}

	if err := a.Locate(api, p, "vertexPosition"); err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if err := a.Upload(api); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	pointers := api.CallsOf("AttributePointer")
	if len(pointers) != 1 {
		t.Fatalf("expected 1 AttributePointer call, got %d", len(pointers))
	}
	if pointers[0].Value != 3 {
		t.Errorf("vec3 attribute pointer components = %v, want 3", pointers[0].Value)
	}
}

func TestNewUniform_InvalidKind(t *testing.T) {
	if _, err := NewUniform(Kind(99), 1); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind (got %v)", err)
	}
}

func TestUniform_Set_KindMismatch(t *testing.T) {
	tests := []struct {
		Kind  Kind
		Value interface{}
	}{
		{KindInt, 1.5},
		{KindBool, 1},
		{KindFloat, "one"},
		{KindVec3, [3]float32{1, 2, 3}},
		{KindMat4, math.Vector{}},
	}

	for _, c := range tests {
		if _, err := NewUniform(c.Kind, c.Value); !errors.Is(err, ErrKindMismatch) {
			t.Errorf("NewUniform(%v, %T): expected ErrKindMismatch (got %v)", c.Kind, c.Value, err)
		}
	}
}

func TestUniform_UploadBeforeLocate(t *testing.T) {
	api := backendtest.New()

	u, err := NewUniform(KindFloat, 1.0)
	if err != nil {
		t.Fatalf("NewUniform failed: %v", err)
	}

	if err := u.Upload(api); !errors.Is(err, ErrNotLocated) {
		t.Errorf("upload before locate: expected ErrNotLocated (got %v)", err)
	}
}

func TestUniform_Locate_VariableNotFound(t *testing.T) {
	api := backendtest.New()
	p := api.NewProgram([]string{"modelMatrix"}, nil)

	u, err := NewUniform(KindMat4, math.Identity())
	if err != nil {
		t.Fatalf("NewUniform failed: %v", err)
	}

	err = u.Locate(api, p, "bonesMatrix")
	if !errors.Is(err, ErrVariableNotFound) {
		t.Fatalf("expected ErrVariableNotFound (got %v)", err)
	}
	if !strings.Contains(err.Error(), "bonesMatrix") {
		t.Errorf("error lacks the variable name: %v", err)
	}
}

func TestUniform_UploadDispatch(t *testing.T) {
	tests := []struct {
		Kind     Kind
		Value    interface{}
		Op       string
		Expected interface{}
	}{
		{KindInt, 7, "UniformInt", int32(7)},
		{KindBool, true, "UniformInt", int32(1)},
		{KindBool, false, "UniformInt", int32(0)},
		{KindFloat, 1.5, "UniformFloat", float32(1.5)},
		{KindVec2, math.Vector{1, 2, 0, 0}, "UniformVec2", [2]float32{1, 2}},
		{KindVec3, math.Vector{1, 2, 3, 0}, "UniformVec3", [3]float32{1, 2, 3}},
		{KindVec4, math.Vector{1, 2, 3, 4}, "UniformVec4", [4]float32{1, 2, 3, 4}},
		{KindMat4, math.Translation(1, 2, 3), "UniformMat4", math.Translation(1, 2, 3).Float32()},
	}

	for _, c := range tests {
		api := backendtest.New()
		p := api.NewProgram([]string{"v"}, nil)

		u, err := NewUniform(c.Kind, c.Value)
		if err != nil {
			t.Errorf("NewUniform(%v) failed: %v", c.Kind, err)
			continue
		}
		if err := u.Locate(api, p, "v"); err != nil {
			t.Errorf("Locate failed: %v", err)
			continue
		}
		if err := u.Upload(api); err != nil {
			t.Errorf("Upload failed: %v", err)
			continue
		}

		calls := api.CallsOf(c.Op)
		if len(calls) != 1 {
			t.Errorf("kind %v: expected 1 %v call, got %d", c.Kind, c.Op, len(calls))
			continue
		}
		if calls[0].Value != c.Expected {
			t.Errorf("kind %v: uploaded %v, want %v", c.Kind, calls[0].Value, c.Expected)
		}
	}
}

func TestUniform_Reassign(t *testing.T) {
	u, err := NewUniform(KindFloat, 1.0)
	if err != nil {
		t.Fatalf("NewUniform failed: %v", err)
	}

	if err := u.Set(2.5); err != nil {
		t.Errorf("reassigning a matching value failed: %v", err)
	}
	if err := u.Set(true); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("reassigning a mismatched value: expected ErrKindMismatch (got %v)", err)
	}
	if u.Value() != 2.5 {
		t.Errorf("failed Set overwrote the value (got %v)", u.Value())
	}
}
