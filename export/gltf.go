// Package export writes a scene as a glTF 2.0 document, mirroring
// the node hierarchy and the mesh attribute channels.
package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/rowan3d/rowan/engine"
	"github.com/rowan3d/rowan/math"
)

// Document builds the glTF document for a scene. Node transforms are
// carried as matrices, mesh geometry goes through accessor writers.
func Document(scene *engine.Scene) (*gltf.Document, error) {
	doc := gltf.NewDocument()

	root, err := addNode(doc, scene)
	if err != nil {
		return nil, err
	}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, root)

	return doc, nil
}

// Encode writes the scene as JSON glTF.
func Encode(w io.Writer, scene *engine.Scene) error {
	doc, err := Document(scene)
	if err != nil {
		return err
	}

	if err := gltf.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(err, "encode gltf")
	}

	return nil
}

// Save writes the scene to a .gltf file.
func Save(path string, scene *engine.Scene) error {
	doc, err := Document(scene)
	if err != nil {
		return err
	}

	if err := gltf.Save(doc, path); err != nil {
		return errors.Wrapf(err, "save gltf %q", path)
	}

	return nil
}

func addNode(doc *gltf.Document, obj engine.Object) (uint32, error) {
	node := &gltf.Node{
		Name:   obj.Name(),
		Matrix: columnMajor(obj.Transform()),
	}

	if mesh, ok := obj.(*engine.Mesh); ok {
		idx, err := addMesh(doc, mesh)
		if err != nil {
			return 0, err
		}
		node.Mesh = gltf.Index(idx)
	}

	index := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, node)

	for _, child := range obj.Children() {
		ci, err := addNode(doc, child)
		if err != nil {
			return 0, err
		}
		node.Children = append(node.Children, ci)
	}

	return index, nil
}

func addMesh(doc *gltf.Document, mesh *engine.Mesh) (uint32, error) {
	geometry := mesh.Geometry()

	positions := geometry.Attribute("vertexPosition")
	if positions == nil {
		return 0, errors.Errorf("export: mesh %q has no vertexPosition channel", mesh.Name())
	}

	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(doc, vec3s(positions.Data())),
	}

	if colors := geometry.Attribute("vertexColor"); colors != nil {
		attributes["COLOR_0"] = modeler.WriteColor(doc, vec3s(colors.Data()))
	}

	index := uint32(len(doc.Meshes))
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: mesh.Name(),
		Primitives: []*gltf.Primitive{{
			Attributes: attributes,
		}},
	})

	return index, nil
}

func vec3s(data []float32) [][3]float32 {
	r := make([][3]float32, len(data)/3)
	for i := range r {
		r[i] = [3]float32{data[i*3], data[i*3+1], data[i*3+2]}
	}

	return r
}

// glTF wants column-major matrices, ours are row-major
func columnMajor(m math.Matrix) [16]float32 {
	return m.Transpose().Float32()
}
