package utils

import (
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/voxelsplace/terravox/terra"
)

// BuildGLBDocument lays a MeshData out as a single-primitive glTF document:
// POSITION / NORMAL / COLOR_0 accessors plus a triangle index buffer. The
// material switches to alpha blending when any vertex color is translucent
// (water).
func BuildGLBDocument(mesh *terra.MeshData) *gltf.Document {
	hasAlpha := false
	for _, c := range mesh.Colors {
		if c[3] < 1.0 {
			hasAlpha = true
			break
		}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "terravox -> GLB"

	posAccessor := modeler.WritePosition(doc, mesh.Vertices)
	normalAccessor := modeler.WriteNormal(doc, mesh.Normals)
	colorAccessor := modeler.WriteColor(doc, mesh.Colors)
	indicesAccessor := modeler.WriteIndices(doc, mesh.Indices)

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
			gltf.NORMAL:   uint32(normalAccessor),
			gltf.COLOR_0:  uint32(colorAccessor),
		},
		Indices: gltf.Index(uint32(indicesAccessor)),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float32{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	material := &gltf.Material{PBRMetallicRoughness: pbr}
	if hasAlpha {
		material.AlphaMode = gltf.AlphaBlend
	} else {
		material.AlphaMode = gltf.AlphaOpaque
	}
	doc.Materials = []*gltf.Material{material}
	prim.Material = gltf.Index(0)

	meshGltf := &gltf.Mesh{Name: "TerrainMesh", Primitives: []*gltf.Primitive{prim}}
	doc.Meshes = []*gltf.Mesh{meshGltf}
	node := &gltf.Node{Mesh: gltf.Index(0)}
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))
	return doc
}

// RunWorld2GLB loads a TVOX snapshot, meshes it, and writes a binary glTF.
func RunWorld2GLB(inPath, outPath string) error {
	w, err := terra.LoadWorldFile(inPath)
	if err != nil {
		return err
	}
	mesh := terra.GenerateMesh(w)
	return gltf.SaveBinary(BuildGLBDocument(mesh), outPath)
}
