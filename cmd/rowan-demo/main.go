// rowan-demo renders a small spinning scene, optionally serving the
// HTTP inspector and exporting the scene as glTF.
package main

import (
	"flag"
	"log"
	"sync/atomic"

	"github.com/rowan3d/rowan/app"
	"github.com/rowan3d/rowan/config"
	"github.com/rowan3d/rowan/engine"
	"github.com/rowan3d/rowan/export"
	"github.com/rowan3d/rowan/inspect"
	"github.com/rowan3d/rowan/math"
)

var (
	flagConfig  = flag.String("config", "", "path to a TOML config file")
	flagInspect = flag.String("inspect", "", "scene inspector listen address, overrides the config")
	flagExport  = flag.String("export", "", "write the scene as glTF to this path and exit")
)

func buildScene() (*engine.Scene, []engine.Object, error) {
	scene := engine.NewScene()

	floor, err := engine.NewPlaneGeometry(12, 12)
	if err != nil {
		return nil, nil, err
	}
	floorMesh := engine.NewMesh(floor, engine.NewBasicMaterial())
	floorMesh.SetName("floor")
	floorMesh.RotateX(-math.Pi/2, true)
	floorMesh.Translate(0, -1.5, 0, false)
	if err := scene.Add(floorMesh); err != nil {
		return nil, nil, err
	}

	pivot := engine.NewGroup()
	pivot.SetName("pivot")
	if err := scene.Add(pivot); err != nil {
		return nil, nil, err
	}

	var spinning []engine.Object

	box, err := engine.NewBoxGeometry(1)
	if err != nil {
		return nil, nil, err
	}
	for i, p := range []math.Vector{
		{-2, 0, 0, 0},
		{2, 0, 0, 0},
	} {
		mesh := engine.NewMesh(box, engine.NewBasicMaterial())
		mesh.SetName("box")
		mesh.SetPosition(p)
		if err := pivot.Add(mesh); err != nil {
			return nil, nil, err
		}
		if i == 0 {
			if err := mesh.Material().SetUniform("baseColor", math.Vector{1, 0.6, 0.6, 0}); err != nil {
				return nil, nil, err
			}
		}
		spinning = append(spinning, mesh)
	}

	sphere, err := engine.NewSphereGeometry(0.8, 24, 16)
	if err != nil {
		return nil, nil, err
	}
	sphereMesh := engine.NewMesh(sphere, engine.NewBasicMaterial())
	sphereMesh.SetName("sphere")
	if err := pivot.Add(sphereMesh); err != nil {
		return nil, nil, err
	}

	spinning = append(spinning, pivot)
	return scene, spinning, nil
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatalf("[demo] %v", err)
	}
	if *flagInspect != "" {
		cfg.Inspect.Addr = *flagInspect
	}

	scene, spinning, err := buildScene()
	if err != nil {
		log.Fatalf("[demo] build scene: %v", err)
	}

	// headless export, no GL context required
	if *flagExport != "" {
		if err := export.Save(*flagExport, scene); err != nil {
			log.Fatalf("[demo] %v", err)
		}
		log.Printf("[demo] scene written to %v", *flagExport)
		return
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("[demo] %v", err)
	}
	defer a.Terminate()

	camera := engine.NewCamera(cfg.Camera.FOV, a.AspectRatio(), cfg.Camera.Near, cfg.Camera.Far)
	if err := scene.Add(camera); err != nil {
		log.Fatalf("[demo] %v", err)
	}
	orbit := app.NewOrbitControl(camera, a.Window())
	orbit.SetTarget(math.Vector{0, 0, 0, 1})

	stats := make(chan engine.Stats, 8)
	var snapshot atomic.Value
	snapshot.Store(inspect.Describe(scene))

	if cfg.Inspect.Addr != "" {
		server := inspect.NewServer(func() inspect.NodeInfo {
			return snapshot.Load().(inspect.NodeInfo)
		}, stats)

		go func() {
			if err := server.ListenAndServe(cfg.Inspect.Addr); err != nil {
				log.Printf("[web] inspector stopped: %v", err)
			}
		}()
	}

	renderer := a.Renderer()
	err = a.Run(func(dt float64) error {
		for _, obj := range spinning {
			obj.RotateY(dt, true)
		}

		if err := renderer.Render(scene, camera); err != nil {
			return err
		}

		snapshot.Store(inspect.Describe(scene))
		select {
		case stats <- renderer.Stats():
		default:
		}

		return nil
	})
	if err != nil {
		log.Fatalf("[demo] %v", err)
	}

	renderer.Dispose(scene)
}
