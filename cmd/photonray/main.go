// Command photonray renders a scene to a PNG file: a thin cobra/pflag CLI
// wrapping scene construction, path tracing and tone mapping.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tomrosen/photonray/internal/camera"
	"github.com/tomrosen/photonray/internal/core"
	"github.com/tomrosen/photonray/internal/integrator"
	"github.com/tomrosen/photonray/internal/renderer"
	"github.com/tomrosen/photonray/internal/rlog"
	"github.com/tomrosen/photonray/internal/scene"
	"github.com/tomrosen/photonray/internal/scenefile"
	"github.com/tomrosen/photonray/internal/tonemap"
)

// sceneNameFlag is a pflag.Value restricting --scene to the built-in scene
// names buildScene actually knows how to construct.
type sceneNameFlag struct {
	value string
}

func (s *sceneNameFlag) String() string { return s.value }

func (s *sceneNameFlag) Set(v string) error {
	switch v {
	case "default", "cornell":
		s.value = v
		return nil
	default:
		return fmt.Errorf("must be one of: default, cornell")
	}
}

func (s *sceneNameFlag) Type() string { return "string" }

var _ pflag.Value = (*sceneNameFlag)(nil)

// config holds every render parameter the root command accepts.
type config struct {
	Width      int
	Height     int
	VFov       float64
	Aperture   float64
	MaxDepth   int
	MinRRDepth int
	SPP        int
	Output     string
	Seed       int64
	SceneName  string
	SceneFile  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "photonray: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config{}
	sceneFlag := &sceneNameFlag{value: "default"}

	cmd := &cobra.Command{
		Use:   "photonray",
		Short: "A Monte Carlo path tracer",
		Long: "photonray renders a built-in demo scene or a YAML scene file to a\n" +
			"tone-mapped, gamma-encoded PNG using unidirectional path tracing\n" +
			"with next-event estimation and multiple importance sampling.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.SceneName = sceneFlag.value
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Width, "width", 0, "output image width in pixels (required)")
	flags.IntVar(&cfg.Height, "height", 0, "output image height in pixels (required)")
	flags.Float64Var(&cfg.VFov, "vfov", 50, "vertical field of view, degrees")
	flags.Float64Var(&cfg.Aperture, "aperture", 0, "lens diameter in world units; 0 = pinhole")
	flags.IntVar(&cfg.MaxDepth, "max-depth", 10, "maximum path length")
	flags.IntVar(&cfg.MinRRDepth, "min-rr-depth", 4, "path depth at which Russian roulette termination begins")
	flags.IntVar(&cfg.SPP, "spp", 100, "samples per pixel")
	flags.StringVarP(&cfg.Output, "output", "o", "render.png", "output file path")
	flags.Int64Var(&cfg.Seed, "seed", 1, "master RNG seed")
	flags.Var(sceneFlag, "scene", "built-in scene name: 'default' or 'cornell'")
	flags.StringVar(&cfg.SceneFile, "scene-file", "", "path to a YAML scene file (overrides --scene)")

	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func run(cfg config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", cfg.Width, cfg.Height)
	}

	sc, err := buildScene(cfg)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	pt := integrator.New(sc, integrator.Config{
		MaxDepth:   cfg.MaxDepth,
		MinRRDepth: cfg.MinRRDepth,
	})

	logger := rlog.NewDefault()
	start := time.Now()

	fb, err := renderer.Render(context.Background(), pt, renderer.Config{
		SamplesPerPixel: cfg.SPP,
		Seed:            cfg.Seed,
	}, logger)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	logger.Printf("render finished in %v", time.Since(start))

	if err := writePNG(cfg.Output, fb); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Printf("wrote %s", cfg.Output)
	return nil
}

func buildScene(cfg config) (*scene.Scene, error) {
	if cfg.SceneFile != "" {
		data, err := os.ReadFile(cfg.SceneFile)
		if err != nil {
			return nil, fmt.Errorf("reading scene file: %w", err)
		}
		return scenefile.Load(data, cfg.Width, cfg.Height)
	}

	camOverride := &camera.Config{
		LookFrom:    core.NewVec3(0, 2, 10),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		PixelWidth:  cfg.Width,
		PixelHeight: cfg.Height,
		VFov:        cfg.VFov,
		Aperture:    cfg.Aperture,
		FocusDist:   8,
	}

	switch cfg.SceneName {
	case "default":
		return scene.NewDefaultScene(cfg.Width, cfg.Height, camOverride), nil
	case "cornell":
		return scene.NewCornellScene(cfg.Width, cfg.Height), nil
	default:
		return nil, fmt.Errorf("unknown scene: %q", cfg.SceneName)
	}
}

func writePNG(path string, fb *renderer.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tonemap.WritePNG(f, fb)
}
