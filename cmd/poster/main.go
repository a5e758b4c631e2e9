package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kaleido/kaleido"
)

var (
	outPath    string
	configPath string
	width      int
	height     int
	count      int
	symmetry   int
	seed       int64
	phaseMs    float64
	ageTicks   int
)

var rootCmd = &cobra.Command{
	Use:   "poster",
	Short: "Render a seeded kaleido composition to a PNG, headlessly",
	Long: `poster builds a kaleido session without a window, spawns a random
composition from a seed, and renders it at print resolution.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "poster.png", "output PNG path")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "optional kaleido.yaml to base the session on")
	rootCmd.Flags().IntVar(&width, "width", 2048, "poster width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 1536, "poster height in pixels")
	rootCmd.Flags().IntVarP(&count, "count", "n", 24, "number of spawned shapes")
	rootCmd.Flags().IntVarP(&symmetry, "symmetry", "s", 0, "symmetry order (0 = config default)")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed for the composition")
	rootCmd.Flags().Float64Var(&phaseMs, "phase", 0, "animation phase in milliseconds (spin/pulse)")
	rootCmd.Flags().IntVar(&ageTicks, "age", 40, "simulation ticks to run after spawning, fades older shapes")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := kaleido.DefaultConfig()
	if configPath != "" {
		loaded, err := kaleido.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	cfg.Seed = seed

	session := kaleido.NewSession(cfg)
	session.AutoSpawn = false
	if symmetry > 0 {
		session.SetSymmetry(symmetry)
	}

	for i := 0; i < count; i++ {
		// Walk the palette so the composition isn't single-hued.
		if i > 0 && i%6 == 0 {
			session.CyclePalette()
		}
		session.SpawnRandom()
		// Interleave aging between spawns so opacities spread out.
		for t := 0; t < ageTicks/count+1; t++ {
			session.Advance(kaleido.FrameUnit)
		}
	}

	img := kaleido.RenderPoster(session.Elements, session.Symmetry, cfg, width, height, phaseMs)
	if err := kaleido.WritePNG(outPath, img); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s (%dx%d, %d shapes, %d-fold)\n", outPath, width, height, len(session.Elements), session.Symmetry)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
