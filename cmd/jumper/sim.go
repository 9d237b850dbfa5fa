package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var (
	flagSimRuns  int
	flagSimTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headless and audit reachability",
	Long: `Play runs without a terminal. The autopilot jumps with the forward
simulator, and every generated platform is checked for reachability from
its predecessor. The command fails if any platform was unreachable.

Examples:
  jumper sim
  jumper sim --runs 20 --ticks 30000 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of runs")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 20000, "Tick limit per run")
}

// simResult summarizes one headless run.
type simResult struct {
	seed        int64
	ticks       int
	metres      int
	difficulty  float64
	checked     int
	unreachable int
	fell        bool
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "jumper-sim")
	if err != nil {
		return err
	}

	cfg, err := jumper.LoadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var unreachable int
	fmt.Printf("  %-20s  %-7s  %-7s  %-6s  %-8s  %s\n", "Seed", "Ticks", "Metres", "Level", "Checked", "Unreachable")
	for i := 0; i < flagSimRuns; i++ {
		res := simulate(&cfg, seed+int64(i), flagSimTicks)
		unreachable += res.unreachable

		outcome := ""
		if res.fell {
			outcome = "  (fell)"
		}
		fmt.Printf("  %-20d  %-7d  %-7d  %-6.2f  %-8d  %d%s\n",
			res.seed, res.ticks, res.metres, res.difficulty, res.checked, res.unreachable, outcome)
		logger.Debug("run finished", "seed", res.seed, "ticks", res.ticks, "fell", res.fell)
	}

	if unreachable > 0 {
		return fmt.Errorf("%d unreachable platforms", unreachable)
	}
	return nil
}

func simulate(cfg *config.JumperConfig, seed int64, limit int) simResult {
	env := jumper.NewSeededEnv(seed, cfg.Viewport.Width, cfg.Viewport.Height)
	world := jumper.NewWorld(cfg, env, nil)
	pilot := jumper.NewAutopilot(cfg)
	audit := jumper.NewAuditor(cfg)

	res := simResult{seed: seed}
	for world.Ticks() < limit && !world.GameOver() {
		press, held := pilot.Decide(world)
		if press {
			_ = world.RequestJump()
		}
		world.Tick(held)
		audit.Observe(world.Stage())
		res.difficulty = max(res.difficulty, world.Difficulty())
	}

	res.ticks = world.Ticks()
	res.metres = world.Metres()
	res.fell = world.GameOver()
	res.checked = audit.Checked
	res.unreachable = audit.Unreachable
	return res
}
