package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ndmitriev/pixelpole/internal/env"
	"github.com/ndmitriev/pixelpole/internal/physics"
	"github.com/ndmitriev/pixelpole/internal/storage"
)

var (
	flagRolloutEpisodes int
	flagRolloutPolicy   string
	flagRolloutMaxSteps int
	flagRolloutNoSave   bool
)

var rolloutCmd = &cobra.Command{
	Use:   "rollout",
	Short: "Run headless episodes under a fixed policy",
	Long: `Run a batch of episodes without a display and record the outcomes.

Policies:
  random - Uniform random push each step
  left   - Constant leftward push
  right  - Constant rightward push

The episode core has no step limit of its own; --max-steps is the outer
cutoff that ends episodes which never terminate on their own.

Examples:
  pixelpole rollout --episodes 100
  pixelpole rollout --episodes 10 --policy right --levels 1 --start-level 7
  pixelpole rollout --policy left --max-steps 500 --no-save`,
	Run: runRollout,
}

func init() {
	rolloutCmd.Flags().IntVar(&flagRolloutEpisodes, "episodes", 10, "Number of episodes to run")
	rolloutCmd.Flags().StringVar(&flagRolloutPolicy, "policy", "random", "Action policy: random, left, right")
	rolloutCmd.Flags().IntVar(&flagRolloutMaxSteps, "max-steps", 1000, "Cutoff for episodes that never terminate")
	rolloutCmd.Flags().BoolVar(&flagRolloutNoSave, "no-save", false, "Skip recording outcomes to the database")
}

// validateEpisodes rejects episode counts the summary math cannot handle.
func validateEpisodes(n int) error {
	if n < 1 {
		return fmt.Errorf("--episodes must be at least 1, got %d", n)
	}
	return nil
}

// policyAction returns the next action for the configured policy.
func policyAction(policy string) (physics.Action, error) {
	switch policy {
	case "random":
		return physics.Action(rand.IntN(2)), nil
	case "left":
		return physics.ActionLeft, nil
	case "right":
		return physics.ActionRight, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", policy)
	}
}

func runRollout(cmd *cobra.Command, args []string) {
	logger := log.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := policyAction(flagRolloutPolicy); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := validateEpisodes(flagRolloutEpisodes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if !flagRolloutNoSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open episode database, outcomes will not be recorded", "err", err)
		} else {
			defer store.Close()
		}
	}

	e := env.New(cfg)
	defer e.Close()

	totalSteps := 0
	for ep := 1; ep <= flagRolloutEpisodes; ep++ {
		if _, err := e.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: reset failed: %v\n", err)
			os.Exit(1)
		}
		seed := e.Snapshot().Seed

		steps := 0
		reward := 0.0
		cause := "cutoff"
		for steps < flagRolloutMaxSteps {
			action, _ := policyAction(flagRolloutPolicy)
			res, err := e.Step(action)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: step failed: %v\n", err)
				os.Exit(1)
			}
			steps++
			reward += res.Reward
			if res.Done == 1 {
				cause = e.TerminationCause()
				break
			}
		}
		totalSteps += steps

		logger.Info("episode finished",
			"episode", ep, "seed", seed, "steps", steps, "reward", reward, "cause", cause)

		if store != nil {
			if _, err := store.SaveEpisode(storage.EpisodeRecord{
				Seed:   seed,
				Steps:  steps,
				Reward: reward,
				Cause:  cause,
				Policy: flagRolloutPolicy,
			}); err != nil {
				logger.Warn("could not record episode", "err", err)
			}
		}
	}

	logger.Info("rollout complete",
		"episodes", flagRolloutEpisodes,
		"policy", flagRolloutPolicy,
		"mean_steps", float64(totalSteps)/float64(flagRolloutEpisodes))
}
