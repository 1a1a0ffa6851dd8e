// flapterm is a terminal flappy game with two renditions of the same
// mechanic: a classic cell-grid field and a higher-resolution pixel
// canvas with per-player score attribution.
//
// Usage:
//
//	flapterm list              - List available games
//	flapterm play <game>       - Play a game
//	flapterm menu              - Start menu to pick games interactively
//	flapterm serve             - Start SSH server for remote play
//	flapterm scores <game>     - Show high scores for a game
//	flapterm stats [game]      - Show aggregate play statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flapterm/scores.db)
//	--no-sound      - Disable sound effects
//	--volume <v>    - Sound effect volume from 0.0 to 1.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flapterm/internal/audio"

	// Import games to register them
	_ "flapterm/internal/games/flappy"
	_ "flapterm/internal/games/pixel"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagNoSound bool
	flagVolume  float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapterm",
	Short: "Flappy in your terminal",
	Long: `flapterm is a terminal game about keeping a falling pilot in the
air: tap to surge upward, slip through the gaps, and score a point for
every obstacle pair you pass.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View aggregate play statistics

Examples:
  flapterm list
  flapterm play flappy
  flapterm play pixel --name ada
  flapterm menu
  flapterm serve --ssh :2222
  flapterm scores pixel`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapterm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.6, "Sound effect volume (0.0-1.0)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}

// setupSound opens the audio device unless muted. Returns nil when
// audio is unavailable; the game runs silently in that case.
func setupSound() *audio.SoundManager {
	if flagNoSound {
		return nil
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", err)
		return nil
	}
	sound.SetVolume(flagVolume)
	return sound
}
