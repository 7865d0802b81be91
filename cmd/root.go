package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/backdrop/internal/config"
	"github.com/iburimskiy/backdrop/internal/game"
	"github.com/iburimskiy/backdrop/internal/scene"
)

var (
	configPath string
	noDialog   bool
	flagValues config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "backdrop",
	Short: "Animated decorative backdrop of particles, shapes, grids, ribbons and waves",
	Run:   runBackdrop,
}

func init() {
	runtime.LockOSThread()

	defaults := config.Defaults()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "settings file (default ~/.config/backdrop/settings.json)")
	flags.StringVarP(&flagValues.Variant, "variant", "v", defaults.Variant,
		"effect set: "+strings.Join(scene.Variants(), ", "))
	flags.IntVar(&flagValues.Width, "width", defaults.Width, "initial window width")
	flags.IntVar(&flagValues.Height, "height", defaults.Height, "initial window height")
	flags.BoolVar(&flagValues.Fullscreen, "fullscreen", defaults.Fullscreen, "start fullscreen")
	flags.IntVar(&flagValues.TPS, "tps", defaults.TPS, "update ticks per second")
	flags.Uint64Var(&flagValues.Seed, "seed", 0, "fix the random seed (0 picks one)")
	rootCmd.Flags().BoolVar(&noDialog, "no-dialog", false, "report startup errors on stderr only")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings reads the settings file and applies explicitly set flags on top.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	var (
		settings *config.Settings
		err      error
	)
	if configPath != "" {
		settings, err = config.LoadSettingsFrom(configPath)
	} else {
		settings, err = config.LoadSettings()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		settings.Variant = flagValues.Variant
	}
	if flags.Changed("width") {
		settings.Width = flagValues.Width
	}
	if flags.Changed("height") {
		settings.Height = flagValues.Height
	}
	if flags.Changed("fullscreen") {
		settings.Fullscreen = flagValues.Fullscreen
	}
	if flags.Changed("tps") {
		settings.TPS = flagValues.TPS
	}
	if flags.Changed("seed") {
		settings.Seed = flagValues.Seed
	}
	if settings.Width <= 0 || settings.Height <= 0 {
		return nil, errors.Errorf("invalid window size %dx%d", settings.Width, settings.Height)
	}
	if settings.TPS <= 0 {
		return nil, errors.Errorf("invalid tps %d", settings.TPS)
	}
	return settings, nil
}

func runBackdrop(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		fatal(errors.Wrap(err, "load settings"))
	}

	effects, ok := scene.Lookup(settings.Variant)
	if !ok {
		fatal(errors.Errorf("unknown variant %q (known: %s)", settings.Variant, strings.Join(scene.Variants(), ", ")))
	}
	log.Printf("Starting %s backdrop at %dx%d", effects.Name, settings.Width, settings.Height)

	if err := game.Run(*settings, effects); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	if !noDialog {
		if dlgErr := zenity.Error(fmt.Sprintf("%v", err), zenity.Title("Backdrop"), zenity.ErrorIcon); dlgErr != nil {
			log.Printf("Failed to show error dialog: %v", dlgErr)
		}
	}
	log.Fatal("Backdrop failed: ", err)
}
