package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Dallionking/aistudio-primer/internal/config"
	"github.com/Dallionking/aistudio-primer/internal/gemini"
	"github.com/Dallionking/aistudio-primer/internal/tui/styles"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the build version, git commit, build date, and Go runtime details.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(styles.Accent(styles.Logo) + "  " + styles.Value.Render("v"+Version))
		fmt.Println()
		fmt.Println(styles.Label.Render("VERSION") + "   " + styles.Value.Render(Version))
		fmt.Println(styles.Label.Render("COMMIT") + "    " + styles.Value.Render(GitCommit))
		fmt.Println(styles.Label.Render("BUILT") + "     " + styles.Value.Render(BuildDate))
		fmt.Println(styles.Label.Render("GO") + "        " + styles.Value.Render(runtime.Version()))
		fmt.Println(styles.Label.Render("OS/ARCH") + "   " + styles.Value.Render(runtime.GOOS+"/"+runtime.GOARCH))
		cfg, _ := loadConfig()
		fmt.Println(styles.Label.Render("MODELS") + "    " + styles.Value.Render(modelsLine(cfg)))
	},
}

// modelsLine lists the configured fast and advanced model ids, falling
// back to the compiled-in defaults when no config could be loaded.
func modelsLine(cfg *config.Config) string {
	if cfg == nil {
		return gemini.DefaultFastModel + ", " + gemini.DefaultAdvancedModel + " (defaults)"
	}
	fast, advanced := cfg.Models.Fast, cfg.Models.Advanced
	if fast == "" {
		fast = gemini.DefaultFastModel
	}
	if advanced == "" {
		advanced = gemini.DefaultAdvancedModel
	}
	return fast + ", " + advanced
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
