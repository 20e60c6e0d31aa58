package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var (
	jsonOutput bool
	noColor    bool
	sortFlag   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "drivescope",
	Short:   "Report mounted drives with gradient usage bars",
	Long: `drivescope lists local, network, and cloud-backed volumes with byte and
inode usage and a terminal-responsive, color-gradient usage bar per drive.

Pseudo filesystems (proc, sysfs, tmpfs, ...) and transient AppImage mounts
are filtered out. Cloud backends are discovered through the per-user GVFS
directory in addition to the mount table.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of the colored report")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&sortFlag, "sort", "none", "Sort order: none (discovery order), size, usage, mount, name")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	initLogger(verbose)

	order, err := parseSortOrder(sortFlag)
	if err != nil {
		return err
	}

	initColors(noColor || jsonOutput)
	lay := planLayout(terminalWidth())

	c := &collector{
		mounts:  gopsutilSource{},
		stats:   gopsutilSource{},
		ids:     newIDResolver(),
		health:  newSmartctlChecker(),
		gvfsDir: gvfsDir(),
		layout:  lay,
		colors:  colorsOn,
	}

	records, err := c.Collect()
	if err != nil {
		return err
	}
	sortRecords(records, order)

	if jsonOutput {
		return printJSON(records)
	}
	printReport(records, lay)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
