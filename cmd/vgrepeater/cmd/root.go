package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vgrepeater/vgrepeater/internal/vgconfig"
	"github.com/vgrepeater/vgrepeater/internal/vglog"
	"github.com/vgrepeater/vgrepeater/netfile"
	"github.com/vgrepeater/vgrepeater/tree"
	"github.com/vgrepeater/vgrepeater/vanginneken"
)

var (
	verbose    bool
	configPath string
	outDir     string
)

var rootCmd = &cobra.Command{
	Use:   "vgrepeater <technology.json> <net.json>",
	Short: "Insert repeaters into a routed signal tree via Van Ginneken's algorithm",
	Long: `vgrepeater reads a technology file describing wire and buffer electrical
parameters and a net file describing one routed signal tree, runs the
Van Ginneken dynamic program to find the maximal-slack repeater
placement, and writes a net file with the chosen buffers spliced in.`,
	Args: cobra.ExactArgs(2),
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a vgrepeater.yaml config file")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "override the output directory (defaults to the net file's directory)")
}

// Execute runs the root command, exiting the process with status 1 on
// any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := vgconfig.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	log := vglog.New(vglog.ParseLevel(cfg.Log.Level), os.Stdout)

	techPath, netPath := args[0], args[1]

	log.Info("loading technology file %s", techPath)
	wp, bp, err := netfile.LoadTechnology(techPath)
	if err != nil {
		log.Error("failed to load technology file: %v", err)

		return err
	}

	log.Info("loading net file %s", netPath)
	nf, err := netfile.LoadNet(netPath)
	if err != nil {
		log.Error("failed to load net file: %v", err)

		return err
	}

	tr, idmap, err := nf.BuildTree()
	if err != nil {
		if errors.Is(err, tree.ErrMalformedTree) {
			log.Error("malformed tree: %v", err)
		} else {
			log.Error("failed to build tree: %v", err)
		}

		return err
	}

	log.Info("solving (%d nodes)", tr.Len())
	sol, err := vanginneken.Solve(tr, wp, bp, vanginneken.WithLogger(log))
	if err != nil {
		log.Error("solve failed: %v", err)

		return err
	}
	log.Info("optimal RAT: %v, buffers inserted: %d", sol.RAT, len(sol.Placements))

	writePath := netPath
	if outDir != "" {
		writePath = filepath.Join(outDir, filepath.Base(netPath))
	} else if cfg.Output.Dir != "" && cfg.Output.Dir != "." {
		writePath = filepath.Join(cfg.Output.Dir, filepath.Base(netPath))
	}

	if err := netfile.WriteResult(writePath, nf, idmap, sol.Placements); err != nil {
		log.Error("failed to write result: %v", err)

		return err
	}

	fmt.Printf("Optimization complete. Optimal RAT: %v\n", sol.RAT)

	return nil
}

