package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"exrconf/internal/banner"
	"exrconf/internal/cli"
	"exrconf/internal/config"
	"exrconf/internal/experiment"
	"exrconf/internal/export"
	"exrconf/internal/logging"
	"exrconf/internal/stats"
	"exrconf/internal/storage"
	"exrconf/internal/tui/styles"
	"exrconf/internal/writer"
)

var (
	cfgFile  string
	logLevel string

	// Output
	rootDir      string
	mkdir        bool
	manifestPath string
	jobsCSVPath  string
	noHistory    bool
	historyPath  string

	vp = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "exrconf",
	Short: "exrconf - repair simulator config generator",
	Long: `
exrconf writes the input files of the erasure-coding repair simulator:

  addresses.txt      node endpoints, one per line, index = node id
  algorithms.txt     one descriptor line per (repetition, geometry, algorithm)
  config.txt         master runtime configuration
  config_format.txt  the master configuration template

Settings come from flags, EXRCONF_* environment variables and an optional
YAML/TOML/JSON config file (default $HOME/.exrconf.yaml).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runGenerate,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the simulator config files (default command)",
	RunE:  runGenerate,
}

func Execute() {
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), banner.GetString())
		cmd.Usage()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd, formatCmd, previewCmd, historyCmd)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.exrconf.yaml)")
	pf.StringVar(&logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR (default $"+logging.EnvLevel+" or WARN)")

	pf.StringSlice("algs", nil, "Algorithm codes or names, in output order (e.g. b,e,v)")
	pf.StringSlice("geometry", nil, "Erasure geometry n:k, repeatable")
	pf.Int("times", 0, "Repetitions of the whole job list")
	pf.Int("run-id", 0, "Run id written on every descriptor line")
	pf.Int("min-bw", 0, "Minimum bandwidth for b, j and fallback descriptors")
	pf.Bool("even", false, "Even distribution mode for ExploitRepair (b)")

	bind(pf.Lookup("algs"), config.KeyAlgorithms)
	bind(pf.Lookup("geometry"), config.KeyGeometries)
	bind(pf.Lookup("times"), config.KeyRepetitions)
	bind(pf.Lookup("run-id"), config.KeyRunID)
	bind(pf.Lookup("min-bw"), config.KeyMinBandwidth)
	bind(pf.Lookup("even"), config.KeyEvenDistribute)

	pf.StringVar(&rootDir, "root", ".", "Directory the config paths are relative to")
	pf.BoolVar(&mkdir, "mkdir", false, "Create the config directory before writing")
	pf.StringVar(&manifestPath, "manifest", "", "Write a JSON report of the run to this file")
	pf.StringVar(&jobsCSVPath, "jobs-csv", "", "Write the job list as CSV to this file")
	pf.BoolVar(&noHistory, "no-history", false, "Do not record the run in the history store")
	pf.StringVar(&historyPath, "history", "", "History database (default is $HOME/.exrconf/history.db)")
}

func bind(flag *pflag.Flag, key string) {
	if err := vp.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	logging.Configure(logLevel)
	return initConfig()
}

func initConfig() error {
	if cfgFile != "" {
		vp.SetConfigFile(cfgFile)
		if err := vp.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		slog.Debug("config loaded", "file", vp.ConfigFileUsed())
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	vp.AddConfigPath(home)
	vp.SetConfigType("yaml")
	vp.SetConfigName(".exrconf")

	err = vp.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		slog.Debug("config loaded", "file", vp.ConfigFileUsed())
	}
	return nil
}

func targetFs() afero.Fs {
	fs := afero.NewOsFs()
	if rootDir == "" || rootDir == "." {
		return fs
	}
	return afero.NewBasePathFs(fs, rootDir)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	def, err := config.Load(vp)
	if err != nil {
		return err
	}

	fs := targetFs()
	if mkdir && def.Paths.ConfigDir != "" {
		if err := fs.MkdirAll(def.Paths.ConfigDir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	cli.PrintHeader(out, rootDir, def)

	rec := stats.NewRecorder()
	report, err := writer.Generate(fs, def, rec)
	if err != nil {
		return err
	}
	summary := rec.Summary()
	cli.PrintSummary(out, report, summary)

	local := afero.NewOsFs()
	if manifestPath != "" {
		m := export.Manifest{Definition: def, Report: report, Stats: summary}
		if err := export.JSON(local, m, manifestPath); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}
	if jobsCSVPath != "" {
		if err := export.JobsCSV(local, def, jobsCSVPath); err != nil {
			return fmt.Errorf("write jobs csv: %w", err)
		}
	}

	if !noHistory {
		recordHistory(def, report, summary)
	}

	fmt.Fprintln(out, styles.Success.Render("✓ done"))
	return nil
}

// recordHistory never fails the run; the files are already written.
func recordHistory(def experiment.Definition, report writer.Report, summary stats.Summary) {
	store, err := openHistory()
	if err != nil {
		slog.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()

	item, err := storage.NewHistoryItem(rootDir, def, report, summary)
	if err == nil {
		err = store.Save(item)
	}
	if err != nil {
		slog.Warn("could not record run", "error", err)
		return
	}
	slog.Debug("run recorded", "id", item.ID, "db", store.Path())
}

func openHistory() (*storage.Store, error) {
	path := historyPath
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return storage.NewStore(path)
}
