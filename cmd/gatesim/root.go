package main

import (
	"io"
	"os"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/internal/config"
	"github.com/db47h/gatesim/metrics"
	"github.com/db47h/gatesim/netlist"
	"github.com/db47h/gatesim/report"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gatesim [flags] <netlist> [json]",
	Short: "Simulate a logic circuit",
	Long: `Reads a netlist, runs the simulation until no more transitions are pending
and prints every change of a probed gate as "time gate value".

With --format json or yaml and no --output, the report replaces the listing on
stdout.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		log := newLogger(cmd.ErrOrStderr(), cfg)
		if err := run(cfg, args[0], cmd.OutOrStdout(), log); err != nil {
			log.WithError(err).Error("simulation failed")
			return err
		}
		return nil
	},
}

func init() {
	f := rootCmd.Flags()
	f.String("config", "", "YAML configuration file")
	f.String("format", config.FormatText, "report format: text, json, jsonp or yaml")
	f.StringP("output", "o", "", "report output file (default stdout, circuit.jsonp for jsonp)")
	f.Bool("probe-all", false, "probe every gate")
	f.Int("max-steps", 0, "abort after that many simulation steps (0 for no limit)")
	f.String("metrics-file", "", "write Prometheus metrics to this file after the run")
	f.Bool("debug", false, "use debug log level")
}

// loadConfig reads the configuration file if any, then applies command line
// flags on top of it.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("output") {
		cfg.Output, _ = f.GetString("output")
	}
	if f.Changed("probe-all") {
		cfg.ProbeAll, _ = f.GetBool("probe-all")
	}
	if f.Changed("max-steps") {
		cfg.MaxSteps, _ = f.GetInt("max-steps")
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile, _ = f.GetString("metrics-file")
	}
	if debug, _ := f.GetBool("debug"); debug {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	if len(args) > 1 {
		if args[1] != "json" {
			return cfg, errors.Errorf("unexpected argument %q", args[1])
		}
		cfg.Format = config.FormatJSONP
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, cfg config.Config) *logrus.Logger {
	l := logrus.New()
	l.Out = w
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

func run(cfg config.Config, path string, stdout io.Writer, log *logrus.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open netlist")
	}
	n, err := netlist.Parse(f)
	f.Close()
	if err != nil {
		return errors.Wrap(err, path)
	}

	opts := []gatesim.Option{gatesim.WithLogger(log.WithField("netlist", path))}
	var reg *prometheus.Registry
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		m, err := metrics.New(reg)
		if err != nil {
			return err
		}
		opts = append(opts, gatesim.WithHooks(m.Hooks()))
	}

	// structured reports trace every gate; the text listing only shows the
	// gates probed in the netlist unless --probe-all is set.
	c := n.Circuit
	undo := false
	switch {
	case cfg.ProbeAll:
		c.ProbeAll()
	case cfg.Format != config.FormatText:
		c.ProbeAll()
		undo = true
	}

	sim, err := n.Simulation(opts...)
	if err != nil {
		return err
	}
	if err := runLimited(sim, cfg.MaxSteps); err != nil {
		return err
	}
	if undo {
		c.UndoProbeAll()
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	if cfg.Format != config.FormatText {
		if err := writeReport(cfg, report.NewResult(c, sim.Probes(), n.Layout), stdout); err != nil {
			return err
		}
		// a report on stdout must stay parseable.
		if cfg.OutputFile() == "" {
			return nil
		}
	}
	return report.WriteText(stdout, sim.VisibleProbes())
}

// runLimited runs sim like Simulation.Run, but gives up after maxSteps steps
// if maxSteps > 0.
func runLimited(sim *gatesim.Simulation, maxSteps int) error {
	if maxSteps <= 0 {
		return sim.Run()
	}
	sim.Seed()
	for sim.Pending() > 0 {
		if sim.Steps() >= maxSteps {
			sim.Abort()
			return errors.Errorf("step limit of %d reached at time %d with %d pending transitions", maxSteps, sim.Now(), sim.Pending())
		}
		if _, err := sim.Step(); err != nil {
			sim.Abort()
			return err
		}
	}
	sim.Finish()
	return nil
}

func writeReport(cfg config.Config, r *report.Result, stdout io.Writer) (err error) {
	w := stdout
	if name := cfg.OutputFile(); name != "" {
		f, ferr := os.Create(name)
		if ferr != nil {
			return errors.Wrap(ferr, "create report")
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = errors.Wrap(cerr, "close report")
			}
		}()
		w = f
	}
	switch cfg.Format {
	case config.FormatJSON:
		return report.WriteJSON(w, r)
	case config.FormatJSONP:
		return report.WriteJSONP(w, r)
	case config.FormatYAML:
		return report.WriteYAML(w, r)
	}
	return errors.Errorf("unsupported format %q", cfg.Format)
}
