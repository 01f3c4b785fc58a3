package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"saturation_calc/eos"
	"saturation_calc/fluid"
	"saturation_calc/saturation"
)

/*
コマンドを構築する。

	Returns:
		satcalc のルートコマンド

	Notes:
		設定ファイル、流体表、ログ出力は全サブコマンド共通のフラグで指定し、
		サブコマンドの実行前に読み込む。
*/
func newRootCmd() *cobra.Command {
	var (
		configPath string
		fluidsPath string
		verbose    bool
		start      time.Time
	)
	a := &app{}

	root := &cobra.Command{
		Use:   "satcalc",
		Short: "Peng-Robinson saturation temperature and pressure of pure fluids",
		Long: `satcalc computes saturation temperatures from pressures and saturation
pressures from temperatures with the Peng-Robinson equation of state.
Temperatures are in K and pressures in kPa unless stated otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			start = time.Now()
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fluids") {
				cfg.Fluids = fluidsPath
			}
			if verbose {
				cfg.Verbose = true
			}
			return a.init(cfg, cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.logger.Printf("elapsed_time: %v", time.Since(start))
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&fluidsPath, "fluids", "", "CSV table of fluid constants replacing the built-in table")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress to stderr")

	root.AddCommand(
		newFluidsCmd(a),
		newTsatCmd(a),
		newPsatCmd(a),
		newEOSCmd(a),
		newBatchCmd(a),
	)
	return root
}

func newFluidsCmd(a *app) *cobra.Command {
	var asCSV bool
	cmd := &cobra.Command{
		Use:   "fluids",
		Short: "List the registered fluids and their critical constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asCSV {
				return fluid.WriteRegistryCSV(a.fluids, cmd.OutOrStdout())
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTc [K]\tPc [kPa]\tOMEGA")
			for _, name := range a.fluids.Names() {
				f, err := a.fluids.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\n", f.Name, f.CriticalTemperature, f.CriticalPressure, f.AcentricFactor)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write the table as CSV, loadable with --fluids")
	return cmd
}

func newTsatCmd(a *app) *cobra.Command {
	var (
		name      string
		pressure  float64
		bracketed bool
	)
	cmd := &cobra.Command{
		Use:   "tsat",
		Short: "Saturation temperature at a given pressure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := saturation.Temperature
			if bracketed {
				m = saturation.BracketedTemperature
			}
			pt, err := a.solver.Solve(m, name, pressure)
			if err != nil {
				return err
			}
			printPoint(cmd, pt)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "fluid", "f", "", "fluid name")
	cmd.Flags().Float64VarP(&pressure, "pressure", "p", 0, "pressure, kPa")
	cmd.Flags().BoolVar(&bracketed, "bracketed", false, "search a fixed temperature interval with Brent's method")
	_ = cmd.MarkFlagRequired("fluid")
	_ = cmd.MarkFlagRequired("pressure")
	return cmd
}

func newPsatCmd(a *app) *cobra.Command {
	var (
		name        string
		temperature float64
		celsius     bool
		reference   bool
	)
	cmd := &cobra.Command{
		Use:   "psat",
		Short: "Saturation pressure at a given temperature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := toKelvin(temperature, celsius)
			pt, err := a.solver.SaturationPressure(name, t)
			if err != nil {
				return err
			}
			printPoint(cmd, pt)

			if reference {
				if !strings.EqualFold(pt.Fluid, "Water") {
					return errors.New("reference correlation is only available for Water")
				}
				ref := fluid.WaterVaporPressure(t)
				fmt.Fprintf(cmd.OutOrStdout(), "reference (Wexler-Hyland): P = %.6g kPa, deviation %+.2f %%\n",
					ref, 100*(pt.Pressure-ref)/ref)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "fluid", "f", "", "fluid name")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "temperature, K (degC with --celsius)")
	cmd.Flags().BoolVar(&celsius, "celsius", false, "temperature is given in degC")
	cmd.Flags().BoolVar(&reference, "reference", false, "compare with the Wexler-Hyland correlation (Water only)")
	_ = cmd.MarkFlagRequired("fluid")
	_ = cmd.MarkFlagRequired("temperature")
	return cmd
}

func newEOSCmd(a *app) *cobra.Command {
	var (
		name        string
		temperature float64
		pressure    float64
		celsius     bool
		offset      float64
	)
	cmd := &cobra.Command{
		Use:   "eos",
		Short: "Evaluate the equation of state at one temperature and pressure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.fluids.Lookup(name)
			if err != nil {
				return err
			}
			t := toKelvin(temperature, celsius)
			s, err := eos.Evaluate(t, pressure, f, offset)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s at T = %.6g K, P = %.6g kPa (offset %g)\n", f.Name, t, pressure, offset)
			fmt.Fprintf(out, "  Z = %.10g  A = %.6g  B = %.6g  V = %.6g m3/kmol  roots = %d\n",
				s.Z, s.A, s.B, s.MolarVolume, s.RootCount)
			if ln_phi, err := s.LnPhi(); err == nil {
				fmt.Fprintf(out, "  ln phi = %.10g\n", ln_phi)
			}

			if offset != 0 {
				return nil
			}
			ph, err := eos.EvaluatePhases(t, pressure, f)
			switch {
			case err == nil:
				fmt.Fprintf(out, "  vapor Z = %.10g  liquid Z = %.10g\n", ph.Vapor.Z, ph.Liquid.Z)
			case errors.Is(err, eos.ErrSinglePhase):
				kind := "liquid-like"
				if ph.Vapor.VaporLike() {
					kind = "vapor-like"
				}
				fmt.Fprintf(out, "  single root (%s)\n", kind)
			default:
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "fluid", "f", "", "fluid name")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "temperature, K (degC with --celsius)")
	cmd.Flags().Float64VarP(&pressure, "pressure", "p", 0, "pressure, kPa")
	cmd.Flags().BoolVar(&celsius, "celsius", false, "temperature is given in degC")
	cmd.Flags().Float64Var(&offset, "offset", 0, "amount subtracted from B before the cubic is solved")
	_ = cmd.MarkFlagRequired("fluid")
	_ = cmd.MarkFlagRequired("temperature")
	_ = cmd.MarkFlagRequired("pressure")
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		input       string
		output      string
		workers     int
		metricsFile string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve a CSV table of requests (fluid,method,value)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Batch.Workers = workers
			}
			if cmd.Flags().Changed("metrics-file") {
				a.cfg.Batch.MetricsFile = metricsFile
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			a.logger.Printf("要求の読み込み開始: %s", input)
			requests, err := ReadRequestsFile(input)
			if err != nil {
				return err
			}

			var metrics *Metrics
			if a.cfg.Batch.MetricsFile != "" {
				metrics = NewMetrics()
			}
			runner := NewBatchRunner(a.solver, a.cfg.Batch.Workers, metrics, a.logger)
			results, err := runner.Run(cmd.Context(), requests)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				err = WriteResults(cmd.OutOrStdout(), results)
			} else {
				a.logger.Printf("Save results to `%s`", output)
				err = WriteResultsFile(output, results)
			}
			if err != nil {
				return err
			}

			if metrics != nil {
				a.logger.Printf("Save metrics to `%s`", a.cfg.Batch.MetricsFile)
				return metrics.WriteTextfile(a.cfg.Batch.MetricsFile)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "request CSV file")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "result CSV file, - for stdout")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of concurrent solves")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus text metrics to this file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func printPoint(cmd *cobra.Command, pt saturation.Point) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: T_sat = %.6f K (%.3f degC), P_sat = %.6g kPa\n",
		pt.Fluid, pt.Temperature, pt.Temperature-celsiusOffset, pt.Pressure)
	fmt.Fprintf(out, "  vapor Z = %.8g  liquid Z = %.8g  iterations = %d  residual = %.3e\n",
		pt.Vapor.Z, pt.Liquid.Z, pt.Iterations, pt.Residual)
}
