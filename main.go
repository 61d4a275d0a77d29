package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"levelkit.klederson.com/internal/app"
	"levelkit.klederson.com/internal/config"
	"levelkit.klederson.com/internal/convert"
	"levelkit.klederson.com/internal/sensor"
	"levelkit.klederson.com/internal/tilt"
)

var (
	flagLogFile string

	flagConfig    string
	flagDemo      bool
	flagSource    string
	flagPort      string
	flagBaud      int
	flagBLEName   string
	flagBLEAddr   string
	flagBLESvc    string
	flagBLEChar   string
	flagMaxOffset float64
	flagOnce      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "levelkit",
		Short: "Spirit level and unit converter for the terminal",
		Long: `levelkit bundles two small tools:

  level    a spirit level that draws a bubble from accelerometer readings
  convert  a unit converter for length and temperature`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (TUI screens discard logs otherwise)")

	levelCmd := &cobra.Command{
		Use:   "level",
		Short: "Show a spirit level driven by an accelerometer",
		Long: `Reads x/y acceleration samples and draws the bubble of a spirit level.

Sources:
  mock    generated wobble, no hardware needed (default, also --demo)
  stdin   text lines "x,y[,z]" piped into levelkit
  serial  text lines "x,y[,z]" from a serial port (--port, --baud)
  ble     float32 x,y[,z] notifications from a BLE peripheral

BLE scanning requires sudo or the CAP_NET_ADMIN capability.`,
		Args: cobra.NoArgs,
		RunE: runLevel,
	}
	levelCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file")
	levelCmd.Flags().BoolVar(&flagDemo, "demo", false, "Use the mock source regardless of other settings")
	levelCmd.Flags().StringVar(&flagSource, "source", "", "Reading source: mock, stdin, serial or ble")
	levelCmd.Flags().StringVar(&flagPort, "port", "", "Serial port path, e.g. /dev/ttyUSB0")
	levelCmd.Flags().IntVar(&flagBaud, "baud", config.SerialBaud, "Serial baud rate")
	levelCmd.Flags().StringVar(&flagBLEName, "ble-name", "", "Local name of the BLE peripheral")
	levelCmd.Flags().StringVar(&flagBLEAddr, "ble-address", "", "Address of the BLE peripheral")
	levelCmd.Flags().StringVar(&flagBLESvc, "ble-service", "", "GATT service UUID")
	levelCmd.Flags().StringVar(&flagBLEChar, "ble-characteristic", "", "GATT characteristic UUID that notifies samples")
	levelCmd.Flags().Float64Var(&flagMaxOffset, "max-offset", config.MaxOffset, "Maximum bubble offset per axis")
	levelCmd.Flags().BoolVar(&flagOnce, "once", false, "Read one line from stdin, print the offset and exit")

	convertCmd := &cobra.Command{
		Use:   "convert [mode value]",
		Short: "Convert a value between units",
		Long: `Without arguments, opens the interactive converter.
With a mode and a value, prints the converted value and exits.
An unknown mode passes the value through unchanged.`,
		Example: `  levelkit convert "Celsius to Fahrenheit" 21.5
  levelkit convert -- "Fahrenheit to Celsius" -40`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
			}
			return nil
		},
		RunE: runConvert,
	}

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "List conversion modes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range convert.Modes() {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
		},
	}

	rootCmd.AddCommand(levelCmd, convertCmd, modesCmd)
	return rootCmd
}

// setupLogging sends log output to the log file when one is set. TUI
// screens own the terminal, so without a file their logs are discarded.
func setupLogging(tui bool) (func(), error) {
	if flagLogFile != "" {
		f, err := tea.LogToFile(flagLogFile, "levelkit")
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		return func() { _ = f.Close() }, nil
	}
	if tui {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}

func loadConfig(cmd *cobra.Command) (*config.File, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source.Kind = flagSource
	}
	if flags.Changed("port") {
		cfg.Source.Serial.Path = flagPort
	}
	if flags.Changed("baud") {
		cfg.Source.Serial.BaudRate = flagBaud
	}
	if flags.Changed("ble-name") {
		cfg.Source.BLE.Name = flagBLEName
	}
	if flags.Changed("ble-address") {
		cfg.Source.BLE.Address = flagBLEAddr
	}
	if flags.Changed("ble-service") {
		cfg.Source.BLE.Service = flagBLESvc
	}
	if flags.Changed("ble-characteristic") {
		cfg.Source.BLE.Characteristic = flagBLEChar
	}
	if flags.Changed("max-offset") {
		cfg.Level.MaxOffset = flagMaxOffset
	}
	if flagDemo {
		cfg.Source.Kind = "mock"
	}
	cfg.Normalize()
	return cfg, nil
}

func runLevel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	params, geom := tilt.FromConfig(cfg.Level)

	if flagOnce {
		closeLog, err := setupLogging(false)
		if err != nil {
			return err
		}
		defer closeLog()
		return runOnce(cmd, params, geom)
	}

	closeLog, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := sensor.New(cfg.Source, os.Stdin)
	if err != nil {
		return err
	}

	model := app.NewLevel(src, params, geom)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithFPS(config.TargetFPS)}
	if cfg.Source.Kind == "stdin" {
		// Readings arrive on stdin, so keys come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}
	p := tea.NewProgram(model, opts...)

	// Start the source with reference to the tea program
	if err := model.StartSource(p); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		if cfg.Source.Kind == "ble" {
			fmt.Fprintln(os.Stderr, "Bluetooth access requires elevated permissions.")
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintln(os.Stderr, "  sudo ./levelkit level --source ble ...")
			fmt.Fprintln(os.Stderr, "  sudo setcap cap_net_admin+ep ./levelkit")
		} else {
			fmt.Fprintln(os.Stderr, "Check the source settings, or try:")
		}
		fmt.Fprintln(os.Stderr, "  ./levelkit level --demo    (demo mode, no hardware needed)")
		return err
	}

	_, err = p.Run()
	return err
}

func runOnce(cmd *cobra.Command, params tilt.Params, geom tilt.Geometry) error {
	reading, err := sensor.ReadOne(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read reading: %w", err)
	}
	off := tilt.Transform(reading, params)
	fmt.Fprintf(cmd.OutOrStdout(), "dx=%.3f dy=%.3f level=%t\n", off.DX, off.DY, geom.Zone.Contains(off))
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		closeLog, err := setupLogging(true)
		if err != nil {
			return err
		}
		defer closeLog()

		_, err = tea.NewProgram(app.NewConverter(""), tea.WithAltScreen()).Run()
		return err
	}

	closeLog, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closeLog()

	mode := args[0]
	value, err := convert.ParseValue(args[1])
	if err != nil {
		return fmt.Errorf("%q: %w", args[1], err)
	}
	if !convert.Known(mode) {
		log.Printf("unknown mode %q, value passed through unchanged", mode)
	}
	fmt.Fprintln(cmd.OutOrStdout(), convert.FormatResult(convert.Convert(mode, value)))
	return nil
}
