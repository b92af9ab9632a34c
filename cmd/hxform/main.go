// Command hxform converts heliophysical coordinate vectors between reference
// frames and derives magnetic local time, from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hxform"
	"github.com/hupe1980/hxform/backend"
	"github.com/hupe1980/hxform/coords"
	"github.com/hupe1980/hxform/frame"
)

var (
	verbose bool
	lib     string
	times   []string

	logger *hxform.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hxform",
	Short: "Heliophysical coordinate transforms (MAG, GEI, GEO, GSE, GSM, SM)",
	Long: `hxform converts 3-vectors between heliophysical and geomagnetic reference
frames at given epochs, and derives magnetic local time from magnetic
longitude. The rotations are computed by a native backend library
(geopack_08_dp or cxform).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = hxform.NewTextLogger(level)
	},
	SilenceUsage: true,
}

var transformCmd = &cobra.Command{
	Use:   "transform x y z [x y z ...]",
	Short: "Transform vectors between two frames",
	Example: `  hxform transform --from GSM --to GSE --time 2000,1,1 0 0 1
  hxform transform --from GEO --to MAG --time 2000,1,1 --time 2000,6,1 0 0 1
  hxform transform --from GEO --to MAG --ctype-in sph --time 2010,12,30,22,28 1 59.9 18.9`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := frame.Parse(mustFlag(cmd, "from"))
		if err != nil {
			return err
		}
		to, err := frame.Parse(mustFlag(cmd, "to"))
		if err != nil {
			return err
		}
		reprIn, err := coords.ParseRepresentation(mustFlag(cmd, "ctype-in"))
		if err != nil {
			return err
		}
		reprOut, err := coords.ParseRepresentation(mustFlag(cmd, "ctype-out"))
		if err != nil {
			return err
		}

		vs, err := parseVectors(args)
		if err != nil {
			return err
		}
		ts, err := parseTimes(times)
		if err != nil {
			return err
		}

		out, err := hxform.TransformBatch(vs, ts, from, to,
			hxform.WithBackend(lib),
			hxform.WithReprIn(reprIn),
			hxform.WithReprOut(reprOut),
			hxform.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		for _, v := range out {
			fmt.Printf("%.9g %.9g %.9g\n", v[0], v[1], v[2])
		}
		return nil
	},
}

var mltCmd = &cobra.Command{
	Use:   "mlt longitude [longitude ...]",
	Short: "Magnetic local time for MAG longitudes (degrees)",
	Example: `  hxform mlt --time 2000,1,1 0
  hxform mlt --time 2000,1,1 0 90 180`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lons := make([]float64, len(args))
		for i, arg := range args {
			lon, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("longitude %q: %w", arg, err)
			}
			lons[i] = lon
		}
		ts, err := parseTimes(times)
		if err != nil {
			return err
		}

		out, err := hxform.MagToMLTBatch(lons, ts,
			hxform.WithBackend(lib),
			hxform.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		for _, mlt := range out {
			fmt.Printf("%.9g\n", mlt)
		}
		return nil
	},
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List registered rotation backends",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range backend.Names() {
			fmt.Println(name)
		}
	},
}

func mustFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(err)
	}
	return v
}

// parseVectors groups flat positional floats into 3-vectors.
func parseVectors(args []string) ([]hxform.Vector, error) {
	if len(args)%3 != 0 {
		return nil, fmt.Errorf("vector components must come in groups of 3, got %d values", len(args))
	}
	vs := make([]hxform.Vector, len(args)/3)
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", arg, err)
		}
		vs[i/3][i%3] = f
	}
	return vs, nil
}

// parseTimes parses each --time flag value "y,m,d[,h[,min[,sec]]]".
func parseTimes(raw []string) ([]hxform.Time, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one --time is required")
	}
	ts := make([]hxform.Time, len(raw))
	for i, r := range raw {
		fields := strings.Split(r, ",")
		t := make(hxform.Time, len(fields))
		for j, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("time %q: %w", r, err)
			}
			t[j] = n
		}
		ts[i] = t
	}
	return ts, nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&lib, "lib", backend.Default, "rotation backend")
	rootCmd.PersistentFlags().StringArrayVar(&times, "time", nil, "epoch as y,m,d[,h[,min[,sec]]] (repeatable)")

	transformCmd.Flags().String("from", "", "input frame (MAG, GEI, GEO, GSE, GSM, SM)")
	transformCmd.Flags().String("to", "", "output frame")
	transformCmd.Flags().String("ctype-in", "car", "input representation: car or sph")
	transformCmd.Flags().String("ctype-out", "car", "output representation: car or sph")
	_ = transformCmd.MarkFlagRequired("from")
	_ = transformCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(transformCmd, mltCmd, backendsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
