// Package main is the rot3 command, a calculator for 3D rotations.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.viam.com/utils"

	"go.viam.com/rot3/spatialmath"
)

const (
	// Flags.
	flagDebug    = "debug"
	flagRotation = "rotation"
	flagFile     = "file"
	flagDegrees  = "degrees"
	flagSteps    = "steps"
	flagSeed     = "seed"
	flagEvery    = "normalize-every"

	// gimbal lock is reported when cos(pitch) falls below this.
	gimbalLockTolerance = 1e-6
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	var logger golog.Logger

	rotationFlags := func(extra ...cli.Flag) []cli.Flag {
		return append([]cli.Flag{
			&cli.StringFlag{
				Name:    flagRotation,
				Aliases: []string{"r"},
				Usage:   `rotation config as JSON, one object or a list, e.g. {"type":"euler_angles","value":{"yaw":1.57}}`,
			},
			&cli.StringFlag{
				Name:    flagFile,
				Aliases: []string{"f"},
				Usage:   "load rotation configs from `FILE`, one object or a list",
			},
		}, extra...)
	}

	return &cli.App{
		Name:   "rot3",
		Usage:  "compute with 3D rotations",
		Writer: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("rot3")
			} else {
				logger = zap.NewNop().Sugar()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "expmap",
				Usage:     "print the rotation generated by a tangent vector",
				ArgsUsage: "<x> <y> <z>",
				Action: func(c *cli.Context) error {
					v, err := parseFloats(c.Args().Slice(), 3)
					if err != nil {
						return err
					}
					omega := r3.Vector{X: v[0], Y: v[1], Z: v[2]}
					logger.Debugw("expmap", "tangent", omega, "angle", omega.Norm())
					return printRotation(c.App.Writer, spatialmath.Expmap(omega, nil))
				},
			},
			{
				Name:  "logmap",
				Usage: "print the tangent vector of a rotation",
				Flags: rotationFlags(),
				Action: func(c *cli.Context) error {
					r, err := readOneRotation(c, logger)
					if err != nil {
						return err
					}
					omega := spatialmath.Logmap(r, nil)
					t := table.NewWriter()
					t.AppendHeader(table.Row{"x", "y", "z", "angle"})
					t.AppendRow(table.Row{formatFloat(omega.X), formatFloat(omega.Y), formatFloat(omega.Z), formatFloat(omega.Norm())})
					fmt.Fprintln(c.App.Writer, t.Render())
					return nil
				},
			},
			{
				Name:  "euler",
				Usage: "print the roll, pitch and yaw of a rotation",
				Flags: rotationFlags(&cli.BoolFlag{
					Name:  flagDegrees,
					Usage: "print angles in degrees",
				}),
				Action: func(c *cli.Context) error {
					r, err := readOneRotation(c, logger)
					if err != nil {
						return err
					}
					ea := r.EulerAngles()
					if math.Abs(math.Cos(ea.Pitch)) < gimbalLockTolerance {
						logger.Warnw("pitch is at gimbal lock, roll and yaw are not unique", "pitch", ea.Pitch)
					}
					scale := 1.0
					if c.Bool(flagDegrees) {
						scale = 180 / math.Pi
					}
					t := table.NewWriter()
					t.AppendHeader(table.Row{"roll", "pitch", "yaw"})
					t.AppendRow(table.Row{formatFloat(ea.Roll * scale), formatFloat(ea.Pitch * scale), formatFloat(ea.Yaw * scale)})
					fmt.Fprintln(c.App.Writer, t.Render())
					return nil
				},
			},
			{
				Name:      "rq",
				Usage:     "factor a 3x3 matrix into an upper triangular matrix and x, y, z angles",
				ArgsUsage: "[--] <a11> <a12> <a13> <a21> <a22> <a23> <a31> <a32> <a33>",
				Action: func(c *cli.Context) error {
					v, err := parseFloats(c.Args().Slice(), 9)
					if err != nil {
						return err
					}
					a := mgl64.Mat3FromRows(
						mgl64.Vec3{v[0], v[1], v[2]},
						mgl64.Vec3{v[3], v[4], v[5]},
						mgl64.Vec3{v[6], v[7], v[8]},
					)
					u, angles := spatialmath.RQ(a)
					logger.Debugw("rq", "angles", angles)
					t := table.NewWriter()
					t.AppendHeader(table.Row{"", "c1", "c2", "c3"})
					for i := 0; i < 3; i++ {
						t.AppendRow(table.Row{fmt.Sprintf("r%d", i+1), formatFloat(u.At(i, 0)), formatFloat(u.At(i, 1)), formatFloat(u.At(i, 2))})
					}
					fmt.Fprintln(c.App.Writer, t.Render())
					fmt.Fprintf(c.App.Writer, "angles (x, y, z): %s %s %s\n",
						formatFloat(angles.X), formatFloat(angles.Y), formatFloat(angles.Z))
					return nil
				},
			},
			{
				Name:  "compose",
				Usage: "print the product of two or more rotations, in the order given",
				Flags: rotationFlags(),
				Action: func(c *cli.Context) error {
					rots, err := readRotations(c, logger)
					if err != nil {
						return err
					}
					if len(rots) < 2 {
						return errors.Errorf("compose needs at least 2 rotations, got %d", len(rots))
					}
					result := rots[0]
					for _, r := range rots[1:] {
						result = result.Compose(r)
					}
					return printRotation(c.App.Writer, result)
				},
			},
			{
				Name:  "drift",
				Usage: "compose random rotations and report how far the product drifts from an exact rotation",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: flagSteps, Value: 10000, Usage: "number of compositions"},
					&cli.Int64Flag{Name: flagSeed, Value: 1, Usage: "random seed"},
					&cli.IntFlag{Name: flagEvery, Usage: "re-orthonormalize every `N` steps, 0 for never"},
				},
				Action: func(c *cli.Context) error {
					steps := c.Int(flagSteps)
					if steps < 1 {
						return errors.Errorf("%s must be positive, got %d", flagSteps, steps)
					}
					report, err := measureDrift(rand.New(rand.NewSource(c.Int64(flagSeed))), steps, c.Int(flagEvery))
					if err != nil {
						return err
					}
					logger.Debugw("drift", "steps", steps, "report", report)
					t := table.NewWriter()
					t.AppendHeader(table.Row{"steps", "mean", "p99", "max"})
					t.AppendRow(append(table.Row{steps}, lo.Map(report, func(v float64, _ int) interface{} {
						return strconv.FormatFloat(v, 'e', 3, 64)
					})...))
					fmt.Fprintln(c.App.Writer, t.Render())
					return nil
				},
			},
		},
	}
}

// measureDrift composes steps random rotations, normalizing every so often if every is positive, and
// returns the mean, 99th percentile and max of the drift seen along the way.
func measureDrift(rng *rand.Rand, steps, every int) ([]float64, error) {
	r := spatialmath.Identity()
	drift := make([]float64, 0, steps)
	for i := 1; i <= steps; i++ {
		r = r.Compose(spatialmath.Random(rng))
		if every > 0 && i%every == 0 {
			r = r.Normalized()
		}
		drift = append(drift, r.Drift())
	}
	mean, err := stats.Mean(drift)
	if err != nil {
		return nil, err
	}
	p99, err := stats.Percentile(drift, 99)
	if err != nil {
		return nil, err
	}
	worst, err := stats.Max(drift)
	if err != nil {
		return nil, err
	}
	return []float64{mean, p99, worst}, nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, errors.Errorf("expected %d numbers, got %d", n, len(args))
	}
	values := make([]float64, 0, n)
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func readOneRotation(c *cli.Context, logger golog.Logger) (spatialmath.Rot3, error) {
	rots, err := readRotations(c, logger)
	if err != nil {
		return spatialmath.Rot3{}, err
	}
	if len(rots) != 1 {
		return spatialmath.Rot3{}, errors.Errorf("expected 1 rotation, got %d", len(rots))
	}
	return rots[0], nil
}

// readRotations collects the rotations given with --rotation, followed by those in --file. The flag
// value is taken whole, commas included. Every bad config is reported, not just the first.
func readRotations(c *cli.Context, logger golog.Logger) ([]spatialmath.Rot3, error) {
	var raws []spatialmath.RawRotation
	if s := c.String(flagRotation); s != "" {
		fromFlag, err := parseRawRotations([]byte(s))
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing rotation %q", s)
		}
		raws = append(raws, fromFlag...)
	}
	if path := c.String(flagFile); path != "" {
		fromFile, err := readRotationFile(path)
		if err != nil {
			return nil, err
		}
		raws = append(raws, fromFile...)
	}

	var errs error
	rots := make([]spatialmath.Rot3, 0, len(raws))
	for i, rr := range raws {
		r, err := spatialmath.ParseRotation(rr)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "rotation %d", i))
			continue
		}
		logger.Debugw("parsed rotation", "index", i, "type", rr.Type)
		rots = append(rots, r)
	}
	if errs != nil {
		return nil, errs
	}
	return rots, nil
}

func readRotationFile(path string) ([]spatialmath.RawRotation, error) {
	//nolint:gosec
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(file.Close)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	raws, err := parseRawRotations(data)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %s", path)
	}
	return raws, nil
}

// parseRawRotations decodes a single rotation config or a JSON list of them.
func parseRawRotations(data []byte) ([]spatialmath.RawRotation, error) {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var raws []spatialmath.RawRotation
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, err
		}
		return raws, nil
	}
	var rr spatialmath.RawRotation
	if err := json.Unmarshal(data, &rr); err != nil {
		return nil, err
	}
	return []spatialmath.RawRotation{rr}, nil
}

func printRotation(w io.Writer, r spatialmath.Rot3) error {
	m := r.Matrix()
	t := table.NewWriter()
	t.AppendHeader(table.Row{"", "c1", "c2", "c3"})
	for i := 0; i < 3; i++ {
		t.AppendRow(table.Row{fmt.Sprintf("r%d", i+1), formatFloat(m.At(i, 0)), formatFloat(m.At(i, 1)), formatFloat(m.At(i, 2))})
	}
	q := r.QuaternionVector()
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "quaternion (w, x, y, z): %s %s %s %s\n",
		formatFloat(q[0]), formatFloat(q[1]), formatFloat(q[2]), formatFloat(q[3]))
	return err
}

func formatFloat(v float64) string {
	if math.Abs(v) < 5e-7 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
