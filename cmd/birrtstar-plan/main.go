// Package main is the CLI command driving a single BiRRT* solve end to end,
// in the style of cli/viam/main.go: a urfave/cli app reading a small JSON
// problem description and printing the resulting waypoints.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/rand"

	"github.com/billx09/hpp-core/birrtstar"
	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/path"
	"github.com/billx09/hpp-core/projector"
	"github.com/billx09/hpp-core/roadmap"
	"github.com/billx09/hpp-core/robot"
	"github.com/billx09/hpp-core/shooter"
	"github.com/billx09/hpp-core/solve"
	"github.com/billx09/hpp-core/validation"
)

const (
	flagProblem = "problem"
	flagSeed    = "seed"
	flagDebug   = "debug"
)

// problemFile is the on-disk JSON shape accepted by --problem. Obstacle
// geometry and robot kinematics are out of scope for this core, so the
// only collision checker this CLI can build is a flat "wall" demo.
type problemFile struct {
	ExtraConfigDim int         `json:"extra_config_dim"`
	Init           []float64   `json:"init"`
	Goal           []float64   `json:"goal"`
	Bounds         [][2]float64 `json:"bounds"`
	Resolution     float64     `json:"resolution"`
	WallX          *float64    `json:"wall_x"`
	WallYMin       float64     `json:"wall_y_min"`
	WallYMax       float64     `json:"wall_y_max"`
	Options        *solve.PlannerOptions `json:"options"`
}

func main() {
	var logger golog.Logger

	app := &cli.App{
		Name:  "birrtstar-plan",
		Usage: "solve a BiRRT* motion-planning problem described as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagProblem,
				Aliases:  []string{"p"},
				Usage:    "path to a problem description `FILE`",
				Required: true,
			},
			&cli.Int64Flag{
				Name:  flagSeed,
				Value: 1,
				Usage: "random seed for the configuration shooter",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("birrtstar-plan")
			} else {
				logger = golog.NewLogger("birrtstar-plan")
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			return runPlan(c, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runPlan(c *cli.Context, logger golog.Logger) error {
	raw, err := os.ReadFile(c.String(flagProblem))
	if err != nil {
		return errors.Wrap(err, "reading problem file")
	}
	var pf problemFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return errors.Wrap(err, "parsing problem file")
	}

	waypoints, err := solveProblem(pf, c.Int64(flagSeed), logger)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(waypoints, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}
	fmt.Println(string(out))
	return nil
}

func solveProblem(pf problemFile, seed int64, logger golog.Logger) ([]solve.Waypoint, error) {
	if len(pf.Init) != len(pf.Goal) || len(pf.Init) != len(pf.Bounds) {
		return nil, errors.New("birrtstar-plan: init, goal, and bounds must have matching dimension")
	}
	dof := len(pf.Init)
	if _, err := config.NewSpace(dof, pf.ExtraConfigDim); err != nil {
		return nil, err
	}

	rm := roadmap.New(config.L2Distance)
	initNode := rm.AddNode(config.Configuration(pf.Init))
	rm.SetInitNode(initNode)
	rm.AddGoalNode(rm.AddNode(config.Configuration(pf.Goal)))

	bounds := make([]shooter.Bounds, len(pf.Bounds))
	for i, b := range pf.Bounds {
		bounds[i] = shooter.Bounds{Min: b[0], Max: b[1]}
	}
	//nolint:gosec // determinism is not guaranteed by this core; the seed only makes a given run reproducible
	shoot := shooter.NewUniform(bounds, rand.New(rand.NewSource(uint64(seed))))

	resolution := pf.Resolution
	if resolution <= 0 {
		resolution = 0.1
	}
	validator := buildValidator(pf, resolution)

	rob := robot.NewFixed(dof, pf.ExtraConfigDim, dof-pf.ExtraConfigDim)
	steering := path.NewStraight(config.L2Distance, nil)

	problem := solve.NewProblem()
	problem.RegisterPlanner("birrtstar", func(p *solve.Problem) (solve.PathPlanner, error) {
		opts := birrtstar.NewDefaultOptions()
		opts.MaxStepLength = p.GetParameter("BiRRT*/maxStepLength")
		opts.Gamma = p.GetParameter("BiRRT*/gamma")
		return birrtstar.New(rm, config.L2Distance, steering, projector.Identity{}, validator, shoot, rob, opts, logger), nil
	})

	planner, err := problem.Planner("birrtstar")
	if err != nil {
		return nil, err
	}

	opts := pf.Options
	driver := solve.NewDriver(planner, rm, opts, logger)
	if err := driver.Start(); err != nil {
		return nil, err
	}

	checkDirect := func(a, b config.Configuration) bool {
		prefix, report, err := validator.Validate(path.NewStraightPath(a, b, config.L2Distance(a, b), 0, 1, nil), false)
		return err == nil && report == nil && prefix != nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return driver.FinishSolve(ctx, checkDirect)
}

func buildValidator(pf problemFile, resolution float64) validation.Validator {
	if pf.WallX == nil {
		return validation.AlwaysValid{}
	}
	wallX := *pf.WallX
	checker := func(q config.Configuration) (bool, string, error) {
		if len(q) < 2 {
			return true, "", nil
		}
		if q[0] >= wallX-0.01 && q[0] <= wallX+0.01 && q[1] >= pf.WallYMin && q[1] <= pf.WallYMax {
			return false, "wall collision", nil
		}
		return true, "", nil
	}
	return validation.NewDiscretized(checker, resolution)
}
