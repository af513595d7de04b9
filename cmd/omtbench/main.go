// Command omtbench drives an OMT[int,int,omt.ByValue[int]] through a
// randomized insert/delete/find workload and reports basic size and
// timing figures. It exists as a runnable caller for the node allocator,
// rebalance engine, and comparator search family, not as a benchmark
// suite with statistical rigor.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/banfarns666/omt"
)

type workload struct {
	Elements   int     `mapstructure:"elements"`
	Seed       int64   `mapstructure:"seed"`
	DeleteFrac float64 `mapstructure:"delete_frac"`
	Verbose    bool    `mapstructure:"verbose"`
}

func main() {
	app := &cli.App{
		Name:  "omtbench",
		Usage: "randomized insert/delete/find workload runner for an OMT",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "optional YAML file with workload parameters"},
			&cli.IntFlag{Name: "elements", Value: 100000, Usage: "number of elements to insert"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "random seed"},
			&cli.Float64Flag{Name: "delete-frac", Value: 0.1, Usage: "fraction of inserted elements later deleted"},
			&cli.BoolFlag{Name: "verbose", Usage: "log every representation transition"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadWorkload(cctx *cli.Context) (workload, error) {
	v := viper.New()
	v.SetDefault("elements", cctx.Int("elements"))
	v.SetDefault("seed", cctx.Int64("seed"))
	v.SetDefault("delete_frac", cctx.Float64("delete-frac"))
	v.SetDefault("verbose", cctx.Bool("verbose"))

	if path := cctx.String("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return workload{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	var w workload
	if err := v.Unmarshal(&w); err != nil {
		return workload{}, fmt.Errorf("parsing workload config: %w", err)
	}
	return w, nil
}

func run(cctx *cli.Context) error {
	w, err := loadWorkload(cctx)
	if err != nil {
		return err
	}

	var log *zap.Logger
	if w.Verbose {
		log, err = zap.NewDevelopment()
	} else {
		log = zap.NewNop()
	}
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	rng := rand.New(rand.NewSource(w.Seed))
	tree := omt.Create[int, int, omt.ByValue[int]](omt.WithLogger(log))

	start := time.Now()
	for i := 0; i < w.Elements; i++ {
		v := rng.Int()
		if _, err := tree.Insert(v, func(stored *int) int {
			switch {
			case *stored < v:
				return -1
			case *stored > v:
				return 1
			default:
				return 0
			}
		}); err != nil && err != omt.ErrKeyExists {
			return fmt.Errorf("insert: %w", err)
		}
	}
	insertElapsed := time.Since(start)

	deletes := int(float64(w.Elements) * w.DeleteFrac)
	start = time.Now()
	for i := 0; i < deletes && tree.Size() > 0; i++ {
		idx := uint32(rng.Intn(int(tree.Size())))
		if err := tree.DeleteAt(idx); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
	}
	deleteElapsed := time.Since(start)

	found := 0
	start = time.Now()
	for i := 0; i < w.Elements; i++ {
		target := rng.Int()
		_, _, err := tree.FindZero(func(stored *int) int {
			switch {
			case *stored < target:
				return -1
			case *stored > target:
				return 1
			default:
				return 0
			}
		})
		if err == nil {
			found++
		}
	}
	findElapsed := time.Since(start)

	fmt.Printf("inserted=%d deleted=%d size=%d memory_bytes=%d found=%d\n",
		w.Elements, deletes, tree.Size(), tree.MemorySize(), found)
	fmt.Printf("insert_elapsed=%s delete_elapsed=%s find_elapsed=%s\n",
		insertElapsed, deleteElapsed, findElapsed)

	tree.Destroy()
	return nil
}
