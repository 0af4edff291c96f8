package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/internal/render"
	"github.com/katalvlaran/campusnav/prim_kruskal"
)

// ErrBadBudget is returned when the reach budget is not a non-negative number.
var ErrBadBudget = errors.New("budget must be a non-negative number")

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Shortest route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			res, err := dijkstra.ShortestPath(g, args[0], args[1])
			if err != nil {
				return err
			}
			a.logger.Info("shortest path",
				zap.String("from", args[0]), zap.String("to", args[1]),
				zap.Bool("found", res.Found), zap.Float64("cost", res.Cost))
			fmt.Fprintln(cmd.OutOrStdout(), render.Path(args[0], args[1], res))

			return nil
		},
	}
}

func (a *app) treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <source>",
		Short: "Distances and routes from one location to every other",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			t, err := dijkstra.Tree(g, args[0])
			if err != nil {
				return err
			}
			a.logger.Info("shortest-path tree", zap.String("source", args[0]), zap.Int("vertices", len(t.Dist)))
			fmt.Fprintln(cmd.OutOrStdout(), render.Tree(t))

			return nil
		},
	}
}

func (a *app) reachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reach <source> <budget>",
		Short: "Locations reachable within a distance budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			budget, err := parseBudget(args[1])
			if err != nil {
				return err
			}
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			t, err := dijkstra.Tree(g, args[0])
			if err != nil {
				return err
			}
			view, err := dijkstra.WithinBudget(t, budget)
			if err != nil {
				return err
			}
			a.logger.Info("reachability",
				zap.String("source", args[0]), zap.Float64("budget", budget),
				zap.Int("reachable", len(view.Vertices)))
			fmt.Fprintln(cmd.OutOrStdout(), render.Reachability(view))

			return nil
		},
	}
}

// parseBudget accepts finite or infinite non-negative numbers.
func parseBudget(s string) (float64, error) {
	b, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(b) || b < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadBudget, s)
	}

	return b, nil
}

func (a *app) mstCmd() *cobra.Command {
	var (
		method string
		root   string
	)
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree (forest when disconnected)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			f, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(root))
			if err != nil {
				return err
			}
			a.logger.Info("spanning forest",
				zap.String("method", method), zap.Int("edges", len(f.Edges)),
				zap.Float64("total", f.Total), zap.Int("components", f.Components))
			fmt.Fprintln(cmd.OutOrStdout(), render.MST(f))

			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "algorithm: kruskal|prim")
	cmd.Flags().StringVar(&root, "root", "", "start vertex for prim")

	return cmd
}

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Connected groups of locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			comps, err := bfs.Components(cmd.Context(), g)
			if err != nil {
				return err
			}
			a.logger.Info("components", zap.Int("count", len(comps)))
			fmt.Fprintln(cmd.OutOrStdout(), render.Components(comps))

			return nil
		},
	}
}

func (a *app) hopsCmd() *cobra.Command {
	var (
		maxDepth int
		avoid    []string
		maxRoad  float64
		to       string
	)
	cmd := &cobra.Command{
		Use:   "hops <from>",
		Short: "Locations by number of stops, ignoring distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxRoad < 0 || math.IsNaN(maxRoad) {
				return fmt.Errorf("%w: --max-road %g", ErrBadBudget, maxRoad)
			}
			g, err := a.loadGraph(cmd.Context())
			if err != nil {
				return err
			}
			opts := []bfs.Option{
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
				bfs.Avoid(avoid...),
			}
			if maxRoad > 0 {
				opts = append(opts, bfs.WithEdgeFilter(func(u, v string) bool {
					w, err := g.Weight(u, v)
					return err == nil && w <= maxRoad
				}))
			}
			res, err := bfs.BFS(g, args[0], opts...)
			if err != nil {
				return err
			}
			a.logger.Info("hop layers",
				zap.String("from", args[0]), zap.Int("max_depth", maxDepth),
				zap.Strings("avoid", avoid), zap.Int("reached", len(res.Order)))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Hops(res))
			if to != "" {
				if !g.HasVertex(to) {
					return fmt.Errorf("%w: %q", dijkstra.ErrVertexNotFound, to)
				}
				fmt.Fprintln(out, render.HopRoute(res, to))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many hops; 0 means no limit")
	cmd.Flags().StringSliceVar(&avoid, "avoid", nil, "locations to route around")
	cmd.Flags().Float64Var(&maxRoad, "max-road", 0, "skip roads longer than this; 0 means no limit")
	cmd.Flags().StringVar(&to, "to", "", "also print the fewest-stop route to this location")

	return cmd
}
