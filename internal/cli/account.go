package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/internal/render"
	"github.com/katalvlaran/campusnav/internal/store"
)

// ErrNoRoute is returned when saving a route between disconnected locations.
var ErrNoRoute = errors.New("no route to save")

func (a *app) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	var password string
	signup := &cobra.Command{
		Use:   "signup <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			u, err := db.CreateUser(ctx, args[0], password)
			if err != nil {
				return err
			}
			a.logger.Info("user created", zap.String("username", u.Username))
			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created.\n", u.Username)

			return nil
		},
	}
	signup.Flags().StringVarP(&password, "password", "p", "", "account password")

	login := &cobra.Command{
		Use:   "login <username>",
		Short: "Check account credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			u, err := db.Authenticate(ctx, args[0], password)
			if err != nil {
				a.logger.Warn("login failed", zap.String("username", args[0]))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s.\n", u.Username)

			return nil
		},
	}
	login.Flags().StringVarP(&password, "password", "p", "", "account password")

	cmd.AddCommand(signup, login)

	return cmd
}

func (a *app) routeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Save and list routes",
	}

	var username, password string
	save := &cobra.Command{
		Use:   "save <from> <to>",
		Short: "Compute the shortest route and save it to the account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := db.Authenticate(ctx, username, password); err != nil {
				return err
			}
			g, err := a.loadGraph(ctx)
			if err != nil {
				return err
			}
			res, err := dijkstra.ShortestPath(g, args[0], args[1])
			if err != nil {
				return err
			}
			if !res.Found {
				return fmt.Errorf("%w: %s and %s are not connected", ErrNoRoute, args[0], args[1])
			}

			saved, err := db.SaveRoute(ctx, store.SavedRoute{
				Username:    username,
				Source:      args[0],
				Destination: args[1],
				RouteText:   render.Route(res.Path),
				Cost:        res.Cost,
			})
			if err != nil {
				return err
			}
			a.logger.Info("route saved", zap.String("id", saved.ID), zap.String("username", username))
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%g).\n", saved.RouteText, saved.Cost)

			return nil
		},
	}
	save.Flags().StringVarP(&username, "user", "u", "", "account username")
	save.Flags().StringVarP(&password, "password", "p", "", "account password")

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved routes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := db.Authenticate(ctx, username, password); err != nil {
				return err
			}
			routes, err := db.ListRoutes(ctx, username)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.SavedRoutes(username, routes))

			return nil
		},
	}
	list.Flags().StringVarP(&username, "user", "u", "", "account username")
	list.Flags().StringVarP(&password, "password", "p", "", "account password")

	cmd.AddCommand(save, list)

	return cmd
}
