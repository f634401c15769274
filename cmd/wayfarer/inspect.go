package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/wayfarer-ui/wayfarer/pkg/inspect"
	"github.com/wayfarer-ui/wayfarer/pkg/nav"
	"github.com/wayfarer-ui/wayfarer/pkg/navtest"
	"github.com/wayfarer-ui/wayfarer/pkg/telemetry"
)

func inspectCmd() *cobra.Command {
	var addr string
	var demo bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Serve the navigation inspector over a demo context tree",
		Long: `Builds the demo context tree, wires Prometheus metrics, and serves
the inspector:

  GET /state        all context snapshots
  GET /state/{key}  one context snapshot
  GET /ws           websocket stream of navigation commands
  GET /metrics      Prometheus metrics

With --demo, a scripted command sequence runs continuously so the
websocket stream and metrics have something to show.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := nav.NewMetaRouter(navtest.NewDemoTree(), nav.WithStrictKeys())
			if err != nil {
				return err
			}

			meta.Observe(telemetry.NewMetrics())
			server := inspect.New(meta)

			if demo {
				go runDemoLoop(meta)
			}

			slog.Info("inspector listening", "addr", addr)
			fmt.Printf("Inspector on http://%s/state\n", addr)
			return http.ListenAndServe(addr, server.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8790", "Listen address")
	cmd.Flags().BoolVar(&demo, "demo", false, "Continuously run a scripted command sequence")

	return cmd
}

// runDemoLoop issues a scripted navigation sequence on one goroutine,
// respecting the core's single-caller contract.
func runDemoLoop(meta *nav.MetaRouter) {
	root := nav.MustRouterFor(meta, navtest.DemoMain)
	player := nav.MustRouterFor(meta, navtest.DemoPlayer)

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	step := 0
	for range ticker.C {
		switch step % 6 {
		case 0:
			root.Select(navtest.TabLibrary).Push(navtest.DemoScreen{Name: "album", ID: step})
		case 1:
			root.PresentSheet(navtest.DemoModal{Name: "settings"})
		case 2:
			root.Dismiss()
		case 3:
			player.Push(navtest.DemoScreen{Name: "queue"})
		case 4:
			player.PopToRoot()
		case 5:
			root.PopToRoot().Select(navtest.TabHome)
		}
		step++
	}
}
