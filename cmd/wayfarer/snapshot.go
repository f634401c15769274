package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wayfarer-ui/wayfarer/pkg/nav"
	"github.com/wayfarer-ui/wayfarer/pkg/navstore"
	"github.com/wayfarer-ui/wayfarer/pkg/navtest"
)

func snapshotCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Dump demo-tree snapshots as JSON",
		Long: `Builds the demo context tree, runs a short scripted command
sequence, and prints the resulting snapshot of every context. With
--dir, snapshots are written to a file store instead of stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := nav.NewMetaRouter(navtest.NewDemoTree(), nav.WithStrictKeys())
			if err != nil {
				return err
			}

			root := nav.MustRouterFor(meta, navtest.DemoMain)
			root.Select(navtest.TabLibrary).
				Push(navtest.DemoScreen{Name: "album", ID: 42}).
				PresentSheet(navtest.DemoModal{Name: "settings"})

			player := nav.MustRouterFor(meta, navtest.DemoPlayer)
			player.Push(navtest.DemoScreen{Name: "queue"})

			if dir != "" {
				store, err := navstore.NewFileStore(dir)
				if err != nil {
					return err
				}
				defer store.Close()

				if err := navstore.SaveAll(context.Background(), store, meta); err != nil {
					return err
				}
				fmt.Printf("Wrote %d snapshots to %s\n", meta.Len(), dir)
				return nil
			}

			states := make(map[string]json.RawMessage, meta.Len())
			for _, key := range meta.Keys() {
				router, _ := meta.Lookup(key)
				data, err := router.EncodeState()
				if err != nil {
					return err
				}
				states[key.String()] = data
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(states)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Write snapshots to this directory instead of stdout")

	return cmd
}
