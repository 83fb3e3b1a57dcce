package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/miladghaznavi/go-crdts/internal/replicaid"
)

func newReplicaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replica",
		Short: "Manage this CLI's local replica identity",
	}
	cmd.AddCommand(newReplicaInitCmd())
	return cmd
}

func newReplicaInitCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a fresh, empty replica state file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var id uint64
			if name != "" {
				id = replicaid.FromName(name)
			} else {
				id = replicaid.New()
			}

			st := newReplicaState(id)
			if err := saveState(statePath, st); err != nil {
				return fmt.Errorf("writing %s: %w", statePath, err)
			}

			log.Info().Uint64("replica_id", id).Str("state", statePath).Msg("replica initialized")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "derive a stable replica id from this name instead of a random one")
	return cmd
}
