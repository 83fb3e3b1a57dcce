package main

import (
	"github.com/spf13/cobra"
)

// statePath is the JSON file crdtctl treats as the local replica's
// persisted view. Shared across subcommands via a persistent flag.
var statePath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crdtctl",
		Short:         "Inspect and mutate a local gocrdt replica",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&statePath, "state", "crdt-state.json", "path to this replica's state file")

	root.AddCommand(newReplicaCmd())
	root.AddCommand(newMapCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newRegisterCmd())
	root.AddCommand(newMergeCmd())

	return root
}
