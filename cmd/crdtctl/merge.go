package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	gocrdt "github.com/miladghaznavi/go-crdts"
)

// newMergeCmd absorbs a peer replica's state file into the local one. This
// is the CLI's stand-in for the gossip transport the core library
// deliberately excludes: the peer's file is the "remote view" handed to
// each component's Merge.
//
// local.Values, local.Tags, and local.Note are three different
// instantiations of the library (Map[string,string], ORSet[string],
// LWWRegister[string]) with no shared concrete type, so they're merged
// through the CRDT interface's dynamic-dispatch boundary rather than three
// separate statically-typed calls.
func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <peer-state-file>",
		Short: "Merge a peer replica's state file into this one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			local, err := loadState(statePath)
			if err != nil {
				return fmt.Errorf("loading local state %s: %w", statePath, err)
			}
			remote, err := loadState(args[0])
			if err != nil {
				return fmt.Errorf("loading peer state %s: %w", args[0], err)
			}

			pairs := []struct {
				local, remote gocrdt.CRDT
			}{
				{local.Values.AsCRDT(), remote.Values.AsCRDT()},
				{local.Tags.AsCRDT(), remote.Tags.AsCRDT()},
				{local.Note.AsCRDT(), remote.Note.AsCRDT()},
			}
			for _, p := range pairs {
				if err := p.local.Merge(p.remote); err != nil {
					return fmt.Errorf("merging peer state: %w", err)
				}
			}

			log.Info().Str("peer", args[0]).Msg("merged peer state")
			return saveState(statePath, local)
		},
	}
}
