package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Operate on this replica's ORSet of tags",
	}
	cmd.AddCommand(newSetAddCmd(), newSetRmCmd(), newSetLsCmd())
	return cmd
}

func newSetAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <tag>",
		Short: "Add tag to the set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			st.Tags.Add(args[0])
			log.Info().Str("tag", args[0]).Msg("set add")
			return saveState(statePath, st)
		},
	}
}

func newSetRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <tag>",
		Short: "Remove tag from the set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			st.Tags.Remove(args[0])
			log.Info().Str("tag", args[0]).Msg("set rm")
			return saveState(statePath, st)
		},
	}
}

func newSetLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List every live tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			for tag := range st.Tags.Elements() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}
