package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Operate on this replica's key/value Map",
	}
	cmd.AddCommand(newMapPutCmd(), newMapGetCmd(), newMapRmCmd(), newMapLsCmd())
	return cmd
}

func newMapPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <key> <value>",
		Short: "Set key to value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			st.Values.Put(args[0], args[1])
			log.Info().Str("key", args[0]).Str("value", args[1]).Msg("map put")
			return saveState(statePath, st)
		},
	}
}

func newMapGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the current value of key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			v, err := st.Values.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newMapRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <key>",
		Short: "Remove key from the map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			st.Values.Remove(args[0])
			log.Info().Str("key", args[0]).Msg("map rm")
			return saveState(statePath, st)
		},
	}
}

func newMapLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List every live key/value pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			for k, v := range st.Values.KeyValuePairs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, v)
			}
			return nil
		},
	}
}
