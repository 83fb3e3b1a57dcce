package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Operate on this replica's single LWWRegister note",
	}
	cmd.AddCommand(newRegisterAssignCmd(), newRegisterShowCmd())
	return cmd
}

func newRegisterAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <value>",
		Short: "Assign a new value to the register",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			st.Note.Assign(args[0])
			log.Info().Str("value", args[0]).Msg("register assign")
			return saveState(statePath, st)
		},
	}
}

func newRegisterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the register's current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(statePath)
			if err != nil {
				return err
			}
			v, err := st.Note.Value()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
