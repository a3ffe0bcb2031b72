package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldharbor-systems/orbital-sim/internal/application/commands"
)

func newClockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Inspect and control the virtual game clock",
	}
	cmd.AddCommand(newClockStatusCommand())
	cmd.AddCommand(newClockPauseCommand())
	cmd.AddCommand(newClockResumeCommand())
	cmd.AddCommand(newClockResetCommand())
	return cmd
}

func newClockStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the clock's current game-second reading and pause state",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			fmt.Printf("now_s=%.3f paused=%t\n", sess.Clock.Now(), sess.Clock.Paused())
			return nil
		},
	}
}

func newClockPauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the virtual clock",
		RunE:  runSetPaused(true),
	}
}

func newClockResumeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the virtual clock",
		RunE:  runSetPaused(false),
	}
}

func runSetPaused(paused bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()
		resp, err := send(sess, commands.SetPausedCommand{Paused: paused})
		if err != nil {
			return err
		}
		res := resp.(commands.ClockResult)
		fmt.Printf("now_s=%.3f paused=%t\n", res.NowS, res.Paused)
		return nil
	}
}

func newClockResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Rebase the virtual clock to its fixed epoch",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession()
			if err != nil {
				return err
			}
			defer sess.Close()
			resp, err := send(sess, commands.ResetClockCommand{})
			if err != nil {
				return err
			}
			res := resp.(commands.ClockResult)
			fmt.Printf("now_s=%.3f paused=%t\n", res.NowS, res.Paused)
			return nil
		},
	}
}
