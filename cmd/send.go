package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmehdipour/sms-relay/internal/model"
	"github.com/jmehdipour/sms-relay/internal/service/relay"
	"github.com/spf13/cobra"
)

var (
	sendTo      string
	sendMessage string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a single SMS through the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		svc, err := newRelayService(cfg, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sid, err := svc.Send(ctx, relay.SourceCLI, model.SendRequest{
			Message:     sendMessage,
			PhoneNumber: sendTo,
		})
		if err != nil {
			return fmt.Errorf("send: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), sid)
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "recipient phone number")
	sendCmd.Flags().StringVarP(&sendMessage, "message", "m", "", "message body")
	_ = sendCmd.MarkFlagRequired("to")
	_ = sendCmd.MarkFlagRequired("message")
}
