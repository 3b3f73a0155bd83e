package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	smsc "github.com/brandshopru/smsc-go"
)

const dateLayout = "02.01.2006"

// messageFlags are the options shared by send, cost and mail.
type messageFlags struct {
	format   int
	sender   string
	translit int
	id       int
	when     string
	files    []string
}

func (f *messageFlags) bind(cmd *cobra.Command, withSchedule, withFiles bool) {
	flags := cmd.Flags()
	flags.IntVar(&f.format, "format", 0, "message format code (0 sms, 1 flash, ... 11 social)")
	flags.StringVar(&f.sender, "sender", "", "sender ID")
	flags.IntVar(&f.translit, "translit", 0, "transliteration mode (0, 1 or 2)")
	if withSchedule {
		flags.IntVar(&f.id, "id", 0, "message ID")
		flags.StringVar(&f.when, "time", "", "delivery time (DDMMYYhhmm, h1-h2, 0ts or +m)")
	}
	if withFiles {
		flags.StringSliceVar(&f.files, "file", nil, "file to attach (repeatable)")
	}
}

func (f *messageFlags) options() []smsc.SendOption {
	opts := []smsc.SendOption{
		smsc.WithFormat(smsc.Format(f.format)),
		smsc.WithTranslit(f.translit),
	}
	if f.sender != "" {
		opts = append(opts, smsc.WithSender(f.sender))
	}
	if f.id != 0 {
		opts = append(opts, smsc.WithMessageID(f.id))
	}
	if f.when != "" {
		opts = append(opts, smsc.WithSendTime(f.when))
	}
	if len(f.files) > 0 {
		opts = append(opts, smsc.WithFiles(f.files...))
	}
	return opts
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want dd.mm.yyyy: %w", value, err)
	}
	return t, nil
}

func (a *app) sendCommand() *cobra.Command {
	var flags messageFlags
	cmd := &cobra.Command{
		Use:   "send <phones> <message>",
		Short: "Send a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.SendSMS(cmd.Context(), args[0], args[1], flags.options()...)
			if err != nil {
				return err
			}
			return a.printResponse(resp)
		},
	}
	flags.bind(cmd, true, true)
	return cmd
}

func (a *app) costCommand() *cobra.Command {
	var flags messageFlags
	cmd := &cobra.Command{
		Use:   "cost <phones> <message>",
		Short: "Price a message without sending it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.GetSMSCost(cmd.Context(), args[0], args[1], flags.options()...)
			if err != nil {
				return err
			}
			return a.printResponse(resp)
		},
	}
	flags.bind(cmd, false, false)
	return cmd
}

func (a *app) statusCommand() *cobra.Command {
	var all int
	cmd := &cobra.Command{
		Use:   "status <id> <phone>",
		Short: "Show the delivery status of a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.GetStatus(cmd.Context(), args[0], args[1], all)
			if err != nil {
				return err
			}
			return a.printResponse(resp)
		},
	}
	cmd.Flags().IntVar(&all, "all", 0, "detail level (0, 1 or 2)")
	return cmd
}

func (a *app) waitCommand() *cobra.Command {
	var timeout, interval time.Duration
	cmd := &cobra.Command{
		Use:   "wait <id> <phone>",
		Short: "Wait until a message reaches a final status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Infof("waiting for message %s to %s", args[0], args[1])
			status, err := a.client.WaitForStatus(cmd.Context(), args[0], args[1],
				smsc.WithWaitTimeout(timeout),
				smsc.WithPollInterval(interval),
			)
			if err != nil {
				return err
			}
			return a.printJSON(status)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "maximum time to wait")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "initial polling interval")
	return cmd
}

func (a *app) balanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.GetBalance(cmd.Context())
			if err != nil {
				return err
			}
			return a.printResponse(resp)
		},
	}
}

func (a *app) historyCommand() *cobra.Command {
	var start, end string
	var q smsc.HistoryQuery
	var format int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List sent messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if q.Start, err = parseDate(start); err != nil {
				return err
			}
			if q.End, err = parseDate(end); err != nil {
				return err
			}
			q.Format = smsc.Format(format)
			resp, err := a.client.GetHistory(cmd.Context(), q)
			if err != nil {
				return err
			}
			return a.printResponse(resp)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&start, "start", "", "first day, dd.mm.yyyy")
	flags.StringVar(&end, "end", "", "last day, dd.mm.yyyy")
	flags.StringVar(&q.Phone, "phone", "", "phone numbers, comma separated")
	flags.StringVar(&q.Email, "email", "", "e-mail addresses, comma separated")
	flags.IntVar(&format, "format", 0, "0 for SMS, 8 for e-mail")
	flags.IntVar(&q.Limit, "limit", 0, "maximum messages (up to 1000)")
	flags.Int64Var(&q.PrevID, "prev-id", 0, "list messages sent before this int_id")
	return cmd
}

func (a *app) statsCommand() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show sending statistics for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDate(start)
			if err != nil {
				return err
			}
			to, err := parseDate(end)
			if err != nil {
				return err
			}
			resp, err := a.client.GetStatistics(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			return a.printResponse(resp)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first day, dd.mm.yyyy")
	cmd.Flags().StringVar(&end, "end", "", "last day, dd.mm.yyyy")
	return cmd
}

func (a *app) mailCommand() *cobra.Command {
	var flags messageFlags
	cmd := &cobra.Command{
		Use:   "mail <phones> <message>",
		Short: "Send a message through the e-mail gateway",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.SendSMSMail(cmd.Context(), args[0], args[1], flags.options()...); err != nil {
				return err
			}
			a.logger.Infof("mail relayed to %s", smsc.MailGateway)
			return nil
		},
	}
	flags.bind(cmd, true, false)
	return cmd
}
