package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/amirhossein-jamali/payment-engine/internal/app"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/retry"
)

const operatorUserName = "paymentctl"

func retryCmd() *cobra.Command {
	var pluginNames []string
	var reason string

	cmd := &cobra.Command{
		Use:   "retry [attemptId]",
		Short: "Run a payment attempt again now",
		Long: `Runs the retry automaton on an attempt without waiting for its scheduled retry.
Without --plugin the control plugins recorded on the attempt are consulted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attemptID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid attempt id %q: %w", args[0], err)
			}

			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			cc := entity.NewCallContext(operatorUserName, reason, nil, s.clock.Now())
			ctx := entity.ContextWithCallContext(cmd.Context(), cc)
			if err := s.engine.Retryable.RetryPaymentTransaction(ctx, attemptID, pluginNames, cc); err != nil {
				return fmt.Errorf("retry of attempt %s failed: %w", attemptID, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Attempt %s retried\n", attemptID)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&pluginNames, "plugin", "p", nil, "Control plugins to consult")
	cmd.Flags().StringVar(&reason, "reason", "manual retry", "Reason recorded on the call context")

	return cmd
}

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Inspect and deliver the notification queue",
	}

	cmd.AddCommand(notificationsListCmd())
	cmd.AddCommand(notificationsPollCmd())

	return cmd
}

func notificationsListCmd() *cobra.Command {
	var queueName, state, output string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the notifications of a queue in a state",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			lister, ok := s.engine.Stores.Notifications.(app.NotificationLister)
			if !ok {
				return fmt.Errorf("the configured notification queue cannot be listed")
			}
			notifications, err := lister.ListByState(cmd.Context(), queueName,
				entity.NotificationState(strings.ToUpper(state)), limit)
			if err != nil {
				return err
			}

			return writeNotifications(cmd.OutOrStdout(), output, notifications)
		},
	}

	cmd.Flags().StringVarP(&queueName, "queue", "q", retry.QueueName, "Queue name")
	cmd.Flags().StringVarP(&state, "state", "s", string(entity.NotificationFailed), "AVAILABLE, IN_PROCESSING, PROCESSED or FAILED")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum results")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json, yaml)")

	return cmd
}

func notificationsPollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "poll",
		Short: "Deliver the due notifications once",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			delivered, err := s.engine.Poller.PollOnce(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Delivered %d notification(s)\n", delivered)
			return err
		},
	}
}

func locksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locks",
		Short: "Manage account locks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "cleanup",
		Short: "Remove expired account locks",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			cleaner, ok := s.engine.Stores.Locks.(app.LockCleaner)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Lock store expires locks on its own, nothing to clean up")
				return nil
			}
			removed, err := cleaner.CleanupExpiredLocks(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired lock(s)\n", removed)
			return nil
		},
	})

	return cmd
}

func janitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "janitor",
		Short: "Resolve stale UNKNOWN transactions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sweep",
		Short: "Run one janitor sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			resolved, err := s.engine.Janitor.Sweep(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Resolved %d transaction(s)\n", resolved)
			return err
		},
	})

	return cmd
}

type notificationView struct {
	ID              string          `json:"id" yaml:"id"`
	QueueName       string          `json:"queueName" yaml:"queueName"`
	State           string          `json:"state" yaml:"state"`
	EffectiveDate   time.Time       `json:"effectiveDate" yaml:"effectiveDate"`
	AccountRecordID int64           `json:"accountRecordId" yaml:"accountRecordId"`
	ErrorCount      int             `json:"errorCount" yaml:"errorCount"`
	LastError       string          `json:"lastError,omitempty" yaml:"lastError,omitempty"`
	Event           json.RawMessage `json:"event" yaml:"-"`
	EventText       string          `json:"-" yaml:"event"`
}

func writeNotifications(w io.Writer, format string, notifications []*entity.Notification) error {
	views := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, notificationView{
			ID:              n.ID.String(),
			QueueName:       n.QueueName,
			State:           string(n.State),
			EffectiveDate:   n.EffectiveDate,
			AccountRecordID: n.AccountRecordID,
			ErrorCount:      n.ErrorCount,
			LastError:       n.LastError,
			Event:           json.RawMessage(n.Event),
			EventText:       string(n.Event),
		})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(views)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSTATE\tEFFECTIVE\tACCOUNT\tERRORS\tLAST ERROR")
		for _, v := range views {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
				v.ID, v.State, v.EffectiveDate.Format(time.RFC3339), v.AccountRecordID, v.ErrorCount, v.LastError)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
