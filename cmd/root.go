package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/byxorna/coursebook/pkg/app"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flags = struct {
		ConfigFile string
		Verbose    bool
	}{}

	sess *session

	root = &cobra.Command{
		Use:          "coursebook",
		Short:        "Coursebook keeps track of the courses you are taking",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()

			var err error
			sess, err = openSession(flags.ConfigFile, flags.Verbose)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			opts := app.Options{
				StatusMessageTimeout: sess.cfg.NotificationTimeout,
				Logger:               sess.log.Named("ui"),
			}
			if w, ok := sess.kv.(watcher); ok {
				changes, err := w.Watch(ctx)
				if err != nil {
					sess.log.Sugar().Warnf("not watching %s for changes: %v", sess.kv.Location(), err)
				} else {
					opts.Changes = changes
				}
			}

			m := app.New(sess.controller(), sess.store, opts)
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
)

// watcher is implemented by backends that can report changes made by other
// processes.
type watcher interface {
	Watch(ctx context.Context) (<-chan string, error)
}

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "~/.coursebook.yaml", "configuration file")
	root.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(listCmd, showCmd, addCmd, deleteCmd)
}

// run executes the command line in args. The session is closed whether or not
// the command fails; cobra skips post-run hooks after an error.
func run(args []string) error {
	defer func() {
		if sess != nil {
			sess.Close()
		}
	}()
	root.SetArgs(args)
	return root.Execute()
}

func Execute() {
	err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
