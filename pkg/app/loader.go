package app

import (
	"time"

	"github.com/byxorna/coursebook/pkg/form"
	"github.com/byxorna/coursebook/pkg/text"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"go.uber.org/zap"
)

// Options are the optional collaborators of an Application.
type Options struct {
	// StatusMessageTimeout is how long notifications stay up. Zero means
	// form.NotificationTimeout.
	StatusMessageTimeout time.Duration
	// Changes delivers storage keys modified by other processes, if the backend
	// can watch for that.
	Changes <-chan string
	// OpenURL opens a syllabus link. Defaults to OpenBrowser.
	OpenURL func(string) error
	Logger  *zap.Logger
}

// New wires the controller and store into a ready-to-run Application. The
// controller is passed in rather than looked up, so the card edit triggers act
// on exactly the store the form saves to.
func New(ctrl *form.Controller, storage StorageInfo, opts Options) Application {
	if opts.StatusMessageTimeout <= 0 {
		opts.StatusMessageTimeout = form.NotificationTimeout
	}
	if opts.OpenURL == nil {
		opts.OpenURL = OpenBrowser
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	l := list.New(itemsFromCourses(ctrl.Courses()), cardDelegate{}, 0, 0)
	l.Title = "Courses"
	l.Filter = text.Filter
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.SetStatusBarItemName("course", "courses")

	m := Application{
		ctrl:    ctrl,
		storage: storage,
		log:     opts.Logger,

		keys: DefaultKeyMap(),
		help: help.New(),
		form: newFormModel(),
		list: l,

		statusMessageTimeout: opts.StatusMessageTimeout,
		changes:              opts.Changes,
		openURL:              opts.OpenURL,
	}
	m.form.Load(ctrl.Fields())
	m.focusForm(fieldCode)

	return m
}
