// Package form drives the course form: it turns what the user typed into store
// operations and tracks whether the form is creating a new course or editing an
// existing one.
package form

import (
	"fmt"
	"strings"
	"time"

	v1 "github.com/byxorna/coursebook/pkg/types/v1"
	"go.uber.org/zap"
)

// NotificationTimeout is how long a notification stays visible by default.
const NotificationTimeout = 3000 * time.Millisecond

// Records is what the controller needs from the course store.
type Records interface {
	Get(code string) (v1.Course, bool)
	Upsert(v1.Course) error
	Delete(code string) error
	List() []v1.Course
}

// Fields are the raw values of the form inputs.
type Fields struct {
	Code        string
	Name        string
	Progression v1.Progression
	Syllabus    string
}

func FieldsFrom(c v1.Course) Fields {
	return Fields{
		Code:        c.Code,
		Name:        c.Name,
		Progression: c.Progression,
		Syllabus:    c.Syllabus,
	}
}

func (f Fields) Course() v1.Course {
	return v1.Course{
		Code:        strings.TrimSpace(f.Code),
		Name:        strings.TrimSpace(f.Name),
		Progression: f.Progression,
		Syllabus:    strings.TrimSpace(f.Syllabus),
	}
}

// State is the edit-mode flag. Code is only meaningful while Editing and holds
// the code the form was populated from, not whatever is typed now.
type State struct {
	Editing bool
	Code    string
}

type NotificationKind int

const (
	Success NotificationKind = iota
	Error
	Subtle
)

type Notification struct {
	Kind    NotificationKind
	Message string
}

type Controller struct {
	records Records
	log     *zap.Logger

	fields Fields
	state  State
}

func New(records Records, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		records: records,
		log:     logger,
		fields:  Fields{Progression: v1.ProgressionA},
	}
}

func (c *Controller) Fields() Fields     { return c.fields }
func (c *Controller) SetFields(f Fields) { c.fields = f }
func (c *Controller) State() State       { return c.state }

// Courses is the current listing, re-read from the store on every call.
func (c *Controller) Courses() []v1.Course { return c.records.List() }

// StartEdit populates the form from the stored course and enters edit mode.
// Any unsaved input is discarded. It returns false and changes nothing if the
// course no longer exists.
func (c *Controller) StartEdit(code string) bool {
	course, ok := c.records.Get(code)
	if !ok {
		c.log.Debug("edit requested for missing course", zap.String("code", code))
		return false
	}

	c.state = State{Editing: true, Code: code}
	c.fields = FieldsFrom(course)
	c.log.Debug("editing course", zap.String("code", code))
	return true
}

// Reset clears the form and leaves edit mode without saving.
func (c *Controller) Reset() {
	c.fields = Fields{Progression: v1.ProgressionA}
	c.state = State{}
}

// Submit saves the form. While editing, a changed code is a rename done as
// delete-then-upsert; it is not atomic, so if the upsert fails after the delete
// neither code is left in the store.
//
// On failure the form and edit state are left as they were so the input can be
// resubmitted, and the returned notification carries the error message.
func (c *Controller) Submit() (Notification, error) {
	course := c.fields.Course()
	if err := c.validate(course); err != nil {
		return c.fail(course.Code, err)
	}

	if c.state.Editing && c.state.Code != course.Code {
		if err := c.records.Delete(c.state.Code); err != nil {
			return c.fail(c.state.Code, err)
		}
		c.log.Info("renamed course", zap.String("from", c.state.Code), zap.String("to", course.Code))
	}

	if err := c.records.Upsert(course); err != nil {
		return c.fail(course.Code, err)
	}

	c.Reset()
	return Notification{Kind: Success, Message: "Course saved!"}, nil
}

// validate applies the full input rules, except that fields left as they were
// on the course being edited are accepted even if it was stored without them.
func (c *Controller) validate(course v1.Course) error {
	if c.state.Editing {
		if prev, ok := c.records.Get(c.state.Code); ok {
			return course.ValidateChanged(prev)
		}
	}
	return course.Validate()
}

// Delete removes a listed course. Edit state is left alone.
func (c *Controller) Delete(code string) (Notification, error) {
	if err := c.records.Delete(code); err != nil {
		return c.fail(code, err)
	}
	return Notification{Kind: Success, Message: fmt.Sprintf("Deleted %s", code)}, nil
}

func (c *Controller) fail(code string, err error) (Notification, error) {
	c.log.Warn("form action failed", zap.String("code", code), zap.Error(err))
	return Notification{Kind: Error, Message: err.Error()}, err
}
