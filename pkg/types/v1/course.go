package v1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Course is a single course record. Code is its identity.
type Course struct {
	Code        string      `json:"code" yaml:"code" validate:"required"`
	Name        string      `json:"name" yaml:"name" validate:"required"`
	Progression Progression `json:"progression" yaml:"progression" validate:"required,oneof=A B C"`
	Syllabus    string      `json:"syllabus" yaml:"syllabus" validate:"required,url"`
}

var (
	validate = validator.New()

	ErrNoCode = errors.New("course has no code")
)

// Check enforces what every stored course needs: a code and a known
// progression. Records written by older versions may fail Validate and still
// pass Check.
func (c *Course) Check() error {
	if c.Code == "" {
		return ErrNoCode
	}
	if !c.Progression.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownProgression, c.Progression)
	}
	return nil
}

// Validate checks the course against its struct tags and returns an error
// describing the offending fields in plain words.
func (c *Course) Validate() error {
	return c.validate(nil)
}

// ValidateChanged is Validate for an edit of prev. Name and syllabus are only
// checked if they differ from prev.
func (c *Course) ValidateChanged(prev Course) error {
	unchanged := map[string]bool{
		"Name":     c.Name == prev.Name,
		"Syllabus": c.Syllabus == prev.Syllabus,
	}
	return c.validate(unchanged)
}

func (c *Course) validate(skip map[string]bool) error {
	err := validate.Struct(*c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if skip[fe.Field()] {
			continue
		}
		msgs = append(msgs, fieldMessage(fe))
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("%s", strings.Join(msgs, ", "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url":
		return field + " must be a valid URL"
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

// Markdown renders the course as a small markdown card.
func (c *Course) Markdown() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "# %s - %s\n\n", c.Code, c.Name)
	fmt.Fprintf(&b, "**Progression:** %s\n\n", c.Progression)
	fmt.Fprintf(&b, "**Syllabus:** [%s](%s)\n", c.Syllabus, c.Syllabus)
	return b.String()
}
