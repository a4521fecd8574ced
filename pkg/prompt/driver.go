package prompt

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt session.
var ErrAborted = errors.New("prompt: aborted by user")

// Driver abstracts the interactive terminal implementation so the variable
// collection logic can be tested without a TTY and callers can swap
// implementations.
type Driver interface {
	// Input asks for a free-form value, offering def as the default.
	Input(message, def string) (string, error)

	// Select asks the user to choose one of options; the first option is the
	// default.
	Select(message string, options []string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(message string, def bool) (bool, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns the survey-backed Driver used for real terminal
// sessions.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

func (d *surveyDriver) Input(message, def string) (string, error) {
	var out string
	p := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(p, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(message string, options []string) (string, error) {
	var out string
	p := &survey.Select{Message: message, Options: options}
	if len(options) > 0 {
		p.Default = options[0]
	}
	if err := survey.AskOne(p, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(message string, def bool) (bool, error) {
	var out bool
	p := &survey.Confirm{Message: message, Default: def}
	if err := survey.AskOne(p, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
