package runner

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/redate/redate/datefmt"
	"github.com/redate/redate/model"
)

// ErrCanceled is returned by a Prompter when the user backs out of a
// prompt instead of answering it.
var ErrCanceled = errors.New("runner: canceled")

// Prompter asks the user to pick and edit. The terminal implementation
// lives here; tests script their own.
type Prompter interface {
	SelectCommit(commits []*model.Commit) (*model.Commit, error)
	EditDate(current, def string) (string, error)
	Confirm(label string, def bool) (bool, error)
}

type termPrompter struct{}

func NewTermPrompter() Prompter {
	return termPrompter{}
}

func (termPrompter) SelectCommit(commits []*model.Commit) (*model.Commit, error) {
	labels := make([]string, len(commits))
	for i, c := range commits {
		labels[i] = c.Label()
	}
	sel := promptui.Select{
		Label: "Choose a commit",
		Items: labels,
		Size:  10,
	}
	i, _, err := sel.Run()
	if err != nil {
		return nil, promptErr(err)
	}
	return commits[i], nil
}

func (termPrompter) EditDate(current, def string) (string, error) {
	p := promptui.Prompt{
		Label:   fmt.Sprintf("Change commit date [%s]", current),
		Default: def,
		Validate: func(s string) error {
			_, err := datefmt.ToCommitFormat(s)
			return err
		},
	}
	s, err := p.Run()
	if err != nil {
		return "", promptErr(err)
	}
	return s, nil
}

func (termPrompter) Confirm(label string, def bool) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if def {
		p.Default = "y"
	}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, promptErr(err)
	}
	return true, nil
}

func promptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrCanceled
	}
	return err
}
