package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// Confirm prompts the user for yes/no confirmation.
// Returns ErrAborted if the user presses Ctrl+C.
func Confirm(label string, defaultYes bool) (bool, error) {
	defaultStr := "y/N"
	if defaultYes {
		defaultStr = "Y/n"
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s [%s]", label, defaultStr),
		IsConfirm: true,
	}

	result, err := prompt.Run()
	return parseConfirm(result, err, defaultYes)
}

// parseConfirm interprets the outcome of a confirm prompt. promptui reports
// a "no" answer as ErrAbort.
func parseConfirm(result string, err error, defaultYes bool) (bool, error) {
	if err != nil {
		switch {
		case errors.Is(err, promptui.ErrAbort):
			if result == "" {
				return defaultYes, nil
			}
			return false, nil
		default:
			return false, wrapError(err)
		}
	}

	switch strings.ToLower(strings.TrimSpace(result)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ConfirmOverwrite asks before replacing an existing file. It returns true
// without prompting when force is set or when path does not exist yet.
func ConfirmOverwrite(path string, exists, force bool) (bool, error) {
	if force || !exists {
		return true, nil
	}
	return Confirm(fmt.Sprintf("%s already exists. Overwrite", path), false)
}
