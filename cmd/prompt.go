package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	responseYes = "yes"
	responseY   = "y"
)

// stdin is swapped out in tests.
var stdin io.Reader = os.Stdin

// IsAssumeYes returns true if we should skip confirmation prompts
func IsAssumeYes() bool {
	return assumeYesFlag
}

// resolveKey returns the key from the positional args, or prompts for one on
// stdin when none was given.
func resolveKey(args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	fmt.Print("Enter a key: ")
	reader := bufio.NewReader(stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ConfirmPrompt asks the user for confirmation
func ConfirmPrompt(message string) (bool, error) {
	if assumeYesFlag {
		return true, nil
	}

	yellow := color.New(color.FgYellow)
	_, _ = yellow.Printf("%s [y/N]: ", message)

	reader := bufio.NewReader(stdin)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == responseY || response == responseYes, nil
}

// PrintWarning prints a yellow warning line to stderr.
func PrintWarning(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow, color.Bold)
	_, _ = yellow.Fprint(os.Stderr, "Warning: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
