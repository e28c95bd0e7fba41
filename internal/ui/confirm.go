package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirm displays a styled prompt and reads a yes/no answer from
// stdin. Only an explicit "y" or "yes" proceeds; everything else,
// including a read error, declines.
func Confirm(prompt string) bool {
	fmt.Print(PromptStyle.Render(prompt + " [y/N]: "))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	fmt.Println(CancelStyle.Render("Operation cancelled."))
	return false
}

// ConfirmLifecycleAction is a pre-configured confirmation for domain
// lifecycle commands, e.g. "Shut down vm1?".
func ConfirmLifecycleAction(verb, domain string) bool {
	return Confirm(fmt.Sprintf("%s %s?", verb, domain))
}
