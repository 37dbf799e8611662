// pkg/interaction/prompt.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// IsTTY reports whether stdin is an interactive terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PromptWithDefault prompts the user and returns their response, or the
// default value when they just press enter.
func PromptWithDefault(ctx context.Context, label, defaultValue string) (string, error) {
	reader := bufio.NewReader(os.Stdin)
	text, err := ReadLine(ctx, reader, fmt.Sprintf("%s [%s]", label, defaultValue))
	if err != nil {
		return "", err
	}
	if text == "" {
		return defaultValue, nil
	}
	return text, nil
}

// PromptSecret asks the user for a hidden input (no terminal echo).
func PromptSecret(ctx context.Context, prompt string) (string, error) {
	logger := otelzap.Ctx(ctx)

	if !IsTTY() {
		logger.Error("❌ Cannot prompt for secret input: not a TTY")
		return "", fmt.Errorf("secret prompt failed: no terminal available")
	}

	fmt.Fprint(os.Stderr, prompt+": ")
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		logger.Error("❌ Failed to read secret input", zap.Error(err))
		return "", err
	}
	secret := strings.TrimSpace(string(bytePassword))
	if secret == "" {
		logger.Warn("⚠️ No input received for secret", zap.String("prompt", prompt))
	}
	return secret, nil
}

// PromptYesNo asks a yes/no question and returns true/false. Falls back to
// the default when the answer is unrecognized or input fails.
func PromptYesNo(ctx context.Context, prompt string, defaultYes bool) bool {
	logger := otelzap.Ctx(ctx)

	defPrompt := DefaultYesPrompt
	if !defaultYes {
		defPrompt = DefaultNoPrompt
	}
	label := fmt.Sprintf("%s [%s]", prompt, defPrompt)

	reader := bufio.NewReader(os.Stdin)
	input, err := ReadLine(ctx, reader, label)
	if err != nil {
		logger.Error("Failed to read yes/no input", zap.Error(err))
		return defaultYes
	}

	if answer, ok := NormalizeYesNoInput(input); ok {
		return answer
	}

	logger.Debug("ℹ️ Default applied", zap.String("prompt", prompt), zap.Bool("default_yes", defaultYes))
	return defaultYes
}

// PromptValidated asks for input until the validator passes.
func PromptValidated(ctx context.Context, label string, validator func(string) error) (string, error) {
	reader := bufio.NewReader(os.Stdin)
	for {
		input, err := ReadLine(ctx, reader, label)
		if err != nil {
			return "", err
		}
		if err := validator(input); err != nil {
			fmt.Fprintln(os.Stderr, "❌", err)
			continue
		}
		return input, nil
	}
}
