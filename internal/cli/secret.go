package cli

import (
	"fmt"
	"io"

	"github.com/terraincognita07/babybloom/internal/security"
)

func RunGenerateSecretCommand(length int, out io.Writer) error {
	if length <= 0 {
		length = security.DefaultSecretKeyLength
	}
	secret, err := security.NewSecretKey(length)
	if err != nil {
		return fmt.Errorf("generate secret key: %w", err)
	}
	fmt.Fprintf(out, "SECRET_KEY=%s\n", secret)
	return nil
}
