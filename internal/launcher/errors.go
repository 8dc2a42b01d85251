package launcher

import "fmt"

// ExitCode defines the launcher's exit code contract. A launched game's own
// non-zero exit code is propagated as-is and can overlap with these; the
// codes below only cover failures of the launcher itself.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidManifest indicates the pack manifest is missing or invalid.
	ExitInvalidManifest ExitCode = 2

	// ExitBootstrapFailed indicates a pack download or checksum
	// verification failed during bootstrap.
	ExitBootstrapFailed ExitCode = 3

	// ExitEntryPointMissing indicates no game binary was found, neither in
	// the isolated environment nor on PATH.
	ExitEntryPointMissing ExitCode = 4
)

// CLIError carries an exit code alongside the error message so the command
// layer can translate failures into the right process exit status.
type CLIError struct {
	Code    ExitCode
	Message string
	Err     error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError that wraps an underlying error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
