package entities

// CommandResult is the captured outcome of an external CLI invocation that
// managed to start. Launch failures are reported as errors instead.
type CommandResult struct {
	Output   []byte
	ExitCode int
}

// Succeeded reports whether the command exited with status zero.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}
