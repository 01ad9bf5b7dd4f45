package commandmeta

import (
	"strings"
)

const RootCommandName = "heckler-report"

type OutputPolicy uint8

const (
	OutputPolicyStructured OutputPolicy = iota
	OutputPolicyTextOnly
)

// RequiresBootstrapPath reports whether the command needs a loaded
// configuration and a report store.
func RequiresBootstrapPath(commandPath string) bool {
	switch strings.TrimSpace(commandPath) {
	case RootCommandName + " process",
		RootCommandName + " show":
		return true
	default:
		return false
	}
}

func EmitsExecutionStatusPath(path string) bool {
	switch strings.TrimSpace(path) {
	case RootCommandName + " process":
		return true
	default:
		return false
	}
}

func OutputPolicyForPath(path string) OutputPolicy {
	normalized := strings.TrimSpace(path)
	if strings.HasPrefix(normalized, RootCommandName+" completion") {
		return OutputPolicyTextOnly
	}
	return OutputPolicyStructured
}
