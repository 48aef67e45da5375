package config

import (
	"fmt"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
	"github.com/midian/base/errors"
)

// Issue is one problem found in a configuration file.
type Issue struct {
	// Path is the field path, such as ["queueSize"].
	Path []string

	// Message describes the problem.
	Message string

	// Position is "file:line:column", or empty when unknown.
	Position string
}

// String returns "path: message".
func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", strings.Join(i.Path, "."), i.Message)
}

// Issues returns the problems recorded on an error returned by Load.
func Issues(err error) []Issue {
	var appErr errors.AppError
	if !errors.As(err, &appErr) {
		return nil
	}
	issues, _ := appErr.Context()["issues"].([]Issue)
	return issues
}

// parseError wraps a CUE error as KindParse and records its issues.
func parseError(err error, message, filename string) errors.AppError {
	return errors.WithContextMap(errors.Wrap(err, errors.KindParse, message), map[string]interface{}{
		"file":   filename,
		"issues": extractIssues(err),
	})
}

func extractIssues(err error) []Issue {
	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issue := Issue{
			Path:    e.Path(),
			Message: fmt.Sprintf(format, args...),
		}
		if positions := e.InputPositions(); len(positions) > 0 && positions[0].IsValid() {
			issue.Position = positions[0].String()
		}
		issues = append(issues, issue)
	}
	return issues
}
