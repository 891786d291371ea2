package layout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for document formats other than YAML and JSON.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrParse wraps syntax and decoding errors of a document.
	ErrParse = errors.New("malformed document")
	// ErrNoLayout is returned for documents without a layout node.
	ErrNoLayout = errors.New("document has no layout")
	// ErrUnknownKind is reported for nodes whose kind is not recognized.
	ErrUnknownKind = errors.New("unknown node kind")
	// ErrUnknownRef is reported for references to undefined nodes.
	ErrUnknownRef = errors.New("reference to undefined node")
	// ErrCycle is reported when node references form a cycle.
	ErrCycle = errors.New("reference cycle")
	// ErrNoMarkdown is reported for markdown nodes when no renderer is configured.
	ErrNoMarkdown = errors.New("no markdown renderer configured")
)

// NodeError describes a problem with one node of a document.
type NodeError struct {
	Path   string // Location of the node, e.g. "layout.children[2]"
	Reason string // Human-readable reason for failure
	Err    error  // Underlying error, if any
}

func (e *NodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("node %s: %s", e.Path, e.Reason)
	}
	if e.Reason == "" {
		return fmt.Sprintf("node %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("node %s: %s: %v", e.Path, e.Reason, e.Err)
}

func (e *NodeError) Unwrap() error { return e.Err }

// Message is the error without the node path.
func (e *NodeError) Message() string {
	switch {
	case e.Err == nil:
		return e.Reason
	case e.Reason == "":
		return e.Err.Error()
	}
	return e.Reason + ": " + e.Err.Error()
}

// AggregateError collects every node error found while compiling a document.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d layout errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err.Error())
	}
	return b.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// NodeErrors returns the node errors in err if it is an AggregateError.
// Otherwise returns nil.
func NodeErrors(err error) []*NodeError {
	var aggr *AggregateError
	if !errors.As(err, &aggr) {
		return nil
	}
	out := make([]*NodeError, 0, len(aggr.Errors))
	for _, e := range aggr.Errors {
		var ne *NodeError
		if errors.As(e, &ne) {
			out = append(out, ne)
		}
	}
	return out
}
