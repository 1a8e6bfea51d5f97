package document

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeKind reports an operation applied to a node of the wrong
	// kind, e.g. splitting a text run as if it were a block.
	ErrInvalidNodeKind = errors.New("invalid node kind")
	// ErrUnknownNode reports an id that was never allocated or has been removed.
	ErrUnknownNode = errors.New("unknown node")
	// ErrOutOfRange reports an offset or index outside the node's bounds.
	ErrOutOfRange = errors.New("offset out of range")
	// ErrCycle reports an insertion that would make a node its own ancestor.
	ErrCycle = errors.New("node would contain itself")
)

// Error describes a failed tree operation.
type Error struct {
	Op   string
	Node NodeID
	Err  error
}

func (e *Error) Error() string {
	if e.Node == NoNode {
		return fmt.Sprintf("document: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("document: %s node %d: %v", e.Op, e.Node, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op string, id NodeID, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return &Error{Op: op, Node: id, Err: err}
}
