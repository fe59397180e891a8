package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"ftask/internal/store"
)

// ErrTaskIDRequired is returned when no task id argument was given.
var ErrTaskIDRequired = errors.New("task id required")

// parseTaskID parses the single positional task id argument used by the
// done, edit and rm commands.
func parseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}

// saveStore persists the store after a mutation. Returns true on success.
func saveStore(st *store.Store, errOut io.Writer) bool {
	if err := st.Save(); err != nil {
		fmt.Fprintf(errOut, "error: save failed: %v\n", err)
		return false
	}
	return true
}
