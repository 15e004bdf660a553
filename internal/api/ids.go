package api

import (
	"strconv"
	"strings"

	"todo-list/internal/errors"
	"todo-list/internal/validation"
)

var idRules = validation.NewTaskValidator()

// ParseTaskID parses a task id supplied by a user or a request
func ParseTaskID(s string) (int64, error) {
	id, err := parseID(s)
	if err == nil {
		err = idRules.ValidateTaskID(id)
	}
	if err != nil {
		return 0, errors.NewInvalidInputError("task_id", s, "must be a positive integer")
	}
	return id, nil
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
