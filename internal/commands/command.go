package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
	TypeCopy   Type = "copy"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

// RowArgs addresses a task by its 1-based position in the rendered list.
type RowArgs struct {
	Row int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Toggle *RowArgs
	Delete *RowArgs
	Copy   *RowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, ":") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, ":"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	rest := strings.TrimSpace(raw[len(parts[0]):])

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeToggle:
		args, err := parseRow(head, parts[1:])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeToggle, Raw: input, Toggle: &args}, nil
	case TypeDelete:
		args, err := parseRow(head, parts[1:])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeDelete, Raw: input, Delete: &args}, nil
	case TypeCopy:
		args, err := parseRow(head, parts[1:])
		if err != nil {
			return Command{}, err
		}
		return Command{Type: TypeCopy, Raw: input, Copy: &args}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, text string) (Command, error) {
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseRow(head string, args []string) (RowArgs, error) {
	if len(args) != 1 {
		return RowArgs{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires one row number", head)}
	}
	row, err := strconv.Atoi(args[0])
	if err != nil || row < 1 {
		return RowArgs{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s: invalid row %q", head, args[0])}
	}
	return RowArgs{Row: row}, nil
}
