package errors

import "fmt"

var (
	ErrUnknownOperation = fmt.Errorf("unknown operation")
	ErrMalformedName    = fmt.Errorf("name is not in \"First Last\" form")
	ErrMissingLetter    = fmt.Errorf("letter must not be empty")
	ErrNotTextFile      = fmt.Errorf("roster is not a plain text file")
)
