package errors

import "fmt"

var (
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrInvalidFormat        = fmt.Errorf("invalid chat format")
	ErrUnknownServiceKind   = fmt.Errorf("unknown service kind")
	ErrNilService           = fmt.Errorf("service is nil")
	ErrIncomparableService  = fmt.Errorf("service can not be compared, register a pointer")
	ErrMetadataNotFound     = fmt.Errorf("no metadata stored for participant")
	ErrEmptyParticipantName = fmt.Errorf("participant name is empty")
	ErrUnknownCommand       = fmt.Errorf("unknown command")
	ErrMalformedChatLine    = fmt.Errorf("chat line must look like 'name: message'")
)
