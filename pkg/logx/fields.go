package logx

const (
	FieldAppName    = "app-name"
	FieldAppVersion = "app-version"
	FieldArgs       = "args"
	FieldBookPath   = "book-path"
	FieldCommand    = "command"
	FieldContact    = "contact"
	FieldDurationMs = "duration-ms"
	FieldError      = "error"
	FieldErrorCode  = "error-code"
	FieldRecords    = "records"
	FieldSessionID  = "session-id"
	FieldStack      = "stack"
)
