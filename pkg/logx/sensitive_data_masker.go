package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Snapshot JSON fields.
	regexp.MustCompile(`(?s)("phones":\s?\[).*?(\])`),
	regexp.MustCompile(`(?s)("birthday":\s?\{).*?(\})`),
	// Phone numbers.
	regexp.MustCompile(`\b\d{10}\b`),
	// Birth dates.
	regexp.MustCompile(`\b\d{2}\.\d{2}\.\d{4}\b`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
