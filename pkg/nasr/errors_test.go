package nasr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/airnav-tools/nasr/pkg/nasr"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, nasr.ExitSuccess},
		{"invalid config", nasr.ErrInvalidConfig, nasr.ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("parse: %w", nasr.ErrInvalidConfig), nasr.ExitConfigError},
		{"file missing", nasr.ErrFileMissing, nasr.ExitFileMissing},
		{"schema invalid", nasr.ErrSchemaInvalid, nasr.ExitSchemaInvalid},
		{"parse aborted", nasr.ErrParseAborted, nasr.ExitParseAborted},
		{"fs pattern", errors.New("open APT.txt: no such file or directory"), nasr.ExitFileMissing},
		{"unclassified", errors.New("boom"), nasr.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nasr.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
