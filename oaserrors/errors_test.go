package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceError_Is(t *testing.T) {
	err := &ReferenceError{URI: "#/components/schemas/Pet"}
	assert.True(t, errors.Is(err, ErrReference))

	plain := &ReferenceError{URI: "https://example.com/api.yaml"}
	assert.True(t, errors.Is(plain, ErrReference))
}

func TestScriptError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &ScriptError{Position: "VisitSchemaStart", Cause: cause}
	assert.True(t, errors.Is(err, ErrScript))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "VisitSchemaStart")
}

func TestDiffError_Error(t *testing.T) {
	err := &DiffError{FailedFiles: []string{"a.go", "b.go"}, TotalFiles: 5}
	assert.True(t, errors.Is(err, ErrDiff))
	assert.Contains(t, err.Error(), "2")
	assert.Contains(t, err.Error(), "5")
}

func TestProgrammerError_Panic(t *testing.T) {
	assert.PanicsWithValue(t, &ProgrammerError{Message: "arity 11 exceeds maximum of 10"}, func() {
		Panic("arity %d exceeds maximum of %d", 11, 10)
	})
}

func TestOutputError_Error(t *testing.T) {
	err := &OutputError{File: "client.go", Mode: "APPEND", Message: "permission denied"}
	assert.True(t, errors.Is(err, ErrOutput))
	assert.Contains(t, err.Error(), "client.go")
	assert.Contains(t, err.Error(), "APPEND")
}
