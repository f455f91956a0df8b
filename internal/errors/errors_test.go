package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrapPlainError(t *testing.T) {
	cause := stderrors.New("file truncated")
	err := Wrap(cause, "loading dataset")

	appErr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("Wrap did not return *AppError: %T", err)
	}
	if appErr.Code != CodeInternal {
		t.Errorf("code = %q, want %q", appErr.Code, CodeInternal)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if err.Error() != "loading dataset: file truncated" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestWrapPreservesCode(t *testing.T) {
	inner := New(CodeLoad, "cannot open workbook")
	err := Wrap(inner, "familiar analysis")

	if CodeOf(err) != CodeLoad {
		t.Errorf("code = %q, want %q", CodeOf(err), CodeLoad)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil must stay nil")
	}
	if WithCode(CodeLoad, nil) != nil {
		t.Error("coding nil must stay nil")
	}
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeAnalysis, stderrors.New("variance is zero"))
	if CodeOf(err) != CodeAnalysis {
		t.Errorf("code = %q, want %q", CodeOf(err), CodeAnalysis)
	}
	if !IsAppError(err) {
		t.Error("WithCode should produce an AppError")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if CodeOf(stderrors.New("boom")) != CodeInternal {
		t.Error("plain errors default to the internal code")
	}
}
