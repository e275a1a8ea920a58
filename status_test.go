package dispatch

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OK", StatusOK.String())
	assert.Equal(t, "Malformed Token Sequence", StatusMalformed.String())
	assert.Equal(t, "Status(42)", Status(42).String())
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{name: "nil", err: nil, want: StatusOK},
		{name: "sentinel", err: ErrNoMemory, want: StatusNoMemory},
		{name: "wrapped", err: pkgerrors.Wrap(ErrInvalidArgument, "context"), want: StatusInvalidArgument},
		{name: "malformed helper", err: malformedError("a,,b", 2), want: StatusMalformed},
		{name: "foreign error", err: errors.New("boom"), want: StatusMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestErrorsCause(t *testing.T) {
	err := invalidArgumentError("Join", "segments")
	assert.Equal(t, ErrInvalidArgument, pkgerrors.Cause(err))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrMalformed))
	assert.Contains(t, err.Error(), "Join: segments is required")
}
