package validator

import (
	"errors"
	"testing"

	"ctchen222/tictactoe-ai/pkg/proto"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientMessageValidation(t *testing.T) {
	tests := []struct {
		name      string
		msg       proto.ClientToServerMessage
		wantField string
	}{
		{name: "Click with position", msg: proto.ClientToServerMessage{Type: proto.TypeClick, Position: []int{10, 20}}},
		{name: "Restart without position", msg: proto.ClientToServerMessage{Type: proto.TypeRestart}},
		{name: "Missing type", msg: proto.ClientToServerMessage{}, wantField: "type"},
		{name: "Unknown type", msg: proto.ClientToServerMessage{Type: "move"}, wantField: "type"},
		{name: "Position with three values", msg: proto.ClientToServerMessage{Type: proto.TypeClick, Position: []int{1, 2, 3}}, wantField: "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GetValidator().Struct(tt.msg)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
			assert.Equal(t, tt.wantField, verrs[0].Field())
		})
	}
}
