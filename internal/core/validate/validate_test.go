package validate

import (
	"errors"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid title", "Home", false},
		{"valid with spaces", "About me", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PanelTitle(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "PanelTitle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestPanelTitleField(t *testing.T) {
	err := PanelTitleField("panels[2].title", " ")
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "panels[2].title", fieldErrs[0].Field)

	assert.NoError(t, PanelTitleField("panels[0].title", "Home"))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"bare address", "someone@example.com", false},
		{"named address", "Someone <someone@example.com>", false},
		{"missing at", "someone.example.com", true},
		{"garbage", "<<>>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Email(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}
