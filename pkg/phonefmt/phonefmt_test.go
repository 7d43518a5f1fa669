package phonefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected string
		wantErr  bool
	}{
		{
			name:     "local form",
			number:   "03001234567",
			expected: "923001234567",
		},
		{
			name:     "local form with dash",
			number:   "0300-1234567",
			expected: "923001234567",
		},
		{
			name:     "international with plus",
			number:   "+923001234567",
			expected: "923001234567",
		},
		{
			name:     "international without plus",
			number:   "923001234567",
			expected: "923001234567",
		},
		{
			name:     "bare subscriber form",
			number:   "3001234567",
			expected: "923001234567",
		},
		{
			name:     "spaces inside",
			number:   "0300 123 4567",
			expected: "923001234567",
		},
		{
			name:    "letters",
			number:  "0300123456a",
			wantErr: true,
		},
		{
			name:    "too short",
			number:  "0300123",
			wantErr: true,
		},
		{
			name:    "landline prefix",
			number:  "02112345678",
			wantErr: true,
		},
		{
			name:    "empty",
			number:  "",
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Normalize(test.number)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMobile)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expected, got)
		})
	}
}
