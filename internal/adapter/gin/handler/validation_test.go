package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClientEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{email: "max@mustermann.de", want: true},
		{email: "max@localhost", want: true},
		{email: "max.mustermann+bank@mail.example.com", want: true},
		{email: "MAX@MUSTERMANN.DE", want: true},
		{email: "jürgen@bank.de", want: true},
		{email: `"max mustermann"@bank.de`, want: true},
		{email: "max@[127.0.0.1]", want: true},
		{email: "invalid-email", want: false},
		{email: "max@", want: false},
		{email: "@mustermann.de", want: false},
		{email: "max..mustermann@bank.de", want: false},
		{email: ".max@bank.de", want: false},
		{email: "max@-bank.de", want: false},
		{email: "max@bank..de", want: false},
		{email: "max mustermann@bank.de", want: false},
		{email: strings.Repeat("a", 65) + "@bank.de", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, isClientEmail(tt.email))
		})
	}
}

func TestValidationMessage_Fallback(t *testing.T) {
	assert.Equal(t, "Email should be valid", validationMessage("email", "client_email"))
	assert.Equal(t, "iban is invalid", validationMessage("iban", "required"))
}
