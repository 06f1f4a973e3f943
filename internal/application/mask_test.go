package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "<empty>"},
		{"a@b.com", "a@b.com"},
		{"ab@b.com", "ab@b.com"},
		{"abc@b.com", "ab*@b.com"},
		{"testemail@gmail.com", "te*******@gmail.com"},
		{"noatsign", "no******"},
		{"xy", "xy"},
		{"@domain.com", "@domain.com"},
		{"ééx@a.com", "éé*@a.com"},
		{"éé@a.com", "éé@a.com"},
		{"日本語テスト@example.jp", "日本****@example.jp"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskEmail(tt.in), "input %q", tt.in)
	}
}
