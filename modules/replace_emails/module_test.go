package replace_emails

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceEmails(t *testing.T) {
	testCases := []struct{ in, want string }{
		{"mail me@example.com please", "mail <EMAIL> please"},
		{"a.b+tag@mail.example.co.uk, then", "<EMAIL>, then"},
		{"not an address: @handle", "not an address: @handle"},
		{"visit example.com now", "visit example.com now"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ReplaceEmails(tc.in), "input %q", tc.in)
	}
}
