package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"cafe", "cafe"},
		{"  CAFÉ  ", "cafe"},
		{"Hôtel", "hotel"},
		{"Site touristique", "site touristique"},
		{"", ""},
		{"   ", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeCategory(c.in), "input %q", c.in)
	}
}
