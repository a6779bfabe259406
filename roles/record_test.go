package roles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		value      int
		normalized string
		wantErr    bool
	}{
		{name: "full form with hash", input: "#FFD700", value: 0xFFD700, normalized: "#ffd700"},
		{name: "full form without hash", input: "ff0000", value: 0xFF0000, normalized: "#ff0000"},
		{name: "short form", input: "#f00", value: 0xFF0000, normalized: "#ff0000"},
		{name: "short form without hash", input: "abc", value: 0xAABBCC, normalized: "#aabbcc"},
		{name: "surrounding whitespace", input: "  #ffffff ", value: 0xFFFFFF, normalized: "#ffffff"},
		{name: "not a color", input: "notacolor", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "bad hex digits", input: "#gggggg", wantErr: true},
		{name: "wrong length", input: "#ffff", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, normalized, err := ParseHexColor(tt.input)
			if tt.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "color", validationErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.normalized, normalized)
		})
	}
}

func TestValidateRoleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "VIP", want: "VIP"},
		{name: "trimmed", input: "  Night Owl  ", want: "Night Owl"},
		{name: "max length", input: strings.Repeat("a", 100), want: strings.Repeat("a", 100)},
		{name: "non-ascii counts runes not bytes", input: strings.Repeat("ü", 60), want: strings.Repeat("ü", 60)},
		{name: "max length non-ascii", input: strings.Repeat("ろ", 100), want: strings.Repeat("ろ", 100)},
		{name: "too many runes", input: strings.Repeat("ろ", 101), wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "only spaces", input: "   ", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 101), wantErr: true},
		{name: "mention character", input: "hey @everyone", wantErr: true},
		{name: "markdown characters", input: "**bold**", wantErr: true},
		{name: "backtick", input: "code`name", wantErr: true},
		{name: "excessive whitespace", input: "too    far apart", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateRoleName(tt.input)
			if tt.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "name", validationErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
