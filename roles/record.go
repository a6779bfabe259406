package roles

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Record is one user's custom role. Color holds the normalized "#rrggbb"
// form of whatever the user typed.
type Record struct {
	UserID    string    `json:"user_id"`
	RoleID    string    `json:"role_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
	badNameChars    = regexp.MustCompile("[@#`\\\\*_~|]")
	runWhitespace   = regexp.MustCompile(`\s{3,}`)
)

// ValidateRoleName trims and checks a user-supplied role name. Names that
// would break pings or render as Discord markdown are rejected.
func ValidateRoleName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Field: "name", Reason: "role name cannot be empty"}
	}
	if utf8.RuneCountInString(name) > 100 {
		return "", &ValidationError{Field: "name", Reason: "role name cannot exceed 100 characters"}
	}
	if badNameChars.MatchString(name) {
		return "", &ValidationError{Field: "name", Reason: "role name contains invalid characters"}
	}
	if runWhitespace.MatchString(name) {
		return "", &ValidationError{Field: "name", Reason: "role name has too much whitespace"}
	}
	return name, nil
}

// ParseHexColor parses "#rrggbb" or the short "#rgb" form (hash optional)
// into a Discord color value and its normalized "#rrggbb" representation.
func ParseHexColor(input string) (int, string, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(input), "#")
	if len(hex) == 3 {
		hex = fmt.Sprintf("%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2])
	}
	if !hexColorPattern.MatchString(hex) {
		return 0, "", &ValidationError{Field: "color", Reason: "use hex like #ff0000 or #f00"}
	}
	value, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, "", &ValidationError{Field: "color", Reason: "use hex like #ff0000 or #f00"}
	}
	return int(value), "#" + strings.ToLower(hex), nil
}
