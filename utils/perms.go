package utils

import "github.com/bwmarrin/discordgo"

// HasPermission checks the invoking member's resolved permissions on an
// interaction. Discord computes these per-channel, so no role walking is
// needed here.
func HasPermission(i *discordgo.InteractionCreate, permission int64) bool {
	if i.Member == nil {
		return false
	}
	return i.Member.Permissions&permission != 0
}

// IsAdmin reports whether the invoking member has administrator rights.
func IsAdmin(i *discordgo.InteractionCreate) bool {
	return HasPermission(i, discordgo.PermissionAdministrator)
}
