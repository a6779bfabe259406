package customroles

import (
	"github.com/bwmarrin/discordgo"

	"RoleBot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "CustomRoles",
		Description: "Personal custom roles placed above the community anchor role",
		Category:    "Roles",
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "customrole",
				Description: "Create or update your personal custom role",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Name for your custom role (max 100 characters)",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "color",
						Description: "Color in hex format (e.g. #ff0000, or #f00)",
						Required:    false,
					},
				},
				Handler: CustomRole,
			},
			{
				Name:        "mycustomrole",
				Description: "View your custom role information",
				Handler:     MyCustomRole,
			},
			{
				Name:        "deletecustomrole",
				Description: "Delete your personal custom role",
				Handler:     DeleteCustomRole,
			},
			{
				Name:        "cleanuproles",
				Description: "Remove custom role records whose role is gone (admin only)",
				Handler:     CleanupRoles,
			},
			{
				Name:        "roleinfo",
				Description: "Show custom role positioning diagnostics (admin only)",
				Handler:     RoleInfo,
			},
		},
	}

	commands.RegisterModule(module)
}
