package rolesystems

import (
	"github.com/bwmarrin/discordgo"

	"RoleBot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "RoleSystems",
		Description: "Named sets of selectable role options",
		Category:    "Roles",
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "rolesystem-set",
				Description: "Create or replace a role system (admin only)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Name of the role system",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "options",
						Description: "Comma-separated role options",
						Required:    true,
					},
				},
				Handler: SetSystem,
			},
			{
				Name:        "rolesystem-list",
				Description: "List configured role systems",
				Handler:     ListSystems,
			},
			{
				Name:        "rolesystem-delete",
				Description: "Delete a role system (admin only)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Name of the role system",
						Required:    true,
					},
				},
				Handler: DeleteSystem,
			},
		},
	}

	commands.RegisterModule(module)
}
