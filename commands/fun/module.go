package fun

import (
	"github.com/bwmarrin/discordgo"

	"RoleBot/commands"
)

func init() {
	module := &commands.ModuleInfo{
		Name:        "Fun",
		Description: "Dice and coin commands",
		Category:    "Fun",
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "coinflip",
				Description: "Flip a coin!",
				Handler:     CoinFlip,
			},
			{
				Name:        "roll",
				Description: "Roll custom dice (e.g. 1d6, 2d20)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "dice",
						Description: "Dice notation (e.g. 1d6, 2d20, 3d8)",
						Required:    true,
					},
				},
				Handler: Roll,
			},
		},
	}

	commands.RegisterModule(module)
}
