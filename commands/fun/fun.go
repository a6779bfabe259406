package fun

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"RoleBot/bot"
	"RoleBot/commands"
)

var dicePattern = regexp.MustCompile(`(?i)^(\d+)d(\d+)$`)

// CoinFlip handles /coinflip.
func CoinFlip(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	result := "Heads"
	color := 0x00ff00
	if rand.Intn(2) == 1 {
		result = "Tails"
		color = 0xff0000
	}
	commands.RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Coin Flip Result: %s!", result),
		Color: color,
	})
}

// Roll handles /roll with standard XdY dice notation.
func Roll(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var notation string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "dice" {
			notation = strings.TrimSpace(opt.StringValue())
		}
	}

	match := dicePattern.FindStringSubmatch(notation)
	if match == nil {
		commands.Respond(s, i, "Invalid dice format! Use format like `1d6`, `2d20`, etc.")
		return
	}
	numDice, _ := strconv.Atoi(match[1])
	dieSides, _ := strconv.Atoi(match[2])
	if numDice < 1 || numDice > 100 {
		commands.Respond(s, i, "Number of dice must be between 1 and 100!")
		return
	}
	if dieSides < 2 || dieSides > 1000 {
		commands.Respond(s, i, "Die sides must be between 2 and 1000!")
		return
	}

	rolls := make([]string, numDice)
	total := 0
	for n := 0; n < numDice; n++ {
		roll := rand.Intn(dieSides) + 1
		rolls[n] = strconv.Itoa(roll)
		total += roll
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s Results", strings.ToUpper(notation)),
		Color: 0x3498db,
	}
	if numDice == 1 {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Result", Value: fmt.Sprintf("**%s**", rolls[0])},
		}
	} else {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Individual Rolls", Value: strings.Join(rolls, ", ")},
			{Name: "Total", Value: fmt.Sprintf("**%d**", total)},
		}
	}
	commands.RespondEmbed(s, i, embed)
}
