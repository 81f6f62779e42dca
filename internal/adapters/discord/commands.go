package discord

import "github.com/bwmarrin/discordgo"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "ping",
		Description: "Chequea que el bot y el backend respondan",
	},
	{
		Name:        "match",
		Description: "Infografía de un partido (odds, clima, H2H, forma)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "home",
				Description: "Equipo local",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "away",
				Description: "Equipo visitante",
				Required:    true,
			},
		},
	},
	{
		Name:        "report",
		Description: "Muestra un reporte guardado",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "id",
			Description: "ID del snapshot",
			Required:    true,
		}},
	},
	{
		Name:        "recent",
		Description: "Últimos reportes guardados",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "team",
			Description: "Filtrar por equipo",
		}},
	},
}
