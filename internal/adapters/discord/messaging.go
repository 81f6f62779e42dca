package discord

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Nada de lo que mandamos puede mencionar a nadie.
var noMentions = &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}

// DeferEphemeral: para comandos que tardan más de 3s.
func (r *Router) DeferEphemeral(ic *discordgo.InteractionCreate) error {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:           discordgo.MessageFlagsEphemeral,
			AllowedMentions: noMentions,
		},
	})
	if err != nil {
		r.log.Warn("[bot] defer failed", zap.Error(err))
	}
	return err
}

func (r *Router) ReplyEphemeral(ic *discordgo.InteractionCreate, content string, embeds ...*discordgo.MessageEmbed) {
	err := r.followup(ic, content, embeds)
	if err == nil {
		return
	}

	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		r.log.Warn("[bot] reply failed", zap.Error(err))
		return
	}

	switch {
	// sin defer previo el webhook no existe todavía: respondemos directo
	case restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownWebhook:
		err = r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content:         content,
				Embeds:          embeds,
				Flags:           discordgo.MessageFlagsEphemeral,
				AllowedMentions: noMentions,
			},
		})

	// embed rechazado: mandamos lo mismo como texto para no dejar el defer colgado
	case len(embeds) > 0 && restErr.Response != nil && restErr.Response.StatusCode == http.StatusBadRequest:
		r.log.Warn("[bot] embed rejected, sending text", zap.ByteString("body", restErr.ResponseBody))
		err = r.followup(ic, fallbackText(content, embeds), nil)
	}
	if err != nil {
		r.log.Warn("[bot] reply failed", zap.Error(err))
	}
}

func (r *Router) followup(ic *discordgo.InteractionCreate, content string, embeds []*discordgo.MessageEmbed) error {
	_, err := r.s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content:         content,
		Embeds:          embeds,
		Flags:           discordgo.MessageFlagsEphemeral,
		AllowedMentions: noMentions,
	})
	return err
}

// fallbackText aplana embeds a un mensaje de texto dentro del límite de contenido.
func fallbackText(content string, embeds []*discordgo.MessageEmbed) string {
	parts := []string{content}
	for _, e := range embeds {
		if e == nil {
			continue
		}
		if e.Title != "" {
			parts = append(parts, "**"+e.Title+"**")
		}
		parts = append(parts, e.Description)
		for _, f := range e.Fields {
			parts = append(parts, "**"+f.Name+"**\n"+f.Value)
		}
		if e.Footer != nil {
			parts = append(parts, e.Footer.Text)
		}
		if e.URL != "" {
			parts = append(parts, e.URL)
		}
	}
	return truncate(strings.TrimSpace(joinNonEmpty("\n", parts...)), maxContent)
}
