package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain/contract"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	poemModel       = "claude-sonnet-4-5-20250929"
	poemMaxTokens   = 512
	poemTemperature = 0.8
	poemTimeout     = 30 * time.Second
)

// FallbackPoem is posted whenever the generative call fails, so the thread
// always carries a poem.
const FallbackPoem = `Another year around the sun,
With laughter, cake and lots of fun.
From all of us, both near and far:
Happy birthday, wherever you are!`

type poemGenerator struct {
	client anthropic.Client
}

func NewPoemGenerator(apiKey string) contract.PoemGenerator {
	return &poemGenerator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Generate asks the model for a short celebratory poem built from the
// collected descriptions. It never returns an error: any failure, timeout or
// empty completion falls back to FallbackPoem.
func (g *poemGenerator) Generate(ctx context.Context, descriptions []string) string {
	ctx, cancel := context.WithTimeout(ctx, poemTimeout)
	defer cancel()

	response, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       poemModel,
		MaxTokens:   poemMaxTokens,
		Temperature: anthropic.Float(poemTemperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPoemPrompt(descriptions))),
		},
	})
	if err != nil {
		log.Printf("Poem generation failed, using fallback: %v", err)
		return FallbackPoem
	}

	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	poem := strings.TrimSpace(text.String())
	if poem == "" {
		log.Println("Poem generation returned empty output, using fallback")
		return FallbackPoem
	}

	return poem
}

func buildPoemPrompt(descriptions []string) string {
	var prompt strings.Builder
	prompt.WriteString("Write a short, warm, celebratory birthday poem for a colleague. ")
	prompt.WriteString("Use line breaks between verses and do not add any preamble or commentary, only the poem itself.\n")

	if len(descriptions) > 0 {
		prompt.WriteString("Their colleagues describe them like this:\n")
		for _, description := range descriptions {
			prompt.WriteString("- ")
			prompt.WriteString(description)
			prompt.WriteString("\n")
		}
	}

	return prompt.String()
}
