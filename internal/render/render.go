// Package render construye los view-models que consume el cliente
// estático: funciones puras de datos de dominio a structs de
// presentación, sin tocar ningún DOM ni template.
package render

import (
	"strings"

	"pawkind/internal/domain/caretips"
	"pawkind/internal/domain/pets"
	"pawkind/internal/domain/stories"
)

type PetCard struct {
	ID        string
	Name      string
	TypeLabel string // "Dog", "Cat" — tipo con mayúscula inicial
	Age       string
	Bio       string
	Emoji     string
	Image     string
}

func PetCards(items []pets.Pet) []PetCard {
	out := make([]PetCard, 0, len(items))
	for _, p := range items {
		emoji := p.Emoji
		if emoji == "" {
			emoji = pets.DefaultEmoji
		}
		out = append(out, PetCard{
			ID:        p.ID,
			Name:      p.Name,
			TypeLabel: capitalize(string(p.Type)),
			Age:       p.Age,
			Bio:       p.Bio,
			Emoji:     emoji,
			Image:     p.Image,
		})
	}
	return out
}

type TipCard struct {
	Icon    string
	Title   string
	Content string
}

func TipCards(items []caretips.CareTip) []TipCard {
	out := make([]TipCard, 0, len(items))
	for _, t := range items {
		out = append(out, TipCard{
			Icon:    t.Icon,
			Title:   t.Title,
			Content: t.Content,
		})
	}
	return out
}

type StoryCard struct {
	Emoji  string
	Quote  string // historia entre comillas, como la muestra el feed
	Author string // "- <name>"
	Image  string
}

func StoryCards(items []stories.SuccessStory) []StoryCard {
	out := make([]StoryCard, 0, len(items))
	for _, s := range items {
		emoji := s.Emoji
		if emoji == "" {
			emoji = stories.DefaultEmoji
		}
		out = append(out, StoryCard{
			Emoji:  emoji,
			Quote:  `"` + s.Story + `"`,
			Author: "- " + s.Name,
			Image:  s.Image,
		})
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
