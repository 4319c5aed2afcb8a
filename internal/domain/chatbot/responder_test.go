package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_FirstKeywordWins(t *testing.T) {
	// "hello" y "food" aparecen en el input; gana el que está primero
	// en la tabla, no el más específico.
	got := Match("hello, what food should I feed my dog")
	assert.Equal(t, "Woof! Hello there! How can I help you with your pet today?", got)
}

func TestMatch_TableOrderBreaksTies(t *testing.T) {
	// "hi" está antes que "bye" en la tabla.
	got := Match("hi, time to say bye")
	assert.Equal(t, "Woof! Hello there! How can I help you with your pet today?", got)
}

func TestMatch_CaseInsensitive(t *testing.T) {
	got := Match("TRAINING advice please")
	assert.Equal(t, "Positive reinforcement works best for training. Be patient and consistent!", got)
}

func TestMatch_SubstringAnywhere(t *testing.T) {
	// "adopt" matchea también dentro de "adoption".
	got := Match("how does the adoption process work?")
	assert.Equal(t, "Adopting a pet is a wonderful decision! Visit our adoption center to find your new friend.", got)
}

func TestMatch_Fallback(t *testing.T) {
	got := Match("xyz unrelated text")
	assert.Equal(t, fallbackReply, got)
	assert.Contains(t, got, "pet food, exercise, health, grooming, training, or adoption")
}

func TestMatch_Stateless(t *testing.T) {
	// Cada llamada es independiente: repetir el mismo input da siempre
	// la misma respuesta, sin memoria de conversación.
	first := Match("grooming?")
	second := Match("grooming?")
	assert.Equal(t, first, second)
}
