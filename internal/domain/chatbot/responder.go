package chatbot

import "strings"

// rule es un par (keyword, reply). La tabla es una secuencia ordenada,
// no un map: el orden de definición es el desempate observable cuando un
// input contiene más de un keyword.
type rule struct {
	keyword string
	reply   string
}

var rules = []rule{
	{"hello", "Woof! Hello there! How can I help you with your pet today?"},
	{"hi", "Woof! Hello there! How can I help you with your pet today?"},
	{"food", "Pets need a balanced diet with high-quality food. Always provide fresh water!"},
	{"exercise", "Daily exercise is important for pets. Dogs need walks, cats need playtime!"},
	{"health", "Regular vet check-ups and vaccinations keep your pet healthy and happy."},
	{"grooming", "Regular grooming helps maintain your pet's coat and overall hygiene."},
	{"training", "Positive reinforcement works best for training. Be patient and consistent!"},
	{"adopt", "Adopting a pet is a wonderful decision! Visit our adoption center to find your new friend."},
	{"thank", "You're welcome! Woof woof!"},
	{"bye", "Goodbye! Remember to give your pet extra cuddles today!"},
}

// Fallback cuando ningún keyword aparece en el input.
const fallbackReply = "I'm not sure about that. Try asking about pet food, exercise, health, grooming, training, or adoption!"

// Match devuelve la respuesta del primer keyword que aparezca como
// substring del input (case-insensitive). Cada llamada es independiente:
// no hay memoria de conversación.
func Match(input string) string {
	msg := strings.ToLower(input)
	for _, r := range rules {
		if strings.Contains(msg, r.keyword) {
			return r.reply
		}
	}
	return fallbackReply
}
