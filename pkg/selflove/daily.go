package selflove

import "strings"

// Affirmations rotate by day.
var Affirmations = []string{
	"Je m'offre la même douceur que je donne aux autres.",
	"Je suis déjà assez et je le reste à chaque souffle.",
	"Ma présence est un cadeau pour ce monde.",
	"Je choisis de me regarder avec de l'amour aujourd'hui.",
	"Je laisse ma lumière briller sans me cacher.",
	"Je suis digne de tendresse, de joie et de paix.",
}

// Quotes rotate by day.
var Quotes = []string{
	"\"S’aimer soi-même est le début d’une histoire d’amour qui dure toute la vie.\" — Oscar Wilde",
	"\"Tu es ton propre refuge. Tu es ton propre soleil.\"",
	"\"Tu es le résultat de l’amour de toutes les femmes qui t’ont précédée.\"",
	"\"N’oublie pas de t’émerveiller de ta force douce.\"",
	"\"Tu es une œuvre en mouvement, magnifique à chaque étape.\"",
}

// fallbackQuality stands in when the board has no quality.
const fallbackQuality = "Je m'aime pour qui je suis."

// dayHash sums the character codes of key. The sum does not depend on the
// reading direction.
func dayHash(key string) int {
	sum := 0
	for _, r := range key {
		sum += int(r)
	}
	return sum
}

// AffirmationOfDay picks the affirmation for dayKey.
func AffirmationOfDay(dayKey string) string {
	return Affirmations[dayHash(dayKey)%len(Affirmations)]
}

// QuoteOfDay picks the quote for dayKey.
func QuoteOfDay(dayKey string) string {
	return Quotes[dayHash(dayKey)%len(Quotes)]
}

// Certificate builds the share text for qualities on dayKey.
func Certificate(qualities []Note, dayKey string) string {
	lines := make([]string, 0, len(qualities))
	for _, q := range qualities {
		lines = append(lines, "• "+q.Text)
	}
	if len(lines) == 0 {
		lines = append(lines, "• "+fallbackQuality)
	}
	return strings.Join([]string{
		"✨ Certificat de pure beauté ✨",
		"Je célèbre la personne que je suis :",
		strings.Join(lines, "\n"),
		AffirmationOfDay(dayKey),
	}, "\n")
}
