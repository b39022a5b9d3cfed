package profile

// Sign is a zodiac sign.
type Sign struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// Signs lists the zodiac in calendar order starting with Bélier.
var Signs = []Sign{
	{Value: "Bélier", Label: "Bélier · 21 mars – 19 avril", Emoji: "♈"},
	{Value: "Taureau", Label: "Taureau · 20 avril – 20 mai", Emoji: "♉"},
	{Value: "Gémeaux", Label: "Gémeaux · 21 mai – 20 juin", Emoji: "♊"},
	{Value: "Cancer", Label: "Cancer · 21 juin – 22 juillet", Emoji: "♋"},
	{Value: "Lion", Label: "Lion · 23 juillet – 22 août", Emoji: "♌"},
	{Value: "Vierge", Label: "Vierge · 23 août – 22 septembre", Emoji: "♍"},
	{Value: "Balance", Label: "Balance · 23 septembre – 22 octobre", Emoji: "♎"},
	{Value: "Scorpion", Label: "Scorpion · 23 octobre – 21 novembre", Emoji: "♏"},
	{Value: "Sagittaire", Label: "Sagittaire · 22 novembre – 21 décembre", Emoji: "♐"},
	{Value: "Capricorne", Label: "Capricorne · 22 décembre – 19 janvier", Emoji: "♑"},
	{Value: "Verseau", Label: "Verseau · 20 janvier – 18 février", Emoji: "♒"},
	{Value: "Poissons", Label: "Poissons · 19 février – 20 mars", Emoji: "♓"},
}

// DefaultSign is used when none is chosen.
const DefaultSign = "Bélier"

// LookupSign finds a sign by value. Unknown values yield the default sign
// and false.
func LookupSign(value string) (Sign, bool) {
	for _, s := range Signs {
		if s.Value == value {
			return s, true
		}
	}
	return Signs[0], false
}
