package journal

// Feeling is the weather of the day.
type Feeling string

const (
	Happy Feeling = "happy"
	Pout  Feeling = "pout"
	Angry Feeling = "angry"
	Tired Feeling = "tired"
)

// FeelingInfo is how a feeling is shown.
type FeelingInfo struct {
	Value Feeling `json:"value"`
	Label string  `json:"label"`
	Emoji string  `json:"emoji"`
}

// Feelings in display order. The first one is the default.
var Feelings = []FeelingInfo{
	{Happy, "Bien", "🌈"},
	{Pout, "Boudeuse", "🌦️"},
	{Angry, "En colere", "🔥"},
	{Tired, "Fatiguee", "🌙"},
}

// LookupFeeling returns the display info of f.
func LookupFeeling(f Feeling) (FeelingInfo, bool) {
	for _, info := range Feelings {
		if info.Value == f {
			return info, true
		}
	}
	return FeelingInfo{}, false
}

// Moods offered by the journal.
var Moods = []string{"Sereine", "Energisee", "Equilibree", "Fatiguee", "Fiere"}

// DefaultMood is preselected for a new entry.
const DefaultMood = "Equilibree"

// FieldKind tells free text prompts from multiple choice ones.
type FieldKind string

const (
	Textarea   FieldKind = "textarea"
	Checkboxes FieldKind = "checkboxes"
)

// PromptField is one question of a prompt section.
type PromptField struct {
	ID          string
	Kind        FieldKind
	Label       string
	Placeholder string
	Options     []string
}

// PromptSection groups related questions.
type PromptSection struct {
	ID          string
	Icon        string
	Title       string
	Accent      string
	Description string
	Helper      string
	Fields      []PromptField
}

// DatePromptField is answered with the entry date unless the writer answers
// it.
const DatePromptField = "prompt-date"

// Prompts is the guided journaling sequence.
var Prompts = []PromptSection{
	{
		ID:          "daily-state",
		Icon:        "🕯️",
		Title:       "1. Etat du jour",
		Accent:      "#ffe9f1",
		Description: "Concentre-toi sur ce que tu ressens, sur ton humeur et sur l’instant présent.",
		Fields: []PromptField{
			{ID: DatePromptField, Kind: Textarea, Label: "Quelle est la date d'aujourdhui ?", Placeholder: "Laisse ton cœur parler ici…"},
			{ID: "prompt-mood-now", Kind: Textarea, Label: "Comment je me suis sentie ?", Placeholder: "Laisse monter les sensations, les émotions ou les mots qui te viennent."},
			{ID: "prompt-mood-influence", Kind: Textarea, Label: "Qu’est-ce qui a influencé mon humeur aujourd’hui ? (Événements, pensées, personnes, énergie, météo...)", Placeholder: "Note ce qui a changé ton humeur ou ton énergie."},
			{ID: "prompt-learning", Kind: Textarea, Label: "Qu'ai-je appris ou compris sur moi-meme aujourdhui ?", Placeholder: "Dépose tes pensées…"},
		},
	},
	{
		ID:          "daily-celebration",
		Icon:        "💫",
		Title:       "2. Ma journee",
		Accent:      "#e0f2fe",
		Description: "Revis les belles choses et célèbre ce qui compte.",
		Fields: []PromptField{
			{ID: "prompt-highlights", Kind: Textarea, Label: "Qu'est-ce qui s'est bien passe aujourd'hui ?", Placeholder: "Liste tes victoires, même minuscules."},
			{ID: "prompt-gratitude", Kind: Textarea, Label: "De quoi suis-je reconnaissant(e) ?", Placeholder: "Exprime ce qui remplit ton coeur."},
			{ID: "prompt-replay", Kind: Textarea, Label: "Y a-t-il un moment que j'aimerais revivre ?", Placeholder: "Quel souvenir doux veux-tu garder precieusement ?"},
			{ID: "prompt-magic-wand", Kind: Textarea, Label: "Si j'avais une baguette magique, qu'est-ce que je changerais dans cette journee ?", Placeholder: "Note ce qui te vient spontanément…"},
		},
	},
	{
		ID:          "abundance-affirmations",
		Icon:        "💰",
		Title:       "3. Affirmations pour attirer l'argent et l'abondance",
		Accent:      "#f3efff",
		Description: "Invite la prosperite dans ton esprit avec des mots qui vibrent pour toi.",
		Helper:      "Choisis-en 3 a 5 ou ecris les tiennes.",
		Fields: []PromptField{
			{ID: "prompt-money-affirmations", Kind: Checkboxes, Label: "Ce que je souhaite repeter", Options: []string{
				"L'argent circule vers moi facilement et en abondance.",
				"Je merite la richesse sous toutes ses formes.",
				"Chaque jour, je deviens un aimant a opportunites financieres.",
				"Je suis reconnaissant(e) pour tout l'argent qui entre dans ma vie.",
				"Mes actions attirent la prosperite naturellement.",
			}},
			{ID: "prompt-money-custom", Kind: Textarea, Label: "Tes mots magiques", Placeholder: "Compose tes propres affirmations lumineuses."},
		},
	},
	{
		ID:          "confidence-affirmations",
		Icon:        "🌟",
		Title:       "4. Affirmations pour la confiance en soi",
		Accent:      "#fef3c7",
		Description: "Renforce ta confiance et ancre-toi dans ta valeur.",
		Helper:      "Choisis-en 3 a 5 ou ecris les tiennes.",
		Fields: []PromptField{
			{ID: "prompt-confidence-affirmations", Kind: Checkboxes, Label: "Ce que je me repete", Options: []string{
				"Je crois en mes capacites et je suis fier(fiere) de moi.",
				"Je suis digne d'amour, de succes et de respect.",
				"Je suis en securite d'etre moi-meme.",
				"Chaque jour, je deviens plus sur(e) et plus fort(e).",
				"Ma presence a de la valeur.",
			}},
			{ID: "prompt-confidence-custom", Kind: Textarea, Label: "Tes declarations personnelles", Placeholder: "Ecris des mots doux qui te ressemblent."},
		},
	},
	{
		ID:          "visualisation",
		Icon:        "🌙",
		Title:       "5. Visualisation / Intention",
		Accent:      "#e9f7f3",
		Description: "Projette-toi avec douceur vers demain.",
		Fields: []PromptField{
			{ID: "prompt-intention", Kind: Textarea, Label: "Quelle est mon intention pour demain ?", Placeholder: "Pose ton intention la plus douce pour la suite."},
			{ID: "prompt-feeling", Kind: Textarea, Label: "Comment je veux me sentir demain ?", Placeholder: "Imagine l ambiance emotionnelle que tu souhaites vivre."},
			{ID: "prompt-self-version", Kind: Textarea, Label: "Quelle version de moi suis-je en train de devenir ?", Placeholder: "Decris la personne que tu nourris pas a pas."},
		},
	},
}

// LookupField finds a prompt field by id.
func LookupField(id string) (PromptField, bool) {
	for _, section := range Prompts {
		for _, field := range section.Fields {
			if field.ID == id {
				return field, true
			}
		}
	}
	return PromptField{}, false
}
