package sport

// Focus is what a session trains.
type Focus string

const (
	Strength Focus = "strength"
	Cardio   Focus = "cardio"
	Core     Focus = "core"
	Rest     Focus = "rest"
	Mobility Focus = "mobility"
)

// Accent is the colour of a focus.
func (f Focus) Accent() string {
	switch f {
	case Strength:
		return "#f97316"
	case Cardio:
		return "#0ea5e9"
	case Core:
		return "#6366f1"
	case Mobility:
		return "#4ade80"
	}
	return "#94a3b8"
}

// Session kinds.
const (
	Pending = "pending"
	RestDay = "rest"
)

// Session is one day of the weekly program.
type Session struct {
	ID              string `json:"id"`
	Day             string `json:"day"`
	Title           string `json:"title"`
	Details         string `json:"details"`
	DurationMinutes int    `json:"durationMinutes"`
	Icon            string `json:"icon"`
	Focus           Focus  `json:"focus"`
	DefaultStatus   string `json:"defaultStatus"`
}

// IsRest reports whether the session is a rest day. Rest days cannot be
// ticked and count for nothing.
func (s Session) IsRest() bool {
	return s.DefaultStatus == RestDay
}

// ProgramWeeks is the program length.
const ProgramWeeks = 8

// Week is the template the program repeats every week.
var Week = []Session{
	{ID: "sport-mon", Day: "Lundi", Title: "Full body", Details: "Squats, pompes, gainage", DurationMinutes: 45, Icon: "\U0001F4AA", Focus: Strength, DefaultStatus: Pending},
	{ID: "sport-tue", Day: "Mardi", Title: "Cardio", Details: "Course 30 min + etirements", DurationMinutes: 40, Icon: "\U0001F3C3", Focus: Cardio, DefaultStatus: Pending},
	{ID: "sport-wed", Day: "Mercredi", Title: "Repos", Details: "Hydratation et sommeil", DurationMinutes: 0, Icon: "\U0001F4A4", Focus: Rest, DefaultStatus: RestDay},
	{ID: "sport-thu", Day: "Jeudi", Title: "Haut du corps", Details: "Tractions, dips, gainage", DurationMinutes: 50, Icon: "\U0001F4AA", Focus: Strength, DefaultStatus: Pending},
	{ID: "sport-fri", Day: "Vendredi", Title: "Abdos", Details: "Circuit 5 exercices", DurationMinutes: 30, Icon: "\U0001F525", Focus: Core, DefaultStatus: Pending},
	{ID: "sport-sat", Day: "Samedi", Title: "Cardio leger", Details: "Velo doux ou marche active", DurationMinutes: 45, Icon: "\U0001F6B4", Focus: Cardio, DefaultStatus: Pending},
	{ID: "sport-sun", Day: "Dimanche", Title: "Repos actif", Details: "Yoga, respiration, stretching", DurationMinutes: 0, Icon: "\U0001F9D8", Focus: Mobility, DefaultStatus: RestDay},
}

func template(id string) (Session, bool) {
	for _, s := range Week {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// NutritionTips are shown next to the program.
var NutritionTips = []string{
	"Priorise un repas riche en glucides complexes 2h avant l entrainement.",
	"Planifie une collation proteinee +/- 30g dans les 45 min apres l effort.",
	"Fais le plein de legumes colores pour soutenir la recuperation.",
}

// Link is a labelled URL.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Videos are follow-along sessions.
var Videos = []Link{
	{Label: "Routine mobility 10 min", Href: "https://www.youtube.com/watch?v=FzU5j1K0osA"},
	{Label: "HIIT cardio express", Href: "https://www.youtube.com/watch?v=ml6cT4AZdqI"},
	{Label: "Seance yoga recovery", Href: "https://www.youtube.com/watch?v=4pKly2JojMw"},
}

// Insight is the completion of one past week.
type Insight struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// pastWeeks are sample figures. The last week is replaced by the live one.
var pastWeeks = []Insight{
	{ID: "week-1", Label: "S1", Percent: 45},
	{ID: "week-2", Label: "S2", Percent: 62},
	{ID: "week-3", Label: "S3", Percent: 70},
	{ID: "week-4", Label: "S4", Percent: 80},
}

// TimerPresets are the countdown lengths offered, in seconds.
var TimerPresets = []int{30, 45, 60, 90}

// DefaultTimerPreset is the preselected countdown length.
const DefaultTimerPreset = 45
