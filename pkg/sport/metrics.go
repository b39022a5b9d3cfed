package sport

import (
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/planner/pkg/datekey"
)

// LitresPerKg is the daily water target per kilogram of body weight.
const LitresPerKg = 0.035

// BMI bands.
const (
	BMIUnknown  = "A ajuster"
	BMILean     = "Fin"
	BMIBalanced = "Equilibre"
	BMIWatch    = "A surveiller"
	BMIPriority = "Objectif prioritaire"
)

// Metrics are the figures derived from a card.
type Metrics struct {
	ActiveSessions     int       `json:"activeSessions"`
	CompletedSessions  int       `json:"completedSessions"`
	MinutesGoal        int       `json:"minutesGoal"`
	MinutesDone        int       `json:"minutesDone"`
	WeeklyPercent      int       `json:"weeklyPercent"`
	MinutesPercent     int       `json:"minutesPercent"`
	HydrationTarget    float64   `json:"hydrationTarget"`
	HydrationRemaining float64   `json:"hydrationRemaining"`
	HydrationProgress  float64   `json:"hydrationProgress"`
	BMI                float64   `json:"bmi"`
	BMIRounded         float64   `json:"bmiRounded"`
	BMIStatus          string    `json:"bmiStatus"`
	WeightProgress     int       `json:"weightProgress"`
	WaistProgress      int       `json:"waistProgress"`
	NextSession        *Session  `json:"nextSession,omitempty"`
	EndDate            string    `json:"endDate,omitempty"`
	Weeks              []Insight `json:"weeks"`
}

// Compute derives the metrics of st.
func Compute(st State) Metrics {
	var m Metrics
	sched := schedule(st)
	for _, session := range sched {
		done := slices.Contains(st.CompletedSessionIDs, session.ID)
		if done {
			m.MinutesDone += session.DurationMinutes
		}
		if session.IsRest() {
			continue
		}
		m.ActiveSessions++
		m.MinutesGoal += session.DurationMinutes
		if done {
			m.CompletedSessions++
		} else if m.NextSession == nil {
			next := session
			m.NextSession = &next
		}
	}
	m.WeeklyPercent = percent(float64(m.CompletedSessions), float64(m.ActiveSessions))
	m.MinutesPercent = percent(float64(m.MinutesDone), float64(m.MinutesGoal))

	m.HydrationTarget = round(st.CurrentWeightKg*LitresPerKg, 2)
	m.HydrationRemaining = math.Max(m.HydrationTarget-st.WaterLiters, 0)
	if m.HydrationTarget > 0 {
		m.HydrationProgress = math.Min(st.WaterLiters/m.HydrationTarget, 1)
	}

	if st.HeightCm > 0 {
		meters := st.HeightCm / 100
		m.BMI = st.CurrentWeightKg / (meters * meters)
	}
	m.BMIRounded = math.Round(m.BMI*10) / 10
	m.BMIStatus = bmiStatus(m.BMI)

	m.WeightProgress = progress(st.StartWeightKg, st.CurrentWeightKg, st.GoalWeightKg)
	m.WaistProgress = progress(st.StartWaistCm, st.WaistCm, st.GoalWaistCm)

	if start, err := datekey.Parse(st.StartDate, time.UTC); err == nil {
		m.EndDate = datekey.Day(start.AddDate(0, 0, ProgramWeeks*7))
	}

	m.Weeks = slices.Clone(pastWeeks)
	m.Weeks[len(m.Weeks)-1].Percent = m.WeeklyPercent
	return m
}

func bmiStatus(bmi float64) string {
	switch {
	case bmi == 0:
		return BMIUnknown
	case bmi < 18.5:
		return BMILean
	case bmi < 25:
		return BMIBalanced
	case bmi < 30:
		return BMIWatch
	}
	return BMIPriority
}

// progress is how far current went from start toward goal, in whole
// percent clamped to 0..100. A goal that is not below start yields 0.
func progress(start, current, goal float64) int {
	delta := start - goal
	if delta <= 0 {
		return 0
	}
	p := int(math.Round((start - current) / delta * 100))
	return max(0, min(100, p))
}

func percent(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
