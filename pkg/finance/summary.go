package finance

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Monthly report constants.
const (
	topCategories   = 3
	savingsTarget   = 0.9
	minBarHeightPct = 8
)

// CategoryTotal is the spending of one category.
type CategoryTotal struct {
	CategoryInfo
	Amount decimal.Decimal `json:"amount"`
}

// SavingsIdea suggests trimming the biggest category by a tenth.
type SavingsIdea struct {
	CategoryInfo
	Current decimal.Decimal `json:"current"`
	Target  decimal.Decimal `json:"target"`
	Saving  decimal.Decimal `json:"saving"`
}

// PieSegment is a slice of the spending pie, angles in degrees.
type PieSegment struct {
	CategoryInfo
	Value      decimal.Decimal `json:"value"`
	StartAngle float64         `json:"startAngle"`
	EndAngle   float64         `json:"endAngle"`
}

// Bars compares the starting and ending balance. Heights are percentages of
// the larger magnitude with a visible minimum.
type Bars struct {
	Start         decimal.Decimal `json:"start"`
	End           decimal.Decimal `json:"end"`
	StartHeight   int             `json:"startHeight"`
	EndHeight     int             `json:"endHeight"`
	StartNegative bool            `json:"startNegative"`
	EndNegative   bool            `json:"endNegative"`
}

// Summary is everything the finance page shows for one month.
type Summary struct {
	Month             string          `json:"month"`
	Entries           []Entry         `json:"entries"`
	Totals            []CategoryTotal `json:"totals"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	NetCashflow       decimal.Decimal `json:"netCashflow"`
	Top               []CategoryTotal `json:"top"`
	Idea              *SavingsIdea    `json:"idea,omitempty"`
	StartingAmount    decimal.Decimal `json:"startingAmount"`
	EndingAmount      decimal.Decimal `json:"endingAmount"`
	SavedAmount       decimal.Decimal `json:"savedAmount"`
	SavingsPercentage float64         `json:"savingsPercentage"`
	Pie               []PieSegment    `json:"pie"`
	Bars              Bars            `json:"bars"`
}

// Summarize computes the report for the entries of month and its starting
// balance. Spending without a category counts toward the total only.
func Summarize(month string, entries []Entry, starting decimal.Decimal) Summary {
	sum := Summary{Month: month, Entries: entries, StartingAmount: starting}

	byCategory := make(map[Category]decimal.Decimal, len(Categories))
	spent, income := decimal.Zero, decimal.Zero
	for _, e := range entries {
		v := e.Value()
		if e.Flow() == In {
			income = income.Add(v)
			continue
		}
		spent = spent.Add(v)
		if e.Category != "" {
			byCategory[e.Category] = byCategory[e.Category].Add(v)
		}
	}
	sum.TotalSpent = spent.Round(2)
	sum.TotalIncome = income.Round(2)
	sum.NetCashflow = sum.TotalIncome.Sub(sum.TotalSpent).Round(2)

	sum.Totals = make([]CategoryTotal, 0, len(Categories))
	for _, info := range Categories {
		sum.Totals = append(sum.Totals, CategoryTotal{CategoryInfo: info, Amount: byCategory[info.Category]})
	}

	positive := slices.DeleteFunc(slices.Clone(sum.Totals), func(t CategoryTotal) bool { return !t.Amount.IsPositive() })
	ranked := slices.Clone(positive)
	slices.SortStableFunc(ranked, func(a, b CategoryTotal) int { return b.Amount.Cmp(a.Amount) })
	sum.Top = ranked[:min(topCategories, len(ranked))]

	if len(sum.Top) > 0 {
		top := sum.Top[0]
		target := top.Amount.Mul(decimal.NewFromFloat(savingsTarget))
		sum.Idea = &SavingsIdea{
			CategoryInfo: top.CategoryInfo,
			Current:      top.Amount,
			Target:       target,
			Saving:       top.Amount.Sub(target),
		}
	}

	sum.EndingAmount = starting.Add(sum.NetCashflow).Round(2)
	sum.SavedAmount = sum.EndingAmount.Sub(starting).Round(2)
	if starting.IsPositive() {
		sum.SavingsPercentage = sum.SavedAmount.Div(starting).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	sum.Pie = pie(positive)
	sum.Bars = bars(starting, sum.EndingAmount)
	return sum
}

func pie(totals []CategoryTotal) []PieSegment {
	total := decimal.Zero
	for _, t := range totals {
		total = total.Add(t.Amount)
	}
	segments := make([]PieSegment, 0, len(totals))
	if !total.IsPositive() {
		return segments
	}
	start := 0.0
	for _, t := range totals {
		angle := t.Amount.Div(total).Mul(decimal.NewFromInt(360)).InexactFloat64()
		segments = append(segments, PieSegment{
			CategoryInfo: t.CategoryInfo,
			Value:        t.Amount,
			StartAngle:   start,
			EndAngle:     start + angle,
		})
		start += angle
	}
	return segments
}

func bars(start, end decimal.Decimal) Bars {
	maxValue := decimal.Max(start.Abs(), end.Abs(), decimal.NewFromInt(1))
	height := func(v decimal.Decimal) int {
		pct := int(v.Abs().Div(maxValue).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		return max(minBarHeightPct, pct)
	}
	return Bars{
		Start:         start,
		End:           end,
		StartHeight:   height(start),
		EndHeight:     height(end),
		StartNegative: start.IsNegative(),
		EndNegative:   end.IsNegative(),
	}
}
