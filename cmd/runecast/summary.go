package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/economy"
	"github.com/lixenwraith/runecast/engine"
	"github.com/lixenwraith/runecast/history"
	"github.com/lixenwraith/runecast/spell"
	"github.com/lixenwraith/runecast/systems"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7d56f4")).
			Padding(0, 1)

	hitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7ee787"))
	missStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7b72"))
)

func rgbColor(c core.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func rarityStyle(r spell.RarityTier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(rgbColor(r.Color()))
}

func row(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-14s", label)) + value
}

// renderSummary is printed after the terminal is released
func renderSummary(stats engine.SessionStats, essence []economy.Entry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Session summary"))
	b.WriteString("\n\n")

	rate := 0.0
	if stats.Casts > 0 {
		rate = float64(stats.Successes) / float64(stats.Casts) * 100
	}
	b.WriteString(row("casts", fmt.Sprintf("%d (%d timed out)", stats.Casts, stats.Timeouts)) + "\n")
	b.WriteString(row("successes", fmt.Sprintf("%d (%.0f%%)", stats.Successes, rate)) + "\n")
	b.WriteString(row("total damage", fmt.Sprintf("%d", stats.TotalDamage)) + "\n")
	b.WriteString(row("best hit", fmt.Sprintf("%d", stats.BestDamage)) + "\n")
	b.WriteString(row("best accuracy", fmt.Sprintf("%.0f%%", stats.BestAccuracy*100)))

	if len(essence) > 0 {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("Essence"))
		for _, e := range essence {
			b.WriteString("\n" + row(e.Type, fmt.Sprintf("%d left, %d spent", e.Balance, e.Spent)))
		}
	}

	return boxStyle.Render(b.String())
}

// renderCatalog lists spells with their rarity tint and damage range
func renderCatalog(defs []spell.Definition) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%-4s %-18s %-10s %-9s %-7s %s", "slot", "name", "rarity", "damage", "points", "essence")))
	for i, d := range defs {
		costs := make([]string, len(d.Essence))
		for j, c := range d.Essence {
			costs[j] = fmt.Sprintf("%s:%d", c.Type, c.Amount)
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-4d %-18s ", i+1, d.DisplayName()))
		b.WriteString(rarityStyle(d.Rarity).Render(fmt.Sprintf("%-10s", d.Rarity)))
		b.WriteString(fmt.Sprintf(" %3d-%-5d %-7d %s", d.MinDamage, d.MaxDamage, len(d.Path), strings.Join(costs, ",")))
	}
	return b.String()
}

// renderHistory shows recent casts newest first plus the all-time summary
func renderHistory(records []history.Record, sum history.Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%-19s %-18s %-7s %6s %8s %6s", "when", "spell", "result", "damage", "accuracy", "time")))

	for _, r := range records {
		result := hitStyle.Render(fmt.Sprintf("%-7s", "HIT"))
		if !r.Success {
			result = missStyle.Render(fmt.Sprintf("%-7s", "FIZZLE"))
		}
		elapsed := fmt.Sprintf("%.1fs", r.Elapsed.Seconds())
		if r.TimedOut {
			elapsed += "!"
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-19s %-18s %s %6d %7.0f%% %6s",
			r.ResolvedAt.Format("2006-01-02 15:04:05"), r.SpellName, result, r.Damage, r.Accuracy*100, elapsed))
	}

	if len(records) == 0 {
		b.WriteString("\n" + labelStyle.Render("no casts recorded"))
	}

	b.WriteString("\n\n")
	b.WriteString(row("casts", fmt.Sprintf("%d (%d hit, %d timed out)", sum.Casts, sum.Successes, sum.Timeouts)) + "\n")
	b.WriteString(row("damage", fmt.Sprintf("%d total, %d best", sum.TotalDamage, sum.BestDamage)) + "\n")
	b.WriteString(row("accuracy", fmt.Sprintf("%.0f%% mean", sum.MeanAccuracy*100)))
	if sum.Casts > 0 && systems.IsSuccess(sum.MeanAccuracy) {
		b.WriteString(" " + hitStyle.Render("(passing)"))
	}
	return b.String()
}
