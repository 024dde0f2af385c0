package main

import (
	"fmt"
	"strings"

	"github.com/bnema/chaos-recipe-filter/internal/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1)
)

var summaryTypes = []models.ItemType{
	models.ItemTypeHelmet,
	models.ItemTypeBody,
	models.ItemTypeGloves,
	models.ItemTypeBoots,
	models.ItemTypeWeapon,
	models.ItemTypeRing,
	models.ItemTypeAmulet,
	models.ItemTypeBelt,
}

// renderActive shows which item types currently have a filter section
func renderActive(active models.ActiveItemTypes) string {
	parts := make([]string, 0, len(summaryTypes))
	for _, t := range summaryTypes {
		if active.IsActive(t) {
			parts = append(parts, activeStyle.Render(t.String()))
		} else {
			parts = append(parts, inactiveStyle.Render(t.String()))
		}
	}
	return titleStyle.Render("Active:") + " " + strings.Join(parts, " ")
}

func renderNewlyActive(types []models.ItemType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return noticeStyle.Render("Now highlighting: " + strings.Join(names, ", "))
}

// renderSwatch draws a small block in the class background color
func renderSwatch(argb string) string {
	c, err := models.ParseARGB(argb)
	if err != nil {
		return "?"
	}
	hex := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

func renderConfigError(err *models.ConfigurationError) string {
	title := titleStyle.Render("Configuration error")
	body := err.Reason
	if err.Field != "" {
		body = err.Field + ": " + err.Reason
	}
	return errorBox.Render(title + "\n" + body)
}
