package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — attention
	colorSuccess     = lipgloss.Color("#00E676") // Green — completed
	colorDanger      = lipgloss.Color("#FF5252") // Red — errors
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface — status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface — footer bg
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Status icons for goal completion state.
const (
	iconDone    = "✓"
	iconPending = "·"
	iconNoGoal  = "–"
)

var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleFooter = lipgloss.NewStyle().
			Background(colorSurfaceDim).
			Foreground(colorMutedLight).
			Padding(0, 1)

	styleSelection = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowTitle = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleRowDone = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleRowPending = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	styleFormLabel = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleFormHelp = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	stylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)
)
