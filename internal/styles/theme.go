package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED")
	Secondary = lipgloss.Color("#10B981")
	Error     = lipgloss.Color("#EF4444")
	Warning   = lipgloss.Color("#F59E0B")
	Muted     = lipgloss.Color("#6B7280")
	White     = lipgloss.Color("#FFFFFF")
	LightGray = lipgloss.Color("#E5E7EB")
	MatchBg   = lipgloss.Color("#78662B")

	// Header
	Header = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Padding(0, 1)

	// Section tabs
	TabActive = lipgloss.NewStyle().
			Foreground(White).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2)

	// Viewer styles
	ViewerTitle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	PageText = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	// Highlight span drawn over literal matches of the current selection
	Highlight = lipgloss.NewStyle().
			Background(MatchBg).
			Foreground(White)

	ChunkRow = lipgloss.NewStyle().
			Foreground(LightGray)

	ChunkRowActive = lipgloss.NewStyle().
			Foreground(White).
			Background(Primary)

	ChunkTimestamp = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	WarningBox = lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true).
			Padding(0, 1)

	// Answer panel
	AnswerTitle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	AnswerError = lipgloss.NewStyle().
			Foreground(Error).
			Padding(0, 1)

	SourceTag = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Muted)

	InputBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputBorderBlurred = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Muted).
				Padding(0, 1)

	// Status bar styles
	StatusBar = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	StatusBarBusy = lipgloss.NewStyle().
			Foreground(Primary).
			Padding(0, 1)

	StatusBarError = lipgloss.NewStyle().
			Foreground(Error).
			Padding(0, 1)

	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(Secondary).
				Padding(0, 1)
)
