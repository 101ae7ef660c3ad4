package ui

// AppMode identifies a screen. The navigation stack holds at most one screen
// per mode.
type AppMode int

const (
	ModeLogin AppMode = iota
	ModeDashboard
	ModeEvents
	ModeParticipations
	ModeProfile
)

func (m AppMode) String() string {
	switch m {
	case ModeLogin:
		return "Login"
	case ModeDashboard:
		return "Dashboard"
	case ModeEvents:
		return "MyEvents"
	case ModeParticipations:
		return "Participations"
	case ModeProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}
