package model

// UIPrefs are process-wide presentation preferences, persisted under
// "uiPrefs" and reloaded at startup.
type UIPrefs struct {
	IsDark  bool `json:"isDark"`
	UIScale int  `json:"uiScale"` // 1=small … 4=x-large
}

// DefaultPrefs matches a fresh install: dark theme, normal scale.
func DefaultPrefs() UIPrefs {
	return UIPrefs{IsDark: true, UIScale: 2}
}
