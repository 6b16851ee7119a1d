// Package prefs persists the user's theme preference (dark/light) under a
// fixed key and hands it back at startup.
//
// The preference is deliberately forgiving: a missing or corrupted stored
// value reads as the light theme instead of an error, so the page always
// starts with a usable appearance.
//
// Two Store implementations are provided: MemoryStore for single-process
// deployments and tests, and RedisStore for deployments that should keep the
// preference across restarts.
//
// # Usage
//
//	store := prefs.NewMemoryStore()
//	theme, _ := store.Theme(ctx) // prefs.ThemeLight until set
//	_ = store.SetTheme(ctx, prefs.ThemeDark)
package prefs
