// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the terminal composer.

All colors are Lip Gloss AdaptiveColor values, so one palette serves light
and dark terminals. A Theme binds every style to a lipgloss.Renderer; the
theme name ("dark", "light" or "auto") decides whether the renderer's
background detection is overridden.

# Color System (colors.go)

  - Purple - message borders and indices
  - Cyan - prompt and single-line mode
  - Amber - multiline mode and warnings
  - Emerald - success
  - Rose - errors

Status notices always pair a color with an ASCII indicator ([OK], [X], [!],
[i]) so they read without color.

# Theme (theme.go)

	theme := styles.NewTheme(cfg.UI.Theme)
	theme.SetSize(width, height)
	fmt.Println(theme.Success("exported"))
*/
package styles
