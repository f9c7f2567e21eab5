// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package compose

import "github.com/jeranaias/rigrun-composer/internal/config"

// ConfigReloadedMsg delivers a config file change from the watcher. Err is
// set when the new file failed to load; the current config stays in effect.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// clipboardResultMsg reports the outcome of a copy.
type clipboardResultMsg struct {
	err error
}

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)
