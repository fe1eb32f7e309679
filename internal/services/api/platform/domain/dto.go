// Package domain holds DTOs and ports for the platform module
package domain

import "billnote/internal/core/platform"

// Input carries one link or local path. Blank input is allowed; classification is total
type Input struct {
	Input string `json:"input" validate:"max=4096" example:"https://www.bilibili.com/video/BV1xx411c7xx/"`
}

// ClassifyOutput is the tag for an input
type ClassifyOutput struct {
	Platform    platform.Tag `json:"platform"     example:"bilibili"`
	DisplayName string       `json:"display_name" example:"Bilibili"`
}

// RulesOutput is the rule table in evaluation order plus refused keywords
type RulesOutput struct {
	Rules   []platform.RuleInfo `json:"rules"`
	Blocked []string            `json:"blocked_keywords"`
}

// NormalizeOutput is a cleaned up pasted link and what it classifies as
type NormalizeOutput struct {
	Input      string       `json:"input"`
	Normalized string       `json:"normalized" example:"https://youtu.be/dQw4w9WgXcQ"`
	Changed    bool         `json:"changed"`
	Platform   platform.Tag `json:"platform"   example:"youtube"`
}
