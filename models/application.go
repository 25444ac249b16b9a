// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ApplicationInfo describes the running Eagle instance.
type ApplicationInfo struct {
	Version           string `json:"version" yaml:"version"`
	PrereleaseVersion string `json:"prereleaseVersion,omitempty" yaml:"prereleaseVersion,omitempty"`
	BuildVersion      string `json:"buildVersion" yaml:"buildVersion"`
	ExecPath          string `json:"execPath" yaml:"execPath"`
	Platform          string `json:"platform" yaml:"platform"`
}
