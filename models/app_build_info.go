// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo is the version metadata injected with -ldflags at build time.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns the build metadata; blank values read as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return orNotAvailable(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return orNotAvailable(a.buildCommit) }

// String formats the metadata the way the binaries print it on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return notAvailable
	}
	return v
}
