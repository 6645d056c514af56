// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags and shown by `family-vault version`
// and GET /api/version/.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// buildInfoWire is the JSON form of AppBuildInfo.
type buildInfoWire struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo replaces empty values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// MarshalJSON implements json.Marshaler.
func (a AppBuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(buildInfoWire{Version: a.buildVersion, Date: a.buildDate, Commit: a.buildCommit})
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AppBuildInfo) UnmarshalJSON(data []byte) error {
	var w buildInfoWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*a = AppBuildInfo{buildVersion: w.Version, buildDate: w.Date, buildCommit: w.Commit}
	return nil
}
