// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package dealership

var (
	// Version is the current release, set at build time.
	Version = "0.1.0"

	// Commit is the git commit the binary was built from.
	Commit = "unknown"

	// BuildTime is the time the binary was built.
	BuildTime = "unknown"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	// Service contains service name.
	Service string `json:"service"`

	// Version contains service current version value.
	Version string `json:"version"`

	// Commit contains the git commit hash.
	Commit string `json:"commit"`

	// BuildTime contains the build timestamp.
	BuildTime string `json:"build_time"`

	// InstanceID identifies this run.
	InstanceID string `json:"instance_id,omitempty"`
}

// Info returns version information for the named service.
func Info(service, instanceID string) VersionInfo {
	return VersionInfo{
		Service:    service,
		Version:    Version,
		Commit:     Commit,
		BuildTime:  BuildTime,
		InstanceID: instanceID,
	}
}
