// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Version is set with -ldflags "-X ...pkg/version.Version=x.y.z" at build time.
var Version = "develop"

// Check returns an error when the running tool is older than minVersion.
// Development builds satisfy every constraint.
func Check(minVersion string) error {
	constraint, err := goversion.NewConstraint(">=" + minVersion)
	if err != nil {
		return fmt.Errorf("Parsing minimum version '%s': %s", minVersion, err)
	}

	current, err := goversion.NewVersion(Version)
	if err != nil {
		return nil
	}

	if !constraint.Check(current) {
		return fmt.Errorf("autogen-tpl version %s does not meet the minimum required version %s", Version, minVersion)
	}
	return nil
}
