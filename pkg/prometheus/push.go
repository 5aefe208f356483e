// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package prometheus

import (
	"github.com/absmach/dealership/pkg/errors"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// ErrPush indicates a failure to deliver metrics to the Pushgateway.
var ErrPush = errors.New("failed to push metrics")

// Push delivers everything gathered by g to the Pushgateway at url, grouped
// under job and the given instance label.
func Push(url, job, instance string, g stdprometheus.Gatherer) error {
	err := push.New(url, job).
		Gatherer(g).
		Grouping("instance", instance).
		Push()
	if err != nil {
		return errors.Wrap(ErrPush, err)
	}

	return nil
}
