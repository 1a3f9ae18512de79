// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"
)

// at most one progress message per period, shared by all workers
const progressPeriod = time.Second

// Configuration - a block of configuration data
// this is read from the configuration file
type Configuration struct {
	Workers        int    `gluamapper:"workers" json:"workers"`
	MaxCPUUsage    int    `gluamapper:"max_cpu_usage" json:"max_cpu_usage"`
	Limit          uint64 `gluamapper:"limit" json:"limit"`
	ReportInterval uint64 `gluamapper:"report_interval" json:"report_interval"`
}

// Searcher - proof-of-work search over a candidate's counter
type Searcher struct {
	log            *logger.L
	workers        int
	limit          uint64
	reportInterval uint64
	progress       *rate.Limiter
}

// New - create a searcher
//
// an explicit worker count wins, otherwise the count is derived from
// the CPU usage percentage, otherwise the search is sequential;
// a zero limit means the search is unbounded
func New(log *logger.L, configuration Configuration) *Searcher {
	workers := configuration.Workers
	if workers <= 0 {
		workers = 1
		if configuration.MaxCPUUsage > 0 {
			workers = OptimalWorkerCount(configuration.MaxCPUUsage, runtime.NumCPU())
		}
	}

	return &Searcher{
		log:            log,
		workers:        workers,
		limit:          configuration.Limit,
		reportInterval: configuration.ReportInterval,
		progress:       rate.NewLimiter(rate.Every(progressPeriod), 1),
	}
}

// NewSequential - silent, single worker, unbounded searcher
func NewSequential() *Searcher {
	return New(nil, Configuration{Workers: 1})
}

// Workers - number of goroutines used per search
func (s *Searcher) Workers() int {
	return s.workers
}

// OptimalWorkerCount - percentage of the CPUs, at least one and at most all
func OptimalWorkerCount(maxCPUUsage int, cpus int) int {
	const minWorkers = 1

	percentage := float32(maxCPUUsage) / 100
	workers := int(float32(cpus) * percentage)

	if workers <= minWorkers {
		return minWorkers
	}
	if workers > cpus {
		return cpus
	}
	return workers
}
