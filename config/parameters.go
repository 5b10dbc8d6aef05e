// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config carries the committee-size and timing knobs a replica
// is constructed with: how large its committee is, how long it waits
// before giving up on a view, and how aggressively it retries. A
// deployment's parameter file would populate one of these at startup;
// this struct is what that loader produces.
package config

import "time"

// Parameters contains one replica's committee sizing and timing
// configuration. CommitteeSize alone determines the quorum/plurality
// thresholds via quorum.Size; it is carried here rather than derived
// once per view so every subsystem constructor can read the intended
// committee size without a view.Store reference.
type Parameters struct {
	// CommitteeSize is the number of members the genesis (and, absent an
	// Install, every subsequent) view expects.
	CommitteeSize int

	// Timing
	ViewChangeTimeout  time.Duration // how long a member awaits an Install before raising a Change
	PrepareBatchWindow time.Duration // how long the prepare server buffers a batch before witnessing it
	RetryBaseDelay     time.Duration // network.RetryingSender's base backoff
	RetryMaxAttempts   int           // network.RetryingSender's attempt ceiling for AckStrong sends

	// Sign-up
	SignupWorkDifficulty int // signup.Request's proof-of-work leading-zero-bit requirement

	// Batch sizing
	MaxBatchSize        int // prepare.Prepare entries accepted per batch
	MaxOutstandingBatches int // batches a broker may have in flight per session
}

// Mainnet returns production-scale parameters: a full committee, patient
// timeouts, and the default sign-up work difficulty.
func Mainnet() Parameters {
	return Parameters{
		CommitteeSize:         21,
		ViewChangeTimeout:     10 * time.Second,
		PrepareBatchWindow:    200 * time.Millisecond,
		RetryBaseDelay:        50 * time.Millisecond,
		RetryMaxAttempts:      8,
		SignupWorkDifficulty:  10,
		MaxBatchSize:          1024,
		MaxOutstandingBatches: 4,
	}
}

// Testnet returns a smaller committee with the same timing profile as
// Mainnet, for staging deployments that don't need full committee size.
func Testnet() Parameters {
	p := Mainnet()
	p.CommitteeSize = 7
	p.MaxBatchSize = 256
	return p
}

// Local returns a minimal four-member committee (the smallest size,
// n = 3f+1, that tolerates one Byzantine member) with fast timeouts and a
// trivial sign-up work difficulty, for single-machine development.
func Local() Parameters {
	return Parameters{
		CommitteeSize:         4,
		ViewChangeTimeout:     time.Second,
		PrepareBatchWindow:    10 * time.Millisecond,
		RetryBaseDelay:        5 * time.Millisecond,
		RetryMaxAttempts:      4,
		SignupWorkDifficulty:  1,
		MaxBatchSize:          64,
		MaxOutstandingBatches: 2,
	}
}
