// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

// SecondsBuckets cover averaging a window from a handful of elements up to
// millions of them.
var SecondsBuckets = []float64{
	(100 * time.Nanosecond).Seconds(),
	time.Microsecond.Seconds(),
	(10 * time.Microsecond).Seconds(),
	(100 * time.Microsecond).Seconds(),
	time.Millisecond.Seconds(),
	(10 * time.Millisecond).Seconds(),
	(100 * time.Millisecond).Seconds(),
	time.Second.Seconds(),
	// anything larger than a second will be bucketed together
}
