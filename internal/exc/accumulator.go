// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import "sync"

// Reporter accumulates exceptions raised while loading and parsing
// documents. Parsing of one document can report a problem and carry on
// with the next one so that the full set can be shown at the end.
type Reporter interface {
	// Report adds the given record to the set. If this method returns an
	// exception then the given exception is considered fatal.
	Report(Exception) Exception
	// Reported returns the set of accumulated exceptions in report order.
	Reported() []Exception
	// Fatal returns the subset of Reported that are fatal.
	Fatal() []Exception
}

// NewReporter returns a concurrent-safe implementation of Reporter. Codes
// listed in nonFatal are added to the default non-fatal set.
func NewReporter(nonFatal []string) Reporter {
	nf := make(map[string]bool, len(defaultNonFatal)+len(nonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &reporterLock{
		Reporter: &reporter{
			nonFatal: nf,
		},
		lock: &sync.Mutex{},
	}
}

type reporter struct {
	reported []Exception
	nonFatal map[string]bool
}

func (r *reporter) Report(e Exception) Exception {
	r.reported = append(r.reported, e)
	if r.nonFatal[e.Code()] {
		return nil
	}
	return e
}

func (r *reporter) Reported() []Exception {
	return append([]Exception(nil), r.reported...)
}

func (r *reporter) Fatal() []Exception {
	var fatal []Exception
	for _, e := range r.reported {
		if !r.nonFatal[e.Code()] {
			fatal = append(fatal, e)
		}
	}
	return fatal
}

type reporterLock struct {
	Reporter
	lock sync.Locker
}

func (r *reporterLock) Report(e Exception) Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Report(e)
}

func (r *reporterLock) Reported() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Reported()
}

func (r *reporterLock) Fatal() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Fatal()
}
