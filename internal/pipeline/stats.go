package pipeline

import "github.com/backmassage/mediasweep/internal/archive"

// DirOutcome is the result of processing one language directory.
type DirOutcome struct {
	Result *archive.Result
	Err    error
}

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total      int // Language dirs found.
	Current    int // Language dirs attempted.
	Succeeded  int
	Failed     int
	Moved      int
	BytesMoved int64
	Outcomes   []DirOutcome
}

func (s *RunStats) record(res *archive.Result, err error) {
	s.Outcomes = append(s.Outcomes, DirOutcome{Result: res, Err: err})
	if res != nil {
		s.Moved += res.Moved()
		if !res.DryRun {
			s.BytesMoved += res.BytesMoved
		}
	}
	if err != nil {
		s.Failed++
		return
	}
	s.Succeeded++
}
