package txingest

import "github.com/gabapcia/solwatch/internal/pkg/types"

// Outcome is the final state of one payload.
type Outcome string

const (
	OutcomeProcessed Outcome = "processed"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// PayloadResult describes what happened to one payload of a delivery.
type PayloadResult struct {
	Signature  string
	Outcome    Outcome
	Reason     SkipReason // set when skipped
	Err        error      // set when failed
	Matched    int
	AlertsSent int

	lookedUp bool
}

func (r PayloadResult) skip(reason SkipReason) PayloadResult {
	r.Outcome = OutcomeSkipped
	r.Reason = reason
	return r
}

func (r PayloadResult) fail(err error) PayloadResult {
	r.Outcome = OutcomeFailed
	r.Err = err
	return r
}

// BatchReport aggregates the results of one delivery.
type BatchReport struct {
	Processed  int
	Skipped    int
	Failed     int
	AlertsSent int
	Results    []PayloadResult
}

func (b *BatchReport) add(r PayloadResult) {
	switch r.Outcome {
	case OutcomeProcessed:
		b.Processed++
	case OutcomeSkipped:
		b.Skipped++
	case OutcomeFailed:
		b.Failed++
	}

	b.AlertsSent += r.AlertsSent
	b.Results = append(b.Results, r)
}

// AddFailed records a payload that failed before reaching IngestBatch, such
// as an element of the delivery that could not be decoded.
func (b *BatchReport) AddFailed(signature string, err error) {
	b.add(PayloadResult{Signature: signature}.fail(err))
}

// Total returns how many payloads the delivery carried.
func (b BatchReport) Total() int {
	return len(b.Results)
}

// AllSkipped reports whether every payload was skipped.
func (b BatchReport) AllSkipped() bool {
	return len(b.Results) > 0 && b.Skipped == len(b.Results)
}

// SkipReasons counts skipped payloads per reason.
func (b BatchReport) SkipReasons() map[SkipReason]int {
	counts := types.NewDefaultMap[SkipReason](func() int { return 0 })
	for _, r := range b.Results {
		if r.Outcome == OutcomeSkipped {
			counts.Set(r.Reason, counts.Get(r.Reason)+1)
		}
	}

	return counts.ToMap()
}
