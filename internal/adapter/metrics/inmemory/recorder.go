package inmemory

import "sync"

type Snapshot struct {
	OpTotal      uint64            `json:"op_total"`
	OpRejected   uint64            `json:"op_rejected"`
	SaveFailures uint64            `json:"save_failures"`
	ByOp         map[string]uint64 `json:"by_op"`
	RejectedByOp map[string]uint64 `json:"rejected_by_op"`
}

type Recorder struct {
	mu           sync.Mutex
	byOp         map[string]uint64
	rejectedByOp map[string]uint64
	saveFailures uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOp:         map[string]uint64{},
		rejectedByOp: map[string]uint64{},
	}
}

func (r *Recorder) RecordOp(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byOp[op]++
}

func (r *Recorder) RecordRejection(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejectedByOp[op]++
}

func (r *Recorder) RecordSaveFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveFailures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		SaveFailures: r.saveFailures,
		ByOp:         make(map[string]uint64, len(r.byOp)),
		RejectedByOp: make(map[string]uint64, len(r.rejectedByOp)),
	}
	for k, v := range r.byOp {
		out.ByOp[k] = v
		out.OpTotal += v
	}
	for k, v := range r.rejectedByOp {
		out.RejectedByOp[k] = v
		out.OpRejected += v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
