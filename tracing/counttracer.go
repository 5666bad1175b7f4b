package tracing

import "github.com/sarchlab/pagewalk/vm"

// A CountTracer counts page-table operations in memory. It serves the
// monitor's stats endpoint and the CLI summary.
type CountTracer struct {
	NumMap       uint64
	NumUnmap     uint64
	NumQuery     uint64
	NumQueryHit  uint64
	NumQueryMiss uint64
	NumNodeAlloc uint64
}

// NewCountTracer creates a CountTracer with all counters at zero.
func NewCountTracer() *CountTracer {
	return &CountTracer{}
}

// Func counts one walk event.
func (t *CountTracer) Func(ctx vm.HookCtx) {
	switch ctx.Pos {
	case vm.HookPosMap:
		t.NumMap++
	case vm.HookPosUnmap:
		t.NumUnmap++
	case vm.HookPosQuery:
		t.NumQuery++

		info := ctx.Detail.(vm.WalkInfo)
		if info.PPN == vm.NoMapping {
			t.NumQueryMiss++
		} else {
			t.NumQueryHit++
		}
	case vm.HookPosNodeAlloc:
		t.NumNodeAlloc++
	}
}
