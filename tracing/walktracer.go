package tracing

import (
	"github.com/sarchlab/pagewalk/datarecording"
	"github.com/sarchlab/pagewalk/vm"
)

// A WalkEntry is one recorded page-table operation.
type WalkEntry struct {
	Seq   uint64
	Kind  string
	Root  uint64
	VPN   uint64
	PPN   uint64
	Level int
}

// A WalkTracer records every walk event into a DataRecorder table, one
// row per event.
type WalkTracer struct {
	recorder  datarecording.DataRecorder
	tableName string
	seq       uint64
}

// NewWalkTracer creates a WalkTracer that writes into the named table
// of the given recorder.
func NewWalkTracer(
	recorder datarecording.DataRecorder,
	tableName string,
) *WalkTracer {
	recorder.CreateTable(tableName, WalkEntry{})

	return &WalkTracer{
		recorder:  recorder,
		tableName: tableName,
	}
}

// Func records one walk event.
func (t *WalkTracer) Func(ctx vm.HookCtx) {
	info := ctx.Detail.(vm.WalkInfo)

	t.seq++
	t.recorder.InsertData(t.tableName, WalkEntry{
		Seq:   t.seq,
		Kind:  ctx.Pos.Name,
		Root:  uint64(info.Root),
		VPN:   uint64(info.VPN),
		PPN:   uint64(info.PPN),
		Level: info.Level,
	})
}
