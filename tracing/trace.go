// Package tracing observes page-table walks through hooks.
package tracing

import "github.com/sarchlab/pagewalk/vm"

// A Tracer receives the walk events of a page table.
type Tracer interface {
	vm.Hook
}

// CollectTrace registers a tracer on a page table so that it starts
// receiving walk events.
func CollectTrace(pt *vm.PageTable, tracer Tracer) {
	pt.AcceptHook(tracer)
}
