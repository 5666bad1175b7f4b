package vm

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookPosMap triggers after a mapping is created or replaced.
var HookPosMap = &HookPos{Name: "Map"}

// HookPosUnmap triggers after a mapping is destroyed, including the
// no-op case where the VPN was not mapped.
var HookPosUnmap = &HookPos{Name: "Unmap"}

// HookPosQuery triggers after a translation lookup.
var HookPosQuery = &HookPos{Name: "Query"}

// HookPosNodeAlloc triggers when the create path allocates an
// intermediate table node.
var HookPosNodeAlloc = &HookPos{Name: "NodeAlloc"}

// HookCtx is the context that holds all the information about the site
// that a hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Detail interface{}
}

// WalkInfo is the Detail payload for page-table hooks.
type WalkInfo struct {
	Root PPN
	VPN  VPN

	// PPN is the frame just mapped (HookPosMap), the lookup result
	// (HookPosQuery, NoMapping on a miss), or the freshly allocated
	// node (HookPosNodeAlloc). It is NoMapping for HookPosUnmap.
	PPN PPN

	// Level is the trie level an intermediate node was allocated for;
	// zero otherwise.
	Level int
}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// A HookableBase provides some utility function for other type that
// implement the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers the registered Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
