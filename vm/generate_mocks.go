//go:generate mockgen -destination=mock_vm.go -package=vm -self_package=github.com/sarchlab/pagewalk/vm -write_package_comment=false github.com/sarchlab/pagewalk/vm TableStorage,Node,FrameAllocator

package vm
