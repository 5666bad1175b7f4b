package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/pagewalk/datarecording"
	"github.com/sarchlab/pagewalk/memory"
	"github.com/sarchlab/pagewalk/replay"
	"github.com/sarchlab/pagewalk/tracing"
	"github.com/sarchlab/pagewalk/vm"
)

var replayCmd = &cobra.Command{
	Use:   "replay <tracefile>",
	Short: "Replay a page-table trace against a fresh table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, _, stats := replayTrace(cmd, args[0])

		printSummary(stats)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	addReplayFlags(replayCmd)
}

func addReplayFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("capacity-mb", 64,
		"physical memory capacity in MB")
	cmd.Flags().String("record", "",
		"record walks into this SQLite database "+
			"(default $PAGEWALK_RECORD_DB)")
}

// replayTrace builds a table over a fresh physical memory, wires the
// requested tracers, and runs the trace file against it.
func replayTrace(
	cmd *cobra.Command,
	traceFile string,
) (*vm.PageTable, vm.PPN, *tracing.CountTracer) {
	capacityMB, err := cmd.Flags().GetUint64("capacity-mb")
	dieOnErr(err)

	recordPath, err := cmd.Flags().GetString("record")
	dieOnErr(err)

	if recordPath == "" {
		recordPath = os.Getenv("PAGEWALK_RECORD_DB")
	}

	storage := memory.NewStorage(capacityMB << 20)
	allocator := memory.NewAllocator(storage)
	root := allocator.AllocateFrame()
	table := vm.NewPageTable(memory.NewTableStorage(storage), allocator)

	stats := tracing.NewCountTracer()
	tracing.CollectTrace(table, stats)

	if recordPath != "" {
		recorder := datarecording.New(recordPath)
		tracing.CollectTrace(table, tracing.NewWalkTracer(recorder, "walks"))
	}

	f, err := os.Open(traceFile)
	dieOnErr(err)
	defer f.Close()

	res, err := replay.Run(f, table, root)
	dieOnErr(err)

	fmt.Printf("replayed %d operations\n", res.NumOps)
	if res.NumMismatches > 0 {
		fmt.Printf("%d query expectations did not hold\n", res.NumMismatches)
		atexit.Exit(1)
	}

	return table, root, stats
}

func printSummary(stats *tracing.CountTracer) {
	fmt.Printf("maps:            %d\n", stats.NumMap)
	fmt.Printf("unmaps:          %d\n", stats.NumUnmap)
	fmt.Printf("queries:         %d (%d hit, %d miss)\n",
		stats.NumQuery, stats.NumQueryHit, stats.NumQueryMiss)
	fmt.Printf("nodes allocated: %d\n", stats.NumNodeAlloc)
}

func dieOnErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		atexit.Exit(1)
	}
}
