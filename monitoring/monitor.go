// Package monitoring provides a web server that exposes the state of
// page tables for external inspection.
package monitoring

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/pagewalk/tracing"
	"github.com/sarchlab/pagewalk/vm"
)

type monitoredTable struct {
	name  string
	table *vm.PageTable
	root  vm.PPN
	stats *tracing.CountTracer
}

// Monitor can turn a set of page tables into a server and allows
// external inspection of their mappings and statistics.
type Monitor struct {
	portNumber int
	url        string
	tables     []*monitoredTable
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterPageTable registers a page table, rooted at the given frame,
// to be monitored under the given name. A counting tracer is attached
// so that the stats endpoint has something to report.
func (m *Monitor) RegisterPageTable(
	name string,
	table *vm.PageTable,
	root vm.PPN,
) {
	stats := tracing.NewCountTracer()
	tracing.CollectTrace(table, stats)

	m.tables = append(m.tables, &monitoredTable{
		name:  name,
		table: table,
		root:  root,
		stats: stats,
	})
}

// StartServer starts the monitor as a web server.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()

	r.HandleFunc("/api/tables", m.listTables)
	r.HandleFunc("/api/translate/{name}/{vpn}", m.translate)
	r.HandleFunc("/api/stats/{name}", m.listStats)
	r.HandleFunc("/api/state/{name}", m.listTableState)
	r.HandleFunc("/api/resource", m.listResources)
	http.Handle("/", r)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.url = fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring page tables with %s\n", m.url)

	go func() {
		err = http.Serve(listener, nil)
		dieOnErr(err)
	}()
}

// StartDashboard opens the monitor in the default browser. StartServer
// must have been called first.
func (m *Monitor) StartDashboard() {
	err := browser.OpenURL(m.url + "/api/tables")
	dieOnErr(err)
}

func (m *Monitor) listTables(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprint(w, "[")
	for i, t := range m.tables {
		if i > 0 {
			fmt.Fprint(w, ",")
		}

		fmt.Fprintf(w, "%q", t.name)
	}
	fmt.Fprint(w, "]")
}

type translateRsp struct {
	VPN    uint64 `json:"vpn"`
	PPN    uint64 `json:"ppn"`
	Mapped bool   `json:"mapped"`
}

func (m *Monitor) translate(w http.ResponseWriter, r *http.Request) {
	t := m.findTableOr404(w, mux.Vars(r)["name"])
	if t == nil {
		return
	}

	vpn, err := strconv.ParseUint(mux.Vars(r)["vpn"], 0, 64)
	if err != nil {
		w.WriteHeader(400)
		fmt.Fprintf(w, "Error: %s", err)
		return
	}

	ppn := t.table.Query(t.root, vm.VPN(vpn))
	rsp := translateRsp{
		VPN:    vpn,
		PPN:    uint64(ppn),
		Mapped: ppn != vm.NoMapping,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listStats(w http.ResponseWriter, r *http.Request) {
	t := m.findTableOr404(w, mux.Vars(r)["name"])
	if t == nil {
		return
	}

	bytes, err := json.Marshal(t.stats)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) listTableState(w http.ResponseWriter, r *http.Request) {
	t := m.findTableOr404(w, mux.Vars(r)["name"])
	if t == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(t.table)
	serializer.SetMaxDepth(1)

	err := serializer.Serialize(w)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) findTableOr404(
	w http.ResponseWriter,
	name string,
) *monitoredTable {
	for _, t := range m.tables {
		if t.name == name {
			return t
		}
	}

	w.WriteHeader(404)

	return nil
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
