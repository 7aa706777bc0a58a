// Package datagen produces the random technical records served by the
// get-random-data tool. The values are synthetic: only the shape and the
// documented numeric ranges matter, since the records exist to exercise the
// transport with realistically sized payloads.
package datagen

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

const alphanum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Statuses are the possible values of TechnicalData.Status.
var Statuses = []string{"healthy", "degraded", "warning", "critical"}

// ServerInfo is a fake host identity.
type ServerInfo struct {
	Hostname      string `json:"hostname"`
	IPAddress     string `json:"ip_address"`
	MACAddress    string `json:"mac_address"`
	UptimeSeconds int    `json:"uptime_seconds"`
}

// Metrics is a fake resource utilization snapshot.
//
// MemoryUsedMB is generated independently of MemoryTotalMB and can exceed it.
// The quirk is inherited from the reference generator and kept on purpose:
// consumers of this server assert byte-level parity, not plausibility.
type Metrics struct {
	CPUUsagePercent float64 `json:"cpu_usage_percent"`
	MemoryUsedMB    int     `json:"memory_used_mb"`
	MemoryTotalMB   int     `json:"memory_total_mb"`
	DiskIOReadMbps  float64 `json:"disk_io_read_mbps"`
	DiskIOWriteMbps float64 `json:"disk_io_write_mbps"`
	NetworkRxMbps   float64 `json:"network_rx_mbps"`
	NetworkTxMbps   float64 `json:"network_tx_mbps"`
}

// ProcessInfo is a fake process snapshot.
type ProcessInfo struct {
	PID         int `json:"pid"`
	Threads     int `json:"threads"`
	OpenFiles   int `json:"open_files"`
	Connections int `json:"connections"`
}

// TechnicalData is one generated record (~15 fields across nested objects).
// JSON field order is fixed by the struct layout; the completed-call log
// reports the serialized length, so the layout should not be reordered.
type TechnicalData struct {
	RequestID   string      `json:"request_id"`
	Timestamp   string      `json:"timestamp"`
	ServerInfo  ServerInfo  `json:"server_info"`
	Metrics     Metrics     `json:"metrics"`
	ProcessInfo ProcessInfo `json:"process_info"`
	Status      string      `json:"status"`
	Tags        []string    `json:"tags"`
	Version     string      `json:"version"`
}

// RecordSet wraps multiple records for count > 1 responses.
type RecordSet struct {
	Records []TechnicalData `json:"records"`
	Count   int             `json:"count"`
}

// Generator produces TechnicalData records from its own random source.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// New returns a Generator with a randomly seeded source.
func New() *Generator {
	return NewWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewWithSource returns a Generator backed by src. Tests pass a fixed-seed
// source for reproducible values.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{
		rnd: rand.New(src),
		now: time.Now,
	}
}

// Technical generates one record.
func (g *Generator) Technical() TechnicalData {
	return TechnicalData{
		RequestID: uuid.NewString(),
		Timestamp: g.now().UTC().Format(time.RFC3339Nano),
		ServerInfo: ServerInfo{
			Hostname:      "server-" + g.String(6),
			IPAddress:     g.IP(),
			MACAddress:    g.MAC(),
			UptimeSeconds: g.intIn(3600, 86400*30),
		},
		Metrics: Metrics{
			CPUUsagePercent: g.floatIn(5.0, 95.0),
			MemoryUsedMB:    g.intIn(512, 16384),
			MemoryTotalMB:   32768,
			DiskIOReadMbps:  g.floatIn(0.1, 500.0),
			DiskIOWriteMbps: g.floatIn(0.1, 300.0),
			NetworkRxMbps:   g.floatIn(0.01, 1000.0),
			NetworkTxMbps:   g.floatIn(0.01, 500.0),
		},
		ProcessInfo: ProcessInfo{
			PID:         g.intIn(1000, 65535),
			Threads:     g.intIn(1, 64),
			OpenFiles:   g.intIn(10, 1000),
			Connections: g.intIn(0, 500),
		},
		Status: Statuses[g.rnd.IntN(len(Statuses))],
		Tags:   g.tags(),
		Version: fmt.Sprintf("%d.%d.%d",
			g.intIn(1, 5), g.intIn(0, 20), g.intIn(0, 100)),
	}
}

// Records generates n records.
func (g *Generator) Records(n int) []TechnicalData {
	records := make([]TechnicalData, n)
	for i := range records {
		records[i] = g.Technical()
	}
	return records
}

// String generates a random alphanumeric string of the given length.
func (g *Generator) String(length int) string {
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(alphanum[g.rnd.IntN(len(alphanum))])
	}
	return b.String()
}

// IP generates a random IPv4 address.
func (g *Generator) IP() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		g.intIn(1, 255), g.intIn(0, 255), g.intIn(0, 255), g.intIn(1, 254))
}

// MAC generates a random MAC address.
func (g *Generator) MAC() string {
	parts := make([]string, 6)
	for i := range parts {
		parts[i] = fmt.Sprintf("%02x", g.rnd.IntN(256))
	}
	return strings.Join(parts, ":")
}

// Delay returns a uniformly random simulated latency in [50ms, 500ms].
func (g *Generator) Delay() time.Duration {
	ms := 50 + g.rnd.Float64()*450
	return time.Duration(ms * float64(time.Millisecond))
}

func (g *Generator) tags() []string {
	tags := make([]string, g.intIn(2, 5))
	for i := range tags {
		tags[i] = g.String(4)
	}
	return tags
}

// intIn returns an int in [lo, hi], both inclusive.
func (g *Generator) intIn(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}

// floatIn returns a float in [lo, hi] rounded to two decimals.
func (g *Generator) floatIn(lo, hi float64) float64 {
	return math.Round((lo+g.rnd.Float64()*(hi-lo))*100) / 100
}
