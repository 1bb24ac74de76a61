package metrics

import (
	"math"
	"runtime"

	"github.com/prometheus/procfs"
)

// SystemSampler reports host CPU and memory utilisation as percentages.
type SystemSampler interface {
	Sample() SystemStats
}

// ProcSampler reads /proc. CPU usage is the one-minute load average divided by
// the logical core count; memory usage is the share of non-free memory. Read
// failures report zero.
type ProcSampler struct {
	fs    procfs.FS
	ok    bool
	cores int
}

func NewProcSampler() *ProcSampler {
	fs, err := procfs.NewDefaultFS()
	return &ProcSampler{fs: fs, ok: err == nil, cores: runtime.NumCPU()}
}

func (p *ProcSampler) Sample() SystemStats {
	if !p.ok {
		return SystemStats{}
	}
	return SystemStats{
		CPUUsage:    p.cpuUsage(),
		MemoryUsage: p.memoryUsage(),
	}
}

func (p *ProcSampler) cpuUsage() float64 {
	load, err := p.fs.LoadAvg()
	if err != nil || p.cores == 0 {
		return 0
	}
	return CPUPercent(load.Load1, p.cores)
}

func (p *ProcSampler) memoryUsage() float64 {
	info, err := p.fs.Meminfo()
	if err != nil || info.MemTotal == nil || info.MemFree == nil {
		return 0
	}
	return MemoryPercent(*info.MemTotal, *info.MemFree)
}

func CPUPercent(load1 float64, cores int) float64 {
	if cores <= 0 {
		return 0
	}
	return round2(load1 / float64(cores) * 100)
}

func MemoryPercent(total, free uint64) float64 {
	if total == 0 || free > total {
		return 0
	}
	return round2(float64(total-free) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StaticSampler always reports the same values.
type StaticSampler SystemStats

func (s StaticSampler) Sample() SystemStats {
	return SystemStats(s)
}
