package experiment

// Definition is everything a generation run needs. It is built once and
// passed by value; nothing downstream modifies it.
type Definition struct {
	Nodes       []NodeEndpoint    `json:"nodes"`
	Algorithms  []string          `json:"algorithms"`
	Geometries  []ErasureGeometry `json:"geometries"`
	Repetitions int               `json:"repetitions"`
	Knobs       Knobs             `json:"knobs"`
	Runtime     Runtime           `json:"runtime"`
	Paths       Paths             `json:"paths"`
}

// JobCount is the descriptor count declared in the algorithm file header.
func (d Definition) JobCount() int {
	if d.Repetitions <= 0 {
		return 0
	}
	return d.Repetitions * len(d.Geometries) * len(d.Algorithms)
}

// Jobs enumerates repetition, then geometry, then algorithm, each in
// configured order. Consumers correlate repeated runs by this order.
func (d Definition) Jobs() []RepairJob {
	jobs := make([]RepairJob, 0, d.JobCount())
	for rep := 0; rep < d.Repetitions; rep++ {
		for _, g := range d.Geometries {
			for _, code := range d.Algorithms {
				jobs = append(jobs, RepairJob{
					Repetition: rep,
					Geometry:   g,
					Code:       code,
					Knobs:      d.Knobs,
				})
			}
		}
	}
	return jobs
}

// DefaultNodeRange is the 17-node localhost cluster the simulator ships with.
var DefaultNodeRange = NodeRange{Host: "127.0.0.1", FirstPort: 10083, Count: 17}

// Default returns the stock experiment: ExploitRepair on a (6,4) code,
// once, against the local cluster.
func Default() Definition {
	return Definition{
		Nodes:       DefaultNodeRange.Endpoints(),
		Algorithms:  []string{"b"},
		Geometries:  []ErasureGeometry{{N: 6, K: 4}},
		Repetitions: 1,
		Knobs: Knobs{
			RunID:           1,
			ExploitTasks:    3,
			EvaluationTasks: 3,
			MinBandwidth:    50,
			EvenDistribute:  false,
		},
		Runtime: Runtime{
			BufferSize:             1 << 6,
			PageSize:               1 << 2,
			RecvThreads:            20,
			CompThreads:            10,
			ProcThreads:            40,
			MemBlocks:              30,
			MemBlockSize:           1 << 26,
			RWFileLen:              2,
			RWFileFill:             "0",
			ReadSuffix:             "-rfile.txt",
			WriteSuffix:            "-wfile.txt",
			OnlyPrintNetConstraint: true,
			EthName:                "eth0",
		},
		Paths: Paths{
			ConfigDir:        "config/",
			AddressFile:      "addresses.txt",
			AlgorithmFile:    "algorithms.txt",
			BandwidthFile:    "bandwidths.txt",
			ConfigFile:       "config.txt",
			ConfigFormatFile: "config_format.txt",
			TaskFile:         "tasks.txt",
			DataDir:          "files/",
			ResultFile:       "results.txt",
		},
	}
}
