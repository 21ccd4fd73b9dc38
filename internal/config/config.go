// Package config turns viper settings (defaults, config file, environment,
// bound flags) into an experiment.Definition.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"exrconf/internal/experiment"
)

const EnvPrefix = "EXRCONF"

// Keys bound to command-line flags.
const (
	KeyAlgorithms     = "experiment.algorithms"
	KeyGeometries     = "experiment.geometries"
	KeyRepetitions    = "experiment.repetitions"
	KeyRunID          = "experiment.run_id"
	KeyMinBandwidth   = "experiment.min_bandwidth"
	KeyEvenDistribute = "experiment.even_distribute"
)

// File mirrors the config file layout.
type File struct {
	Paths      experiment.Paths     `mapstructure:"paths"`
	Runtime    experiment.Runtime   `mapstructure:"runtime"`
	Nodes      []any                `mapstructure:"nodes"`
	NodeRange  experiment.NodeRange `mapstructure:"node_range"`
	Experiment struct {
		Algorithms       []string `mapstructure:"algorithms"`
		Geometries       []any    `mapstructure:"geometries"`
		Repetitions      int      `mapstructure:"repetitions"`
		experiment.Knobs `mapstructure:",squash"`
	} `mapstructure:"experiment"`
}

// New returns a viper instance with defaults and environment lookup
// (EXRCONF_EXPERIMENT_REPETITIONS and so on) configured.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func SetDefaults(v *viper.Viper) {
	d := experiment.Default()

	v.SetDefault("paths.config_dir", d.Paths.ConfigDir)
	v.SetDefault("paths.address_file", d.Paths.AddressFile)
	v.SetDefault("paths.algorithm_file", d.Paths.AlgorithmFile)
	v.SetDefault("paths.bandwidth_file", d.Paths.BandwidthFile)
	v.SetDefault("paths.config_file", d.Paths.ConfigFile)
	v.SetDefault("paths.config_format_file", d.Paths.ConfigFormatFile)
	v.SetDefault("paths.task_file", d.Paths.TaskFile)
	v.SetDefault("paths.data_dir", d.Paths.DataDir)
	v.SetDefault("paths.result_file", d.Paths.ResultFile)

	v.SetDefault("runtime.buffer_size", d.Runtime.BufferSize)
	v.SetDefault("runtime.page_size", d.Runtime.PageSize)
	v.SetDefault("runtime.recv_threads", d.Runtime.RecvThreads)
	v.SetDefault("runtime.comp_threads", d.Runtime.CompThreads)
	v.SetDefault("runtime.proc_threads", d.Runtime.ProcThreads)
	v.SetDefault("runtime.mem_blocks", d.Runtime.MemBlocks)
	v.SetDefault("runtime.mem_block_size", d.Runtime.MemBlockSize)
	v.SetDefault("runtime.rw_file_len", d.Runtime.RWFileLen)
	v.SetDefault("runtime.rw_file_fill", d.Runtime.RWFileFill)
	v.SetDefault("runtime.rfile_suffix", d.Runtime.ReadSuffix)
	v.SetDefault("runtime.wfile_suffix", d.Runtime.WriteSuffix)
	v.SetDefault("runtime.only_print_net_constraint", d.Runtime.OnlyPrintNetConstraint)
	v.SetDefault("runtime.eth_name", d.Runtime.EthName)

	v.SetDefault("nodes", []string{})
	v.SetDefault("node_range.host", experiment.DefaultNodeRange.Host)
	v.SetDefault("node_range.first_port", experiment.DefaultNodeRange.FirstPort)
	v.SetDefault("node_range.count", experiment.DefaultNodeRange.Count)

	geometries := make([]string, len(d.Geometries))
	for i, g := range d.Geometries {
		geometries[i] = fmt.Sprintf("%d:%d", g.N, g.K)
	}
	v.SetDefault(KeyAlgorithms, d.Algorithms)
	v.SetDefault(KeyGeometries, geometries)
	v.SetDefault(KeyRepetitions, d.Repetitions)
	v.SetDefault(KeyRunID, d.Knobs.RunID)
	v.SetDefault(KeyMinBandwidth, d.Knobs.MinBandwidth)
	v.SetDefault(KeyEvenDistribute, d.Knobs.EvenDistribute)
	v.SetDefault("experiment.exploit_tasks", d.Knobs.ExploitTasks)
	v.SetDefault("experiment.evaluation_tasks", d.Knobs.EvaluationTasks)
}

// Load decodes the settings into a Definition. Only malformed endpoints and
// geometries are rejected; questionable but well-formed values (k > n, an
// empty algorithm list) are passed through for the writers to encode.
func Load(v *viper.Viper) (experiment.Definition, error) {
	var f File
	if err := v.Unmarshal(&f); err != nil {
		return experiment.Definition{}, fmt.Errorf("decode config: %w", err)
	}

	nodes, err := decodeNodes(f.Nodes)
	if err != nil {
		return experiment.Definition{}, err
	}
	if len(nodes) == 0 {
		nodes = f.NodeRange.Endpoints()
	}

	geometries, err := decodeGeometries(f.Experiment.Geometries)
	if err != nil {
		return experiment.Definition{}, err
	}

	algorithms := make([]string, 0, len(f.Experiment.Algorithms))
	for _, a := range f.Experiment.Algorithms {
		code := experiment.NormalizeCode(a)
		if code == "" {
			continue
		}
		if _, known := experiment.LookupCode(code); !known {
			slog.Warn("unknown algorithm code, using the default descriptor schema", "code", code)
		}
		algorithms = append(algorithms, code)
	}

	return experiment.Definition{
		Nodes:       nodes,
		Algorithms:  algorithms,
		Geometries:  geometries,
		Repetitions: f.Experiment.Repetitions,
		Knobs:       f.Experiment.Knobs,
		Runtime:     f.Runtime,
		Paths:       f.Paths,
	}, nil
}

// decodeNodes accepts "host:port" strings and {host, port} maps.
func decodeNodes(raw []any) ([]experiment.NodeEndpoint, error) {
	nodes := make([]experiment.NodeEndpoint, 0, len(raw))
	for i, r := range raw {
		switch val := r.(type) {
		case string:
			if strings.TrimSpace(val) == "" {
				continue
			}
			n, err := experiment.ParseEndpoint(val)
			if err != nil {
				return nil, fmt.Errorf("nodes[%d]: %w", i, err)
			}
			nodes = append(nodes, n)
		default:
			m, err := cast.ToStringMapE(val)
			if err != nil {
				return nil, fmt.Errorf("nodes[%d]: %w", i, err)
			}
			port, err := cast.ToIntE(m["port"])
			if err != nil {
				return nil, fmt.Errorf("nodes[%d]: invalid port: %w", i, err)
			}
			nodes = append(nodes, experiment.NodeEndpoint{Host: cast.ToString(m["host"]), Port: port})
		}
	}
	return nodes, nil
}

// decodeGeometries accepts "n:k" strings and {n, k} maps.
func decodeGeometries(raw []any) ([]experiment.ErasureGeometry, error) {
	out := make([]experiment.ErasureGeometry, 0, len(raw))
	for i, r := range raw {
		switch val := r.(type) {
		case string:
			if strings.TrimSpace(val) == "" {
				continue
			}
			g, err := experiment.ParseGeometry(val)
			if err != nil {
				return nil, fmt.Errorf("geometries[%d]: %w", i, err)
			}
			out = append(out, g)
		default:
			m, err := cast.ToStringMapE(val)
			if err != nil {
				return nil, fmt.Errorf("geometries[%d]: %w", i, err)
			}
			n, err := cast.ToIntE(m["n"])
			if err != nil {
				return nil, fmt.Errorf("geometries[%d]: invalid n: %w", i, err)
			}
			k, err := cast.ToIntE(m["k"])
			if err != nil {
				return nil, fmt.Errorf("geometries[%d]: invalid k: %w", i, err)
			}
			out = append(out, experiment.ErasureGeometry{N: n, K: k})
		}
	}
	return out, nil
}
