package experiment

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NodeEndpoint is one simulator node. Its index in the catalog is its id.
type NodeEndpoint struct {
	Host string `json:"host" mapstructure:"host"`
	Port int    `json:"port" mapstructure:"port"`
}

func (e NodeEndpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// ParseEndpoint reads "host:port".
func ParseEndpoint(s string) (NodeEndpoint, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return NodeEndpoint{}, fmt.Errorf("invalid endpoint %q: %w", s, err)
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return NodeEndpoint{}, fmt.Errorf("invalid port in endpoint %q: %w", s, err)
	}
	return NodeEndpoint{Host: host, Port: p}, nil
}

// NodeRange describes Count consecutive ports on a single host.
type NodeRange struct {
	Host      string `json:"host" mapstructure:"host"`
	FirstPort int    `json:"first_port" mapstructure:"first_port"`
	Count     int    `json:"count" mapstructure:"count"`
}

func (r NodeRange) Endpoints() []NodeEndpoint {
	if r.Count <= 0 {
		return nil
	}
	nodes := make([]NodeEndpoint, r.Count)
	for i := range nodes {
		nodes[i] = NodeEndpoint{Host: r.Host, Port: r.FirstPort + i}
	}
	return nodes
}

// ErasureGeometry is an (n, k) erasure code: n total shards, any k of
// which reconstruct the data. n >= k > 0 is expected but not enforced.
type ErasureGeometry struct {
	N int `json:"n" mapstructure:"n"`
	K int `json:"k" mapstructure:"k"`
}

func (g ErasureGeometry) String() string {
	return fmt.Sprintf("(%d,%d)", g.N, g.K)
}

// ParseGeometry reads "n:k".
func ParseGeometry(s string) (ErasureGeometry, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return ErasureGeometry{}, fmt.Errorf("invalid geometry %q: want n:k", s)
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return ErasureGeometry{}, fmt.Errorf("invalid n in geometry %q: %w", s, err)
	}
	k, err := strconv.Atoi(parts[1])
	if err != nil {
		return ErasureGeometry{}, fmt.Errorf("invalid k in geometry %q: %w", s, err)
	}
	return ErasureGeometry{N: n, K: k}, nil
}

// Knobs are the per-job parameters shared by every descriptor line.
type Knobs struct {
	RunID           int  `json:"run_id" mapstructure:"run_id"`
	ExploitTasks    int  `json:"exploit_tasks" mapstructure:"exploit_tasks"`
	EvaluationTasks int  `json:"evaluation_tasks" mapstructure:"evaluation_tasks"`
	MinBandwidth    int  `json:"min_bandwidth" mapstructure:"min_bandwidth"`
	EvenDistribute  bool `json:"even_distribute" mapstructure:"even_distribute"`
}

// RepairJob is one element of the repetition x geometry x variant product.
type RepairJob struct {
	Repetition int
	Geometry   ErasureGeometry
	Code       string
	Knobs      Knobs
}

// Runtime holds the scalar parameters of the simulator's master config.
type Runtime struct {
	BufferSize   int `json:"buffer_size" mapstructure:"buffer_size"`
	PageSize     int `json:"page_size" mapstructure:"page_size"`
	RecvThreads  int `json:"recv_threads" mapstructure:"recv_threads"`
	CompThreads  int `json:"comp_threads" mapstructure:"comp_threads"`
	ProcThreads  int `json:"proc_threads" mapstructure:"proc_threads"`
	MemBlocks    int `json:"mem_blocks" mapstructure:"mem_blocks"`
	MemBlockSize int `json:"mem_block_size" mapstructure:"mem_block_size"`

	// Data file naming: index padded to RWFileLen with RWFileFill.
	RWFileLen   int    `json:"rw_file_len" mapstructure:"rw_file_len"`
	RWFileFill  string `json:"rw_file_fill" mapstructure:"rw_file_fill"`
	ReadSuffix  string `json:"rfile_suffix" mapstructure:"rfile_suffix"`
	WriteSuffix string `json:"wfile_suffix" mapstructure:"wfile_suffix"`

	OnlyPrintNetConstraint bool   `json:"only_print_net_constraint" mapstructure:"only_print_net_constraint"`
	EthName                string `json:"eth_name" mapstructure:"eth_name"`
}

// Paths are joined by plain concatenation, so ConfigDir and DataDir
// carry their trailing separator.
type Paths struct {
	ConfigDir        string `json:"config_dir" mapstructure:"config_dir"`
	AddressFile      string `json:"address_file" mapstructure:"address_file"`
	AlgorithmFile    string `json:"algorithm_file" mapstructure:"algorithm_file"`
	BandwidthFile    string `json:"bandwidth_file" mapstructure:"bandwidth_file"`
	ConfigFile       string `json:"config_file" mapstructure:"config_file"`
	ConfigFormatFile string `json:"config_format_file" mapstructure:"config_format_file"`
	TaskFile         string `json:"task_file" mapstructure:"task_file"`
	DataDir          string `json:"data_dir" mapstructure:"data_dir"`
	ResultFile       string `json:"result_file" mapstructure:"result_file"`
}

func (p Paths) Address() string      { return p.ConfigDir + p.AddressFile }
func (p Paths) Algorithm() string    { return p.ConfigDir + p.AlgorithmFile }
func (p Paths) Bandwidth() string    { return p.ConfigDir + p.BandwidthFile }
func (p Paths) Config() string       { return p.ConfigDir + p.ConfigFile }
func (p Paths) ConfigFormat() string { return p.ConfigDir + p.ConfigFormatFile }
func (p Paths) Task() string         { return p.ConfigDir + p.TaskFile }
func (p Paths) Result() string       { return p.DataDir + p.ResultFile }
