package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exrconf/internal/experiment"
)

func TestLoad_defaults(t *testing.T) {
	def, err := Load(New())

	require.NoError(t, err)
	assert.Equal(t, experiment.Default(), def)
}

func TestLoad_yaml(t *testing.T) {
	v := New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
paths:
  config_dir: out/
runtime:
  rw_file_fill: 0
  eth_name: ens5
  only_print_net_constraint: false
nodes:
  - 10.0.0.1:9000
  - host: 10.0.0.2
    port: "9001"
experiment:
  algorithms: [e, MutiPipeline, z]
  geometries:
    - "12:8"
    - {n: 9, k: 6}
  repetitions: 2
  run_id: 7
  even_distribute: true
`)))

	def, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, []experiment.NodeEndpoint{{Host: "10.0.0.1", Port: 9000}, {Host: "10.0.0.2", Port: 9001}}, def.Nodes)
	assert.Equal(t, []string{"e", "v", "z"}, def.Algorithms)
	assert.Equal(t, []experiment.ErasureGeometry{{N: 12, K: 8}, {N: 9, K: 6}}, def.Geometries)
	assert.Equal(t, 2, def.Repetitions)
	assert.Equal(t, 7, def.Knobs.RunID)
	assert.True(t, def.Knobs.EvenDistribute)
	assert.Equal(t, 50, def.Knobs.MinBandwidth)
	assert.Equal(t, "0", def.Runtime.RWFileFill)
	assert.Equal(t, "ens5", def.Runtime.EthName)
	assert.False(t, def.Runtime.OnlyPrintNetConstraint)
	assert.Equal(t, 20, def.Runtime.RecvThreads)
	assert.Equal(t, "out/addresses.txt", def.Paths.Address())
	assert.Equal(t, "files/", def.Paths.DataDir)
}

func TestLoad_nodeRange(t *testing.T) {
	v := New()
	v.Set("node_range.host", "192.168.1.10")
	v.Set("node_range.first_port", 5000)
	v.Set("node_range.count", 3)

	def, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, []experiment.NodeEndpoint{
		{Host: "192.168.1.10", Port: 5000},
		{Host: "192.168.1.10", Port: 5001},
		{Host: "192.168.1.10", Port: 5002},
	}, def.Nodes)
}

func TestLoad_env(t *testing.T) {
	t.Setenv("EXRCONF_EXPERIMENT_REPETITIONS", "4")
	t.Setenv("EXRCONF_EXPERIMENT_ALGORITHMS", "b,j")
	t.Setenv("EXRCONF_RUNTIME_ETH_NAME", "lo")

	def, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, 4, def.Repetitions)
	assert.Equal(t, []string{"b", "j"}, def.Algorithms)
	assert.Equal(t, "lo", def.Runtime.EthName)
}

func TestLoad_emptyAlgorithmsKept(t *testing.T) {
	v := New()
	v.Set(KeyAlgorithms, []string{})

	def, err := Load(v)
	require.NoError(t, err)

	assert.Empty(t, def.Algorithms)
	assert.Equal(t, 0, def.JobCount())
}

func TestLoad_invalidGeometry(t *testing.T) {
	v := New()
	v.Set(KeyGeometries, []string{"6-4"})

	_, err := Load(v)
	assert.ErrorContains(t, err, "geometries[0]")
}

func TestLoad_invalidNode(t *testing.T) {
	v := New()
	v.Set("nodes", []string{"10.0.0.1"})

	_, err := Load(v)
	assert.ErrorContains(t, err, "nodes[0]")
}
