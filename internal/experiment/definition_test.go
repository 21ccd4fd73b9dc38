package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobs_nestingOrder(t *testing.T) {
	d := Default()
	d.Repetitions = 2
	d.Geometries = []ErasureGeometry{{N: 6, K: 4}, {N: 9, K: 6}}
	d.Algorithms = []string{"b", "e", "z"}

	jobs := d.Jobs()

	require.Len(t, jobs, d.JobCount())
	assert.Equal(t, 12, d.JobCount())

	i := 0
	for rep := 0; rep < 2; rep++ {
		for _, g := range d.Geometries {
			for _, code := range d.Algorithms {
				assert.Equal(t, rep, jobs[i].Repetition)
				assert.Equal(t, g, jobs[i].Geometry)
				assert.Equal(t, code, jobs[i].Code)
				assert.Equal(t, d.Knobs, jobs[i].Knobs)
				i++
			}
		}
	}
}

func TestJobCount_emptySelection(t *testing.T) {
	d := Default()
	d.Algorithms = nil

	assert.Equal(t, 0, d.JobCount())
	assert.Empty(t, d.Jobs())
}

func TestJobCount_negativeRepetitions(t *testing.T) {
	d := Default()
	d.Repetitions = -3

	assert.Equal(t, 0, d.JobCount())
	assert.Empty(t, d.Jobs())
}

func TestDefault(t *testing.T) {
	d := Default()

	require.Len(t, d.Nodes, 17)
	assert.Equal(t, NodeEndpoint{Host: "127.0.0.1", Port: 10083}, d.Nodes[0])
	assert.Equal(t, NodeEndpoint{Host: "127.0.0.1", Port: 10099}, d.Nodes[16])
	assert.Equal(t, 67108864, d.Runtime.MemBlockSize)
	assert.Equal(t, "config/addresses.txt", d.Paths.Address())
	assert.Equal(t, "files/results.txt", d.Paths.Result())
}

func TestParseEndpoint(t *testing.T) {
	e, err := ParseEndpoint(" 10.0.0.7:9000 ")
	require.NoError(t, err)
	assert.Equal(t, NodeEndpoint{Host: "10.0.0.7", Port: 9000}, e)
	assert.Equal(t, "10.0.0.7:9000", e.String())

	_, err = ParseEndpoint("10.0.0.7")
	assert.Error(t, err)

	_, err = ParseEndpoint("10.0.0.7:http")
	assert.Error(t, err)
}

func TestParseGeometry(t *testing.T) {
	g, err := ParseGeometry("12:8")
	require.NoError(t, err)
	assert.Equal(t, ErasureGeometry{N: 12, K: 8}, g)

	for _, bad := range []string{"12", "12:8:1", "a:8", "12:b"} {
		_, err := ParseGeometry(bad)
		assert.Error(t, err, bad)
	}
}

func TestNodeRange_empty(t *testing.T) {
	assert.Nil(t, NodeRange{Host: "h", FirstPort: 1, Count: 0}.Endpoints())
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "b", NormalizeCode("ExploitRepair"))
	assert.Equal(t, "j", NormalizeCode("ppr"))
	assert.Equal(t, "e", NormalizeCode(" e "))
	assert.Equal(t, "z", NormalizeCode("z"))
}

func TestCodeName(t *testing.T) {
	assert.Equal(t, "MutiPipeline", CodeName("v"))
	assert.Equal(t, "PivotRepair", CodeName("f"))
	assert.Equal(t, "unknown", CodeName("z"))

	for _, v := range Variants {
		got, ok := LookupCode(v.Code())
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}
