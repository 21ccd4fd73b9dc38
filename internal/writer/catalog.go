package writer

import (
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"exrconf/internal/experiment"
)

// AddressCatalog writes the node address file. Line order is the node
// index space used by the simulator, so nodes are written exactly as given.
type AddressCatalog struct {
	fs    afero.Fs
	nodes []experiment.NodeEndpoint
}

func NewAddressCatalog(fs afero.Fs, nodes []experiment.NodeEndpoint) *AddressCatalog {
	return &AddressCatalog{fs: fs, nodes: nodes}
}

// Render returns the file content: the count, then "host port" per node.
func (c *AddressCatalog) Render() []byte {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(c.nodes)))
	sb.WriteByte('\n')
	for _, n := range c.nodes {
		sb.WriteString(n.Host)
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(n.Port))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func (c *AddressCatalog) Write(path string) (Result, error) {
	return writeFile(c.fs, KindAddresses, path, c.Render())
}
