package writer

import (
	"strconv"

	"github.com/spf13/afero"

	"exrconf/internal/experiment"
	"exrconf/internal/layout"
)

// MasterConfigComposer writes the simulator's master config and the
// placeholder version of it that documents the format.
type MasterConfigComposer struct {
	fs  afero.Fs
	def experiment.Definition
}

func NewMasterConfigComposer(fs afero.Fs, def experiment.Definition) *MasterConfigComposer {
	return &MasterConfigComposer{fs: fs, def: def}
}

// Bindings maps every master config key to its value.
func (m *MasterConfigComposer) Bindings() []layout.Binding {
	rt, p := m.def.Runtime, m.def.Paths

	onlyNet := "0"
	if rt.OnlyPrintNetConstraint {
		onlyNet = "1"
	}

	return []layout.Binding{
		{Key: layout.Size, Value: strconv.Itoa(rt.BufferSize)},
		{Key: layout.PageSize, Value: strconv.Itoa(rt.PageSize)},
		{Key: layout.AddressPath, Value: p.Address()},
		{Key: layout.BandwidthPath, Value: p.Bandwidth()},
		{Key: layout.RecvThreads, Value: strconv.Itoa(rt.RecvThreads)},
		{Key: layout.CompThreads, Value: strconv.Itoa(rt.CompThreads)},
		{Key: layout.ProcThreads, Value: strconv.Itoa(rt.ProcThreads)},
		{Key: layout.MemBlocks, Value: strconv.Itoa(rt.MemBlocks)},
		{Key: layout.MemBlockSize, Value: strconv.Itoa(rt.MemBlockSize)},
		{Key: layout.AlgorithmPath, Value: p.Algorithm()},
		{Key: layout.TaskPath, Value: p.Task()},
		{Key: layout.ResultPath, Value: p.Result()},
		{Key: layout.DataDir, Value: p.DataDir},
		{Key: layout.RWFileLen, Value: strconv.Itoa(rt.RWFileLen)},
		{Key: layout.RWFileFill, Value: rt.RWFileFill},
		{Key: layout.ReadSuffix, Value: rt.ReadSuffix},
		{Key: layout.WriteSuffix, Value: rt.WriteSuffix},
		{Key: layout.OnlyPrintNetLimit, Value: onlyNet},
		{Key: layout.EthName, Value: rt.EthName},
	}
}

func (m *MasterConfigComposer) Render() ([]byte, error) {
	s, err := layout.MasterConfig.Render(m.Bindings())
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// RenderFormat returns the unsubstituted template.
func (m *MasterConfigComposer) RenderFormat() []byte {
	return []byte(layout.MasterConfig.Format())
}

func (m *MasterConfigComposer) Write(path string) (Result, error) {
	data, err := m.Render()
	if err != nil {
		return Result{}, err
	}
	return writeFile(m.fs, KindConfig, path, data)
}

func (m *MasterConfigComposer) WriteFormat(path string) (Result, error) {
	return writeFile(m.fs, KindConfigFormat, path, m.RenderFormat())
}
