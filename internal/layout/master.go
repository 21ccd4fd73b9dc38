package layout

// Placeholders of the simulator's master config. The spelling is part of
// the published format documentation.
const (
	Size              Key = "size"
	PageSize          Key = "psize"
	AddressPath       Key = "config_dir + address_file"
	BandwidthPath     Key = "config_dir + bandwidth_file"
	RecvThreads       Key = "recv_thr_num"
	CompThreads       Key = "comp_thr_num"
	ProcThreads       Key = "proc_thr_num"
	MemBlocks         Key = "mem_num"
	MemBlockSize      Key = "mem_size"
	AlgorithmPath     Key = "config_dir + algorithm_file"
	TaskPath          Key = "config_dir + task_file"
	ResultPath        Key = "data_file_dir + result_file"
	DataDir           Key = "data_file_dir"
	RWFileLen         Key = "rw_file_len"
	RWFileFill        Key = "rw_file_fill"
	ReadSuffix        Key = "rfile_end"
	WriteSuffix       Key = "wfile_end"
	OnlyPrintNetLimit Key = "if_only_print_net_constrain"
	EthName           Key = "eth_name"
)

// MasterConfig is read positionally by the simulator; do not reorder.
var MasterConfig = Layout{
	{Size, PageSize},
	nil,
	{AddressPath},
	{BandwidthPath},
	nil,
	{RecvThreads, CompThreads, ProcThreads},
	{MemBlocks, MemBlockSize},
	nil,
	{AlgorithmPath},
	{TaskPath},
	{ResultPath},
	nil,
	{DataDir},
	{RWFileLen, RWFileFill},
	{ReadSuffix},
	{WriteSuffix},
	nil,
	{OnlyPrintNetLimit},
	{EthName},
}
