package exitcode

const (
	Success      = 0
	UsageError   = 1
	SchemaError  = 2
	FilterError  = 3
	EmptyDataset = 4
	IOError      = 5
)
