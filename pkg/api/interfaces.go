package api

import "context"

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves until ctx is done
	StartServer(ctx context.Context, services Services, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}

// BankFactory opens record banks
type BankFactory interface {
	// OpenBank opens the bank stored in dataDir
	OpenBank(dataDir string) (RecordBankCloser, error)
}

// RecordBankCloser is a record bank that holds resources
type RecordBankCloser interface {
	IRecordBank
	Close() error
}
