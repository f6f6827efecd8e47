package main

import (
	"boardroom/internal/advisor"
	"boardroom/internal/engine"
	"boardroom/internal/logging"
	"boardroom/internal/store"
	"boardroom/internal/trust"
	"boardroom/internal/workspace"
)

// newEngine resolves the workspace and wires the engine collaborators.
// The advisor provider is picked once here: file-backed when the full
// protocol files are installed, embedded demo otherwise. A failed index
// open degrades to the in-memory index — reports still work, history is
// just not queryable across restarts.
func newEngine() (*engine.Engine, func()) {
	logger := logging.New("wiring")
	ws := workspace.Resolve()

	var advisors advisor.Provider = advisor.EmbeddedProvider{}
	full := advisor.HasProtocolFiles(ws.MastermindRoot)
	if full {
		advisors = &advisor.FileProvider{Root: ws.MastermindRoot}
	}
	logger.Debug("advisor provider selected", "full_protocol", full, "root", ws.MastermindRoot)

	var index store.Store
	sqlIndex, err := store.Open(ws.DBPath)
	if err != nil {
		logger.Warn("outcome index unavailable, using in-memory index", "path", ws.DBPath, "error", err)
		index = store.NewMemStore()
	} else {
		index = sqlIndex
	}

	e := engine.New(engine.Config{
		Workspace:    ws,
		Advisors:     advisors,
		FullProtocol: full,
		Ledger:       trust.NewLedger(&trust.FileStore{Path: ws.TrustPath}),
		Index:        index,
	})
	return e, func() { _ = index.Close() }
}
