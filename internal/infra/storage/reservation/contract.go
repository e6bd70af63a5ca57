package reservation

import "github.com/THETRIS2001/piedelpoggio/pkg/txmanager"

// DBExecutor interface over *sql.DB used by the repository. The transaction
// manager swaps in a *sql.Tx through the context.
type DBExecutor = txmanager.Executor
