package sqlite

// Schema DDL for the solutions archive. The archive persists across runs,
// so creation is idempotent.
const createSolutions = `CREATE TABLE IF NOT EXISTS solutions (
    solution_id TEXT PRIMARY KEY,
    grid INTEGER NOT NULL UNIQUE,
    rendered TEXT NOT NULL,
    moves TEXT NOT NULL,
    length INTEGER NOT NULL,
    solvable INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

// Index DDL for common queries.
const idxSolutionsSolvable = `CREATE INDEX IF NOT EXISTS idx_solutions_solvable ON solutions(solvable);`

// schemaDDL lists all schema statements in execution order.
var schemaDDL = []string{
	createSolutions,
	idxSolutionsSolvable,
}
