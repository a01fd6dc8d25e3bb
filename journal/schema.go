package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	valuation_date DATETIME NOT NULL,
	trade TEXT NOT NULL,
	currency TEXT NOT NULL,
	present_value REAL NOT NULL,
	method TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS node_sensitivities (
	run_id TEXT NOT NULL,
	curve_name TEXT NOT NULL,
	currency TEXT NOT NULL,
	node_index INTEGER NOT NULL,
	value REAL NOT NULL,
	PRIMARY KEY (run_id, curve_name, currency, node_index)
);

CREATE INDEX IF NOT EXISTS idx_node_sensitivities_run ON node_sensitivities(run_id);
`
